package equity_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blockfall/tetron/board"
	"github.com/blockfall/tetron/equity"
)

func newCalc(t *testing.T) *equity.StaticCalculator {
	t.Helper()
	calc, err := equity.NewStaticCalculator("")
	assert.Nil(t, err)
	return calc
}

func TestEmptyGridEquity(t *testing.T) {
	calc := newCalc(t)
	b := board.NewBoard(10, 20)
	// all surface terms vanish; only the line-clear bonus remains
	assert.InDelta(t, 0.0, calc.Equity(b, 0), 1e-9)
	assert.InDelta(t, 4.0, calc.Equity(b, 1), 1e-9)
	assert.InDelta(t, 16.0, calc.Equity(b, 2), 1e-9)
	assert.InDelta(t, 64.0, calc.Equity(b, 4), 1e-9)
}

func TestEquityFeatures(t *testing.T) {
	type testcase struct {
		name  string
		rows  []string
		lines int
		ev    float64
	}

	for _, tc := range []testcase{
		{
			// one cell in the corner: height 1, bumpiness 1
			name:  "single cell",
			rows:  []string{"X........."},
			lines: 0,
			ev:    -0.7*1 - 0.3*1,
		},
		{
			// a covered gap: heights 2, holes 1, bumpiness 2
			name: "one hole",
			rows: []string{
				"X.........",
				".........."},
			lines: 0,
			ev:    -0.7*2 - 1.7*1 - 0.3*2,
		},
		{
			// towers at B and D leave a one-wide well at C
			name: "well between towers",
			rows: []string{
				".X.X......",
				".X.X......",
				".X.X......"},
			lines: 0,
			// heights 0,3,0,3: aggregate 6, bumpiness 3+3+3+3=12,
			// well depth 3 at column C
			ev: -0.7*6 - 0.3*12 + 0.2*3,
		},
		{
			// line bonus stacks on the surface terms
			name:  "clear on top of a cell",
			rows:  []string{"X........."},
			lines: 2,
			ev:    -0.7*1 + 4.0*4 - 0.3*1,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			calc := newCalc(t)
			b := board.NewBoard(10, 20)
			b.SetFromPlaintext(tc.rows)
			assert.InDelta(t, tc.ev, calc.Equity(b, tc.lines), 1e-9)
		})
	}
}

func TestEquityDeterministic(t *testing.T) {
	calc := newCalc(t)
	b := board.NewBoard(10, 20)
	b.SetFromPlaintext([]string{
		"..XX......",
		".XXX...X..",
		"XXXX..XXX.",
	})
	first := calc.Equity(b, 1)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, calc.Equity(b, 1))
	}
}

func TestLoadWeightsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.yaml")
	err := os.WriteFile(path, []byte(
		"height: -1.5\nlines: 2\nholes: -4\nbumpiness: -0.1\nwells: 0\n"), 0644)
	assert.Nil(t, err)

	calc, err := equity.NewStaticCalculator(path)
	assert.Nil(t, err)
	assert.Equal(t, equity.Weights{
		Height:    -1.5,
		Lines:     2,
		Holes:     -4,
		Bumpiness: -0.1,
		Wells:     0,
	}, calc.Weights())

	// a missing file falls back to the defaults
	calc, err = equity.NewStaticCalculator(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Nil(t, err)
	assert.Equal(t, equity.DefaultWeights(), calc.Weights())

	// garbage is a config error
	err = os.WriteFile(path, []byte("height: [not a number"), 0644)
	assert.Nil(t, err)
	_, err = equity.NewStaticCalculator(path)
	assert.NotNil(t, err)
}
