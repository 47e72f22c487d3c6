package equity

import (
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/blockfall/tetron/board"
)

// Weights are the fixed coefficients of the static evaluator. They are not
// trained at runtime; the YAML file is only there so hand tuning does not
// require a rebuild.
type Weights struct {
	Height    float64 `yaml:"height"`
	Lines     float64 `yaml:"lines"`
	Holes     float64 `yaml:"holes"`
	Bumpiness float64 `yaml:"bumpiness"`
	Wells     float64 `yaml:"wells"`
}

func DefaultWeights() Weights {
	return Weights{
		Height:    -0.7,
		Lines:     4.0,
		Holes:     -1.7,
		Bumpiness: -0.3,
		Wells:     0.2,
	}
}

// StaticCalculator scores a grid with a weighted sum of surface features:
// aggregate column height, the square of the lines cleared, buried holes,
// surface bumpiness, and well depth.
type StaticCalculator struct {
	weights Weights
}

// NewStaticCalculator builds a calculator, loading weights from weightsFile
// when one is given. An unreadable file falls back to the defaults; a
// malformed one is a configuration error.
func NewStaticCalculator(weightsFile string) (*StaticCalculator, error) {
	calc := &StaticCalculator{weights: DefaultWeights()}
	if weightsFile == "" {
		return calc, nil
	}
	data, err := os.ReadFile(weightsFile)
	if err != nil {
		log.Err(err).Msg("loading-weights")
		log.Info().Msg("no weights file found, will use default weights")
		return calc, nil
	}
	var w Weights
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	calc.weights = w
	return calc, nil
}

func (sc StaticCalculator) Weights() Weights {
	return sc.weights
}

func (sc StaticCalculator) Equity(g *board.GameBoard, linesCleared int) float64 {
	heights := columnHeights(g)
	var aggregate int
	for _, h := range heights {
		aggregate += h
	}
	return sc.weights.Height*float64(aggregate) +
		sc.weights.Lines*float64(linesCleared*linesCleared) +
		sc.weights.Holes*float64(countHoles(g, heights)) +
		sc.weights.Bumpiness*float64(bumpiness(heights)) +
		sc.weights.Wells*float64(wellSum(heights))
}

// columnHeights measures each column from the grid top to its topmost
// occupied cell. An empty column has height 0.
func columnHeights(g *board.GameBoard) []int {
	heights := make([]int, g.Width())
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			if g.Occupied(y, x) {
				heights[x] = g.Height() - y
				break
			}
		}
	}
	return heights
}

// countHoles counts empty cells sitting below a column's topmost occupied
// cell. Holes cannot clear until everything above them does.
func countHoles(g *board.GameBoard, heights []int) int {
	var holes int
	for x := 0; x < g.Width(); x++ {
		if heights[x] == 0 {
			continue
		}
		for y := g.Height() - heights[x] + 1; y < g.Height(); y++ {
			if !g.Occupied(y, x) {
				holes++
			}
		}
	}
	return holes
}

// bumpiness sums absolute height differences of adjacent columns.
func bumpiness(heights []int) int {
	var sum int
	for i := 0; i+1 < len(heights); i++ {
		diff := heights[i] - heights[i+1]
		if diff < 0 {
			diff = -diff
		}
		sum += diff
	}
	return sum
}

// wellSum scores interior columns recessed strictly below both neighbors by
// how far they sit under the lower neighbor. The outermost columns on each
// side never count as wells.
func wellSum(heights []int) int {
	var sum int
	for i := 1; i <= len(heights)-3; i++ {
		if heights[i] < heights[i-1] && heights[i] < heights[i+1] {
			lower := heights[i-1]
			if heights[i+1] < lower {
				lower = heights[i+1]
			}
			sum += lower - heights[i]
		}
	}
	return sum
}
