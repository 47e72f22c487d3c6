package game_test

import (
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/blockfall/tetron/config"
	"github.com/blockfall/tetron/game"
	"github.com/blockfall/tetron/piece"
)

func newTestGame(t *testing.T, seed uint64) *game.Game {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.RandSeed = seed
	g, err := game.NewGame(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// startWithVerticalI restarts the game until the live piece is an I, then
// stands it upright. The board is empty afterwards.
func startWithVerticalI(t *testing.T, g *game.Game) {
	t.Helper()
	g.StartGame()
	for i := 0; i < 1000 && g.CurrentPiece().Kind() != piece.I; i++ {
		g.StartGame()
	}
	if g.CurrentPiece().Kind() != piece.I {
		t.Fatal("no I piece in 1000 deals")
	}
	if !g.RotateKick() {
		t.Fatal("rotation blocked at spawn")
	}
}

func shiftTo(t *testing.T, g *game.Game, col int) {
	t.Helper()
	for g.CurrentPiece().Col() != col {
		dir := 1
		if col < g.CurrentPiece().Col() {
			dir = -1
		}
		if !g.MoveSideways(dir) {
			t.Fatal("translation blocked")
		}
	}
}

// fullStackRows fills every row's columns A-I, leaving column J open so that
// nothing ever clears.
func fullStackRows(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = "XXXXXXXXX."
	}
	return rows
}

func TestSingleLineClearAwards100(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 7)
	startWithVerticalI(t, g)
	// the bottom row is fully occupied except column J
	g.Board().SetFromPlaintext([]string{"XXXXXXXXX."})

	shiftTo(t, g, 9)
	lines, delta := g.Drop()
	is.Equal(lines, 1)
	is.Equal(delta, 100)
	is.Equal(g.Score(), 100)
}

func TestQuadrupleClearAwards800(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 11)
	startWithVerticalI(t, g)
	// four rows open only at column J; a vertical I completes all four
	g.Board().SetFromPlaintext(fullStackRows(4))

	shiftTo(t, g, 9)
	lines, delta := g.Drop()
	is.Equal(lines, 4)
	is.Equal(delta, 800)
	is.True(g.Board().IsEmpty()) // everything cleared
	is.True(g.Playing())
}

func TestRotateKickAtRightWall(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 3)
	startWithVerticalI(t, g)
	shiftTo(t, g, 8)
	lp := g.CurrentPiece()
	is.Equal(lp.Rotation(), 1)

	// flat again would need columns 8..11; the -2 kick lands it at 6
	is.True(g.RotateKick())
	is.Equal(lp.Rotation(), 2)
	is.Equal(lp.Col(), 6)
}

func TestRotateBlockedLeavesPieceAlone(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 3)
	startWithVerticalI(t, g)
	shiftTo(t, g, 9)
	lp := g.CurrentPiece()
	shapeBefore := lp.Shape()
	rowBefore, colBefore := lp.Row(), lp.Col()

	// at the last column even the widest kick leaves the flat I hanging
	// over the edge, so the whole rotation reverts
	is.True(!g.RotateKick())
	is.Equal(lp.Rotation(), 1)
	is.True(lp.Shape().Equal(shapeBefore))
	is.Equal(lp.Row(), rowBefore)
	is.Equal(lp.Col(), colBefore)
}

func TestSpawnBlockedEndsGame(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 5)
	g.StartGame()
	is.True(g.Playing())

	// columns A-I occupied all the way up: the live piece locks in place
	// and the next spawn has nowhere to go
	g.Board().SetFromPlaintext(fullStackRows(20))
	g.Drop()
	is.True(!g.Playing())
}

func TestRestartClearsEverything(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 5)
	g.StartGame()
	g.Board().SetFromPlaintext(fullStackRows(20))
	g.Drop()
	is.True(!g.Playing())

	g.StartGame()
	is.True(g.Playing())
	is.Equal(g.Score(), 0)
	is.True(g.Board().IsEmpty())
	is.True(g.CurrentPiece() != nil)
}

func TestTickIntervalStartsAtBase(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 5)
	g.StartGame()
	is.Equal(g.TickInterval(), 500*time.Millisecond)
}

func TestMoveSidewaysBlockedAtWall(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 9)
	g.StartGame()
	for g.MoveSideways(-1) {
	}
	is.Equal(g.CurrentPiece().Col(), 0)
	is.True(!g.MoveSideways(-1))
}

func TestMoveDownLocksOnContact(t *testing.T) {
	is := is.New(t)
	g := newTestGame(t, 13)
	g.StartGame()
	first := g.CurrentPiece()
	var locked bool
	var steps int
	for !locked {
		locked, _, _ = g.MoveDown()
		steps++
		if steps > 25 {
			t.Fatal("piece never locked")
		}
	}
	is.True(!g.Board().IsEmpty())
	is.True(g.CurrentPiece() != first) // a new piece spawned
	is.True(g.Playing())
}
