// Package game encapsulates the mechanics of a single falling-block session:
// the board, the piece bag, the live piece, scoring and the gravity cadence.
// A Game doesn't care how it is played; the shell's human commands and the
// bot executor drive the same mechanics through the same methods.
package game

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/blockfall/tetron/board"
	"github.com/blockfall/tetron/config"
	"github.com/blockfall/tetron/piece"
)

// lineScores awards points by the number of rows a single lock clears.
var lineScores = map[int]int{1: 100, 2: 300, 3: 500, 4: 800}

// kickOffsets is the wall-kick sequence tried, in order, when a rotation
// collides at the current anchor. Each offset is measured from the original
// anchor.
var kickOffsets = [4]int{1, -2, 2, -1}

type Game struct {
	board   *board.GameBoard
	catalog *piece.Catalog
	bag     *piece.Bag
	current *piece.LivePiece
	next    piece.Piece
	score   int
	playing bool
}

func NewGame(cfg *config.Config) (*Game, error) {
	if cfg.BoardWidth < 4 || cfg.BoardHeight < 4 {
		return nil, errors.New("board dimensions must be at least 4x4")
	}
	return &Game{
		board:   board.NewBoard(cfg.BoardWidth, cfg.BoardHeight),
		catalog: piece.DefaultCatalog(),
		bag:     piece.NewBag(cfg.RandSeed),
	}, nil
}

// StartGame resets the session and spawns the first piece. It is also the
// restart path: the board clears, the score zeroes, and any in-flight piece
// or plan is forgotten.
func (g *Game) StartGame() {
	g.board.Clear()
	g.score = 0
	g.playing = true
	g.next = g.bag.Draw()
	g.spawnPiece()
}

// spawnPiece promotes the next piece to the live piece. A spawn that already
// collides ends the game.
func (g *Game) spawnPiece() {
	p := g.next
	g.next = g.bag.Draw()
	g.current = piece.NewLivePiece(p, g.catalog, g.board.Width())
	if g.board.Collides(g.current.Shape(), g.current.Row(), g.current.Col()) {
		log.Debug().Int("score", g.score).Msg("spawn-blocked")
		g.playing = false
	}
}

// MoveSideways shifts the piece one column; dir is -1 for left, 1 for right.
// It reports false, without moving, when the shift would collide.
func (g *Game) MoveSideways(dir int) bool {
	lp := g.current
	if !g.playing || lp == nil {
		return false
	}
	if g.board.Collides(lp.Shape(), lp.Row(), lp.Col()+dir) {
		return false
	}
	lp.MoveBy(0, dir)
	return true
}

// MoveDown advances the piece one row. On contact it locks the piece, clears
// and scores full rows, and spawns the next piece; locked reports that this
// happened, with the lines and points awarded.
func (g *Game) MoveDown() (locked bool, lines int, scoreDelta int) {
	lp := g.current
	if !g.playing || lp == nil {
		return false, 0, 0
	}
	if !g.board.Collides(lp.Shape(), lp.Row()+1, lp.Col()) {
		lp.MoveBy(1, 0)
		return false, 0, 0
	}
	lines, scoreDelta = g.lockPiece()
	return true, lines, scoreDelta
}

// Drop sends the piece straight to its resting row and locks it there. The
// executor steps row by row instead; this is the human hard-drop.
func (g *Game) Drop() (lines int, scoreDelta int) {
	lp := g.current
	if !g.playing || lp == nil {
		return 0, 0
	}
	for !g.board.Collides(lp.Shape(), lp.Row()+1, lp.Col()) {
		lp.MoveBy(1, 0)
	}
	return g.lockPiece()
}

func (g *Game) lockPiece() (lines int, scoreDelta int) {
	lp := g.current
	g.board.Place(lp.Shape(), lp.Row(), lp.Col(), board.FilledCell(lp.Kind()))
	lines = g.board.ClearFullRows()
	scoreDelta = lineScores[lines]
	g.score += scoreDelta
	if lines > 0 {
		log.Debug().Int("lines", lines).Int("score", g.score).Msg("cleared")
	}
	g.spawnPiece()
	return lines, scoreDelta
}

// RotateKick turns the piece clockwise. If the turned matrix collides at the
// current anchor, the wall-kick offsets are tried in order from the original
// anchor; the first collision-free one keeps its shift. When everything
// collides the piece is left exactly as it was and RotateKick reports false.
func (g *Game) RotateKick() bool {
	lp := g.current
	if !g.playing || lp == nil {
		return false
	}
	rotated := lp.Shape().Rotate()
	if rotated.IsEmpty() {
		return false
	}
	if !g.board.Collides(rotated, lp.Row(), lp.Col()) {
		lp.ApplyRotation(rotated)
		return true
	}
	for _, dx := range kickOffsets {
		if !g.board.Collides(rotated, lp.Row(), lp.Col()+dx) {
			lp.SetCol(lp.Col() + dx)
			lp.ApplyRotation(rotated)
			return true
		}
	}
	return false
}

// EndGame marks the session over. The executor calls it when placement
// search finds nothing.
func (g *Game) EndGame() {
	g.playing = false
}

func (g *Game) Playing() bool {
	return g.playing
}

func (g *Game) Score() int {
	return g.score
}

// Board is the live board. Rendering collaborators must treat it as
// read-only.
func (g *Game) Board() *board.GameBoard {
	return g.board
}

func (g *Game) CurrentPiece() *piece.LivePiece {
	return g.current
}

func (g *Game) NextPiece() piece.Piece {
	return g.next
}

// TickInterval is the gravity cadence for interactive play. It shrinks by
// 50ms for every 1000 points, with a 100ms floor.
func (g *Game) TickInterval() time.Duration {
	interval := 500*time.Millisecond - time.Duration(g.score/1000*50)*time.Millisecond
	if interval < 100*time.Millisecond {
		interval = 100 * time.Millisecond
	}
	return interval
}
