// Package movegen contains the placement generator. For the live piece it
// enumerates every reachable final resting position - all rotation states
// crossed with all legal anchor columns - simulates each one on a copy of the
// board, line clears included, and scores the outcome with an equity
// calculator.
package movegen

import (
	"fmt"

	"github.com/blockfall/tetron/board"
	"github.com/blockfall/tetron/equity"
	"github.com/blockfall/tetron/piece"
)

// Placement is one candidate final position: the absolute rotation state, the
// anchor column, and the equity of the board it leaves behind.
type Placement struct {
	rotation int
	col      int
	equity   float64
}

func (p Placement) Rotation() int {
	return p.rotation
}

func (p Placement) Col() int {
	return p.col
}

func (p Placement) Equity() float64 {
	return p.equity
}

func (p Placement) String() string {
	return fmt.Sprintf("<placement rot: %d col: %d equity: %.3f>", p.rotation,
		p.col, p.equity)
}

// Generator generates placements for pieces on a board. The board pointer is
// the live board; the generator never mutates it, every simulation runs on a
// throwaway copy.
type Generator struct {
	board *board.GameBoard
	calc  equity.Calculator
}

func NewGenerator(b *board.GameBoard, calc equity.Calculator) *Generator {
	return &Generator{board: b, calc: calc}
}

// GenAll enumerates candidates in rotation-major, column-major order.
// Rotation states are derived by applying the rotation operator to the live
// matrix, so state k here always matches what the executor reaches after
// rotating the real piece to counter k. Candidates that already overlap the
// stack at the spawn row are unreachable and are dropped: offering one would
// choose an instant game over.
func (gen *Generator) GenAll(lp *piece.LivePiece) []Placement {
	var plays []Placement
	shape := lp.Shape()
	for turns := 0; turns < 4; turns++ {
		rotState := (lp.Rotation() + turns) % 4
		if turns > 0 {
			shape = shape.Rotate()
		}
		minLocal, maxLocal, ok := shape.ColumnSpan()
		if !ok {
			continue
		}
		for col := -minLocal; col <= gen.board.Width()-1-maxLocal; col++ {
			if gen.board.Collides(shape, 0, col) {
				// spawn position blocked, unreachable
				continue
			}
			row := gen.board.DropRow(shape, col)
			sim := gen.board.Copy()
			sim.Place(shape, row, col, board.FilledCell(lp.Kind()))
			cleared := sim.ClearFullRows()
			plays = append(plays, Placement{
				rotation: rotState,
				col:      col,
				equity:   gen.calc.Equity(sim, cleared),
			})
		}
	}
	return plays
}

// BestPlacement returns the highest-equity placement; among equal scores the
// first one in enumeration order wins. ok is false when no candidate
// survives, which means the piece cannot be placed at all.
func (gen *Generator) BestPlacement(lp *piece.LivePiece) (Placement, bool) {
	plays := gen.GenAll(lp)
	if len(plays) == 0 {
		return Placement{}, false
	}
	best := plays[0]
	for _, p := range plays[1:] {
		if p.equity > best.equity {
			best = p
		}
	}
	return best, true
}
