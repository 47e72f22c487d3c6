// Package board implements the playfield for a falling-block game: a fixed
// width by height occupancy grid with collision probing, drop simulation and
// line clearing. The same clearing pass runs on the live board after a real
// lock and on the hypothetical copies made during placement search.
package board

import (
	"github.com/blockfall/tetron/piece"
)

// A Cell is one square of the playfield. The zero value is empty. An occupied
// cell remembers which piece locked it; the game logic only cares that it is
// occupied, the marker exists for display.
type Cell uint8

const EmptyCell Cell = 0

// FilledCell returns the cell marker for a locked piece.
func FilledCell(p piece.Piece) Cell {
	return Cell(p) + 1
}

// Piece returns the piece that a non-empty cell was locked from.
func (c Cell) Piece() piece.Piece {
	return piece.Piece(c - 1)
}

type GameBoard struct {
	rows   [][]Cell
	width  int
	height int
}

func NewBoard(width, height int) *GameBoard {
	rows := make([][]Cell, height)
	for i := range rows {
		rows[i] = make([]Cell, width)
	}
	return &GameBoard{rows: rows, width: width, height: height}
}

func (g *GameBoard) Width() int {
	return g.width
}

func (g *GameBoard) Height() int {
	return g.height
}

func (g *GameBoard) GetCell(row int, col int) Cell {
	return g.rows[row][col]
}

func (g *GameBoard) SetCell(row int, col int, c Cell) {
	g.rows[row][col] = c
}

func (g *GameBoard) Occupied(row int, col int) bool {
	return g.rows[row][col] != EmptyCell
}

// Collides reports whether the shape, anchored with its top-left local cell
// at (row, col), would overlap a side wall, the floor, or an occupied cell.
// Cells above the top of the grid only collide with the side walls, so a
// freshly spawned piece may overhang the top edge.
func (g *GameBoard) Collides(shape piece.Shape, row int, col int) bool {
	for y, srow := range shape {
		for x, filled := range srow {
			if !filled {
				continue
			}
			gridCol := col + x
			gridRow := row + y
			if gridCol < 0 || gridCol >= g.width || gridRow >= g.height {
				return true
			}
			if gridRow >= 0 && g.rows[gridRow][gridCol] != EmptyCell {
				return true
			}
		}
	}
	return false
}

// DropRow probes downward from anchor row 0 and returns the resting row: the
// last anchor at which the shape does not collide. The bottom boundary
// guarantees termination. The caller must already have verified that the
// shape is collision-free at row 0.
func (g *GameBoard) DropRow(shape piece.Shape, col int) int {
	row := 0
	for !g.Collides(shape, row+1, col) {
		row++
	}
	return row
}

// Place locks the shape's occupied cells into the grid. Cells above the top
// edge are discarded; everything else must be in bounds, which a prior
// Collides check guarantees.
func (g *GameBoard) Place(shape piece.Shape, row int, col int, fill Cell) {
	for y, srow := range shape {
		for x, filled := range srow {
			if filled && row+y >= 0 {
				g.rows[row+y][col+x] = fill
			}
		}
	}
}

// ClearFullRows removes every full row, keeping the surviving rows in their
// relative order and inserting empty rows at the top. It returns the number
// of rows removed. A grid with no full rows is left untouched.
func (g *GameBoard) ClearFullRows() int {
	kept := make([][]Cell, 0, g.height)
	for _, row := range g.rows {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}
	cleared := g.height - len(kept)
	if cleared == 0 {
		return 0
	}
	rows := make([][]Cell, cleared, g.height)
	for i := range rows {
		rows[i] = make([]Cell, g.width)
	}
	g.rows = append(rows, kept...)
	return cleared
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if c == EmptyCell {
			return false
		}
	}
	return true
}

// Copy returns a deep copy for hypothetical placement simulation. The copy
// never aliases the live grid.
func (g *GameBoard) Copy() *GameBoard {
	b := NewBoard(g.width, g.height)
	for i, row := range g.rows {
		copy(b.rows[i], row)
	}
	return b
}

func (g *GameBoard) Clear() {
	for _, row := range g.rows {
		for i := range row {
			row[i] = EmptyCell
		}
	}
}

func (g *GameBoard) IsEmpty() bool {
	for _, row := range g.rows {
		for _, c := range row {
			if c != EmptyCell {
				return false
			}
		}
	}
	return true
}
