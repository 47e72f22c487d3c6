package game

import (
	"fmt"
	"strings"
)

// ToDisplayText renders the board with the falling piece overlaid (shown in
// lowercase) plus the score line, for the shell.
func (g *Game) ToDisplayText() string {
	var sb strings.Builder
	width, height := g.board.Width(), g.board.Height()
	sb.WriteString("   ")
	for j := 0; j < width; j++ {
		fmt.Fprintf(&sb, "%c ", 'A'+j)
	}
	sb.WriteString("\n   " + strings.Repeat("-", width*2) + "\n")
	for i := 0; i < height; i++ {
		fmt.Fprintf(&sb, "%2d|", i+1)
		for j := 0; j < width; j++ {
			switch {
			case g.pieceCovers(i, j):
				sb.WriteString(strings.ToLower(g.current.Kind().String()) + " ")
			case g.board.Occupied(i, j):
				sb.WriteString(g.board.GetCell(i, j).Piece().String() + " ")
			default:
				sb.WriteString("  ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", width*2) + "\n")
	fmt.Fprintf(&sb, "Score: %d   Next: %v\n", g.score, g.next)
	if !g.playing {
		sb.WriteString("GAME OVER\n")
	}
	return sb.String()
}

func (g *Game) pieceCovers(row int, col int) bool {
	lp := g.current
	if lp == nil || !g.playing {
		return false
	}
	y := row - lp.Row()
	x := col - lp.Col()
	shape := lp.Shape()
	if y < 0 || y >= shape.NumRows() || x < 0 || x >= shape.NumCols() {
		return false
	}
	return shape[y][x]
}
