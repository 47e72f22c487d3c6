package board

import (
	"fmt"
	"strings"
)

// ToDisplayText returns a bordered rendering of the locked grid. Occupied
// cells show the letter of the piece that locked them.
func (g *GameBoard) ToDisplayText() string {
	var str string
	row := "   "
	for j := 0; j < g.width; j++ {
		row = row + fmt.Sprintf("%c", 'A'+j) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", g.width*2) + "\n"
	for i := 0; i < g.height; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < g.width; j++ {
			if g.rows[i][j] == EmptyCell {
				row = row + "  "
			} else {
				row = row + g.rows[i][j].Piece().String() + " "
			}
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", g.width*2) + "\n"
	return "\n" + str
}

// SetFromPlaintext fills the grid from rows of text; anything that is not a
// space or a dot becomes an occupied cell. Rows are anchored at the bottom of
// the grid. It is meant for tests and the shell's setup commands.
func (g *GameBoard) SetFromPlaintext(rows []string) {
	g.Clear()
	offset := g.height - len(rows)
	for i, textRow := range rows {
		for j, r := range textRow {
			if j >= g.width {
				break
			}
			if r != ' ' && r != '.' {
				g.rows[offset+i][j] = Cell(1)
			}
		}
	}
}
