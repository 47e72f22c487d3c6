package equity

import (
	"github.com/blockfall/tetron/board"
)

// Calculator is a calculator of placement equity. It scores a hypothetical
// post-placement, post-clear grid together with the number of lines the
// placement cleared. Higher is better. Implementations must be pure: the same
// grid and line count always yield the same score.
type Calculator interface {
	Equity(g *board.GameBoard, linesCleared int) float64
}
