package piece

// LivePiece is the piece currently falling: its catalog identity, the matrix
// for its current rotation state, the rotation counter (0-3), and the anchor
// of the matrix's top-left cell on the board.
type LivePiece struct {
	kind     Piece
	shape    Shape
	rotation int
	row      int
	col      int
}

// NewLivePiece spawns p at row 0, centered horizontally the way the game
// centers it: board middle minus half the matrix width.
func NewLivePiece(p Piece, c *Catalog, boardWidth int) *LivePiece {
	shape := c.Shape(p)
	return &LivePiece{
		kind:  p,
		shape: shape,
		col:   boardWidth/2 - shape.NumCols()/2,
	}
}

func (lp *LivePiece) Kind() Piece {
	return lp.kind
}

// Shape returns the live matrix. Callers must treat it as read-only; rotation
// replaces it wholesale.
func (lp *LivePiece) Shape() Shape {
	return lp.shape
}

func (lp *LivePiece) Rotation() int {
	return lp.rotation
}

func (lp *LivePiece) Row() int {
	return lp.row
}

func (lp *LivePiece) Col() int {
	return lp.col
}

func (lp *LivePiece) MoveBy(dRow int, dCol int) {
	lp.row += dRow
	lp.col += dCol
}

func (lp *LivePiece) SetCol(col int) {
	lp.col = col
}

// ApplyRotation installs the already-rotated matrix and advances the rotation
// counter modulo 4. The caller has verified the new matrix fits.
func (lp *LivePiece) ApplyRotation(s Shape) {
	lp.shape = s
	lp.rotation = (lp.rotation + 1) % 4
}
