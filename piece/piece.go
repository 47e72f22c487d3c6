// Package piece defines the seven falling-block shapes, the rotation
// operator, the catalog of canonical matrices, and the live piece tracked
// while it falls.
package piece

// Piece identifies a catalog shape.
type Piece uint8

// The pieces, in catalog order.
const (
	I Piece = iota
	J
	L
	O
	S
	T
	Z
)

// NumPieces is the size of the catalog.
const NumPieces = 7

func (p Piece) String() string {
	switch p {
	case I:
		return "I"
	case J:
		return "J"
	case L:
		return "L"
	case O:
		return "O"
	case S:
		return "S"
	case T:
		return "T"
	case Z:
		return "Z"
	}
	panic("unknown piece")
}
