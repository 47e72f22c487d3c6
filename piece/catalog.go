package piece

import (
	"fmt"
	"strings"
)

// canonicalShapes are the spawn orientations, drawn with X for occupied.
var canonicalShapes = [NumPieces]string{
	I: "XXXX",
	J: "X..\nXXX",
	L: "..X\nXXX",
	O: "XX\nXX",
	S: ".XX\nXX.",
	T: "XXX\n.X.",
	Z: "XX.\n.XX",
}

// Catalog holds one canonical matrix per piece. The matrices are validated at
// construction and treated as immutable afterwards; Shape always hands out a
// copy.
type Catalog struct {
	shapes [NumPieces]Shape
}

// NewCatalog parses and validates a full set of shape drawings. A shape with
// no rows, ragged rows, or no occupied cell is a configuration error.
func NewCatalog(drawings [NumPieces]string) (*Catalog, error) {
	c := &Catalog{}
	for p, drawing := range drawings {
		shape, err := parseShape(drawing)
		if err != nil {
			return nil, fmt.Errorf("piece %v: %w", Piece(p), err)
		}
		c.shapes[p] = shape
	}
	return c, nil
}

// DefaultCatalog returns the standard seven-piece catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(canonicalShapes)
	if err != nil {
		panic(err)
	}
	return c
}

// Shape returns a copy of the canonical matrix for p.
func (c *Catalog) Shape(p Piece) Shape {
	return c.shapes[p].Copy()
}

func parseShape(drawing string) (Shape, error) {
	rows := strings.Split(drawing, "\n")
	if len(rows) == 0 || rows[0] == "" {
		return nil, fmt.Errorf("empty shape")
	}
	shape := make(Shape, len(rows))
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("inconsistent row lengths (%d vs %d)",
				len(row), len(rows[0]))
		}
		shape[i] = make([]bool, len(row))
		for j, r := range row {
			shape[i][j] = r == 'X'
		}
	}
	if shape.IsEmpty() {
		return nil, fmt.Errorf("shape has no occupied cells")
	}
	return shape, nil
}
