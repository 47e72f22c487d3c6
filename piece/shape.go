package piece

// Shape is a piece's occupancy matrix in its local frame. Row 0 is the top.
type Shape [][]bool

// Rotate returns the shape turned 90 degrees clockwise: the transpose with
// each resulting row reversed. The receiver is never modified, so canonical
// catalog matrices stay pristine no matter how often they are rotated.
func (s Shape) Rotate() Shape {
	if len(s) == 0 || len(s[0]) == 0 {
		return nil
	}
	rows := len(s)
	cols := len(s[0])
	out := make(Shape, cols)
	for i := 0; i < cols; i++ {
		out[i] = make([]bool, rows)
		for j := 0; j < rows; j++ {
			out[i][j] = s[rows-1-j][i]
		}
	}
	return out
}

// Copy returns a deep copy of the matrix.
func (s Shape) Copy() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = make([]bool, len(row))
		copy(out[i], row)
	}
	return out
}

// IsEmpty reports a degenerate matrix with no occupied cells.
func (s Shape) IsEmpty() bool {
	for _, row := range s {
		for _, filled := range row {
			if filled {
				return false
			}
		}
	}
	return true
}

func (s Shape) NumRows() int {
	return len(s)
}

func (s Shape) NumCols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// ColumnSpan returns the leftmost and rightmost local columns holding an
// occupied cell. ok is false for a degenerate matrix.
func (s Shape) ColumnSpan() (min int, max int, ok bool) {
	min, max = -1, -1
	for _, row := range s {
		for x, filled := range row {
			if !filled {
				continue
			}
			if min == -1 || x < min {
				min = x
			}
			if x > max {
				max = x
			}
		}
	}
	return min, max, min != -1
}

// Equal reports whether two matrices have identical dimensions and cells.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i, row := range s {
		if len(row) != len(o[i]) {
			return false
		}
		for j, filled := range row {
			if filled != o[i][j] {
				return false
			}
		}
	}
	return true
}
