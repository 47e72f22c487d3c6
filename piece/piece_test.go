package piece

import (
	"testing"

	"github.com/matryer/is"
)

func TestRotationCycle(t *testing.T) {
	is := is.New(t)
	c := DefaultCatalog()
	for p := Piece(0); p < NumPieces; p++ {
		orig := c.Shape(p)
		rotated := orig
		for i := 0; i < 4; i++ {
			rotated = rotated.Rotate()
		}
		is.True(orig.Equal(rotated)) // four turns must come back around
	}
}

func TestRotateDimensions(t *testing.T) {
	is := is.New(t)
	c := DefaultCatalog()
	flatI := c.Shape(I)
	is.Equal(flatI.NumRows(), 1)
	is.Equal(flatI.NumCols(), 4)
	vertI := flatI.Rotate()
	is.Equal(vertI.NumRows(), 4)
	is.Equal(vertI.NumCols(), 1)
}

func TestRotateClockwise(t *testing.T) {
	is := is.New(t)
	c := DefaultCatalog()
	// J spawns as X.. / XXX; one clockwise turn puts the corner cell
	// top-right.
	rotated := c.Shape(J).Rotate()
	want := Shape{
		{true, true},
		{true, false},
		{true, false},
	}
	is.True(rotated.Equal(want))
}

func TestRotateDoesNotMutateCatalog(t *testing.T) {
	is := is.New(t)
	c := DefaultCatalog()
	s := c.Shape(T)
	s.Rotate()
	s[0][0] = false // scribble on our copy
	is.True(c.Shape(T)[0][0])
}

func TestCatalogValidation(t *testing.T) {
	is := is.New(t)

	bad := canonicalShapes
	bad[S] = "XX\nXXX" // ragged
	_, err := NewCatalog(bad)
	is.True(err != nil)

	bad = canonicalShapes
	bad[Z] = "..\n.."
	_, err = NewCatalog(bad)
	is.True(err != nil)

	bad = canonicalShapes
	bad[I] = ""
	_, err = NewCatalog(bad)
	is.True(err != nil)
}

func TestColumnSpan(t *testing.T) {
	is := is.New(t)
	s := Shape{
		{false, true, true},
		{true, true, false},
	}
	min, max, ok := s.ColumnSpan()
	is.True(ok)
	is.Equal(min, 0)
	is.Equal(max, 2)
}

func TestLivePieceSpawnsCentered(t *testing.T) {
	is := is.New(t)
	c := DefaultCatalog()
	lp := NewLivePiece(I, c, 10)
	is.Equal(lp.Col(), 3) // 10/2 - 4/2
	is.Equal(lp.Row(), 0)
	is.Equal(lp.Rotation(), 0)

	lp = NewLivePiece(O, c, 10)
	is.Equal(lp.Col(), 4)
}

func TestApplyRotationWraps(t *testing.T) {
	is := is.New(t)
	c := DefaultCatalog()
	lp := NewLivePiece(T, c, 10)
	for i := 1; i <= 4; i++ {
		lp.ApplyRotation(lp.Shape().Rotate())
		is.Equal(lp.Rotation(), i%4)
	}
}

func TestBagDeterministic(t *testing.T) {
	is := is.New(t)
	a := NewBag(42)
	b := NewBag(42)
	for i := 0; i < 50; i++ {
		p := a.Draw()
		is.Equal(p, b.Draw())
		is.True(p < NumPieces)
	}
}
