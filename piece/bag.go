package piece

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Bag deals pieces uniformly at random from an owned source, so that a game
// is reproducible given a seed.
type Bag struct {
	rng *frand.RNG
}

// NewBag seeds the bag. A zero seed draws entropy from the OS.
func NewBag(seed uint64) *Bag {
	if seed == 0 {
		return &Bag{rng: frand.New()}
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return &Bag{rng: frand.NewCustom(key[:], 1024, 12)}
}

// Draw deals the next piece.
func (b *Bag) Draw() Piece {
	return Piece(b.rng.Intn(NumPieces))
}
