package mino

import (
	"math/rand"
)

// Bag deals piece identities in shuffled permutations of the whole catalog.
// Whenever fewer than one full permutation remains queued a new one is
// appended, so there are always at least PieceCount pieces of lookahead.
type Bag struct {
	Original []PieceType

	queue      []PieceType
	randomizer *rand.Rand
	taken      int
}

func NewBag(seed int64) *Bag {
	original := make([]PieceType, len(AllPieces))
	copy(original, AllPieces)

	b := &Bag{Original: original, randomizer: rand.New(rand.NewSource(seed))}

	b.fill()

	return b
}

// Take removes and returns the next piece.
func (b *Bag) Take() PieceType {
	t := b.queue[0]
	b.queue = b.queue[1:]
	b.taken++

	b.fill()

	return t
}

// Preview returns up to n upcoming pieces in draw order.
func (b *Bag) Preview(n int) []PieceType {
	if n > len(b.queue) {
		n = len(b.queue)
	}
	if n < 0 {
		n = 0
	}

	preview := make([]PieceType, n)
	copy(preview, b.queue[:n])

	return preview
}

// Taken returns the number of pieces drawn so far.
func (b *Bag) Taken() int {
	return b.taken
}

func (b *Bag) fill() {
	for len(b.queue) < len(b.Original) {
		b.queue = append(b.queue, b.shuffle()...)
	}
}

func (b *Bag) shuffle() []PieceType {
	permutation := make([]PieceType, len(b.Original))
	copy(permutation, b.Original)

	b.randomizer.Shuffle(len(permutation), func(i, j int) { permutation[i], permutation[j] = permutation[j], permutation[i] })

	return permutation
}
