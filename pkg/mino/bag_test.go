package mino

import (
	"testing"
)

func TestBag(t *testing.T) {
	for _, seed := range []int64{0, 1, 42, 1984} {
		b := NewBag(seed)
		if b.Taken() != 0 {
			t.Fatalf("seed %d: fresh bag reports %d pieces taken", seed, b.Taken())
		}

		for bag := 1; bag <= 50; bag++ {
			taken := make(map[PieceType]int)
			for i := 0; i < PieceCount; i++ {
				taken[b.Take()]++
			}

			if len(taken) != PieceCount {
				t.Fatalf("seed %d bag %d: expected %d distinct pieces, got %v", seed, bag, PieceCount, taken)
			}

			for _, p := range AllPieces {
				if taken[p] != 1 {
					t.Fatalf("seed %d bag %d: expected piece %s once, got %d", seed, bag, p, taken[p])
				}
			}
		}

		if b.Taken() != 50*PieceCount {
			t.Errorf("seed %d: expected %d pieces taken, got %d", seed, 50*PieceCount, b.Taken())
		}
	}
}

func TestBagLookahead(t *testing.T) {
	b := NewBag(7)

	for i := 0; i < 100; i++ {
		preview := b.Preview(3)
		if len(preview) != 3 {
			t.Fatalf("draw %d: expected 3 pieces of lookahead, got %d", i, len(preview))
		}

		if got := b.Take(); got != preview[0] {
			t.Fatalf("draw %d: took %s, preview promised %s", i, got, preview[0])
		}

		if len(b.Preview(PieceCount)) != PieceCount {
			t.Fatalf("draw %d: fewer than one bag queued", i)
		}
	}
}

func TestBagSeeded(t *testing.T) {
	a, b := NewBag(99), NewBag(99)

	for i := 0; i < 70; i++ {
		if pa, pb := a.Take(), b.Take(); pa != pb {
			t.Fatalf("draw %d: bags with equal seeds diverged (%s != %s)", i, pa, pb)
		}
	}
}

func TestBagOwnsCatalog(t *testing.T) {
	catalog := AllPieces
	AllPieces = []PieceType{PieceO}
	defer func() { AllPieces = catalog }()

	b := NewBag(3)
	AllPieces[0] = PieceI

	if len(b.Original) != 1 || b.Original[0] != PieceO {
		t.Fatalf("bag catalog changed with AllPieces: %v", b.Original)
	}
}
