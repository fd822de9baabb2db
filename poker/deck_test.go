package poker

import (
	"errors"
	"testing"

	"github.com/rmears/holdem/internal/randutil"
)

func TestNewDeck(t *testing.T) {
	d := NewDeck(randutil.New(1))

	if d.Len() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Len())
	}
	if !d.Ordered() {
		t.Error("new deck should be flagged ordered")
	}

	seen := map[Card]bool{}
	for _, c := range d.Cards() {
		if seen[c] {
			t.Errorf("duplicate card %v", c)
		}
		seen[c] = true
	}

	// Suit-major, rank-ascending order.
	cards := d.Cards()
	if (cards[0] != Card{Suit: Spades, Rank: Two}) {
		t.Errorf("first card = %v, want 2♠", cards[0])
	}
	if (cards[12] != Card{Suit: Spades, Rank: Ace}) {
		t.Errorf("card 12 = %v, want A♠", cards[12])
	}
	if (cards[51] != Card{Suit: Clubs, Rank: Ace}) {
		t.Errorf("last card = %v, want A♣", cards[51])
	}
}

func TestShufflePreservesCards(t *testing.T) {
	d := NewDeck(randutil.New(42))
	before := map[Card]bool{}
	for _, c := range d.Cards() {
		before[c] = true
	}

	d.Shuffle()

	if d.Ordered() {
		t.Error("shuffle should clear the ordered flag")
	}
	if d.Len() != 52 {
		t.Fatalf("shuffle changed deck size to %d", d.Len())
	}
	for _, c := range d.Cards() {
		if !before[c] {
			t.Errorf("shuffle introduced card %v", c)
		}
		delete(before, c)
	}
	if len(before) != 0 {
		t.Errorf("shuffle lost %d cards", len(before))
	}
}

func TestRestoreOrder(t *testing.T) {
	d := NewDeck(randutil.New(7))
	original := d.Cards()

	d.Shuffle()
	d.RestoreOrder()

	if !d.Ordered() {
		t.Error("restore should set the ordered flag")
	}
	restored := d.Cards()
	for i := range original {
		if restored[i] != original[i] {
			t.Fatalf("card %d = %v, want %v", i, restored[i], original[i])
		}
	}
}

func TestRemoveAndAppend(t *testing.T) {
	d := NewDeck(randutil.New(1))
	ace := Card{Suit: Spades, Rank: Ace}
	king := Card{Suit: Spades, Rank: King}

	d.Remove(ace, king)
	if d.Len() != 50 {
		t.Fatalf("expected 50 cards after removal, got %d", d.Len())
	}

	// Removing an absent card is a no-op.
	d.Remove(ace)
	if d.Len() != 50 {
		t.Errorf("removing an absent card changed the deck: %d", d.Len())
	}

	d.Append(ace)
	if d.Len() != 51 {
		t.Fatalf("expected 51 cards after append, got %d", d.Len())
	}

	// Appending a present card is a no-op.
	d.Append(ace)
	if d.Len() != 51 {
		t.Errorf("appending a present card changed the deck: %d", d.Len())
	}
}

func TestSelectRandom(t *testing.T) {
	d := NewDeck(randutil.New(99))

	t.Run("bounds", func(t *testing.T) {
		if _, err := d.SelectRandom(0, false); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("SelectRandom(0) error = %v, want ErrInvalidAmount", err)
		}
		if _, err := d.SelectRandom(-1, false); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("SelectRandom(-1) error = %v, want ErrInvalidAmount", err)
		}
		if _, err := d.SelectRandom(53, false); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("SelectRandom(53) error = %v, want ErrInvalidAmount", err)
		}
	})

	t.Run("leave in place", func(t *testing.T) {
		cards, err := d.SelectRandom(5, false)
		if err != nil {
			t.Fatal(err)
		}
		if len(cards) != 5 {
			t.Fatalf("expected 5 cards, got %d", len(cards))
		}
		seen := map[Card]bool{}
		for _, c := range cards {
			if seen[c] {
				t.Errorf("sampled duplicate card %v", c)
			}
			seen[c] = true
		}
		if d.Len() != 52 {
			t.Errorf("non-destructive select changed deck size to %d", d.Len())
		}
	})

	t.Run("remove from deck", func(t *testing.T) {
		cards, err := d.SelectRandom(5, true)
		if err != nil {
			t.Fatal(err)
		}
		if d.Len() != 47 {
			t.Fatalf("expected 47 cards after destructive select, got %d", d.Len())
		}
		for _, c := range cards {
			for _, rest := range d.Cards() {
				if c == rest {
					t.Errorf("card %v still in deck after removal", c)
				}
			}
		}
	})
}

func TestDraw(t *testing.T) {
	d := NewDeck(randutil.New(3))

	t.Run("bounds", func(t *testing.T) {
		if _, err := d.Draw(0, true); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Draw(0) error = %v, want ErrInvalidAmount", err)
		}
		if _, err := d.Draw(53, true); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Draw(53) error = %v, want ErrInvalidAmount", err)
		}
	})

	t.Run("takes the top of the deck", func(t *testing.T) {
		top := d.Cards()[:3]
		cards, err := d.Draw(3, true)
		if err != nil {
			t.Fatal(err)
		}
		for i := range top {
			if cards[i] != top[i] {
				t.Errorf("drawn card %d = %v, want %v", i, cards[i], top[i])
			}
		}
		if d.Len() != 49 {
			t.Errorf("expected 49 cards after draw, got %d", d.Len())
		}
	})

	t.Run("non-destructive", func(t *testing.T) {
		before := d.Len()
		if _, err := d.Draw(2, false); err != nil {
			t.Fatal(err)
		}
		if d.Len() != before {
			t.Errorf("non-destructive draw changed deck size: %d -> %d", before, d.Len())
		}
	})
}
