package poker

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"
)

// ErrInvalidAmount is returned when a select/draw amount is below 1 or
// exceeds the cards currently in the deck.
var ErrInvalidAmount = errors.New("invalid amount of cards")

// Deck represents an ordered sequence of unique playing cards. A fresh deck
// holds all 52 cards in suit-major, rank-ascending order. The random source
// is injected so callers control determinism; a nil RNG falls back to the
// global source.
type Deck struct {
	cards   []Card
	initial []Card
	ordered bool
	rng     *rand.Rand
}

// NewDeck creates a new full 52-card ordered deck with an explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// Len returns the number of cards currently in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Ordered reports whether the deck is still in its ordered state
func (d *Deck) Ordered() bool {
	return d.ordered
}

// Cards returns a copy of the cards currently in the deck, in order
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}

// Reset restores the deck to its initial state with all 52 cards in order,
// mimicking a new deck
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, Card{Suit: suit, Rank: rank})
		}
	}
	d.initial = slices.Clone(d.cards)
	d.ordered = true
}

// RestoreOrder puts the deck back to the order captured at construction or
// the last Reset
func (d *Deck) RestoreOrder() {
	d.cards = slices.Clone(d.initial)
	d.ordered = true
}

// Shuffle shuffles the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	d.ordered = false
}

// Remove removes the given cards from the deck. Cards not present are
// silently ignored.
func (d *Deck) Remove(cards ...Card) {
	for _, card := range cards {
		if i := slices.Index(d.cards, card); i >= 0 {
			d.cards = slices.Delete(d.cards, i, i+1)
		}
	}
}

// Append adds the given cards to the bottom of the deck. Cards already
// present are silently ignored.
func (d *Deck) Append(cards ...Card) {
	for _, card := range cards {
		if !slices.Contains(d.cards, card) {
			d.cards = append(d.cards, card)
		}
	}
}

// SelectRandom uniformly samples amount distinct cards from the deck without
// replacement. The sampled cards stay in the deck unless removeFromDeck is
// set.
func (d *Deck) SelectRandom(amount int, removeFromDeck bool) ([]Card, error) {
	if amount < 1 || amount > len(d.cards) {
		return nil, fmt.Errorf("%w to select: %d", ErrInvalidAmount, amount)
	}

	var perm []int
	if d.rng != nil {
		perm = d.rng.Perm(len(d.cards))
	} else {
		perm = rand.Perm(len(d.cards))
	}

	cards := make([]Card, amount)
	for i := range amount {
		cards[i] = d.cards[perm[i]]
	}

	if removeFromDeck {
		d.Remove(cards...)
	}
	return cards, nil
}

// Draw takes the top amount cards of the deck in current order. The drawn
// cards are removed unless removeFromDeck is false.
func (d *Deck) Draw(amount int, removeFromDeck bool) ([]Card, error) {
	if amount < 1 || amount > len(d.cards) {
		return nil, fmt.Errorf("%w to draw: %d", ErrInvalidAmount, amount)
	}

	cards := slices.Clone(d.cards[:amount])
	if removeFromDeck {
		d.Remove(cards...)
	}
	return cards, nil
}
