package poker

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Combination names, strongest first.
const (
	RoyalFlush    = "royal flush"
	StraightFlush = "straight flush"
	FourOfAKind   = "four of a kind"
	FullHouse     = "full house"
	Flush         = "flush"
	Straight      = "straight"
	ThreeOfAKind  = "three of a kind"
	TwoPair       = "two pair"
	OnePair       = "one pair"
	HighCard      = "high card"
)

var comboRankings = []string{
	RoyalFlush,
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	OnePair,
	HighCard,
}

// Base score per combination. Royal flush shares the straight flush base;
// the two differ only in display name. The bases are spaced 100000 apart
// (high card sits at 100), which the five-card kicker sum below can exceed,
// so a maximal hand of one category can outscore a minimal hand of the next.
// That overlap is part of the scoring contract and must not be rescaled.
var baseScores = map[string]int{
	RoyalFlush:    800000,
	StraightFlush: 800000,
	FourOfAKind:   700000,
	FullHouse:     600000,
	Flush:         500000,
	Straight:      400000,
	ThreeOfAKind:  300000,
	TwoPair:       200000,
	OnePair:       100000,
	HighCard:      100,
}

var (
	// ErrEmptyHand is returned when ranking a hand with no cards.
	ErrEmptyHand = errors.New("the hand must contain at least one card")
	// ErrDuplicateCards is returned when ranking a hand with repeated cards.
	ErrDuplicateCards = errors.New("the hand must contain only unique cards")
	// ErrInvalidHandSize is returned when evaluating a hand that is not
	// exactly five cards.
	ErrInvalidHandSize = errors.New("there must be exactly 5 cards")
	// ErrUnknownCombo is returned for unrecognized combination names.
	ErrUnknownCombo = errors.New("hand combination name does not exist")
)

// Score is the evaluation result for an exact five-card hand. Value encodes
// the category base plus a positional kicker tiebreak: the five ranks sorted
// descending, weighted 10^4 down to 10^0. Scores of any two five-card hands
// are directly comparable integers.
type Score struct {
	Combo    string
	HighCard int
	Value    int
}

// Evaluate classifies exactly five cards into one of the ten combinations
// and computes its numeric score.
func Evaluate(cards []Card) (Score, error) {
	if len(cards) != 5 {
		return Score{}, fmt.Errorf("invalid number of cards: %w, got %d", ErrInvalidHandSize, len(cards))
	}

	values := make([]int, 5)
	flush := true
	for i, c := range cards {
		values[i] = c.Value()
		if c.Suit != cards[0].Suit {
			flush = false
		}
	}

	counts := map[int]int{}
	highest := 0
	for _, v := range values {
		counts[v]++
		if v > highest {
			highest = v
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	kicker := 0
	for i, v := range values {
		kicker += v * pow10(4-i)
	}

	score := func(combo string, highCard int) Score {
		return Score{Combo: combo, HighCard: highCard, Value: baseScores[combo] + kicker}
	}

	straight := isStraight(values)

	if straight && flush {
		if counts[int(Ten)] == 1 && highest == int(Ace) {
			return score(RoyalFlush, highest), nil
		}
		return score(StraightFlush, highest), nil
	}

	if v, ok := valueWithCount(counts, 4); ok {
		return score(FourOfAKind, v), nil
	}

	trips, hasTrips := valueWithCount(counts, 3)
	if _, hasPair := valueWithCount(counts, 2); hasTrips && hasPair {
		return score(FullHouse, trips), nil
	}

	if flush {
		return score(Flush, highest), nil
	}

	if straight {
		return score(Straight, highest), nil
	}

	if hasTrips {
		return score(ThreeOfAKind, trips), nil
	}

	pairs := valuesWithCount(counts, 2)
	if len(pairs) > 1 {
		return score(TwoPair, pairs[0]), nil
	}
	if len(pairs) == 1 {
		return score(OnePair, pairs[0]), nil
	}

	return score(HighCard, highest), nil
}

// Completions produces every possible five-card hand consistent with the
// given cards. Fewer than five cards are completed from the conceptual full
// 52-card universe minus the given cards (not from any live deck); more than
// five yield every five-card subset; exactly five yield the hand itself.
func Completions(existing []Card) [][]Card {
	switch {
	case len(existing) < 5:
		remaining := universeWithout(existing)
		needed := 5 - len(existing)

		var hands [][]Card
		for _, combo := range combinations(remaining, needed) {
			hand := make([]Card, 0, 5)
			hand = append(hand, existing...)
			hand = append(hand, combo...)
			hands = append(hands, hand)
		}
		return hands
	case len(existing) > 5:
		return combinations(existing, 5)
	default:
		return [][]Card{existing}
	}
}

// Extreme is one end of a hand ranking: the combination name, high card and
// value of a representative hand, plus every completion that ties the
// extreme score.
type Extreme struct {
	Combo    string
	Hands    [][]Card
	HighCard int
	Value    int
}

// Rank evaluates every completion of the given hand and returns the best and
// worst achievable outcomes. Completions tying the extreme score are all
// collected; the representative fields reflect the first found.
func Rank(hand []Card) (best, worst Extreme, err error) {
	if len(hand) < 1 {
		return Extreme{}, Extreme{}, ErrEmptyHand
	}
	seen := map[Card]bool{}
	for _, c := range hand {
		if seen[c] {
			return Extreme{}, Extreme{}, fmt.Errorf("%w: %s repeated", ErrDuplicateCards, c)
		}
		seen[c] = true
	}

	best = Extreme{Value: -1}
	worst = Extreme{Value: math.MaxInt}

	for _, completion := range Completions(hand) {
		result, err := Evaluate(completion)
		if err != nil {
			return Extreme{}, Extreme{}, err
		}

		switch {
		case result.Value > best.Value:
			best = Extreme{Combo: result.Combo, Hands: [][]Card{completion}, HighCard: result.HighCard, Value: result.Value}
		case result.Value == best.Value:
			best.Hands = append(best.Hands, completion)
		}

		switch {
		case result.Value < worst.Value:
			worst = Extreme{Combo: result.Combo, Hands: [][]Card{completion}, HighCard: result.HighCard, Value: result.Value}
		case result.Value == worst.Value:
			worst.Hands = append(worst.Hands, completion)
		}
	}

	return best, worst, nil
}

// ComboRanking returns the 1-based strength position of a combination name
// (1 = royal flush, 10 = high card). Names are case-insensitive.
func ComboRanking(name string) (int, error) {
	lower := strings.ToLower(name)
	for i, combo := range comboRankings {
		if combo == lower {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCombo, name)
}

// CompareHands ranks multiple hands against each other by their best
// achievable score. The returned slice is parallel to the input: result[i]
// is the 1-based position of hands[i], position 1 being the strongest.
// Positions are always strictly distinct, in descending score order; hands
// with equal best scores do NOT share a position, the earlier input wins the
// better one. Callers relying on positions may therefore assume 1..N with no
// gaps and no ties.
func CompareHands(hands ...[]Card) ([]int, error) {
	values := make([]int, len(hands))
	for i, hand := range hands {
		best, _, err := Rank(hand)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i, err)
		}
		values[i] = best.Value
	}

	order := make([]int, len(hands))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] > values[order[b]]
	})

	positions := make([]int, len(hands))
	for i, idx := range order {
		positions[idx] = i + 1
	}
	return positions, nil
}

func isStraight(values []int) bool {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	wheel := true
	for i, v := range []int{2, 3, 4, 5, 14} {
		if sorted[i] != v {
			wheel = false
			break
		}
	}
	if wheel {
		return true
	}

	for i := 0; i < len(sorted)-1; i++ {
		if sorted[i]+1 != sorted[i+1] {
			return false
		}
	}
	return true
}

// valueWithCount returns the highest value appearing exactly count times.
func valueWithCount(counts map[int]int, count int) (int, bool) {
	best, found := 0, false
	for v, c := range counts {
		if c == count && v > best {
			best, found = v, true
		}
	}
	return best, found
}

// valuesWithCount returns all values appearing exactly count times, sorted
// descending.
func valuesWithCount(counts map[int]int, count int) []int {
	var values []int
	for v, c := range counts {
		if c == count {
			values = append(values, v)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	return values
}

// universeWithout returns the full ordered 52-card universe minus the given
// cards.
func universeWithout(cards []Card) []Card {
	exclude := map[Card]bool{}
	for _, c := range cards {
		exclude[c] = true
	}

	universe := make([]Card, 0, 52-len(cards))
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			if c := (Card{Suit: suit, Rank: rank}); !exclude[c] {
				universe = append(universe, c)
			}
		}
	}
	return universe
}

// combinations enumerates every k-card subset of cards.
func combinations(cards []Card, k int) [][]Card {
	if k > len(cards) || k < 0 {
		return nil
	}

	var result [][]Card
	combo := make([]Card, k)

	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == k {
			result = append(result, append([]Card(nil), combo...))
			return
		}
		for i := start; i <= len(cards)-(k-depth); i++ {
			combo[depth] = cards[i]
			recurse(i+1, depth+1)
		}
	}
	recurse(0, 0)
	return result
}

func pow10(n int) int {
	result := 1
	for range n {
		result *= 10
	}
	return result
}
