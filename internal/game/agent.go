package game

import "github.com/rmears/holdem/poker"

// ActionKind identifies a betting response. Values outside the declared set
// are ignored by the betting loop (a no-op turn), matching the engine's
// lenient treatment of unrecognized responses.
type ActionKind int

const (
	Check ActionKind = iota
	Match
	Raise
	Fold
)

func (k ActionKind) String() string {
	switch k {
	case Check:
		return "check"
	case Match:
		return "match"
	case Raise:
		return "raise"
	case Fold:
		return "fold"
	default:
		return "unknown"
	}
}

// Action is a betting agent's response for one turn. Amount is only
// meaningful for Raise.
type Action struct {
	Kind   ActionKind
	Amount int
}

// OpponentState is the read-only view of another player handed to agents.
// During buy-in the BoughtIn field is populated; during betting streets the
// CurrentBet field is.
type OpponentState struct {
	Name       string
	Balance    int
	BoughtIn   bool
	CurrentBet int
	Folded     bool
}

// BuyInRequest carries everything an agent sees when deciding to buy in.
type BuyInRequest struct {
	Balance   int
	Hand      []poker.Card
	Opponents []OpponentState
	BuyInCost int
}

// ActionRequest carries everything an agent sees when making a betting
// decision.
type ActionRequest struct {
	Round      int
	Balance    int
	CurrentBet int
	Hand       []poker.Card
	BoardCards []poker.Card
	Opponents  []OpponentState
	CheckValue int
	RaiseCount int
	Pot        int
}

// Agent is the per-player decision capability supplied by the embedding
// application. Agents receive read-only state and return decisions; they
// never mutate game state. A returned error (or a panic) is treated as a
// misbehaving agent: the player is folded and the game continues.
type Agent interface {
	// ConfirmBuyIn decides whether the player joins the game for the
	// configured buy-in cost.
	ConfirmBuyIn(req BuyInRequest) (bool, error)

	// BettingAction decides the player's move for one betting turn.
	BettingAction(req ActionRequest) (Action, error)

	// NotifyForcedFold is a best-effort diagnostic sink invoked when the
	// engine folds the player on the agent's behalf. Failures (including
	// panics) are swallowed.
	NotifyForcedFold(message string)
}
