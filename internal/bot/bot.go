// Package bot ships simple built-in agents for the demo drivers, the
// simulator and tests. They share the cautious buy-in rule: join only when
// the buy-in costs at most half the balance.
package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/rmears/holdem/internal/game"
)

// confirmBuyIn is the shared buy-in rule for all built-in bots
func confirmBuyIn(req game.BuyInRequest) (bool, error) {
	return req.Balance >= req.BuyInCost*2, nil
}

// CheckBot always checks. Facing a raised check value it still checks, which
// the engine answers with a forced fold, so a table of CheckBots plays to
// showdown only if nobody raises.
type CheckBot struct {
	logger *log.Logger
}

// NewCheckBot creates a CheckBot
func NewCheckBot(logger *log.Logger) *CheckBot {
	return &CheckBot{logger: logger.WithPrefix("check-bot")}
}

func (b *CheckBot) ConfirmBuyIn(req game.BuyInRequest) (bool, error) {
	return confirmBuyIn(req)
}

func (b *CheckBot) BettingAction(req game.ActionRequest) (game.Action, error) {
	return game.Action{Kind: game.Check}, nil
}

func (b *CheckBot) NotifyForcedFold(message string) {
	b.logger.Warn("forced to fold", "reason", message)
}

// CallBot checks when possible and matches otherwise, never raising
type CallBot struct {
	logger *log.Logger
}

// NewCallBot creates a CallBot
func NewCallBot(logger *log.Logger) *CallBot {
	return &CallBot{logger: logger.WithPrefix("call-bot")}
}

func (b *CallBot) ConfirmBuyIn(req game.BuyInRequest) (bool, error) {
	return confirmBuyIn(req)
}

func (b *CallBot) BettingAction(req game.ActionRequest) (game.Action, error) {
	if req.CurrentBet == req.CheckValue {
		return game.Action{Kind: game.Check}, nil
	}
	return game.Action{Kind: game.Match}, nil
}

func (b *CallBot) NotifyForcedFold(message string) {
	b.logger.Warn("forced to fold", "reason", message)
}

// FoldBot buys in, then folds its first betting turn
type FoldBot struct {
	logger *log.Logger
}

// NewFoldBot creates a FoldBot
func NewFoldBot(logger *log.Logger) *FoldBot {
	return &FoldBot{logger: logger.WithPrefix("fold-bot")}
}

func (b *FoldBot) ConfirmBuyIn(req game.BuyInRequest) (bool, error) {
	return confirmBuyIn(req)
}

func (b *FoldBot) BettingAction(req game.ActionRequest) (game.Action, error) {
	return game.Action{Kind: game.Fold}, nil
}

func (b *FoldBot) NotifyForcedFold(message string) {
	b.logger.Warn("forced to fold", "reason", message)
}

// RandBot mixes checks, matches and small raises from its own random source
type RandBot struct {
	rng      *rand.Rand
	maxRaise int
	logger   *log.Logger
}

// NewRandBot creates a RandBot with an explicit RNG
func NewRandBot(rng *rand.Rand, maxRaise int, logger *log.Logger) *RandBot {
	if maxRaise < 1 {
		maxRaise = 1
	}
	return &RandBot{rng: rng, maxRaise: maxRaise, logger: logger.WithPrefix("rand-bot")}
}

func (b *RandBot) ConfirmBuyIn(req game.BuyInRequest) (bool, error) {
	return confirmBuyIn(req)
}

func (b *RandBot) BettingAction(req game.ActionRequest) (game.Action, error) {
	behind := req.CurrentBet < req.CheckValue

	switch b.rng.IntN(10) {
	case 0, 1:
		raise := 1 + b.rng.IntN(b.maxRaise)
		if raise <= req.Balance {
			return game.Action{Kind: game.Raise, Amount: raise}, nil
		}
		fallthrough
	case 2:
		if behind {
			return game.Action{Kind: game.Fold}, nil
		}
		return game.Action{Kind: game.Check}, nil
	default:
		if behind {
			return game.Action{Kind: game.Match}, nil
		}
		return game.Action{Kind: game.Check}, nil
	}
}

func (b *RandBot) NotifyForcedFold(message string) {
	b.logger.Warn("forced to fold", "reason", message)
}
