package game

import "fmt"

// Agent calls are fenced off from game state: a panicking agent folds like
// an erroring one, and when a decision timeout is configured the call is
// raced against the game clock. The timed-out goroutine is abandoned; its
// late result is dropped.

type buyInResult struct {
	ok  bool
	err error
}

func (g *Game) confirmBuyIn(p *Player, req BuyInRequest) (bool, error) {
	if g.decisionTimeout <= 0 {
		res := safeConfirmBuyIn(p.Agent, req)
		return res.ok, res.err
	}

	timedOut := make(chan struct{})
	timer := g.clock.AfterFunc(g.decisionTimeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	ch := make(chan buyInResult, 1)
	go func() { ch <- safeConfirmBuyIn(p.Agent, req) }()

	select {
	case res := <-ch:
		return res.ok, res.err
	case <-timedOut:
		return false, fmt.Errorf("buy-in decision timed out after %s", g.decisionTimeout)
	}
}

type actionResult struct {
	action Action
	err    error
}

func (g *Game) bettingAction(p *Player, req ActionRequest) (Action, error) {
	if g.decisionTimeout <= 0 {
		res := safeBettingAction(p.Agent, req)
		return res.action, res.err
	}

	timedOut := make(chan struct{})
	timer := g.clock.AfterFunc(g.decisionTimeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	ch := make(chan actionResult, 1)
	go func() { ch <- safeBettingAction(p.Agent, req) }()

	select {
	case res := <-ch:
		return res.action, res.err
	case <-timedOut:
		return Action{}, fmt.Errorf("betting decision timed out after %s", g.decisionTimeout)
	}
}

func safeConfirmBuyIn(agent Agent, req BuyInRequest) (res buyInResult) {
	defer func() {
		if r := recover(); r != nil {
			res = buyInResult{err: fmt.Errorf("buy-in agent panicked: %v", r)}
		}
	}()
	ok, err := agent.ConfirmBuyIn(req)
	return buyInResult{ok: ok, err: err}
}

func safeBettingAction(agent Agent, req ActionRequest) (res actionResult) {
	defer func() {
		if r := recover(); r != nil {
			res = actionResult{err: fmt.Errorf("betting agent panicked: %v", r)}
		}
	}()
	action, err := agent.BettingAction(req)
	return actionResult{action: action, err: err}
}
