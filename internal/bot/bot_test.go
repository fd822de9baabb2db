package bot

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmears/holdem/internal/game"
	"github.com/rmears/holdem/internal/randutil"
)

func discard() *log.Logger {
	return log.New(io.Discard)
}

func TestBuyInRule(t *testing.T) {
	b := NewCheckBot(discard())

	ok, err := b.ConfirmBuyIn(game.BuyInRequest{Balance: 10, BuyInCost: 5})
	require.NoError(t, err)
	assert.True(t, ok, "buy in when the cost is at most half the balance")

	ok, err = b.ConfirmBuyIn(game.BuyInRequest{Balance: 9, BuyInCost: 5})
	require.NoError(t, err)
	assert.False(t, ok, "decline when the cost is more than half the balance")
}

func TestCallBotMatchesBehindAndChecksOtherwise(t *testing.T) {
	b := NewCallBot(discard())

	action, err := b.BettingAction(game.ActionRequest{CurrentBet: 0, CheckValue: 5})
	require.NoError(t, err)
	assert.Equal(t, game.Match, action.Kind)

	action, err = b.BettingAction(game.ActionRequest{CurrentBet: 5, CheckValue: 5})
	require.NoError(t, err)
	assert.Equal(t, game.Check, action.Kind)
}

func TestRandBotStaysWithinBalance(t *testing.T) {
	b := NewRandBot(randutil.New(7), 10, discard())

	for range 200 {
		action, err := b.BettingAction(game.ActionRequest{Balance: 3, CheckValue: 2})
		require.NoError(t, err)
		if action.Kind == game.Raise {
			assert.GreaterOrEqual(t, action.Amount, 1)
			assert.LessOrEqual(t, action.Amount, 3)
		}
	}
}

func TestForStrategy(t *testing.T) {
	for _, name := range Strategies {
		agent, err := ForStrategy(name, randutil.New(1), discard())
		require.NoError(t, err, "strategy %s", name)
		assert.NotNil(t, agent)
	}

	_, err := ForStrategy("psychic", randutil.New(1), discard())
	assert.Error(t, err)
}

// Four always-check players play three full streets and reach a four-way
// showdown with nobody folded.
func TestCheckersPlayToShowdown(t *testing.T) {
	rng := randutil.New(99)
	players := make([]*game.Player, 4)
	for i, name := range []string{"p1", "p2", "p3", "p4"} {
		players[i] = game.NewPlayer(name, 1000, NewCheckBot(discard()))
	}

	g, err := game.NewGame(rng, players, 1)
	require.NoError(t, err)
	result := g.Run()

	assert.Equal(t, 4, g.Pot())
	assert.Len(t, g.BoardCards(), 5)
	require.Len(t, result.Rankings, 4)
	for _, p := range players {
		assert.False(t, p.Folded)
		assert.Equal(t, 999, p.Balance)
	}
}

// A table of fold bots collapses to a single survivor who wins without a
// showdown.
func TestFoldersLeaveASingleWinner(t *testing.T) {
	players := []*game.Player{
		game.NewPlayer("folder1", 100, NewFoldBot(discard())),
		game.NewPlayer("folder2", 100, NewFoldBot(discard())),
		game.NewPlayer("checker", 100, NewCheckBot(discard())),
	}

	g, err := game.NewGame(randutil.New(5), players, 1)
	require.NoError(t, err)
	result := g.Run()

	require.NotNil(t, result.Winner)
	assert.Equal(t, "checker", result.Winner.Name)
	assert.Empty(t, result.Rankings)
}
