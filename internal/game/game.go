package game

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/rmears/holdem/poker"
)

const (
	holeCards    = 2
	streets      = 3
	flopCards    = 3
	streetReveal = 1
)

// ErrNoPlayers is returned when a game is constructed without players.
var ErrNoPlayers = errors.New("a game needs at least one player")

// Game owns all mutable state for one hand of the table: the deck, the
// seated players, the pot, the board and the betting bookkeeping. A Game is
// single-threaded; agents are invoked as blocking calls within the turn
// loop. Independent games are safe to run concurrently.
type Game struct {
	players   []*Player
	deck      *poker.Deck
	buyInCost int

	pot        int
	boardCards []poker.Card
	roundCount int
	raiseCount int
	checkValue int
	ended      bool
	winner     *Player
	rankings   []Ranking

	logger          *log.Logger
	clock           quartz.Clock
	decisionTimeout time.Duration
}

// Option configures a Game
type Option func(*Game)

// WithLogger injects a structured logger. By default the game logs nowhere.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithDeck injects a pre-built deck and skips the construction-time shuffle,
// for deterministic tests
func WithDeck(deck *poker.Deck) Option {
	return func(g *Game) { g.deck = deck }
}

// WithDecisionTimeout bounds every agent call. Zero (the default) means
// agents may block indefinitely.
func WithDecisionTimeout(d time.Duration) Option {
	return func(g *Game) { g.decisionTimeout = d }
}

// WithClock injects the clock used for decision timeouts, mockable in tests
func WithClock(clock quartz.Clock) Option {
	return func(g *Game) { g.clock = clock }
}

// NewGame seats the given players, shuffles a fresh deck from rng and deals
// two hole cards to each player.
func NewGame(rng *rand.Rand, players []*Player, buyInCost int, opts ...Option) (*Game, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	g := &Game{
		players:   players,
		buyInCost: buyInCost,
		logger:    log.New(io.Discard),
		clock:     quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.deck == nil {
		g.deck = poker.NewDeck(rng)
		g.deck.Shuffle()
	}

	for _, p := range g.players {
		hand, err := g.deck.Draw(holeCards, true)
		if err != nil {
			return nil, fmt.Errorf("dealing to %s: %w", p.Name, err)
		}
		p.Hand = hand
	}

	return g, nil
}

// Pot returns the current pot size
func (g *Game) Pot() int { return g.pot }

// BoardCards returns the community cards revealed so far
func (g *Game) BoardCards() []poker.Card { return g.boardCards }

// RoundCount returns the number of betting streets started
func (g *Game) RoundCount() int { return g.roundCount }

// RaiseCount returns the number of raises across the whole game
func (g *Game) RaiseCount() int { return g.raiseCount }

// Ended reports whether the game has reached a terminal state
func (g *Game) Ended() bool { return g.ended }

// Winner returns the winning player once the game has ended
func (g *Game) Winner() *Player { return g.winner }

// Players returns the seated players in order
func (g *Game) Players() []*Player { return g.players }

// Ranking pairs a player with their showdown position (1 = winner).
type Ranking struct {
	Position int
	Player   *Player
}

// Result is the outcome of a game: the winner, plus the full ranking when
// more than one player reached showdown. Rankings is nil when everyone else
// folded before showdown.
type Result struct {
	Winner   *Player
	Rankings []Ranking
}

// Run drives the game to completion: buy-in phase, up to three betting
// streets, then winner resolution. It never aborts mid-game; misbehaving
// agents are folded and play continues with the rest.
func (g *Game) Run() *Result {
	g.buyInPhase()

	for n := 1; n <= streets && !g.ended; n++ {
		g.round(n)
	}

	if !g.ended {
		return g.resolveWinner()
	}
	return g.result()
}

// buyInPhase asks every player in order to confirm the buy-in. Players that
// decline, cannot afford it, or whose agent misbehaves are folded; the game
// continues with whoever remains.
func (g *Game) buyInPhase() {
	for _, p := range g.players {
		req := BuyInRequest{
			Balance:   p.Balance,
			Hand:      p.Hand,
			Opponents: g.opponentViews(p, true),
			BuyInCost: g.buyInCost,
		}

		ok, err := g.confirmBuyIn(p, req)
		if err != nil {
			g.forceFold(p, fmt.Sprintf("buy-in decision failed: %v", err))
			continue
		}
		if !ok {
			p.Folded = true
			g.logger.Debug("player declined buy-in", "player", p.Name)
			continue
		}
		if p.Balance < g.buyInCost {
			g.forceFold(p, fmt.Sprintf("insufficient balance for buy-in of %d", g.buyInCost))
			continue
		}

		p.Balance -= g.buyInCost
		g.pot += g.buyInCost
		g.logger.Info("player bought in", "player", p.Name, "cost", g.buyInCost, "pot", g.pot)
	}

	if g.unfolded() <= 1 {
		g.resolveWinner()
	}
}

// round runs one betting street: reveal community cards, then repeat passes
// over the players until a full pass settles without a raise, or action
// returns to the last raiser, or only one unfolded player remains. Settled
// bets are swept into the pot.
func (g *Game) round(n int) {
	g.roundCount = n

	reveal := streetReveal
	if n == 1 {
		reveal = flopCards
	}
	cards, err := g.deck.Draw(reveal, true)
	if err != nil {
		// Full board needs players*2+5 of 52 cards; dealing checked this.
		g.logger.Error("board reveal failed", "round", n, "error", err)
	}
	g.boardCards = append(g.boardCards, cards...)
	g.logger.Info("street revealed", "round", n, "board", poker.FormatCards(g.boardCards))

	var lastRaiser *Player

	active := true
passes:
	for active {
		active = false
		for _, p := range g.players {
			if g.unfolded() <= 1 {
				break passes
			}
			if p == lastRaiser {
				// Action returned to the last raiser uncontested.
				break passes
			}
			if p.Folded {
				continue
			}

			req := ActionRequest{
				Round:      n,
				Balance:    p.Balance,
				CurrentBet: p.CurrentBet,
				Hand:       p.Hand,
				BoardCards: g.boardCards,
				Opponents:  g.opponentViews(p, false),
				CheckValue: g.checkValue,
				RaiseCount: g.raiseCount,
				Pot:        g.pot,
			}

			action, err := g.bettingAction(p, req)
			if err != nil {
				p.Folded = true
				g.logger.Warn("betting decision failed, player folded", "player", p.Name, "error", err)
				continue
			}

			switch action.Kind {
			case Check:
				if p.CurrentBet != g.checkValue {
					g.forceFold(p, fmt.Sprintf("cannot check: current bet %d is below check value %d", p.CurrentBet, g.checkValue))
					continue
				}
				g.logger.Debug("player checked", "player", p.Name)

			case Match:
				if p.CurrentBet == g.checkValue {
					g.logger.Debug("player matched at check value, treating as check", "player", p.Name)
					continue
				}
				shortfall := g.checkValue - p.CurrentBet
				if p.Balance < shortfall {
					// Deliberately only notifies, without folding.
					g.notify(p, fmt.Sprintf("insufficient balance to match %d", g.checkValue))
					continue
				}
				p.Balance -= shortfall
				p.CurrentBet = g.checkValue
				g.logger.Debug("player matched", "player", p.Name, "bet", p.CurrentBet)

			case Raise:
				if action.Amount < 1 || p.Balance < action.Amount {
					g.forceFold(p, fmt.Sprintf("invalid raise of %d with balance %d", action.Amount, p.Balance))
					continue
				}
				p.Balance -= action.Amount
				p.CurrentBet += action.Amount
				g.checkValue = p.CurrentBet
				g.raiseCount++
				lastRaiser = p
				active = true
				g.logger.Info("player raised", "player", p.Name, "amount", action.Amount, "checkValue", g.checkValue)

			case Fold:
				p.Folded = true
				g.logger.Debug("player folded", "player", p.Name)

			default:
				// Unrecognized responses cost the player the turn, nothing else.
				g.logger.Debug("ignoring unrecognized action", "player", p.Name, "action", int(action.Kind))
			}
		}
	}

	swept := 0
	for _, p := range g.players {
		swept += p.CurrentBet
		g.pot += p.CurrentBet
		p.CurrentBet = 0
	}
	// Bets are zeroed, so the check value they were measured against resets
	// with them.
	g.checkValue = 0
	g.logger.Info("street settled", "round", n, "swept", swept, "pot", g.pot)

	if n == streets || g.unfolded() <= 1 {
		g.resolveWinner()
	}
}

// resolveWinner ends the game. With a single unfolded player left they win
// outright; otherwise every remaining player's best seven-card hand is
// ranked to produce positions.
func (g *Game) resolveWinner() *Result {
	g.ended = true

	var remaining []*Player
	for _, p := range g.players {
		if !p.Folded {
			remaining = append(remaining, p)
		}
	}

	switch len(remaining) {
	case 0:
		g.logger.Warn("every player folded, no winner")
		return g.result()
	case 1:
		g.winner = remaining[0]
		g.logger.Info("game won by default", "player", g.winner.Name, "pot", g.pot)
		return g.result()
	}

	hands := make([][]poker.Card, len(remaining))
	for i, p := range remaining {
		hand := make([]poker.Card, 0, len(p.Hand)+len(g.boardCards))
		hand = append(hand, p.Hand...)
		hand = append(hand, g.boardCards...)
		hands[i] = hand
	}

	positions, err := poker.CompareHands(hands...)
	if err != nil {
		// Deck-dealt cards are unique, so ranking cannot fail here.
		g.logger.Error("showdown ranking failed", "error", err)
		return g.result()
	}

	g.rankings = make([]Ranking, len(remaining))
	for i, p := range remaining {
		g.rankings[i] = Ranking{Position: positions[i], Player: p}
	}
	sort.Slice(g.rankings, func(a, b int) bool {
		return g.rankings[a].Position < g.rankings[b].Position
	})
	g.winner = g.rankings[0].Player
	g.logger.Info("showdown", "winner", g.winner.Name, "players", len(remaining), "pot", g.pot)

	return g.result()
}

func (g *Game) result() *Result {
	return &Result{Winner: g.winner, Rankings: g.rankings}
}

// opponentViews builds the read-only state of every other player. Buy-in
// views expose the bought-in flag; betting views expose the current bet.
func (g *Game) opponentViews(viewer *Player, buyIn bool) []OpponentState {
	var views []OpponentState
	for _, p := range g.players {
		if p == viewer {
			continue
		}
		view := OpponentState{
			Name:    p.Name,
			Balance: p.Balance,
			Folded:  p.Folded,
		}
		if buyIn {
			view.BoughtIn = p.BoughtIn
		} else {
			view.CurrentBet = p.CurrentBet
		}
		views = append(views, view)
	}
	return views
}

func (g *Game) unfolded() int {
	count := 0
	for _, p := range g.players {
		if !p.Folded {
			count++
		}
	}
	return count
}

// forceFold folds a player and notifies their agent best-effort
func (g *Game) forceFold(p *Player, message string) {
	p.Folded = true
	g.logger.Warn("player force-folded", "player", p.Name, "reason", message)
	g.notify(p, message)
}

// notify invokes the agent's forced-fold hook, swallowing any failure
func (g *Game) notify(p *Player, message string) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Debug("forced-fold notification panicked", "player", p.Name, "panic", r)
		}
	}()
	p.Agent.NotifyForcedFold(message)
}
