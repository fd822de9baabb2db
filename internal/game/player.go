package game

import "github.com/rmears/holdem/poker"

// Player represents a seated player. Balance and CurrentBet are non-negative
// chip counts. Folded is monotone for the duration of a game: once set it is
// never cleared. Hand is assigned once at deal time and never reassigned.
//
// BoughtIn is declared for opponent visibility but is never set true by the
// engine, even on a successful buy-in; opponent views report it as-is.
type Player struct {
	Name       string
	Balance    int
	CurrentBet int
	BoughtIn   bool
	Folded     bool
	Hand       []poker.Card

	Agent Agent
}

// NewPlayer creates a player with a starting balance and decision agent
func NewPlayer(name string, balance int, agent Agent) *Player {
	return &Player{Name: name, Balance: balance, Agent: agent}
}
