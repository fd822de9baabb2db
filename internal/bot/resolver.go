package bot

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/rmears/holdem/internal/game"
)

// Strategies lists the built-in strategy names accepted by ForStrategy.
var Strategies = []string{"check", "call", "fold", "rand"}

// ForStrategy resolves a strategy name from config into an agent
func ForStrategy(name string, rng *rand.Rand, logger *log.Logger) (game.Agent, error) {
	switch name {
	case "check":
		return NewCheckBot(logger), nil
	case "call":
		return NewCallBot(logger), nil
	case "fold":
		return NewFoldBot(logger), nil
	case "rand":
		return NewRandBot(rng, 10, logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (have %v)", name, Strategies)
	}
}
