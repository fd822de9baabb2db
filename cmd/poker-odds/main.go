package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/rmears/holdem/internal/randutil"
	"github.com/rmears/holdem/poker"
)

var headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)

type CLI struct {
	Hand string `arg:"" optional:"" help:"Hand to evaluate (e.g. 'AsKsQh7d2c'); empty for a random 7-card draw"`
	Draw int    `default:"7" help:"Number of cards to draw when no hand is given"`
	Seed int64  `default:"0" help:"RNG seed (0 for time-based)"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logger := log.New(os.Stderr)

	var hand []poker.Card
	if cli.Hand != "" {
		var err error
		hand, err = poker.ParseCards(cli.Hand)
		if err != nil {
			logger.Fatal("invalid hand", "error", err)
		}
	} else {
		rng := randutil.NewFromTime()
		if cli.Seed != 0 {
			rng = randutil.New(cli.Seed)
		}
		deck := poker.NewDeck(rng)
		var err error
		hand, err = deck.SelectRandom(cli.Draw, false)
		if err != nil {
			logger.Fatal("failed to draw", "error", err)
		}
	}

	best, worst, err := poker.Rank(hand)
	if err != nil {
		logger.Fatal("failed to rank hand", "error", err)
	}

	fmt.Printf("Starting hand: %s\n\n", poker.FormatCards(hand))
	printExtreme("Best case scenario", best)
	printExtreme("Worst case scenario", worst)

	ctx.Exit(0)
}

func printExtreme(title string, e poker.Extreme) {
	fmt.Print(formatExtreme(title, e))
}

func formatExtreme(title string, e poker.Extreme) string {
	var b strings.Builder
	fmt.Fprintln(&b, headerStyle.Render(title))
	fmt.Fprintf(&b, "Combo: %s\n", e.Combo)
	fmt.Fprintf(&b, "Hand: %s\n", poker.FormatCards(e.Hands[0]))
	fmt.Fprintf(&b, "Highest card: %d\n", e.HighCard)
	fmt.Fprintf(&b, "Hand value: %d\n", e.Value)
	if ranking, err := poker.ComboRanking(e.Combo); err == nil {
		fmt.Fprintf(&b, "Combo ranking: %d\n", ranking)
	}
	if len(e.Hands) > 1 {
		fmt.Fprintf(&b, "Tied completions: %d\n", len(e.Hands))
	}
	fmt.Fprintln(&b)
	return b.String()
}
