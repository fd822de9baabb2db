package main

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/rmears/holdem/internal/bot"
	"github.com/rmears/holdem/internal/config"
	"github.com/rmears/holdem/internal/game"
	"github.com/rmears/holdem/internal/randutil"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)
	potStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	winnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true)
	redCard     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

type CLI struct {
	Config  string `short:"c" default:"holdem.hcl" help:"Table configuration file (HCL)"`
	Seed    int64  `default:"0" help:"RNG seed (0 for time-based)"`
	Once    bool   `help:"Run a single game instead of looping"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logger := log.New(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	cfg, err := config.LoadTableConfig(cli.Config)
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}

	seed := cli.Seed
	if seed == 0 {
		seed = cfg.Seed
	}

	output := termenv.NewOutput(os.Stdout)
	stdin := bufio.NewReader(os.Stdin)

	loops := 0
	for {
		loops++
		output.ClearScreen()

		rng := gameRNG(seed, loops)

		players := make([]*game.Player, len(cfg.Players))
		for i, pc := range cfg.Players {
			agent, err := bot.ForStrategy(pc.Strategy, rng, logger)
			if err != nil {
				logger.Fatal("failed to build player", "player", pc.Name, "error", err)
			}
			players[i] = game.NewPlayer(pc.Name, pc.Balance, agent)
		}

		g, err := game.NewGame(rng, players, cfg.BuyIn, game.WithLogger(logger))
		if err != nil {
			logger.Fatal("failed to start game", "error", err)
		}
		result := g.Run()

		fmt.Println(titleStyle.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
		fmt.Println()
		fmt.Printf("Games played: %d\n", loops)
		fmt.Printf("Board cards: %s\n", renderCards(g))
		fmt.Printf("Pot size: %s\n\n", potStyle.Render(fmt.Sprintf("%d", g.Pot())))

		printResult(result)

		if cli.Once {
			break
		}
		fmt.Print("Press enter to continue: ")
		if _, err := stdin.ReadString('\n'); err != nil {
			break
		}
	}

	ctx.Exit(0)
}

// gameRNG derives the per-hand source. Seeded runs replay deterministically,
// with the loop counter varying each hand; unseeded runs draw from the clock.
func gameRNG(seed int64, loop int) *rand.Rand {
	if seed != 0 {
		return randutil.New(seed + int64(loop))
	}
	return randutil.NewFromTime()
}

func renderCards(g *game.Game) string {
	out := ""
	for i, c := range g.BoardCards() {
		if i > 0 {
			out += " "
		}
		if c.IsRed() {
			out += redCard.Render(c.String())
		} else {
			out += c.String()
		}
	}
	return out
}

func printResult(result *game.Result) {
	if len(result.Rankings) == 0 {
		if result.Winner != nil {
			fmt.Printf("%s wins, everyone else folded\n", winnerStyle.Render(result.Winner.Name))
		} else {
			fmt.Println("Every player folded; nobody wins")
		}
		return
	}

	for _, r := range result.Rankings {
		line := fmt.Sprintf("Position #%d: %s", r.Position, r.Player.Name)
		if r.Position == 1 {
			line = winnerStyle.Render(line)
		}
		fmt.Println(line)
		fmt.Printf("  Hand: %v  Balance: %d\n", r.Player.Hand, r.Player.Balance)
	}
}
