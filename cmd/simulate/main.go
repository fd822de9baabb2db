package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/rmears/holdem/internal/bot"
	"github.com/rmears/holdem/internal/config"
	"github.com/rmears/holdem/internal/game"
	"github.com/rmears/holdem/internal/randutil"
)

type CLI struct {
	Games   int    `default:"10000" help:"Number of games to simulate"`
	Config  string `short:"c" default:"holdem.hcl" help:"Table configuration file (HCL)"`
	Seed    int64  `default:"1" help:"Base RNG seed; game i uses seed+i"`
	Workers int    `default:"0" help:"Concurrent workers (0 = GOMAXPROCS)"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logger := log.New(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.ErrorLevel)
	}

	cfg, err := config.LoadTableConfig(cli.Config)
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}

	workers := cli.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		mu        sync.Mutex
		wins      = map[string]int{}
		showdowns int
		totalPot  int
	)

	// Games share nothing, so they can run concurrently; each gets its own
	// seeded RNG and fresh players.
	var eg errgroup.Group
	eg.SetLimit(workers)

	for i := range cli.Games {
		eg.Go(func() error {
			rng := randutil.New(cli.Seed + int64(i))

			players := make([]*game.Player, len(cfg.Players))
			for j, pc := range cfg.Players {
				agent, err := bot.ForStrategy(pc.Strategy, rng, logger)
				if err != nil {
					return err
				}
				players[j] = game.NewPlayer(pc.Name, pc.Balance, agent)
			}

			g, err := game.NewGame(rng, players, cfg.BuyIn, game.WithLogger(logger))
			if err != nil {
				return err
			}
			result := g.Run()

			mu.Lock()
			defer mu.Unlock()
			totalPot += g.Pot()
			if len(result.Rankings) > 0 {
				showdowns++
			}
			if result.Winner != nil {
				wins[result.Winner.Name]++
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		logger.Fatal("simulation failed", "error", err)
	}

	fmt.Printf("Simulated %d games (%d players, buy-in %d)\n\n", cli.Games, len(cfg.Players), cfg.BuyIn)
	fmt.Printf("Showdowns: %d (%.1f%%)\n", showdowns, pct(showdowns, cli.Games))
	fmt.Printf("Average pot: %.2f\n\n", float64(totalPot)/float64(cli.Games))

	names := make([]string, 0, len(wins))
	for name := range wins {
		names = append(names, name)
	}
	sort.Slice(names, func(a, b int) bool { return wins[names[a]] > wins[names[b]] })
	for _, name := range names {
		fmt.Printf("%-12s %6d wins (%.1f%%)\n", name, wins[name], pct(wins[name], cli.Games))
	}

	ctx.Exit(0)
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
