// Command leonsim plays batches of all-bot Le Leon games and prints per-personality statistics.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"leleon/internal/domain"
	"leleon/internal/simulation"

	"github.com/joho/godotenv"
)

// CLI flags, defaulting to LEON_SIM_* environment values.
var (
	games   int
	players int
	mode    string
	workers int
	seed    int64
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("failed to load .env: %v", err)
	}

	flag.IntVar(&games, "games", envInt("LEON_SIM_GAMES", 100), "Number of games to simulate")
	flag.IntVar(&players, "players", envInt("LEON_SIM_PLAYERS", 4), "Bots per game (2-10)")
	flag.StringVar(&mode, "mode", envString("LEON_SIM_MODE", string(domain.ModeSimplified)), "Scoring mode (simplified, audace, securite)")
	flag.IntVar(&workers, "workers", envInt("LEON_SIM_WORKERS", 0), "Worker goroutines (0 = CPU count)")
	flag.Int64Var(&seed, "seed", int64(envInt("LEON_SIM_SEED", 0)), "Random seed (0 = use current time)")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("simulating %d games: %d bots, mode %s, seed %d", games, players, mode, seed)
	report, err := simulation.Run(ctx, simulation.Config{
		Games:   games,
		Players: players,
		Mode:    domain.Mode(mode),
		Workers: workers,
		Seed:    seed,
	})
	if err != nil && report == nil {
		log.Fatalf("simulation failed: %v", err)
	}
	if err != nil {
		log.Printf("simulation interrupted: %v", err)
	}

	fmt.Printf("games: %d  errors: %d  rounds: %d  time: %s\n", report.Games, report.Errors, report.Rounds, report.Duration.Round(time.Millisecond))
	fmt.Printf("%-12s %6s %6s %9s %9s\n", "personality", "seats", "wins", "avg", "bets hit")
	for _, p := range report.Personalities() {
		s := report.ByPersonality[p]
		fmt.Printf("%-12s %6d %6d %9.2f %8.1f%%\n", p, s.Seats, s.Wins, s.AvgScore, 100*s.SuccessRate)
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}
