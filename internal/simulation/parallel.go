package simulation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"leleon/internal/app"
	"leleon/internal/app/lobby"
	"leleon/internal/bot"
	"leleon/internal/domain"
	"leleon/internal/store"
)

var ErrInvalidConfig = errors.New("invalid simulation config")

// Config describes a batch of all-bot games.
type Config struct {
	Games   int
	Players int
	Mode    domain.Mode
	Workers int
	Seed    int64
}

// GameJob represents a single simulated game.
type GameJob struct {
	Index int
	Seed  int64
}

// PlayerOutcome is one bot's line in a finished game.
type PlayerOutcome struct {
	Personality domain.Personality
	Score       int
	Bets        int
	BetsHit     int
	Won         bool
}

// GameResult is the outcome of one job. Err is set when the game could not be played out.
type GameResult struct {
	Index   int
	GameID  string
	Rounds  int
	Players []PlayerOutcome
	Err     error
}

// PersonalityStats aggregates every seat played by one personality.
type PersonalityStats struct {
	Seats       int
	Wins        int
	TotalScore  int
	Bets        int
	BetsHit     int
	AvgScore    float64
	SuccessRate float64
}

// Report summarises a batch.
type Report struct {
	Games         int
	Errors        int
	Rounds        int
	ByPersonality map[domain.Personality]*PersonalityStats
	Duration      time.Duration
}

// Personalities returns the report's personalities in a stable order.
func (r *Report) Personalities() []domain.Personality {
	out := make([]domain.Personality, 0, len(r.ByPersonality))
	for p := range r.ByPersonality {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Run plays cfg.Games games on a worker pool. Games share one store, each runs on its own seeded engine.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Games <= 0 || cfg.Players < app.MinPlayersToStartGame || cfg.Players > app.MaxPlayersPerGame {
		return nil, fmt.Errorf("%w: %d games of %d players", ErrInvalidConfig, cfg.Games, cfg.Players)
	}
	if !domain.ValidMode(cfg.Mode) {
		return nil, fmt.Errorf("%w: mode %q", ErrInvalidConfig, cfg.Mode)
	}
	numWorkers := cfg.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	started := time.Now()
	games := store.NewGameStore()
	history := store.NewHistory()

	jobs := make(chan GameJob, cfg.Games)
	results := make(chan GameResult, cfg.Games)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go worker(ctx, &wg, jobs, results, cfg, games, history)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for i := 0; i < cfg.Games; i++ {
		jobs <- GameJob{Index: i, Seed: rng.Int63()}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	ordered := make([]GameResult, cfg.Games)
	for result := range results {
		ordered[result.Index] = result
	}

	report := aggregate(ordered)
	report.Duration = time.Since(started)
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

func worker(ctx context.Context, wg *sync.WaitGroup, jobs <-chan GameJob, results chan<- GameResult, cfg Config, games *store.GameStore, history *store.History) {
	defer wg.Done()
	for job := range jobs {
		if err := ctx.Err(); err != nil {
			results <- GameResult{Index: job.Index, Err: err}
			continue
		}
		results <- playGame(ctx, job, cfg, games, history)
	}
}

func playGame(ctx context.Context, job GameJob, cfg Config, games *store.GameStore, history *store.History) GameResult {
	result := GameResult{Index: job.Index}
	engine := app.NewService(rand.New(rand.NewSource(job.Seed)), bot.NewNamePool(nil))
	svc := lobby.NewService(games, history, engine)

	created, err := svc.CreateGame(ctx, cfg.Mode, cfg.Players, "", "")
	if err != nil {
		result.Err = err
		return result
	}
	result.GameID = created.Game.ID
	for i := 0; i < cfg.Players; i++ {
		if _, err := svc.AddBot(ctx, created.Game.ID); err != nil {
			result.Err = err
			return result
		}
	}

	finished, err := svc.Start(ctx, created.Game.ID)
	if err != nil {
		result.Err = err
		return result
	}
	if finished.Game.Status != domain.StatusFinished {
		result.Err = fmt.Errorf("game %s stopped in status %s", created.Game.ID, finished.Game.Status)
		return result
	}

	result.Rounds = finished.Game.Round.Number
	result.Players = outcomes(finished.Game, finished.Events)
	return result
}

func outcomes(game *domain.Game, events []app.Event) []PlayerOutcome {
	byID := make(map[string]*PlayerOutcome, len(game.Players))
	best := 0
	for i, p := range game.Players {
		if i == 0 || p.Score > best {
			best = p.Score
		}
	}
	out := make([]PlayerOutcome, len(game.Players))
	for i, p := range game.Players {
		out[i] = PlayerOutcome{Personality: p.Personality, Score: p.Score, Won: p.Score == best}
		byID[p.ID] = &out[i]
	}

	for _, ev := range events {
		payload, ok := ev.Payload.(app.RoundCompletedPayload)
		if !ok {
			continue
		}
		for _, r := range payload.Results {
			o := byID[r.PlayerID]
			if o == nil {
				continue
			}
			o.Bets++
			if r.Outcome.Success {
				o.BetsHit++
			}
		}
	}
	return out
}

func aggregate(results []GameResult) *Report {
	report := &Report{ByPersonality: make(map[domain.Personality]*PersonalityStats)}
	for _, r := range results {
		if r.Err != nil {
			report.Errors++
			continue
		}
		report.Games++
		report.Rounds += r.Rounds
		for _, p := range r.Players {
			stats := report.ByPersonality[p.Personality]
			if stats == nil {
				stats = &PersonalityStats{}
				report.ByPersonality[p.Personality] = stats
			}
			stats.Seats++
			stats.TotalScore += p.Score
			stats.Bets += p.Bets
			stats.BetsHit += p.BetsHit
			if p.Won {
				stats.Wins++
			}
		}
	}
	for _, stats := range report.ByPersonality {
		stats.AvgScore = float64(stats.TotalScore) / float64(stats.Seats)
		if stats.Bets > 0 {
			stats.SuccessRate = float64(stats.BetsHit) / float64(stats.Bets)
		}
	}
	return report
}
