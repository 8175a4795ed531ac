package lobby

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"leleon/internal/app"
	"leleon/internal/domain"
	"leleon/internal/ports"
)

var (
	ErrNotConfigured   = errors.New("lobby service not configured")
	ErrGameRefRequired = errors.New("game id or join code is required")
	ErrNoFreeCode      = errors.New("could not find a free join code")
)

// Result is the outcome of one lobby action.
type Result struct {
	Game   *domain.Game
	Events []app.Event
	// PlayerID is the seat created by CreateGame or Join.
	PlayerID string
	// HistoryErr is set when the finished game could not be recorded. The action itself succeeded.
	HistoryErr error
}

// Service runs engine operations against stored games. Actions on one game id never overlap.
type Service struct {
	store        ports.GameStore
	history      ports.HistoryPort
	engine       *app.Service
	locks        *keyedMutex
	codeAttempts int
	newCode      func() (string, error)
}

// NewService wires a lobby. history may be nil when finished games are not recorded.
func NewService(store ports.GameStore, history ports.HistoryPort, engine *app.Service) *Service {
	return &Service{
		store:        store,
		history:      history,
		engine:       engine,
		locks:        newKeyedMutex(),
		codeAttempts: DefaultCodeAttempts,
		newCode:      GenerateJoinCode,
	}
}

// SetCodeAttempts overrides DefaultCodeAttempts. Non-positive values are ignored.
func (s *Service) SetCodeAttempts(n int) {
	if n > 0 {
		s.codeAttempts = n
	}
}

// CreateGame stores a new table under a fresh join code.
// When hostName is set the host takes the first seat; hostID may be empty to generate one.
func (s *Service) CreateGame(ctx context.Context, mode domain.Mode, maxPlayers int, hostID, hostName string) (Result, error) {
	if s.store == nil || s.engine == nil {
		return Result{}, ErrNotConfigured
	}

	code, err := s.uniqueCode(ctx)
	if err != nil {
		return Result{}, err
	}
	game, err := s.engine.CreateGame(code, mode, maxPlayers)
	if err != nil {
		return Result{}, err
	}

	result := Result{}
	if strings.TrimSpace(hostName) != "" {
		game, result.Events, err = s.engine.AddPlayer(game, hostID, hostName)
		if err != nil {
			return Result{}, err
		}
		result.PlayerID = game.Players[len(game.Players)-1].ID
	}

	if _, err := s.store.Save(ctx, game, ""); err != nil {
		return Result{}, fmt.Errorf("failed to save game: %w", err)
	}
	result.Game = game
	return result, nil
}

// Join seats a human at the game found by id or join code.
func (s *Service) Join(ctx context.Context, ref, playerID, name string) (Result, error) {
	var seated string
	result, err := s.apply(ctx, ref, func(g *domain.Game) (*domain.Game, []app.Event, error) {
		next, events, err := s.engine.AddPlayer(g, playerID, name)
		if err != nil {
			return nil, nil, err
		}
		seated = next.Players[len(next.Players)-1].ID
		return next, events, nil
	})
	result.PlayerID = seated
	return result, err
}

// AddBot seats an automated player. Like every action below, ref is a game id or join code.
func (s *Service) AddBot(ctx context.Context, ref string) (Result, error) {
	return s.apply(ctx, ref, s.engine.AddBot)
}

// Start deals the first round and lets bots act until a human must.
func (s *Service) Start(ctx context.Context, ref string) (Result, error) {
	return s.apply(ctx, ref, s.engine.StartGame)
}

func (s *Service) PlaceBet(ctx context.Context, ref, playerID string, bet int) (Result, error) {
	return s.apply(ctx, ref, func(g *domain.Game) (*domain.Game, []app.Event, error) {
		return s.engine.PlaceBet(g, playerID, bet)
	})
}

func (s *Service) PlayCard(ctx context.Context, ref, playerID string, played domain.PlayedCard) (Result, error) {
	return s.apply(ctx, ref, func(g *domain.Game) (*domain.Game, []app.Event, error) {
		return s.engine.PlayCard(g, playerID, played)
	})
}

func (s *Service) Sanction(ctx context.Context, ref, playerID string, sanction domain.Sanction) (Result, error) {
	return s.apply(ctx, ref, func(g *domain.Game) (*domain.Game, []app.Event, error) {
		return s.engine.ApplySanction(g, playerID, sanction)
	})
}

// Fetch returns the stored game for an id or join code.
func (s *Service) Fetch(ctx context.Context, ref string) (*domain.Game, error) {
	if s.store == nil {
		return nil, ErrNotConfigured
	}
	game, _, err := s.load(ctx, ref)
	return game, err
}

func (s *Service) load(ctx context.Context, ref string) (*domain.Game, string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, "", ErrGameRefRequired
	}
	if LooksLikeCode(ref) {
		return s.store.LoadByCode(ctx, NormalizeCode(ref))
	}
	return s.store.Load(ctx, ref)
}

type action func(*domain.Game) (*domain.Game, []app.Event, error)

// apply runs one engine action under the game's lock: load, act, let bots play, save, record history.
// ref is a game id or join code. Nothing is saved when any step before the save fails.
func (s *Service) apply(ctx context.Context, ref string, act action) (Result, error) {
	if s.store == nil || s.engine == nil {
		return Result{}, ErrNotConfigured
	}
	id := strings.TrimSpace(ref)
	if id == "" {
		return Result{}, ErrGameRefRequired
	}
	if LooksLikeCode(id) {
		game, _, err := s.store.LoadByCode(ctx, NormalizeCode(id))
		if err != nil {
			return Result{}, err
		}
		id = game.ID
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	game, version, err := s.store.Load(ctx, id)
	if err != nil {
		return Result{}, err
	}
	next, events, err := act(game)
	if err != nil {
		return Result{}, err
	}

	if next.Status == domain.StatusBetting || next.Status == domain.StatusPlaying {
		settled, botEvents, err := s.engine.AdvanceAutomatedTurns(next)
		if err != nil {
			return Result{}, fmt.Errorf("failed to advance bot turns: %w", err)
		}
		next = settled
		events = append(events, botEvents...)
	}

	if _, err := s.store.Save(ctx, next, version); err != nil {
		return Result{}, fmt.Errorf("failed to save game: %w", err)
	}

	result := Result{Game: next, Events: events}
	if game.Status != domain.StatusFinished && next.Status == domain.StatusFinished && s.history != nil {
		if err := s.history.RecordFinishedGame(ctx, next); err != nil {
			result.HistoryErr = err
		}
	}
	return result, nil
}
