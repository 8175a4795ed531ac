package store

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"leleon/internal/domain"
	"leleon/internal/ports"
)

type record struct {
	game    *domain.Game
	version int
}

// GameStore keeps games in memory. Games are cloned on the way in and out.
type GameStore struct {
	games map[string]*record
	codes map[string]string
	mu    sync.RWMutex
}

// NewGameStore creates an empty store.
func NewGameStore() *GameStore {
	return &GameStore{
		games: make(map[string]*record),
		codes: make(map[string]string),
	}
}

// Load retrieves a game by id.
func (s *GameStore) Load(ctx context.Context, id string) (*domain.Game, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.games[id]
	if !ok {
		return nil, "", ports.ErrGameNotFound
	}
	return rec.game.Clone(), strconv.Itoa(rec.version), nil
}

// LoadByCode retrieves a game by join code.
func (s *GameStore) LoadByCode(ctx context.Context, code string) (*domain.Game, string, error) {
	s.mu.RLock()
	id, ok := s.codes[strings.ToUpper(code)]
	s.mu.RUnlock()
	if !ok {
		return nil, "", ports.ErrGameNotFound
	}
	return s.Load(ctx, id)
}

// Save stores a game when version matches the stored one.
func (s *GameStore) Save(ctx context.Context, game *domain.Game, version string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.games[game.ID]
	switch {
	case !exists && version != "":
		return "", ports.ErrVersionConflict
	case exists && version != strconv.Itoa(rec.version):
		return "", ports.ErrVersionConflict
	}
	if !exists {
		if _, taken := s.codes[game.Code]; taken {
			return "", ports.ErrVersionConflict
		}
		rec = &record{}
		s.games[game.ID] = rec
		s.codes[game.Code] = game.ID
	}
	rec.game = game.Clone()
	rec.version++
	return strconv.Itoa(rec.version), nil
}

// Len returns the number of stored games.
func (s *GameStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// History collects finished games in memory.
type History struct {
	games []*domain.Game
	mu    sync.Mutex
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// RecordFinishedGame appends a snapshot of the finished game.
func (h *History) RecordFinishedGame(ctx context.Context, game *domain.Game) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.games = append(h.games, game.Clone())
	return nil
}

// Games returns the recorded games in order.
func (h *History) Games() []*domain.Game {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*domain.Game(nil), h.games...)
}

var (
	_ ports.GameStore   = (*GameStore)(nil)
	_ ports.HistoryPort = (*History)(nil)
)
