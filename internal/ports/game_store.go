package ports

import (
	"context"
	"errors"

	"leleon/internal/domain"
)

var (
	// ErrGameNotFound is returned when no game matches the requested id or join code.
	ErrGameNotFound = errors.New("game not found")
	// ErrVersionConflict is returned when a game changed between load and save. Callers may retry.
	ErrVersionConflict = errors.New("game was modified concurrently")
)

// GameStore loads and saves game snapshots.
type GameStore interface {
	// Load returns the game with the given id and the version it was stored under.
	Load(ctx context.Context, id string) (*domain.Game, string, error)
	// LoadByCode resolves a join code (case-insensitive) to its game.
	LoadByCode(ctx context.Context, code string) (*domain.Game, string, error)
	// Save writes the game if the stored version still equals version.
	// An empty version means the game must not exist yet.
	// Returns the new version or ErrVersionConflict.
	Save(ctx context.Context, game *domain.Game, version string) (string, error)
}
