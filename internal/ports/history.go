package ports

import (
	"context"

	"leleon/internal/domain"
)

// HistoryPort records finished games. Implementations are best-effort and callers must not
// roll back game state when recording fails.
type HistoryPort interface {
	RecordFinishedGame(ctx context.Context, game *domain.Game) error
}
