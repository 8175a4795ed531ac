package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"leleon/internal/domain"
	"leleon/internal/ports"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// leaderboardModule is the part of runtime.NakamaModule the history adapter needs.
type leaderboardModule interface {
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
	LeaderboardRecordWrite(ctx context.Context, id, ownerID, username string, score, subscore int64, metadata map[string]interface{}, overrideOperator *int) (*api.LeaderboardRecord, error)
}

type historyPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Rank  int    `json:"rank"`
	IsBot bool   `json:"is_bot"`
}

type historyRecord struct {
	GameID      string          `json:"game_id"`
	Code        string          `json:"code"`
	Mode        domain.Mode     `json:"mode"`
	Status      domain.Status   `json:"status"`
	TotalRounds int             `json:"total_rounds"`
	CreatedAt   time.Time       `json:"created_at"`
	FinishedAt  time.Time       `json:"finished_at"`
	Players     []historyPlayer `json:"players"`
}

// NakamaHistoryAdapter records finished games in storage and on the score leaderboard.
type NakamaHistoryAdapter struct {
	nk          leaderboardModule
	leaderboard string
}

// NewNakamaHistoryAdapter creates a new history adapter writing to the given leaderboard.
func NewNakamaHistoryAdapter(nk leaderboardModule, leaderboard string) *NakamaHistoryAdapter {
	return &NakamaHistoryAdapter{nk: nk, leaderboard: leaderboard}
}

// EnsureLeaderboard creates the score leaderboard if it does not exist yet.
// Scores accumulate across games, best totals first.
func EnsureLeaderboard(ctx context.Context, nk runtime.NakamaModule, id string) error {
	metadata := map[string]interface{}{"game": "leleon"}
	if err := nk.LeaderboardCreate(ctx, id, true, "desc", "incr", "", metadata, true); err != nil {
		return fmt.Errorf("failed to create leaderboard %s: %w", id, err)
	}
	return nil
}

// RecordFinishedGame stores the game summary once, then adds each human's final score to the leaderboard.
// A game that was already recorded is skipped.
func (a *NakamaHistoryAdapter) RecordFinishedGame(ctx context.Context, game *domain.Game) error {
	record := buildHistoryRecord(game)
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal history record: %w", err)
	}

	_, err = a.nk.StorageWrite(ctx, []*runtime.StorageWrite{{
		Collection:      historyCollection,
		Key:             game.ID,
		Value:           string(value),
		Version:         "*",
		PermissionRead:  runtime.STORAGE_PERMISSION_NO_READ,
		PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
	}})
	if err != nil {
		if errors.Is(err, runtime.ErrStorageRejectedVersion) {
			return nil
		}
		return fmt.Errorf("failed to write history for game %s: %w", game.ID, err)
	}

	var errs []error
	for _, p := range record.Players {
		if p.IsBot {
			continue
		}
		if _, err := uuid.Parse(p.ID); err != nil {
			continue
		}
		metadata := map[string]interface{}{"game_id": game.ID, "rank": p.Rank}
		if _, err := a.nk.LeaderboardRecordWrite(ctx, a.leaderboard, p.ID, p.Name, int64(p.Score), 0, metadata, nil); err != nil {
			errs = append(errs, fmt.Errorf("leaderboard write for %s: %w", p.ID, err))
		}
	}
	return errors.Join(errs...)
}

func buildHistoryRecord(game *domain.Game) historyRecord {
	record := historyRecord{
		GameID:      game.ID,
		Code:        game.Code,
		Mode:        game.Mode,
		Status:      game.Status,
		TotalRounds: domain.TotalRounds(len(game.Players)),
		CreatedAt:   game.CreatedAt,
		FinishedAt:  game.UpdatedAt,
	}
	for i, p := range domain.FinalRanking(game.Players) {
		record.Players = append(record.Players, historyPlayer{
			ID:    p.ID,
			Name:  p.Name,
			Score: p.Score,
			Rank:  i + 1,
			IsBot: p.IsBot,
		})
	}
	return record
}

var _ ports.HistoryPort = (*NakamaHistoryAdapter)(nil)
