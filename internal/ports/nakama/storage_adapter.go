package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"leleon/internal/domain"
	"leleon/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// storageModule is the part of runtime.NakamaModule the game store needs.
type storageModule interface {
	StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error)
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
}

type codeIndex struct {
	GameID string `json:"game_id"`
}

// NakamaGameStore keeps games as system-owned storage objects, with a second collection indexing join codes.
type NakamaGameStore struct {
	nk storageModule
}

// NewNakamaGameStore creates a new game store adapter.
func NewNakamaGameStore(nk storageModule) *NakamaGameStore {
	return &NakamaGameStore{nk: nk}
}

// Load reads a game and its storage version.
func (s *NakamaGameStore) Load(ctx context.Context, id string) (*domain.Game, string, error) {
	obj, err := s.read(ctx, gamesCollection, id)
	if err != nil {
		return nil, "", err
	}
	var game domain.Game
	if err := json.Unmarshal([]byte(obj.GetValue()), &game); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal game %s: %w", id, err)
	}
	return &game, obj.GetVersion(), nil
}

// LoadByCode resolves a join code through the code index.
func (s *NakamaGameStore) LoadByCode(ctx context.Context, code string) (*domain.Game, string, error) {
	obj, err := s.read(ctx, codesCollection, strings.ToUpper(code))
	if err != nil {
		return nil, "", err
	}
	var idx codeIndex
	if err := json.Unmarshal([]byte(obj.GetValue()), &idx); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal code index %s: %w", code, err)
	}
	return s.Load(ctx, idx.GameID)
}

// Save writes the game if its stored version still equals version.
// An empty version creates the game and claims its join code in one write.
func (s *NakamaGameStore) Save(ctx context.Context, game *domain.Game, version string) (string, error) {
	value, err := json.Marshal(game)
	if err != nil {
		return "", fmt.Errorf("failed to marshal game: %w", err)
	}

	gameWrite := &runtime.StorageWrite{
		Collection:      gamesCollection,
		Key:             game.ID,
		Value:           string(value),
		Version:         version,
		PermissionRead:  runtime.STORAGE_PERMISSION_NO_READ,
		PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
	}
	writes := []*runtime.StorageWrite{gameWrite}

	if version == "" {
		gameWrite.Version = "*"
		idx, err := json.Marshal(codeIndex{GameID: game.ID})
		if err != nil {
			return "", fmt.Errorf("failed to marshal code index: %w", err)
		}
		writes = append(writes, &runtime.StorageWrite{
			Collection:      codesCollection,
			Key:             game.Code,
			Value:           string(idx),
			Version:         "*",
			PermissionRead:  runtime.STORAGE_PERMISSION_NO_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		})
	}

	acks, err := s.nk.StorageWrite(ctx, writes)
	if err != nil {
		if errors.Is(err, runtime.ErrStorageRejectedVersion) {
			return "", ports.ErrVersionConflict
		}
		return "", fmt.Errorf("failed to write game %s: %w", game.ID, err)
	}
	for _, ack := range acks {
		if ack.GetCollection() == gamesCollection {
			return ack.GetVersion(), nil
		}
	}
	return "", fmt.Errorf("no storage ack for game %s", game.ID)
}

func (s *NakamaGameStore) read(ctx context.Context, collection, key string) (*api.StorageObject, error) {
	objects, err := s.nk.StorageRead(ctx, []*runtime.StorageRead{{Collection: collection, Key: key}})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", collection, key, err)
	}
	if len(objects) == 0 {
		return nil, ports.ErrGameNotFound
	}
	return objects[0], nil
}

var _ ports.GameStore = (*NakamaGameStore)(nil)
