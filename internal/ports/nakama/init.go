package nakama

import (
	"context"
	"database/sql"
	"math/rand"
	"time"

	"leleon/internal/app"
	"leleon/internal/app/lobby"
	"leleon/internal/bot"
	"leleon/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule loads configuration, wires the lobby to Nakama storage and registers the game RPCs.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := config.LoadGameConfig(gameConfigPath); err != nil {
		logger.Warn("Game config not loaded, using defaults: %v", err)
	}
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if err := config.ApplyEnv(env); err != nil {
			logger.Warn("Ignoring runtime env override: %v", err)
		}
	}

	names := bot.NewNamePool(nil)
	if path := config.GetBotNamesPath(); path != "" {
		pool, err := bot.LoadNamePool(path)
		if err != nil {
			logger.Warn("Bot identities not loaded, using built-in names: %v", err)
		} else {
			names = pool
		}
	}

	engine := app.NewService(rand.New(rand.NewSource(time.Now().UnixNano())), names)
	engine.SetAutomationLimit(config.GetMaxAutomatedSteps())

	leaderboard := config.GetHistoryLeaderboard()
	if err := EnsureLeaderboard(ctx, nk, leaderboard); err != nil {
		return err
	}

	service := lobby.NewService(NewNakamaGameStore(nk), NewNakamaHistoryAdapter(nk, leaderboard), engine)
	service.SetCodeAttempts(config.GetCodeAttempts())

	handlers := &rpcHandlers{lobby: service, notifier: nk}
	if err := handlers.RegisterRPCs(initializer); err != nil {
		return err
	}

	logger.Info("Le Leon Go module loaded (leaderboard %s, %d bot names).", leaderboard, names.Size())
	return nil
}
