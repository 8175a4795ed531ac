package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"leleon/internal/domain"
)

const (
	DefaultHistoryLeaderboard = "leon_scores"
	DefaultMaxPlayers         = 4
)

// Runtime environment keys that override the file.
const (
	EnvDefaultMode        = "LEON_DEFAULT_MODE"
	EnvMaxAutomatedSteps  = "LEON_MAX_AUTOMATED_STEPS"
	EnvHistoryLeaderboard = "LEON_HISTORY_LEADERBOARD"
	EnvBotNamesPath       = "LEON_BOT_NAMES_PATH"
)

type GameConfig struct {
	DefaultMode       string `json:"default_mode"`
	DefaultMaxPlayers int    `json:"default_max_players"`
	// MaxAutomatedSteps caps the bot actions run after one request. Zero keeps the engine default.
	MaxAutomatedSteps  int    `json:"max_automated_steps"`
	HistoryLeaderboard string `json:"history_leaderboard"`
	BotNamesPath       string `json:"bot_names_path"`
	CodeAttempts       int    `json:"code_attempts"`
}

var (
	cfg      *GameConfig
	mu       sync.RWMutex
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		mu.Lock()
		cfg = &c
		mu.Unlock()
	})
	return loadErr
}

// ApplyEnv overrides loaded values with runtime environment entries.
// Unparseable numbers are reported and leave the current value in place.
func ApplyEnv(env map[string]string) error {
	mu.Lock()
	defer mu.Unlock()
	if cfg == nil {
		cfg = &GameConfig{}
	}

	if v := strings.TrimSpace(env[EnvDefaultMode]); v != "" {
		cfg.DefaultMode = v
	}
	if v := strings.TrimSpace(env[EnvHistoryLeaderboard]); v != "" {
		cfg.HistoryLeaderboard = v
	}
	if v := strings.TrimSpace(env[EnvBotNamesPath]); v != "" {
		cfg.BotNamesPath = v
	}
	if v := strings.TrimSpace(env[EnvMaxAutomatedSteps]); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvMaxAutomatedSteps, err)
		}
		cfg.MaxAutomatedSteps = n
	}
	return nil
}

// GetGameConfig returns a copy of the global game configuration, or nil when nothing is loaded.
func GetGameConfig() *GameConfig {
	mu.RLock()
	defer mu.RUnlock()
	if cfg == nil {
		return nil
	}
	c := *cfg
	return &c
}

// GetDefaultMode returns the configured mode, falling back to simplified.
func GetDefaultMode() domain.Mode {
	mu.RLock()
	defer mu.RUnlock()
	if cfg == nil || !domain.ValidMode(domain.Mode(cfg.DefaultMode)) {
		return domain.ModeSimplified
	}
	return domain.Mode(cfg.DefaultMode)
}

func GetDefaultMaxPlayers() int {
	mu.RLock()
	defer mu.RUnlock()
	if cfg == nil || cfg.DefaultMaxPlayers < 2 || cfg.DefaultMaxPlayers > 10 {
		return DefaultMaxPlayers
	}
	return cfg.DefaultMaxPlayers
}

func GetMaxAutomatedSteps() int {
	mu.RLock()
	defer mu.RUnlock()
	if cfg == nil || cfg.MaxAutomatedSteps < 0 {
		return 0
	}
	return cfg.MaxAutomatedSteps
}

func GetHistoryLeaderboard() string {
	mu.RLock()
	defer mu.RUnlock()
	if cfg == nil || cfg.HistoryLeaderboard == "" {
		return DefaultHistoryLeaderboard
	}
	return cfg.HistoryLeaderboard
}

// GetBotNamesPath returns the identities file path; empty means the built-in names.
func GetBotNamesPath() string {
	mu.RLock()
	defer mu.RUnlock()
	if cfg == nil {
		return ""
	}
	return cfg.BotNamesPath
}

func GetCodeAttempts() int {
	mu.RLock()
	defer mu.RUnlock()
	if cfg == nil || cfg.CodeAttempts < 0 {
		return 0
	}
	return cfg.CodeAttempts
}
