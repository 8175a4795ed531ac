package simulation

import (
	"context"
	"testing"

	"leleon/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PlaysEveryGame(t *testing.T) {
	report, err := Run(context.Background(), Config{Games: 6, Players: 3, Mode: domain.ModeAudace, Workers: 3, Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, 6, report.Games)
	assert.Zero(t, report.Errors)
	assert.Equal(t, 6*domain.TotalRounds(3), report.Rounds)

	seats := 0
	for _, p := range report.Personalities() {
		stats := report.ByPersonality[p]
		seats += stats.Seats
		// One bet per seat per round.
		assert.Equal(t, stats.Seats*domain.TotalRounds(3), stats.Bets)
		assert.GreaterOrEqual(t, stats.SuccessRate, 0.0)
		assert.LessOrEqual(t, stats.SuccessRate, 1.0)
	}
	assert.Equal(t, 18, seats)
}

func TestRun_SameSeedSameReport(t *testing.T) {
	cfg := Config{Games: 4, Players: 2, Mode: domain.ModeSimplified, Seed: 7}

	cfg.Workers = 1
	serial, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	cfg.Workers = 4
	parallel, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	require.Equal(t, serial.Personalities(), parallel.Personalities())
	for _, p := range serial.Personalities() {
		assert.Equal(t, *serial.ByPersonality[p], *parallel.ByPersonality[p], "personality %s", p)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	_, err := Run(context.Background(), Config{Games: 0, Players: 3, Mode: domain.ModeAudace})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Run(context.Background(), Config{Games: 1, Players: 11, Mode: domain.ModeAudace})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Run(context.Background(), Config{Games: 1, Players: 3, Mode: "poker"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Run(ctx, Config{Games: 3, Players: 2, Mode: domain.ModeSecurite, Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Equal(t, 3, report.Errors)
	assert.Zero(t, report.Games)
}
