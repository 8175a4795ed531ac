package bot

import botinternal "leleon/internal/bot/internal"

// DefaultTuning counts the Léon as one and a half tricks, honours as one and tens/nines as half.
var DefaultTuning = botinternal.BetTuning{
	LeonWeight:        1.5,
	HonourWeight:      1.0,
	MidWeight:         0.5,
	AudaceBoost:       2,
	AudaceBoostChance: 0.3,
	ManyTricks:        2,
}
