package bot

import (
	"fmt"

	"leleon/internal/domain"
)

// Personalities lists every bot personality.
var Personalities = []domain.Personality{
	domain.PersonalityAggressive,
	domain.PersonalityCautious,
	domain.PersonalityBalanced,
}

// NewBrain creates a new AI brain for the given personality.
func NewBrain(personality domain.Personality, rng Random) (Brain, error) {
	h := heuristics{rng: rng, tuning: DefaultTuning}
	switch personality {
	case domain.PersonalityAggressive:
		return &AggressiveBot{h}, nil
	case domain.PersonalityCautious:
		return &CautiousBot{h}, nil
	case domain.PersonalityBalanced:
		return &BalancedBot{h}, nil
	default:
		return nil, fmt.Errorf("unknown bot personality: %q", personality)
	}
}

// RandomPersonality picks one of the personalities uniformly.
func RandomPersonality(rng Random) domain.Personality {
	return Personalities[rng.Intn(len(Personalities))]
}
