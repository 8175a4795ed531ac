package bot

import (
	"errors"

	"leleon/internal/bot/internal"
	"leleon/internal/domain"
)

// ErrEmptyHand is returned when a bot is asked to play without cards.
var ErrEmptyHand = errors.New("bot has no card to play")

// heuristics holds the decision rules shared by every personality.
// Personalities only differ on bet adjustment, lead choice and ruff choice.
type heuristics struct {
	rng    Random
	tuning internal.BetTuning
}

func (h heuristics) estimate(hand []domain.Card, mode domain.Mode, adjust int) int {
	profile := internal.ProfileHand(hand)
	bet := int(profile.Units(h.tuning)) + adjust
	bet = internal.ClampBet(bet, len(hand))

	if mode == domain.ModeAudace && profile.Leons > 0 && h.rng != nil && h.rng.Float64() < h.tuning.AudaceBoostChance {
		bet = internal.ClampBet(bet+h.tuning.AudaceBoost, len(hand))
	}
	return bet
}

func (h heuristics) choose(game *domain.Game, player *domain.Player, lead func(internal.Situation) domain.Card, ruff func([]domain.Card) domain.Card) (domain.PlayedCard, error) {
	if len(player.Hand) == 0 {
		return domain.PlayedCard{}, ErrEmptyHand
	}

	s := internal.Assess(game, player)
	switch len(s.Legal) {
	case 0:
		return domain.PlayedCard{Card: player.Hand[0]}, nil
	case 1:
		return domain.PlayedCard{Card: s.Legal[0]}, nil
	}

	var pick domain.Card
	switch {
	case s.Leading && s.Need <= 0:
		pick = internal.Weakest(s.Legal)
	case s.Leading:
		pick = lead(s)
	case s.CanFollow():
		pick = follow(s)
	case len(s.Trumps) > 0:
		pick = ruff(s.Trumps)
	default:
		pick = internal.Weakest(s.Legal)
	}
	return domain.PlayedCard{Card: pick}, nil
}

// follow wins with the cheapest winner while tricks are missing and ducks otherwise.
func follow(s internal.Situation) domain.Card {
	winning, losing := internal.WinningCards(s.Followers, s.Trick, s.Trump)
	if s.Need > 0 {
		if len(winning) > 0 {
			return internal.Weakest(winning)
		}
		return internal.Weakest(s.Followers)
	}
	if len(losing) > 0 {
		return internal.Weakest(losing)
	}
	return internal.Weakest(s.Followers)
}
