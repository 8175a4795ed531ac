package bot

import (
	"leleon/internal/bot/internal"
	"leleon/internal/domain"
)

// BalancedBot bids its estimate and only leads high while it still needs many tricks.
type BalancedBot struct {
	heuristics
}

func (b *BalancedBot) EstimateBet(hand []domain.Card, mode domain.Mode) int {
	return b.estimate(hand, mode, 0)
}

func (b *BalancedBot) ChooseCard(game *domain.Game, player *domain.Player) (domain.PlayedCard, error) {
	return b.choose(game, player, b.lead, internal.Weakest)
}

func (b *BalancedBot) lead(s internal.Situation) domain.Card {
	if s.Need > b.tuning.ManyTricks {
		return internal.Strongest(s.Legal)
	}
	return internal.Middle(s.Legal)
}
