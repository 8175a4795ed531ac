package bot

import (
	"leleon/internal/bot/internal"
	"leleon/internal/domain"
)

// CautiousBot underbids by one, leads middling cards and ruffs low.
type CautiousBot struct {
	heuristics
}

func (b *CautiousBot) EstimateBet(hand []domain.Card, mode domain.Mode) int {
	return b.estimate(hand, mode, -1)
}

func (b *CautiousBot) ChooseCard(game *domain.Game, player *domain.Player) (domain.PlayedCard, error) {
	return b.choose(game, player,
		func(s internal.Situation) domain.Card { return internal.Middle(s.Legal) },
		internal.Weakest,
	)
}
