package bot

import (
	"leleon/internal/bot/internal"
	"leleon/internal/domain"
)

// AggressiveBot overbids by one and spends its strongest cards.
type AggressiveBot struct {
	heuristics
}

func (b *AggressiveBot) EstimateBet(hand []domain.Card, mode domain.Mode) int {
	return b.estimate(hand, mode, 1)
}

func (b *AggressiveBot) ChooseCard(game *domain.Game, player *domain.Player) (domain.PlayedCard, error) {
	return b.choose(game, player,
		func(s internal.Situation) domain.Card { return internal.Strongest(s.Legal) },
		internal.Strongest,
	)
}
