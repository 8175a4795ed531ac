package bot

import (
	"leleon/internal/domain"
)

// Random is the source of chance used by bots. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	EstimateBet(hand []domain.Card, mode domain.Mode) int
	ChooseCard(game *domain.Game, player *domain.Player) (domain.PlayedCard, error)
}
