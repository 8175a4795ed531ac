package bot

import (
	"errors"

	"leleon/internal/domain"
)

// ErrNotSeated is returned when the agent has no seat in the game it is asked to act in.
var ErrNotSeated = errors.New("bot is not seated in this game")

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// NewAgent builds the agent driving a seated bot player.
func NewAgent(player *domain.Player, rng Random) (*Agent, error) {
	brain, err := NewBrain(player.Personality, rng)
	if err != nil {
		return nil, err
	}
	return &Agent{ID: player.ID, Name: player.Name, Strategy: brain}, nil
}

// Bet asks the agent for its bet on the current hand.
func (a *Agent) Bet(game *domain.Game) (int, error) {
	_, player := game.FindPlayer(a.ID)
	if player == nil {
		return 0, ErrNotSeated
	}
	return a.Strategy.EstimateBet(player.Hand, game.Mode), nil
}

// Play asks the agent to choose the card it lays on the current trick.
func (a *Agent) Play(game *domain.Game) (domain.PlayedCard, error) {
	_, player := game.FindPlayer(a.ID)
	if player == nil {
		return domain.PlayedCard{}, ErrNotSeated
	}
	return a.Strategy.ChooseCard(game, player)
}
