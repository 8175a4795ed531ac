package app

import (
	"fmt"

	"leleon/internal/bot"
	"leleon/internal/domain"
)

// AdvanceAutomatedTurns lets bots act for as long as the player holding the turn is a bot.
// It returns as soon as a human must act, nobody holds the turn, or the game is over.
func (s *Service) AdvanceAutomatedTurns(game *domain.Game) (*domain.Game, []Event, error) {
	current := game
	var events []Event

	for steps := 0; ; steps++ {
		if current.Status != domain.StatusBetting && current.Status != domain.StatusPlaying {
			return current, events, nil
		}
		p := current.CurrentPlayer()
		if p == nil || !p.IsBot {
			return current, events, nil
		}
		if steps >= s.automationLimit {
			return nil, nil, ErrAutomationStalled
		}

		agent, err := bot.NewAgent(p, s.rng)
		if err != nil {
			return nil, nil, fmt.Errorf("bot %s: %w", p.ID, err)
		}

		var (
			next    *domain.Game
			stepEvs []Event
		)
		switch {
		case current.Round.Status == domain.RoundBetting && p.Bet == nil:
			bet, err := agent.Bet(current)
			if err != nil {
				return nil, nil, fmt.Errorf("bot %s bet: %w", p.ID, err)
			}
			next, stepEvs, err = s.PlaceBet(current, p.ID, bet)
			if err != nil {
				return nil, nil, fmt.Errorf("bot %s bet: %w", p.ID, err)
			}
		case current.Round.Status == domain.RoundPlaying && !current.Round.CurrentTrick.HasPlayed(p.ID) && len(p.Hand) > 0:
			card, err := agent.Play(current)
			if err != nil {
				return nil, nil, fmt.Errorf("bot %s play: %w", p.ID, err)
			}
			next, stepEvs, err = s.PlayCard(current, p.ID, card)
			if err != nil {
				return nil, nil, fmt.Errorf("bot %s play: %w", p.ID, err)
			}
		default:
			return current, events, nil
		}

		current = next
		events = append(events, stepEvs...)
	}
}
