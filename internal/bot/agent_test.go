package bot

import (
	"testing"

	"leleon/internal/domain"
)

func TestAgent_BetAndPlay(t *testing.T) {
	player := &domain.Player{
		ID:          "bot-1",
		Name:        "TurboBot",
		IsBot:       true,
		Personality: domain.PersonalityBalanced,
		Hand:        []domain.Card{card(domain.SuitHearts, domain.RankA)},
		Bet:         betOf(1),
	}
	game := tableWith(player, nil, "")

	agent, err := NewAgent(player, fixedRandom{})
	if err != nil {
		t.Fatalf("NewAgent returned error: %v", err)
	}
	bet, err := agent.Bet(game)
	if err != nil || bet != 1 {
		t.Fatalf("Bet() = %d, %v, want 1", bet, err)
	}
	pc, err := agent.Play(game)
	if err != nil || pc.ID != "hearts-A" {
		t.Fatalf("Play() = %s, %v", pc.ID, err)
	}
}

func TestAgent_NotSeated(t *testing.T) {
	agent := &Agent{ID: "ghost", Strategy: &BalancedBot{}}
	game := &domain.Game{}
	if _, err := agent.Bet(game); err != ErrNotSeated {
		t.Fatalf("expected ErrNotSeated, got %v", err)
	}
	if _, err := agent.Play(game); err != ErrNotSeated {
		t.Fatalf("expected ErrNotSeated, got %v", err)
	}
}
