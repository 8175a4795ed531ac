package bot

import (
	"testing"

	"leleon/internal/domain"
)

type fixedRandom struct {
	f float64
	i int
}

func (r fixedRandom) Float64() float64 { return r.f }
func (r fixedRandom) Intn(n int) int   { return r.i % n }

func card(s domain.Suit, r domain.Rank) domain.Card {
	return domain.Card{ID: domain.CardID(s, r), Suit: s, Rank: r}
}

func newBrain(t *testing.T, p domain.Personality, rng Random) Brain {
	t.Helper()
	b, err := NewBrain(p, rng)
	if err != nil {
		t.Fatalf("NewBrain(%s) returned error: %v", p, err)
	}
	return b
}

// tableWith seats the bot behind the given plays of the current trick.
func tableWith(bot *domain.Player, trump *domain.Suit, lead domain.Suit, plays ...domain.Card) *domain.Game {
	trick := domain.Trick{LeadSuit: lead}
	for i, c := range plays {
		trick.Plays = append(trick.Plays, domain.Play{PlayerID: string(rune('a' + i)), Card: domain.PlayedCard{Card: c}})
	}
	return &domain.Game{
		Mode:    domain.ModeSimplified,
		Status:  domain.StatusPlaying,
		Players: []*domain.Player{bot},
		Round:   &domain.Round{Trump: trump, CurrentTrick: trick, Status: domain.RoundPlaying},
	}
}

func betOf(n int) *int { return &n }

func TestEstimateBet_Personalities(t *testing.T) {
	hand := []domain.Card{
		domain.LeonCard(),
		card(domain.SuitHearts, domain.RankA),
		card(domain.SuitClubs, domain.RankK),
		card(domain.SuitClubs, domain.Rank9),
		card(domain.SuitSpades, domain.Rank3),
	}
	tests := []struct {
		personality domain.Personality
		want        int
	}{
		{personality: domain.PersonalityBalanced, want: 4},
		{personality: domain.PersonalityAggressive, want: 5},
		{personality: domain.PersonalityCautious, want: 3},
	}
	for _, tt := range tests {
		t.Run(string(tt.personality), func(t *testing.T) {
			b := newBrain(t, tt.personality, fixedRandom{f: 0.99})
			if got := b.EstimateBet(hand, domain.ModeSimplified); got != tt.want {
				t.Fatalf("EstimateBet() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEstimateBet_Clamped(t *testing.T) {
	aggressive := newBrain(t, domain.PersonalityAggressive, fixedRandom{})
	if got := aggressive.EstimateBet([]domain.Card{card(domain.SuitHearts, domain.RankA)}, domain.ModeSimplified); got != 1 {
		t.Fatalf("aggressive bet = %d, want 1 (hand size)", got)
	}
	cautious := newBrain(t, domain.PersonalityCautious, fixedRandom{})
	if got := cautious.EstimateBet([]domain.Card{card(domain.SuitHearts, domain.Rank2)}, domain.ModeSimplified); got != 0 {
		t.Fatalf("cautious bet = %d, want 0", got)
	}
}

func TestEstimateBet_AudaceBoost(t *testing.T) {
	hand := []domain.Card{
		domain.LeonCard(),
		card(domain.SuitHearts, domain.Rank2),
		card(domain.SuitHearts, domain.Rank3),
		card(domain.SuitHearts, domain.Rank4),
	}
	lucky := newBrain(t, domain.PersonalityBalanced, fixedRandom{f: 0.1})
	if got := lucky.EstimateBet(hand, domain.ModeAudace); got != 3 {
		t.Fatalf("boosted bet = %d, want 3", got)
	}
	unlucky := newBrain(t, domain.PersonalityBalanced, fixedRandom{f: 0.9})
	if got := unlucky.EstimateBet(hand, domain.ModeAudace); got != 1 {
		t.Fatalf("unboosted bet = %d, want 1", got)
	}
	if got := lucky.EstimateBet(hand, domain.ModeSimplified); got != 1 {
		t.Fatalf("boost must only apply in audace, got %d", got)
	}
}

func TestChooseCard_Lead(t *testing.T) {
	hand := []domain.Card{
		card(domain.SuitHearts, domain.Rank2),
		card(domain.SuitHearts, domain.Rank8),
		card(domain.SuitClubs, domain.RankA),
	}
	tests := []struct {
		name        string
		personality domain.Personality
		bet         int
		want        domain.Rank
	}{
		{name: "bet met leads weakest", personality: domain.PersonalityAggressive, bet: 0, want: domain.Rank2},
		{name: "aggressive leads strongest", personality: domain.PersonalityAggressive, bet: 2, want: domain.RankA},
		{name: "cautious leads middle", personality: domain.PersonalityCautious, bet: 3, want: domain.Rank8},
		{name: "balanced needing many leads strongest", personality: domain.PersonalityBalanced, bet: 3, want: domain.RankA},
		{name: "balanced needing few leads middle", personality: domain.PersonalityBalanced, bet: 1, want: domain.Rank8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot := &domain.Player{ID: "bot", Hand: hand, Bet: betOf(tt.bet)}
			got, err := newBrain(t, tt.personality, fixedRandom{}).ChooseCard(tableWith(bot, nil, ""), bot)
			if err != nil {
				t.Fatalf("ChooseCard returned error: %v", err)
			}
			if got.Rank != tt.want {
				t.Fatalf("ChooseCard() = %s, want rank %s", got.ID, tt.want)
			}
		})
	}
}

func TestChooseCard_Follow(t *testing.T) {
	hand := []domain.Card{
		card(domain.SuitHearts, domain.Rank3),
		card(domain.SuitHearts, domain.RankJ),
		card(domain.SuitHearts, domain.RankA),
		card(domain.SuitSpades, domain.Rank2),
	}
	tests := []struct {
		name string
		bet  int
		want string
	}{
		{name: "needs a trick wins cheaply", bet: 1, want: "hearts-J"},
		{name: "bet met ducks", bet: 0, want: "hearts-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot := &domain.Player{ID: "bot", Hand: hand, Bet: betOf(tt.bet)}
			game := tableWith(bot, nil, domain.SuitHearts, card(domain.SuitHearts, domain.Rank10))
			got, err := newBrain(t, domain.PersonalityBalanced, fixedRandom{}).ChooseCard(game, bot)
			if err != nil {
				t.Fatalf("ChooseCard returned error: %v", err)
			}
			if got.ID != tt.want {
				t.Fatalf("ChooseCard() = %s, want %s", got.ID, tt.want)
			}
		})
	}
}

func TestChooseCard_FollowAllWinning(t *testing.T) {
	bot := &domain.Player{
		ID:   "bot",
		Hand: []domain.Card{card(domain.SuitHearts, domain.RankK), card(domain.SuitHearts, domain.RankQ)},
		Bet:  betOf(0),
	}
	game := tableWith(bot, nil, domain.SuitHearts, card(domain.SuitHearts, domain.Rank2))
	got, err := newBrain(t, domain.PersonalityCautious, fixedRandom{}).ChooseCard(game, bot)
	if err != nil {
		t.Fatalf("ChooseCard returned error: %v", err)
	}
	if got.ID != "hearts-Q" {
		t.Fatalf("ChooseCard() = %s, want hearts-Q", got.ID)
	}
}

func TestChooseCard_RuffAndDiscard(t *testing.T) {
	trump := domain.SuitSpades
	hand := []domain.Card{
		card(domain.SuitSpades, domain.Rank4),
		card(domain.SuitSpades, domain.RankK),
		card(domain.SuitClubs, domain.Rank7),
	}

	bot := &domain.Player{ID: "bot", Hand: hand, Bet: betOf(1)}
	game := tableWith(bot, &trump, domain.SuitHearts, card(domain.SuitHearts, domain.Rank9))

	got, _ := newBrain(t, domain.PersonalityAggressive, fixedRandom{}).ChooseCard(game, bot)
	if got.ID != "spades-K" {
		t.Fatalf("aggressive ruff = %s, want spades-K", got.ID)
	}
	got, _ = newBrain(t, domain.PersonalityCautious, fixedRandom{}).ChooseCard(game, bot)
	if got.ID != "spades-4" {
		t.Fatalf("cautious ruff = %s, want spades-4", got.ID)
	}

	noTrump := tableWith(bot, nil, domain.SuitHearts, card(domain.SuitHearts, domain.Rank9))
	got, _ = newBrain(t, domain.PersonalityAggressive, fixedRandom{}).ChooseCard(noTrump, bot)
	if got.ID != "spades-4" {
		t.Fatalf("discard = %s, want spades-4", got.ID)
	}
}

func TestChooseCard_AlwaysLegal(t *testing.T) {
	hand := []domain.Card{
		card(domain.SuitHearts, domain.Rank5),
		card(domain.SuitDiamonds, domain.RankA),
		domain.LeonCard(),
	}
	for _, p := range Personalities {
		for _, bet := range []int{0, 1, 3} {
			bot := &domain.Player{ID: "bot", Hand: hand, Bet: betOf(bet)}
			game := tableWith(bot, nil, domain.SuitHearts, card(domain.SuitHearts, domain.Rank2))
			got, err := newBrain(t, p, fixedRandom{}).ChooseCard(game, bot)
			if err != nil {
				t.Fatalf("ChooseCard returned error: %v", err)
			}
			if !domain.CheckPlay(got.Card, hand, game.Round.CurrentTrick).Legal {
				t.Fatalf("%s with bet %d played illegal %s", p, bet, got.ID)
			}
		}
	}
}

func TestChooseCard_EmptyHand(t *testing.T) {
	bot := &domain.Player{ID: "bot"}
	if _, err := newBrain(t, domain.PersonalityBalanced, fixedRandom{}).ChooseCard(tableWith(bot, nil, ""), bot); err != ErrEmptyHand {
		t.Fatalf("expected ErrEmptyHand, got %v", err)
	}
}

func TestNewBrain_Unknown(t *testing.T) {
	if _, err := NewBrain(domain.Personality("reckless"), fixedRandom{}); err == nil {
		t.Fatal("expected an error for an unknown personality")
	}
}
