package domain

import (
	"testing"
)

func card(s Suit, r Rank) Card {
	return Card{ID: CardID(s, r), Suit: s, Rank: r}
}

func played(s Suit, r Rank) PlayedCard {
	return PlayedCard{Card: card(s, r)}
}

func leonAs(s Suit, r Rank) PlayedCard {
	return PlayedCard{Card: LeonCard(), LeonedAs: &Identity{Suit: s, Rank: r}}
}

func suitPtr(s Suit) *Suit { return &s }

func trickOf(lead Suit, plays ...PlayedCard) Trick {
	t := Trick{LeadSuit: lead}
	for i, p := range plays {
		t.Plays = append(t.Plays, Play{PlayerID: string(rune('a' + i)), Card: p})
	}
	return t
}

func TestCheckPlay(t *testing.T) {
	hand := []Card{card(SuitHearts, Rank5), card(SuitSpades, RankK), LeonCard()}
	heartsLed := trickOf(SuitHearts, played(SuitHearts, Rank9))
	clubsLed := trickOf(SuitClubs, played(SuitClubs, Rank9))

	tests := []struct {
		name  string
		card  Card
		hand  []Card
		trick Trick
		legal bool
	}{
		{name: "first card is always legal", card: card(SuitSpades, RankK), hand: hand, trick: Trick{}, legal: true},
		{name: "follower of led suit", card: card(SuitHearts, Rank5), hand: hand, trick: heartsLed, legal: true},
		{name: "off suit while holding led suit", card: card(SuitSpades, RankK), hand: hand, trick: heartsLed, legal: false},
		{name: "leon is always legal", card: LeonCard(), hand: hand, trick: heartsLed, legal: true},
		{name: "void in led suit may discard", card: card(SuitSpades, RankK), hand: hand, trick: clubsLed, legal: true},
		{
			name:  "leon alone does not oblige following",
			card:  card(SuitSpades, RankK),
			hand:  []Card{card(SuitSpades, RankK), LeonCard()},
			trick: heartsLed,
			legal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckPlay(tt.card, tt.hand, tt.trick)
			if got.Legal != tt.legal {
				t.Fatalf("CheckPlay() legal = %v, want %v", got.Legal, tt.legal)
			}
			if !got.Legal && got.Reason != ReasonMustFollowSuit {
				t.Fatalf("reason = %q, want %q", got.Reason, ReasonMustFollowSuit)
			}
		})
	}
}

func TestCheckPlay_FollowSuitProperty(t *testing.T) {
	deck := NewDeck()
	hand := []Card{deck[0], deck[14], deck[27], deck[40], LeonCard()}
	for _, lead := range Suits {
		trick := trickOf(lead, played(lead, RankA))
		holdsLead := false
		for _, c := range hand {
			if !c.IsLeon() && c.Suit == lead {
				holdsLead = true
			}
		}
		for _, c := range hand {
			res := CheckPlay(c, hand, trick)
			switch {
			case c.IsLeon() && !res.Legal:
				t.Fatalf("leon must be legal when %s is led", lead)
			case !c.IsLeon() && c.Suit != lead && holdsLead && res.Legal:
				t.Fatalf("%s should be illegal when %s is led and held", c.ID, lead)
			}
		}
	}
}

func TestBeats(t *testing.T) {
	trump := suitPtr(SuitSpades)
	tests := []struct {
		name       string
		challenger PlayedCard
		incumbent  PlayedCard
		lead       Suit
		trump      *Suit
		want       bool
	}{
		{name: "higher follower wins", challenger: played(SuitHearts, RankK), incumbent: played(SuitHearts, Rank9), lead: SuitHearts, want: true},
		{name: "lower follower loses", challenger: played(SuitHearts, Rank2), incumbent: played(SuitHearts, Rank9), lead: SuitHearts, want: false},
		{name: "discard never wins", challenger: played(SuitClubs, RankA), incumbent: played(SuitHearts, Rank2), lead: SuitHearts, want: false},
		{name: "trump beats led suit", challenger: played(SuitSpades, Rank2), incumbent: played(SuitHearts, RankA), lead: SuitHearts, trump: trump, want: true},
		{name: "led suit loses to trump", challenger: played(SuitHearts, RankA), incumbent: played(SuitSpades, Rank2), lead: SuitHearts, trump: trump, want: false},
		{name: "higher trump wins", challenger: played(SuitSpades, RankQ), incumbent: played(SuitSpades, Rank3), lead: SuitHearts, trump: trump, want: true},
		{name: "undeclared leon beats trump", challenger: PlayedCard{Card: LeonCard()}, incumbent: played(SuitSpades, RankA), lead: SuitHearts, trump: trump, want: true},
		{name: "nothing beats undeclared leon", challenger: played(SuitSpades, RankA), incumbent: PlayedCard{Card: LeonCard()}, lead: SuitJoker, trump: trump, want: false},
		{name: "declared leon counts as its identity", challenger: leonAs(SuitHearts, RankA), incumbent: played(SuitHearts, RankK), lead: SuitHearts, want: true},
		{name: "declared leon as trump", challenger: leonAs(SuitSpades, Rank2), incumbent: played(SuitHearts, RankA), lead: SuitHearts, trump: trump, want: true},
		{name: "real ace beats leon as ace", challenger: played(SuitHearts, RankA), incumbent: leonAs(SuitHearts, RankA), lead: SuitHearts, want: true},
		{name: "leon as ace does not beat real ace", challenger: leonAs(SuitHearts, RankA), incumbent: played(SuitHearts, RankA), lead: SuitHearts, want: false},
		{name: "real ten beats leon as ten", challenger: played(SuitClubs, Rank10), incumbent: leonAs(SuitClubs, Rank10), lead: SuitClubs, want: true},
		{name: "real five beats leon as five", challenger: played(SuitHearts, Rank5), incumbent: leonAs(SuitHearts, Rank5), lead: SuitHearts, want: true},
		{name: "leon as five does not beat real five", challenger: leonAs(SuitHearts, Rank5), incumbent: played(SuitHearts, Rank5), lead: SuitHearts, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Beats(tt.challenger, tt.incumbent, tt.lead, tt.trump); got != tt.want {
				t.Fatalf("Beats() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrickWinner(t *testing.T) {
	trump := suitPtr(SuitDiamonds)
	tests := []struct {
		name  string
		trick Trick
		trump *Suit
		want  string
	}{
		{name: "single card", trick: trickOf(SuitHearts, played(SuitHearts, Rank2)), want: "a"},
		{name: "highest follower", trick: trickOf(SuitHearts, played(SuitHearts, Rank2), played(SuitHearts, RankJ), played(SuitClubs, RankA)), want: "b"},
		{name: "trump cut", trick: trickOf(SuitHearts, played(SuitHearts, RankA), played(SuitDiamonds, Rank2), played(SuitHearts, RankK)), trump: trump, want: "b"},
		{name: "no trump round", trick: trickOf(SuitHearts, played(SuitHearts, Rank3), played(SuitDiamonds, RankA)), want: "a"},
		{name: "real card beats leading leon on a tie", trick: trickOf(SuitHearts, leonAs(SuitHearts, RankA), played(SuitHearts, RankA)), want: "b"},
		{name: "real card first keeps tie", trick: trickOf(SuitHearts, played(SuitHearts, Rank7), leonAs(SuitHearts, Rank7)), want: "a"},
		{name: "undeclared leon lead", trick: trickOf(SuitJoker, PlayedCard{Card: LeonCard()}, played(SuitHearts, RankA)), trump: trump, want: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TrickWinner(tt.trick, tt.trump)
			if err != nil {
				t.Fatalf("TrickWinner returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("TrickWinner() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrickWinner_EmptyTrick(t *testing.T) {
	if _, err := TrickWinner(Trick{}, nil); err != ErrEmptyTrick {
		t.Fatalf("expected ErrEmptyTrick, got %v", err)
	}
}

func TestTrickWinner_InvariantToLosingTail(t *testing.T) {
	trump := suitPtr(SuitClubs)
	head := []PlayedCard{played(SuitHearts, Rank4), played(SuitClubs, RankJ)}
	tails := [][]PlayedCard{
		{played(SuitHearts, RankA), played(SuitDiamonds, RankK), played(SuitClubs, Rank2)},
		{played(SuitClubs, Rank2), played(SuitHearts, RankA), played(SuitDiamonds, RankK)},
		{played(SuitDiamonds, RankK), played(SuitClubs, Rank2), played(SuitHearts, RankA)},
	}
	for _, tail := range tails {
		got, err := TrickWinner(trickOf(SuitHearts, append(append([]PlayedCard{}, head...), tail...)...), trump)
		if err != nil {
			t.Fatalf("TrickWinner returned error: %v", err)
		}
		if got != "b" {
			t.Fatalf("winner = %q, want b for tail %v", got, tail)
		}
	}
}

func TestRoundSetup(t *testing.T) {
	tests := []struct {
		round     int
		players   int
		wantPhase Phase
		wantCards int
	}{
		{round: 1, players: 4, wantPhase: PhaseAscending, wantCards: 1},
		{round: 13, players: 4, wantPhase: PhaseAscending, wantCards: 13},
		{round: 14, players: 4, wantPhase: PhaseDescending, wantCards: 12},
		{round: 25, players: 4, wantPhase: PhaseDescending, wantCards: 1},
		{round: 26, players: 4, wantPhase: PhaseDescending, wantCards: 1},
		{round: 26, players: 2, wantPhase: PhaseAscending, wantCards: 26},
		{round: 6, players: 10, wantPhase: PhaseDescending, wantCards: 4},
	}
	for _, tt := range tests {
		phase, cards := RoundSetup(tt.round, tt.players)
		if phase != tt.wantPhase || cards != tt.wantCards {
			t.Fatalf("RoundSetup(%d, %d) = (%s, %d), want (%s, %d)", tt.round, tt.players, phase, cards, tt.wantPhase, tt.wantCards)
		}
	}
	if got := TotalRounds(4); got != 26 {
		t.Fatalf("TotalRounds(4) = %d, want 26", got)
	}
	if got := MaxRounds(11); got != DefaultMaxRounds {
		t.Fatalf("MaxRounds(11) = %d, want %d", got, DefaultMaxRounds)
	}
}
