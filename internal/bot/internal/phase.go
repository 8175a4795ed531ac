package internal

import "leleon/internal/domain"

// Situation describes what a bot faces when it must lay a card.
type Situation struct {
	Leading bool
	// Need is the number of tricks still missing to make the bet. Zero or less means the bet is met.
	Need  int
	Legal []domain.Card
	// Followers are the legal cards of the led suit plus the Léon, set only when the bot can follow.
	Followers []domain.Card
	// Trumps are the legal non-Léon trump cards.
	Trumps []domain.Card
	Trick  domain.Trick
	Trump  *domain.Suit
}

// CanFollow reports whether the bot holds a regular card of the led suit.
func (s Situation) CanFollow() bool {
	return len(s.Followers) > 0
}

// Assess builds the Situation of player in the current round of game.
func Assess(game *domain.Game, player *domain.Player) Situation {
	s := Situation{}
	if game.Round == nil {
		return s
	}
	s.Trick = game.Round.CurrentTrick
	s.Trump = game.Round.Trump
	s.Leading = len(s.Trick.Plays) == 0
	s.Legal = domain.LegalCards(player.Hand, s.Trick)

	bet := 0
	if player.Bet != nil {
		bet = *player.Bet
	}
	s.Need = bet - player.TricksWon

	if s.Leading {
		return s
	}

	follows := false
	for _, c := range s.Legal {
		if !c.IsLeon() && c.Suit == s.Trick.LeadSuit {
			follows = true
			break
		}
	}
	for _, c := range s.Legal {
		if follows && (c.IsLeon() || c.Suit == s.Trick.LeadSuit) {
			s.Followers = append(s.Followers, c)
		}
		if s.Trump != nil && !c.IsLeon() && c.Suit == *s.Trump {
			s.Trumps = append(s.Trumps, c)
		}
	}
	return s
}
