package internal

import "leleon/internal/domain"

// BetTuning holds the weights used to turn a hand into a bet.
type BetTuning struct {
	LeonWeight   float64
	HonourWeight float64 // A, K, Q, J
	MidWeight    float64 // 10, 9
	// AudaceBoost is added with AudaceBoostChance when an audace hand holds the Léon.
	AudaceBoost       int
	AudaceBoostChance float64
	// ManyTricks is the trick need above which a balanced bot leads its strongest card.
	ManyTricks int
}

// HandProfile counts the cards of a hand that are likely to take tricks.
type HandProfile struct {
	TotalCards int
	Leons      int
	Honours    int
	Mids       int
}

// ProfileHand classifies every card of the hand.
func ProfileHand(hand []domain.Card) HandProfile {
	profile := HandProfile{TotalCards: len(hand)}
	for _, c := range hand {
		switch c.Rank {
		case domain.RankLeon:
			profile.Leons++
		case domain.RankA, domain.RankK, domain.RankQ, domain.RankJ:
			profile.Honours++
		case domain.Rank10, domain.Rank9:
			profile.Mids++
		}
	}
	return profile
}

// Units is the weighted number of strong cards in the hand.
func (p HandProfile) Units(t BetTuning) float64 {
	return float64(p.Leons)*t.LeonWeight + float64(p.Honours)*t.HonourWeight + float64(p.Mids)*t.MidWeight
}

// ClampBet keeps a bet within [0, handSize].
func ClampBet(bet, handSize int) int {
	if bet < 0 {
		return 0
	}
	if bet > handSize {
		return handSize
	}
	return bet
}
