package internal

import (
	"sort"

	"leleon/internal/domain"
)

// CardValue is the strength of a card for bot ordering. The Léon is always the maximum.
func CardValue(c domain.Card) int {
	return domain.RankValue(c.Rank)
}

// SortByStrength returns a copy of cards ordered from weakest to strongest.
func SortByStrength(cards []domain.Card) []domain.Card {
	out := append([]domain.Card(nil), cards...)
	sort.SliceStable(out, func(i, j int) bool {
		return CardValue(out[i]) < CardValue(out[j])
	})
	return out
}

// Weakest returns the lowest card. cards must not be empty.
func Weakest(cards []domain.Card) domain.Card {
	return SortByStrength(cards)[0]
}

// Strongest returns the highest card. cards must not be empty.
func Strongest(cards []domain.Card) domain.Card {
	sorted := SortByStrength(cards)
	return sorted[len(sorted)-1]
}

// Middle returns the median card by strength. cards must not be empty.
func Middle(cards []domain.Card) domain.Card {
	sorted := SortByStrength(cards)
	return sorted[len(sorted)/2]
}

// WinningCards splits candidates into those that would take the trick if played now and the rest.
// On an empty trick every card wins.
func WinningCards(candidates []domain.Card, trick domain.Trick, trump *domain.Suit) (winning, losing []domain.Card) {
	best, err := domain.BestPlay(trick, trump)
	if err != nil {
		return append([]domain.Card(nil), candidates...), nil
	}
	incumbent := trick.Plays[best].Card
	for _, c := range candidates {
		if domain.Beats(domain.PlayedCard{Card: c}, incumbent, trick.LeadSuit, trump) {
			winning = append(winning, c)
		} else {
			losing = append(losing, c)
		}
	}
	return winning, losing
}
