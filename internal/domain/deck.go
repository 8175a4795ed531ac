package domain

import (
	"errors"
	"math/rand"
	"sort"
)

// DeckSize is the number of cards in a full deck: 52 regular cards and the Léon.
const DeckSize = 53

// ErrDeckExhausted is returned when a deal cannot leave a trump-reveal card.
var ErrDeckExhausted = errors.New("deck exhausted before trump reveal")

var rankValues = map[Rank]int{
	Rank2: 2, Rank3: 3, Rank4: 4, Rank5: 5, Rank6: 6, Rank7: 7, Rank8: 8,
	Rank9: 9, Rank10: 10, RankJ: 11, RankQ: 12, RankK: 13, RankA: 14,
	RankLeon: 15,
}

var suitOrder = map[Suit]int{
	SuitHearts: 0, SuitDiamonds: 1, SuitClubs: 2, SuitSpades: 3, SuitJoker: 4,
}

// RankValue returns the comparison value of a rank, 0 for unknown ranks.
func RankValue(r Rank) int {
	return rankValues[r]
}

// ValidSuit reports whether s is one of the four regular suits.
func ValidSuit(s Suit) bool {
	_, ok := suitOrder[s]
	return ok && s != SuitJoker
}

// ValidRank reports whether r is one of the thirteen regular ranks.
func ValidRank(r Rank) bool {
	_, ok := rankValues[r]
	return ok && r != RankLeon
}

// CardID builds the stable identifier of a card.
func CardID(s Suit, r Rank) string {
	return string(s) + "-" + string(r)
}

// LeonCard returns the wildcard.
func LeonCard() Card {
	return Card{ID: CardID(SuitJoker, RankLeon), Suit: SuitJoker, Rank: RankLeon}
}

// NewDeck returns the 53 cards in a fixed order: suits in display order, ranks ascending, then the Léon.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{ID: CardID(s, r), Suit: s, Rank: r})
		}
	}
	return append(deck, LeonCard())
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Deal hands cardsPerPlayer cards to each of players seats round-robin and returns
// the next card as the trump reveal. Seat 0 receives the first card.
func Deal(deck []Card, players, cardsPerPlayer int) ([][]Card, *Card, error) {
	if players <= 0 {
		return nil, nil, ErrNoPlayers
	}
	needed := players*cardsPerPlayer + 1
	if cardsPerPlayer < 0 || needed > len(deck) {
		return nil, nil, ErrDeckExhausted
	}

	hands := make([][]Card, players)
	for i := range hands {
		hands[i] = make([]Card, 0, cardsPerPlayer)
	}
	idx := 0
	for c := 0; c < cardsPerPlayer; c++ {
		for p := 0; p < players; p++ {
			hands[p] = append(hands[p], deck[idx])
			idx++
		}
	}
	reveal := deck[idx]
	return hands, &reveal, nil
}

// ResolveTrump maps the reveal card to the round's trump. A Léon reveal leaves no fixed trump.
func ResolveTrump(reveal *Card) *Suit {
	if reveal == nil || reveal.IsLeon() {
		return nil
	}
	s := reveal.Suit
	return &s
}

// SortHand orders a hand by suit, then by descending rank. The Léon sorts last.
func SortHand(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		si, sj := suitOrder[cards[i].Suit], suitOrder[cards[j].Suit]
		if si != sj {
			return si < sj
		}
		return rankValues[cards[i].Rank] > rankValues[cards[j].Rank]
	})
}
