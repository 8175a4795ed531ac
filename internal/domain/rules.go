package domain

import "errors"

var (
	ErrEmptyTrick = errors.New("trick has no cards")
	ErrNoPlayers  = errors.New("no seated players")
)

// ReasonMustFollowSuit is reported when a card of the led suit had to be played.
const ReasonMustFollowSuit = "must follow suit"

// FaceKind distinguishes how a played card takes part in comparisons.
type FaceKind int

const (
	// FaceOrdinary is a regular card compared by its own suit and rank.
	FaceOrdinary FaceKind = iota
	// FaceDeclared is the Léon played as a declared suit and rank.
	FaceDeclared
	// FaceUndeclared is the Léon played without a declaration. It beats everything.
	FaceUndeclared
)

// Face is the effective identity of a played card.
type Face struct {
	Kind FaceKind
	Suit Suit
	Rank Rank
}

// Face resolves the played card into its tagged comparison identity.
func (p PlayedCard) Face() Face {
	switch {
	case !p.IsLeon():
		return Face{Kind: FaceOrdinary, Suit: p.Suit, Rank: p.Rank}
	case p.LeonedAs != nil:
		return Face{Kind: FaceDeclared, Suit: p.LeonedAs.Suit, Rank: p.LeonedAs.Rank}
	default:
		return Face{Kind: FaceUndeclared, Suit: SuitJoker, Rank: RankLeon}
	}
}

// EffectiveSuit is the suit a played card counts as.
func (p PlayedCard) EffectiveSuit() Suit {
	return p.Face().Suit
}

// Legality is the outcome of a play check.
type Legality struct {
	Legal  bool
	Reason string
}

// CheckPlay decides whether card may be played from hand onto trick.
func CheckPlay(card Card, hand []Card, trick Trick) Legality {
	if len(trick.Plays) == 0 || card.IsLeon() {
		return Legality{Legal: true}
	}
	lead := trick.LeadSuit
	if card.Suit == lead {
		return Legality{Legal: true}
	}
	for _, c := range hand {
		if c.ID != card.ID && !c.IsLeon() && c.Suit == lead {
			return Legality{Legal: false, Reason: ReasonMustFollowSuit}
		}
	}
	return Legality{Legal: true}
}

// LegalCards filters hand down to the cards CheckPlay accepts.
func LegalCards(hand []Card, trick Trick) []Card {
	out := make([]Card, 0, len(hand))
	for _, c := range hand {
		if CheckPlay(c, hand, trick).Legal {
			out = append(out, c)
		}
	}
	return out
}

var highTieRanks = map[Rank]bool{RankA: true, RankK: true, RankQ: true, RankJ: true, Rank10: true}

// Beats reports whether challenger takes the lead from incumbent.
func Beats(challenger, incumbent PlayedCard, lead Suit, trump *Suit) bool {
	cf, inf := challenger.Face(), incumbent.Face()

	switch {
	case cf.Kind == FaceUndeclared:
		return true
	case inf.Kind == FaceUndeclared:
		return false
	}

	if cf.Suit == inf.Suit && cf.Rank == inf.Rank {
		challengerIsLeon := cf.Kind == FaceDeclared
		incumbentIsLeon := inf.Kind == FaceDeclared
		if highTieRanks[cf.Rank] {
			// The real honour keeps its place above a Léon wearing it.
			return !challengerIsLeon && incumbentIsLeon
		}
		return incumbentIsLeon && !challengerIsLeon
	}

	if trump != nil {
		ct, it := cf.Suit == *trump, inf.Suit == *trump
		if ct && !it {
			return true
		}
		if it && !ct {
			return false
		}
		if ct && it {
			return RankValue(cf.Rank) > RankValue(inf.Rank)
		}
	}

	cl, il := cf.Suit == lead, inf.Suit == lead
	if cl && !il {
		return true
	}
	if il && !cl {
		return false
	}
	if cl && il {
		return RankValue(cf.Rank) > RankValue(inf.Rank)
	}
	return false
}

// BestPlay returns the index of the play currently winning the trick.
func BestPlay(trick Trick, trump *Suit) (int, error) {
	if len(trick.Plays) == 0 {
		return -1, ErrEmptyTrick
	}
	best := 0
	for i := 1; i < len(trick.Plays); i++ {
		if Beats(trick.Plays[i].Card, trick.Plays[best].Card, trick.LeadSuit, trump) {
			best = i
		}
	}
	return best, nil
}

// TrickWinner returns the id of the player who won the trick.
func TrickWinner(trick Trick, trump *Suit) (string, error) {
	best, err := BestPlay(trick, trump)
	if err != nil {
		return "", err
	}
	return trick.Plays[best].PlayerID, nil
}

var maxRoundsByPlayers = map[int]int{2: 26, 3: 17, 4: 13, 5: 10, 6: 8, 7: 7, 8: 6, 9: 5, 10: 5}

// DefaultMaxRounds applies to player counts missing from the table.
const DefaultMaxRounds = 13

// MaxRounds is the largest hand size reached for n seated players.
func MaxRounds(n int) int {
	if m, ok := maxRoundsByPlayers[n]; ok {
		return m
	}
	return DefaultMaxRounds
}

// TotalRounds is the number of rounds in a full game: up then back down.
func TotalRounds(n int) int {
	return 2 * MaxRounds(n)
}

// RoundSetup returns the phase and hand size of round r for n players.
// The last round of the descent is played with a single card, like the first.
func RoundSetup(r, n int) (Phase, int) {
	max := MaxRounds(n)
	if r <= max {
		return PhaseAscending, r
	}
	cards := max - (r - max)
	if cards < 1 {
		cards = 1
	}
	return PhaseDescending, cards
}
