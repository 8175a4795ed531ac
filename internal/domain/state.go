package domain

import "time"

// Suit is the suit of a card. SuitJoker only appears on the Léon.
type Suit string

const (
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitClubs    Suit = "clubs"
	SuitSpades   Suit = "spades"
	SuitJoker    Suit = "joker"
)

// Suits lists the four regular suits in display order.
var Suits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

// Rank is the rank of a card. RankLeon only appears on the Léon.
type Rank string

const (
	Rank2    Rank = "2"
	Rank3    Rank = "3"
	Rank4    Rank = "4"
	Rank5    Rank = "5"
	Rank6    Rank = "6"
	Rank7    Rank = "7"
	Rank8    Rank = "8"
	Rank9    Rank = "9"
	Rank10   Rank = "10"
	RankJ    Rank = "J"
	RankQ    Rank = "Q"
	RankK    Rank = "K"
	RankA    Rank = "A"
	RankLeon Rank = "LEON"
)

// Ranks lists the thirteen regular ranks from lowest to highest.
var Ranks = []Rank{Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10, RankJ, RankQ, RankK, RankA}

// Mode selects the scoring formula of a game.
type Mode string

const (
	ModeSimplified Mode = "simplified"
	ModeAudace     Mode = "audace"
	ModeSecurite   Mode = "securite"
)

// Status is the lifecycle stage of a game.
type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusBetting  Status = "betting"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

// RoundStatus is the sub-status of the current round.
type RoundStatus string

const (
	RoundBetting   RoundStatus = "betting"
	RoundPlaying   RoundStatus = "playing"
	RoundCompleted RoundStatus = "completed"
)

// Phase tells whether hand sizes are climbing or falling.
type Phase string

const (
	PhaseAscending  Phase = "ascending"
	PhaseDescending Phase = "descending"
)

// Personality drives bot heuristics.
type Personality string

const (
	PersonalityAggressive Personality = "aggressive"
	PersonalityCautious   Personality = "cautious"
	PersonalityBalanced   Personality = "balanced"
)

// Card is a single physical card.
type Card struct {
	ID   string `json:"id"`
	Suit Suit   `json:"suit"`
	Rank Rank   `json:"rank"`
}

// IsLeon reports whether the card is the wildcard.
func (c Card) IsLeon() bool {
	return c.Rank == RankLeon
}

// Identity is a concrete suit and rank, used when the Léon is declared.
type Identity struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// PlayedCard is a card as laid on the table.
type PlayedCard struct {
	Card
	LeonedAs *Identity `json:"leonedAs,omitempty"`
}

// Play pairs a played card with the player who laid it.
type Play struct {
	PlayerID string     `json:"playerId"`
	Card     PlayedCard `json:"card"`
}

// Player holds the state of one seat.
type Player struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Position    int         `json:"position"`
	Score       int         `json:"score"`
	Hand        []Card      `json:"hand"`
	TricksWon   int         `json:"tricksWon"`
	Bet         *int        `json:"bet"`
	IsDealer    bool        `json:"isDealer"`
	IsCurrent   bool        `json:"isCurrentPlayer"`
	Connected   bool        `json:"isConnected"`
	IsBot       bool        `json:"isBot"`
	Personality Personality `json:"botPersonality,omitempty"`
}

// Trick is one exchange of a card per seated player.
type Trick struct {
	Plays    []Play `json:"cards"`
	LeadSuit Suit   `json:"leadSuit,omitempty"`
	WinnerID string `json:"winnerId,omitempty"`
}

// Round tracks the deal, bets and tricks of a single round.
type Round struct {
	Number         int            `json:"roundNumber"`
	CardsPerPlayer int            `json:"cardsPerPlayer"`
	Phase          Phase          `json:"phase"`
	Trump          *Suit          `json:"trumpSuit"`
	TrumpCard      *Card          `json:"trumpCard,omitempty"`
	DealerID       string         `json:"dealerId"`
	CurrentTrick   Trick          `json:"currentTrick"`
	Tricks         []Trick        `json:"tricks"`
	Bets           map[string]int `json:"bets"`
	Status         RoundStatus    `json:"status"`
}

// Game is the full state of a table.
type Game struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Mode        Mode            `json:"mode"`
	Status      Status          `json:"status"`
	MaxPlayers  int             `json:"maxPlayers"`
	Players     []*Player       `json:"players"`
	Round       *Round          `json:"currentRound"`
	LastResults []ScoringResult `json:"lastRoundResults,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
