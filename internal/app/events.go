package app

import "leleon/internal/domain"

// EventKind identifies emitted domain events for Nakama dispatch.
type EventKind string

const (
	EventPlayerJoined    EventKind = "player_joined"
	EventGameStarted     EventKind = "game_started"
	EventRoundStarted    EventKind = "round_started"
	EventHandDealt       EventKind = "hand_dealt"
	EventBetPlaced       EventKind = "bet_placed"
	EventBettingClosed   EventKind = "betting_closed"
	EventCardPlayed      EventKind = "card_played"
	EventTrickCompleted  EventKind = "trick_completed"
	EventRoundCompleted  EventKind = "round_completed"
	EventGameFinished    EventKind = "game_finished"
	EventSanctionApplied EventKind = "sanction_applied"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind `json:"kind"`
	Payload    any       `json:"payload"`
	Recipients []string  `json:"recipients,omitempty"` // player IDs; empty means broadcast
}

type PlayerJoinedPayload struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Position int    `json:"position"`
	IsBot    bool   `json:"isBot"`
}

type GameStartedPayload struct {
	Players int `json:"players"`
	Rounds  int `json:"rounds"`
}

type RoundStartedPayload struct {
	Number         int          `json:"roundNumber"`
	CardsPerPlayer int          `json:"cardsPerPlayer"`
	Phase          domain.Phase `json:"phase"`
	Trump          *domain.Suit `json:"trumpSuit"`
	DealerID       string       `json:"dealerId"`
	FirstPlayerID  string       `json:"firstPlayerId"`
}

type HandDealtPayload struct {
	PlayerID string        `json:"playerId"`
	Hand     []domain.Card `json:"hand"`
}

type BetPlacedPayload struct {
	PlayerID     string `json:"playerId"`
	Bet          int    `json:"bet"`
	NextPlayerID string `json:"nextPlayerId"`
}

type BettingClosedPayload struct {
	Bets map[string]int `json:"bets"`
}

type CardPlayedPayload struct {
	PlayerID     string            `json:"playerId"`
	Card         domain.PlayedCard `json:"card"`
	NextPlayerID string            `json:"nextPlayerId,omitempty"`
}

type TrickCompletedPayload struct {
	WinnerID string       `json:"winnerId"`
	Trick    domain.Trick `json:"trick"`
}

type RoundCompletedPayload struct {
	Number  int                    `json:"roundNumber"`
	Results []domain.ScoringResult `json:"results"`
}

type GameFinishedPayload struct {
	Ranking []string `json:"ranking"`
}

type SanctionAppliedPayload struct {
	PlayerID string          `json:"playerId"`
	Sanction domain.Sanction `json:"sanction"`
	Points   int             `json:"points"`
}
