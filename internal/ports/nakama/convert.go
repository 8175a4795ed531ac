package nakama

import (
	"encoding/json"
	"fmt"

	"leleon/internal/app"
	"leleon/internal/domain"
)

// gameForViewer copies a game with every hand but the viewer's emptied.
func gameForViewer(game *domain.Game, viewerID string) *domain.Game {
	if game == nil {
		return nil
	}
	view := game.Clone()
	for _, p := range view.Players {
		if p.ID != viewerID {
			p.Hand = []domain.Card{}
		}
	}
	return view
}

// eventsForViewer drops events addressed to other players.
func eventsForViewer(events []app.Event, viewerID string) []app.Event {
	out := make([]app.Event, 0, len(events))
	for _, ev := range events {
		if visibleTo(ev, viewerID) {
			out = append(out, ev)
		}
	}
	return out
}

func visibleTo(ev app.Event, playerID string) bool {
	if len(ev.Recipients) == 0 {
		return true
	}
	for _, r := range ev.Recipients {
		if r == playerID {
			return true
		}
	}
	return false
}

func notificationCode(kind app.EventKind) int {
	switch kind {
	case app.EventPlayerJoined:
		return NotifyPlayerJoined
	case app.EventGameStarted:
		return NotifyGameStarted
	case app.EventRoundStarted:
		return NotifyRoundStarted
	case app.EventHandDealt:
		return NotifyHandDealt
	case app.EventBetPlaced:
		return NotifyBetPlaced
	case app.EventBettingClosed:
		return NotifyBettingClosed
	case app.EventCardPlayed:
		return NotifyCardPlayed
	case app.EventTrickCompleted:
		return NotifyTrickCompleted
	case app.EventRoundCompleted:
		return NotifyRoundCompleted
	case app.EventGameFinished:
		return NotifyGameFinished
	case app.EventSanctionApplied:
		return NotifySanctionApplied
	default:
		return 0
	}
}

// payloadContent turns an event payload into the map Nakama notifications carry.
func payloadContent(ev app.Event) (map[string]interface{}, error) {
	data, err := json.Marshal(ev.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", ev.Kind, err)
	}
	content := map[string]interface{}{}
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to convert %s payload: %w", ev.Kind, err)
	}
	content["kind"] = string(ev.Kind)
	return content, nil
}
