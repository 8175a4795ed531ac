package nakama

import (
	"context"

	"leleon/internal/app"
	"leleon/internal/domain"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

// notificationModule is the part of runtime.NakamaModule used to push events.
type notificationModule interface {
	NotificationsSend(ctx context.Context, notifications []*runtime.NotificationSend) error
}

// publishEvents sends each event to the seated humans allowed to see it, except the caller,
// who reads them from the RPC response. Delivery failures are logged only.
func publishEvents(ctx context.Context, logger runtime.Logger, nk notificationModule, game *domain.Game, events []app.Event, callerID string) {
	if nk == nil || game == nil || len(events) == 0 {
		return
	}

	var batch []*runtime.NotificationSend
	for _, ev := range events {
		code := notificationCode(ev.Kind)
		if code == 0 {
			continue
		}
		content, err := payloadContent(ev)
		if err != nil {
			logger.Warn("publishEvents: %v", err)
			continue
		}
		for _, p := range game.Players {
			if p.IsBot || p.ID == callerID || !visibleTo(ev, p.ID) {
				continue
			}
			if _, err := uuid.Parse(p.ID); err != nil {
				continue
			}
			batch = append(batch, &runtime.NotificationSend{
				UserID:     p.ID,
				Subject:    string(ev.Kind),
				Content:    content,
				Code:       code,
				Persistent: false,
			})
		}
	}
	if len(batch) == 0 {
		return
	}
	if err := nk.NotificationsSend(ctx, batch); err != nil {
		logger.Warn("publishEvents [Game:%s]: failed to send %d notifications: %v", game.ID, len(batch), err)
	}
}
