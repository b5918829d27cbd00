package services

import (
	"context"
	"encoding/json"
	"time"

	"JATGo/config"
)

const (
	ChangeActionInsert = "INSERT"
	ChangeActionUpdate = "UPDATE"
	ChangeActionDelete = "DELETE"
)

// ChangeEvent is one entry in a user's change feed: a mutation on one of
// the tracker tables, with the affected row attached.
type ChangeEvent struct {
	Table     string      `json:"table"`
	Action    string      `json:"action"`
	Row       interface{} `json:"row"`
	Timestamp time.Time   `json:"timestamp"`
}

func changeChannel(userID string) string {
	return "changes:" + userID
}

// PublishChange pushes a change event onto the user's feed. Best-effort:
// consumers rebuild from the tables on reconnect, so a publish failure is
// logged and swallowed.
func PublishChange(ctx context.Context, userID string, event ChangeEvent) {
	if config.RedisClient == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		if config.Logger != nil {
			config.Logger.Errorw("change event marshal failed", "error", err, "table", event.Table)
		}
		return
	}

	if err := config.RedisClient.Publish(ctx, changeChannel(userID), payload).Err(); err != nil {
		if config.Logger != nil {
			config.Logger.Errorw("change event publish failed", "error", err, "userID", userID, "table", event.Table)
		}
	}
}

// SubscribeChanges opens a long-lived subscription to a user's change
// feed. The returned cancel func must be called on teardown; it closes the
// underlying subscription and, eventually, the returned channel.
func SubscribeChanges(ctx context.Context, userID string) (<-chan ChangeEvent, func()) {
	events := make(chan ChangeEvent, 16)

	if config.RedisClient == nil {
		close(events)
		return events, func() {}
	}

	sub := config.RedisClient.Subscribe(ctx, changeChannel(userID))

	go func() {
		defer close(events)
		for msg := range sub.Channel() {
			var event ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				if config.Logger != nil {
					config.Logger.Errorw("change event decode failed", "error", err)
				}
				continue
			}
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, func() { _ = sub.Close() }
}
