package services

import "time"

// QueueEvent is pushed to the monitoring stream whenever the queue state
// changes: locks, unlocks, completions, OOS results, hold activity.
type QueueEvent struct {
	Type        string    `json:"type"`
	QueueItemID string    `json:"queue_item_id,omitempty"`
	SessionID   string    `json:"session_id,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	Detail      string    `json:"detail,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// EventPublisher fans queue events out to whoever watches (the monitoring
// server's websocket clients). Implementations must not block.
type EventPublisher interface {
	Publish(event QueueEvent)
}

// NopPublisher discards events; used when monitoring is disabled and in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(QueueEvent) {}
