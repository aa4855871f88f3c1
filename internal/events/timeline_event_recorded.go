package events

import "time"

const TimelineEventRecordedTopic = "company.timeline.event.recorded.v1"

// TimelineEventRecordedEvent is the integration event published after a
// timeline event is appended to the log.
type TimelineEventRecordedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EventID    string    `json:"event_id"`
	Kind       string    `json:"kind"`
	Seq        int64     `json:"seq"`
	OccurredAt time.Time `json:"occurred_at"`
}
