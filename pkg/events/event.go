package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event types emitted by the chat pipeline.
const (
	TypeChatAnswered       = "chat.answered"
	TypeInteractionFlagged = "chat.interaction_flagged"
	TypeHistoryReset       = "chat.history_reset"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "chat.answered").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// ChatAnswered describes one handled question.
func ChatAnswered(userID, branch string, status int, drugs, sources []string) BaseEvent {
	return BaseEvent{
		Type: TypeChatAnswered,
		Data: map[string]interface{}{
			"user_id": userID,
			"branch":  branch,
			"status":  status,
			"drugs":   drugs,
			"sources": sources,
		},
		OccurredAt: time.Now(),
	}
}

// InteractionFlagged records a structured interaction placed in front of the context.
func InteractionFlagged(userID, primaryID, secondaryID string) BaseEvent {
	return BaseEvent{
		Type: TypeInteractionFlagged,
		Data: map[string]interface{}{
			"user_id":      userID,
			"primary_id":   primaryID,
			"secondary_id": secondaryID,
		},
		OccurredAt: time.Now(),
	}
}

func HistoryReset(userID string) BaseEvent {
	return BaseEvent{
		Type:       TypeHistoryReset,
		Data:       map[string]interface{}{"user_id": userID},
		OccurredAt: time.Now(),
	}
}

type envelope struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// Encode serializes an event for the message bus.
func Encode(e Event) ([]byte, error) {
	return json.Marshal(envelope{
		Type:       e.EventType(),
		Data:       e.Payload(),
		OccurredAt: e.Timestamp(),
	})
}

// Decode is the inverse of Encode.
func Decode(data []byte) (BaseEvent, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return BaseEvent{}, fmt.Errorf("decode event: %w", err)
	}
	if env.Type == "" {
		return BaseEvent{}, fmt.Errorf("decode event: missing type")
	}
	return BaseEvent{Type: env.Type, Data: env.Data, OccurredAt: env.OccurredAt}, nil
}
