// Package events defines the authentication event trail. Handlers publish
// an event after every provider operation that changes auth state; the
// audit recorder subscribes and writes a structured log entry for each.
// Publishing is fire-and-forget: a bus failure never blocks a screen.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/westernedge/portal/internal/pubsub"
)

// Topics for the authentication event trail.
const (
	TopicSignedIn        = "auth.signed_in"
	TopicSignedUp        = "auth.signed_up"
	TopicResetRequested  = "auth.reset_requested"
	TopicPasswordUpdated = "auth.password_updated"
	TopicSignedOut       = "auth.signed_out"
)

// AllTopics lists every auth trail topic, in the order the recorder
// subscribes to them.
var AllTopics = []string{
	TopicSignedIn,
	TopicSignedUp,
	TopicResetRequested,
	TopicPasswordUpdated,
	TopicSignedOut,
}

// AuthEvent is the payload published on every auth trail topic.
type AuthEvent struct {
	ID         string    `json:"id"`
	Email      string    `json:"email,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Recorder publishes and consumes auth trail events.
type Recorder struct {
	pub pubsub.Publisher
}

// NewRecorder creates a Recorder that publishes on the given bus.
func NewRecorder(pub pubsub.Publisher) *Recorder {
	return &Recorder{pub: pub}
}

// Publish emits an auth event on the given topic. Failures are logged and
// swallowed; the trail is advisory and must not fail a user-facing request.
func (r *Recorder) Publish(ctx context.Context, topic, userID, email string) {
	if r == nil || r.pub == nil {
		return
	}

	event := AuthEvent{
		ID:         uuid.NewString(),
		Email:      email,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to encode auth event", "topic", topic, "error", err)
		return
	}

	msg := pubsub.Message{
		Topic:    topic,
		Payload:  payload,
		Metadata: map[string]string{"event_id": event.ID},
	}
	if err := r.pub.Publish(ctx, msg); err != nil {
		slog.Error("Failed to publish auth event", "topic", topic, "error", err)
	}
}

// Record subscribes to every auth trail topic and logs each event. It
// returns once all subscriptions are active.
func Record(ctx context.Context, sub pubsub.Subscriber) error {
	for _, topic := range AllTopics {
		if err := sub.Subscribe(ctx, topic, logEvent); err != nil {
			return err
		}
	}
	return nil
}

func logEvent(ctx context.Context, msg pubsub.Message) error {
	var event AuthEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return err
	}
	slog.Info("auth event",
		"topic", msg.Topic,
		"event_id", event.ID,
		"user_id", event.UserID,
		"email", event.Email,
		"occurred_at", event.OccurredAt,
	)
	return nil
}
