package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Publisher is the broker port the notifier writes through.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}

// RatesComputedEvent announces a finished rate computation to downstream
// consumers.
type RatesComputedEvent struct {
	EventID    string    `json:"event_id"`
	PropertyID string    `json:"property_id"`
	Source     string    `json:"source"`
	Blocks     int       `json:"blocks"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier publishes rate computation events. A nil notifier or one without
// a publisher is a no-op, so wiring stays optional.
type Notifier struct {
	Publisher   Publisher
	TopicPrefix string
	Logger      *slog.Logger
}

const ratesComputedTopic = "rates.computed"

// RatesComputed fires a best-effort notification; failures are logged, not
// propagated, since the computation itself already succeeded.
func (n *Notifier) RatesComputed(ctx context.Context, propertyID, source string, blocks int) {
	if n == nil || n.Publisher == nil {
		return
	}
	event := RatesComputedEvent{
		EventID:    uuid.NewString(),
		PropertyID: propertyID,
		Source:     source,
		Blocks:     blocks,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		if n.Logger != nil {
			n.Logger.Error("rates event encode failed", "error", err)
		}
		return
	}
	topic := n.TopicPrefix + ratesComputedTopic
	if err := n.Publisher.Publish(ctx, topic, propertyID, payload); err != nil && n.Logger != nil {
		n.Logger.Error("rates event publish failed", "topic", topic, "property_id", propertyID, "error", err)
	}
}
