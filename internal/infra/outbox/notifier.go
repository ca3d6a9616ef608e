package outbox

import (
	"context"
	"encoding/json"
	"log/slog"

	"bengkel-service/internal/usecase/shared"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Topics is every topic commands write to the outbox.
var Topics = []string{
	shared.TopicBookingCreated,
	shared.TopicBookingCancelled,
	shared.TopicHistoryCreated,
	shared.TopicHistoryUpdated,
}

func NewPubSub(logger watermill.LoggerAdapter) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, logger)
}

// Notifier stands in for customer messaging: it logs every delivered event.
type Notifier struct {
	subscriber message.Subscriber
	logger     *slog.Logger
}

func NewNotifier(subscriber message.Subscriber, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{subscriber: subscriber, logger: logger}
}

// Run subscribes to every topic and returns once subscriptions are active.
// Consumption stops when ctx is cancelled.
func (n *Notifier) Run(ctx context.Context) error {
	for _, topic := range Topics {
		messages, err := n.subscriber.Subscribe(ctx, topic)
		if err != nil {
			return err
		}
		go n.consume(topic, messages)
	}
	return nil
}

func (n *Notifier) consume(topic string, messages <-chan *message.Message) {
	for msg := range messages {
		var payload map[string]any
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			n.logger.Warn("dropping malformed notification",
				"topic", topic,
				"message_id", msg.UUID,
				"error", err.Error())
			msg.Ack()
			continue
		}

		n.logger.Info("customer notification",
			"topic", topic,
			"job_id", msg.Metadata.Get(metadataJobID),
			"attempt", msg.Metadata.Get(metadataAttempt),
			"payload", payload)
		msg.Ack()
	}
}
