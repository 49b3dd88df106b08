package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Bridge implements Publisher and Subscriber on top of watermill's
// in-process GoChannel transport. One bridge serves the whole process.
type Bridge struct {
	pub message.Publisher
	sub message.Subscriber
}

// NewBridge initializes an in-memory pub/sub bridge.
func NewBridge() *Bridge {
	logger := watermill.NewStdLogger(false, false)
	goChannel := gochannel.NewGoChannel(gochannel.Config{}, logger)

	return &Bridge{pub: goChannel, sub: goChannel}
}

// Publish implements the Publisher interface.
func (b *Bridge) Publish(ctx context.Context, msg Message) error {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}
	return b.pub.Publish(msg.Topic, wmMsg)
}

// Subscribe implements the Subscriber interface. Message processing runs in
// a goroutine so the call is non-blocking; it ends when ctx is canceled or
// the bridge is closed.
func (b *Bridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := b.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wmMsg := range messages {
			metadata := make(map[string]string, len(wmMsg.Metadata))
			for k, v := range wmMsg.Metadata {
				metadata[k] = v
			}
			msg := Message{Topic: topic, Payload: wmMsg.Payload, Metadata: metadata}

			if err := handler(ctx, msg); err != nil {
				slog.Error("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
				wmMsg.Nack()
			} else {
				wmMsg.Ack()
			}
		}
		slog.Debug("Subscription message loop ended", "topic", topic)
	}()

	return nil
}

// Close shuts down the bridge and ends all subscriptions.
func (b *Bridge) Close() error {
	return b.sub.Close()
}
