package pubsub

import "context"

// Message is the envelope passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g. "auth.signed_in").
	Topic string
	// Payload contains the encoded event data.
	Payload []byte
	// Metadata carries arbitrary key-value context (e.g. timestamps).
	Metadata map[string]string
}

// Handler defines the function signature for processing a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher defines the contract for sending messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber defines the contract for receiving messages from the bus.
type Subscriber interface {
	// Subscribe starts listening to the given topic, processing messages
	// with the handler. It returns once the subscription is active.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
