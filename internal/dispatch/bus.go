package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/nfrund/pinboard/internal/tagmgr"
)

// Handler processes one action.
type Handler func(ctx context.Context, action Action) error

// Bus routes actions to handlers by tag over watermill's in-memory GoChannel.
// The tag's value is used as the watermill topic.
type Bus struct {
	tags   *tagmgr.Manager
	pub    message.Publisher
	sub    message.Subscriber
	logger watermill.LoggerAdapter
}

// metaKeyType carries the tag value through watermill's metadata.
const metaKeyType = "action_type"

// NewBus creates an in-memory bus that only accepts tags registered in tags.
func NewBus(tags *tagmgr.Manager) *Bus {
	logger := watermill.NewStdLogger(false, false)
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		logger,
	)

	return &Bus{
		tags:   tags,
		pub:    goChannel,
		sub:    goChannel,
		logger: logger,
	}
}

func toMessage(action Action) *message.Message {
	msg := message.NewMessage(action.ID, message.Payload(action.Payload))
	for k, v := range action.Metadata {
		msg.Metadata.Set(k, v)
	}
	msg.Metadata.Set(metaKeyType, action.Type.Value())
	return msg
}

func (b *Bus) fromMessage(msg *message.Message) (Action, error) {
	tag, err := b.tags.Lookup(msg.Metadata.Get(metaKeyType))
	if err != nil {
		return Action{}, err
	}

	metadata := make(map[string]string, len(msg.Metadata))
	for k, v := range msg.Metadata {
		if k != metaKeyType {
			metadata[k] = v
		}
	}

	var payload []byte
	if len(msg.Payload) > 0 {
		payload = msg.Payload
	}
	return Action{
		ID:       msg.UUID,
		Type:     tag,
		Payload:  payload,
		Metadata: metadata,
	}, nil
}

// Dispatch publishes an action to every subscriber of its tag. Tags that are
// not registered with the bus's manager fail with tagmgr.ErrUnknownTag.
func (b *Bus) Dispatch(ctx context.Context, action Action) error {
	if !b.tags.Has(action.Type) {
		return unknownTag(action.Type)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := toMessage(action)
	msg.SetContext(ctx)
	if err := b.pub.Publish(action.Type.Value(), msg); err != nil {
		return fmt.Errorf("dispatch %s: %w", action.Type.Name(), err)
	}
	return nil
}

// Subscribe starts delivering actions tagged with tag to handler. It returns
// once the subscription is active; delivery stops when ctx is canceled or the
// bus is closed.
func (b *Bus) Subscribe(ctx context.Context, tag tagmgr.Tag, handler Handler) error {
	if !b.tags.Has(tag) {
		return unknownTag(tag)
	}

	messages, err := b.sub.Subscribe(ctx, tag.Value())
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", tag.Name(), err)
	}

	go func() {
		for msg := range messages {
			action, err := b.fromMessage(msg)
			if err != nil {
				slog.Error("Dropping action with unresolvable tag", "topic", tag.Value(), "msg_id", msg.UUID, "error", err)
				msg.Ack()
				continue
			}

			// GoChannel redelivers nacked messages forever, so failures are
			// logged and acknowledged.
			if err := handler(ctx, action); err != nil {
				slog.Error("Failed to handle action", "tag", tag.Name(), "action_id", action.ID, "error", err)
			}
			msg.Ack()
		}
		slog.Debug("Subscription loop ended", "tag", tag.Name())
	}()

	return nil
}

// Close shuts down the bus and ends all subscriptions.
func (b *Bus) Close() error {
	return b.pub.Close()
}
