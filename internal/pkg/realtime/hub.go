package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

// Notifier is the best-effort event delivery contract. Delivery is
// at-most-once: offline targets are silently dropped and failures never
// surface to the triggering operation.
type Notifier interface {
	Notify(userID int64, event Event)
}

// MessageSink persists a chat message routed through the hub.
type MessageSink interface {
	SaveMessage(ctx context.Context, senderID, receiverID int64, text string) error
}

// Hub owns the presence registry and routes events to live connections.
type Hub struct {
	registry *Registry
	sink     MessageSink
	logger   zerolog.Logger
}

// NewHub creates a new Hub instance around the given registry. sink may be
// nil, in which case inbound chat frames are delivered but not persisted.
func NewHub(registry *Registry, sink MessageSink, logger zerolog.Logger) *Hub {
	return &Hub{
		registry: registry,
		sink:     sink,
		logger:   logger,
	}
}

// Registry exposes the presence registry backing this hub.
func (h *Hub) Registry() *Registry {
	return h.registry
}

// Notify delivers an event to the target user's connection if one is
// registered. The event is dropped when the user is offline or their send
// buffer is full; it never blocks and never reports an error.
func (h *Hub) Notify(userID int64, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Str("event", event.Event).Msg("Failed to marshal realtime event")
		return
	}

	if h.registry.push(userID, data) {
		h.logger.Debug().
			Int64("userID", userID).
			Str("event", event.Event).
			Msg("Realtime event delivered")
		return
	}

	h.logger.Debug().
		Int64("userID", userID).
		Str("event", event.Event).
		Msg("Realtime event dropped, user offline")
}

// handleInbound dispatches a client-sent frame.
func (h *Hub) handleInbound(client *Client, frame *inboundFrame) {
	switch frame.Event {
	case EventSendMessage:
		h.handleSendMessage(client, frame)
	default:
		h.logger.Debug().
			Int64("userID", client.userID).
			Str("event", frame.Event).
			Msg("Ignoring unknown client event")
	}
}

// handleSendMessage persists the message row, then makes a best-effort
// delivery to the receiver. Persistence failure skips delivery; delivery
// failure is silent.
func (h *Hub) handleSendMessage(client *Client, frame *inboundFrame) {
	if frame.Receiver <= 0 || frame.Text == "" {
		h.logger.Debug().
			Int64("userID", client.userID).
			Msg("Discarding malformed sendMessage frame")
		return
	}

	if h.sink != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := h.sink.SaveMessage(ctx, client.userID, frame.Receiver, frame.Text); err != nil {
			h.logger.Error().
				Err(err).
				Int64("senderID", client.userID).
				Int64("receiverID", frame.Receiver).
				Msg("Failed to persist websocket message")
			return
		}
	}

	h.Notify(frame.Receiver, NewChatEvent(client.userID, frame.Text))
	h.Notify(frame.Receiver, NewNotificationEvent(NotificationTypeChat, "You received a new message", client.userID))
}
