package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	saved []savedMessage
	err   error
}

type savedMessage struct {
	senderID   int64
	receiverID int64
	text       string
}

func (s *fakeSink) SaveMessage(_ context.Context, senderID, receiverID int64, text string) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, savedMessage{senderID, receiverID, text})
	return nil
}

func decodeEvent(t *testing.T, data []byte) Event {
	t.Helper()
	var event Event
	require.NoError(t, json.Unmarshal(data, &event))
	return event
}

func TestHubNotifyDeliversToOnlineUser(t *testing.T) {
	registry := NewRegistry()
	hub := NewHub(registry, nil, zerolog.Nop())

	client := newTestClient(7)
	registry.Register(client)

	hub.Notify(7, NewChatEvent(3, "hi there"))

	event := decodeEvent(t, <-client.send)
	assert.Equal(t, EventReceiveMessage, event.Event)

	payload := event.Data.(map[string]interface{})
	assert.Equal(t, float64(3), payload["sender"])
	assert.Equal(t, "hi there", payload["text"])
}

func TestHubNotifyOfflineUserIsNoOp(t *testing.T) {
	registry := NewRegistry()
	hub := NewHub(registry, nil, zerolog.Nop())

	// Must not panic or block
	hub.Notify(99, NewNotificationEvent(NotificationTypeChat, "text", 1))
}

func TestHubInboundMessagePersistsThenDelivers(t *testing.T) {
	registry := NewRegistry()
	sink := &fakeSink{}
	hub := NewHub(registry, sink, zerolog.Nop())

	sender := newTestClient(1)
	receiver := newTestClient(2)
	registry.Register(sender)
	registry.Register(receiver)

	hub.handleInbound(sender, &inboundFrame{Event: EventSendMessage, Receiver: 2, Text: "hello"})

	require.Len(t, sink.saved, 1)
	assert.Equal(t, savedMessage{senderID: 1, receiverID: 2, text: "hello"}, sink.saved[0])

	// Receiver gets the chat event and a notification
	chat := decodeEvent(t, <-receiver.send)
	assert.Equal(t, EventReceiveMessage, chat.Event)

	notif := decodeEvent(t, <-receiver.send)
	assert.Equal(t, EventNotification, notif.Event)
	payload := notif.Data.(map[string]interface{})
	assert.Equal(t, NotificationTypeChat, payload["type"])
	assert.Equal(t, float64(1), payload["from"])
}

func TestHubInboundMessagePersistFailureSkipsDelivery(t *testing.T) {
	registry := NewRegistry()
	sink := &fakeSink{err: errors.New("db down")}
	hub := NewHub(registry, sink, zerolog.Nop())

	sender := newTestClient(1)
	receiver := newTestClient(2)
	registry.Register(sender)
	registry.Register(receiver)

	hub.handleInbound(sender, &inboundFrame{Event: EventSendMessage, Receiver: 2, Text: "hello"})

	assert.Empty(t, receiver.send)
}

func TestHubInboundMalformedFrameIsDiscarded(t *testing.T) {
	registry := NewRegistry()
	sink := &fakeSink{}
	hub := NewHub(registry, sink, zerolog.Nop())

	sender := newTestClient(1)
	registry.Register(sender)

	hub.handleInbound(sender, &inboundFrame{Event: EventSendMessage, Receiver: 0, Text: "no receiver"})
	hub.handleInbound(sender, &inboundFrame{Event: EventSendMessage, Receiver: 2, Text: ""})
	hub.handleInbound(sender, &inboundFrame{Event: "unknownEvent"})

	assert.Empty(t, sink.saved)
}
