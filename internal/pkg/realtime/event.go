package realtime

// Server-pushed event names
const (
	EventReceiveMessage = "receiveMessage"
	EventNotification   = "new_notification"
)

// Client-sent event names
const (
	EventSendMessage = "sendMessage"
)

// Notification types carried in a new_notification event
const (
	NotificationTypeChat       = "chat"
	NotificationTypeMentorship = "mentorship"
)

// Event is the envelope for every server-pushed frame.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// ChatPayload is the data of a receiveMessage event.
type ChatPayload struct {
	Sender int64  `json:"sender"`
	Text   string `json:"text"`
}

// NotificationPayload is the data of a new_notification event.
type NotificationPayload struct {
	Type string `json:"type"`
	Text string `json:"text"`
	From int64  `json:"from"`
}

// NewChatEvent builds a receiveMessage event.
func NewChatEvent(sender int64, text string) Event {
	return Event{
		Event: EventReceiveMessage,
		Data:  ChatPayload{Sender: sender, Text: text},
	}
}

// NewNotificationEvent builds a new_notification event.
func NewNotificationEvent(notifType, text string, from int64) Event {
	return Event{
		Event: EventNotification,
		Data:  NotificationPayload{Type: notifType, Text: text, From: from},
	}
}
