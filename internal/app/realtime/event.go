/*
Package realtime implements live delivery over WebSocket connections: the connection registry,
the presence tracker, the event router and the hub that drives each connection's lifecycle.

Every frame in both directions is a JSON envelope {"event": <name>, "data": <payload>}.
*/
package realtime

import (
	"encoding/json"
	"time"

	"chatserver/internal/app/store"
	"chatserver/internal/pkg/randx"
)

// EventKind is the name carried in the "event" field of an envelope.
type EventKind string

const (
	EventStartTyping     EventKind = "start-typing"
	EventStopTyping      EventKind = "stop-typing"
	EventNewMessage      EventKind = "new-message"
	EventNewMessageAlert EventKind = "new-message-alert"
	EventOnlineUser      EventKind = "online-user"
	EventRefetchData     EventKind = "refetch-data"
	EventAlert           EventKind = "alert"
	EventNewRequest      EventKind = "new-request"

	// inbound only
	EventChatJoin EventKind = "chat-join"
	EventChatExit EventKind = "chat-exit"
)

// MaxContentBytes bounds the text of a live message.
const MaxContentBytes = 5000

// isoMillis matches the millisecond ISO-8601 timestamps web clients produce.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Event is an outbound envelope.
type Event struct {
	Kind EventKind `json:"event"`
	Data any       `json:"data,omitempty"`
}

type inboundEnvelope struct {
	Event EventKind       `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// TypingPayload is sent with start-typing and stop-typing. Chat ids on the wire are the
// store's UUIDs; any other id fails validation and the frame is dropped. Members is accepted
// for compatibility only, the audience always comes from the chat's stored membership.
type TypingPayload struct {
	ChatID  string   `json:"chatId" validate:"required,uuid"`
	Members []string `json:"members" validate:"max=100"`
}

// NewMessagePayload is sent with new-message. ChatID follows the TypingPayload rules.
type NewMessagePayload struct {
	ChatID  string   `json:"chatId" validate:"required,uuid"`
	Members []string `json:"members" validate:"max=100"`
	Message string   `json:"message" validate:"required,max=5000"`
}

// PresencePayload is sent with chat-join and chat-exit. ChatID is optional; without it
// the audience is the supplied members restricted to the sender and the users sharing
// a chat with it.
type PresencePayload struct {
	UserID  string   `json:"userId"`
	ChatID  string   `json:"chatId,omitempty" validate:"omitempty,uuid"`
	Members []string `json:"members" validate:"max=100"`
}

// ChatScope is the body of events that only name a chat.
type ChatScope struct {
	ChatID string `json:"chatId"`
}

// Sender is the snapshot of the author embedded in a live message.
type Sender struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// LiveMessage is the message representation delivered before (or without) durable storage.
// Its ID is ephemeral and differs from the stored record's.
type LiveMessage struct {
	ID          string             `json:"_id"`
	Content     string             `json:"content"`
	Attachments []store.Attachment `json:"attachments,omitempty"`
	Sender      Sender             `json:"sender"`
	Chat        string             `json:"chat"`
	CreatedAt   string             `json:"createdAt"`
}

// NewLiveMessage builds a live message stamped now with a fresh ephemeral id.
func NewLiveMessage(chatID string, sender Sender, content string, attachments []store.Attachment) LiveMessage {
	return LiveMessage{
		ID:          randx.MessageID(),
		Content:     content,
		Attachments: attachments,
		Sender:      sender,
		Chat:        chatID,
		CreatedAt:   time.Now().UTC().Format(isoMillis),
	}
}

// StoredLiveMessage converts a persisted message into its live representation.
func StoredLiveMessage(m store.Message, sender Sender) LiveMessage {
	return LiveMessage{
		ID:          m.ID,
		Content:     m.Content,
		Attachments: m.Attachments,
		Sender:      sender,
		Chat:        m.ChatID,
		CreatedAt:   m.CreatedAt.UTC().Format(isoMillis),
	}
}

// NewMessageData is the body of new-message.
type NewMessageData struct {
	ChatID  string      `json:"chatId"`
	Message LiveMessage `json:"message"`
}

// AlertData is the body of alert.
type AlertData struct {
	ChatID  string `json:"chatId,omitempty"`
	Message string `json:"message"`
}
