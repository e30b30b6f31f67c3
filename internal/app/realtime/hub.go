package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"chatserver/internal/app/store"
	"chatserver/internal/pkg/logx"
	"chatserver/internal/pkg/req"
)

//go:generate go run go.uber.org/mock/mockgen -source=hub.go -destination=../../mocks/mock_hub.go -package=mocks

const (
	// lookupTimeout bounds membership reads made while dispatching.
	lookupTimeout = 5 * time.Second

	// persistTimeout bounds the write of a live message to the store.
	persistTimeout = 10 * time.Second
)

// ErrHubClosed is returned by Attach after Shutdown.
var ErrHubClosed = errors.New("realtime: hub is shut down")

// ChatDirectory answers the membership questions used to pick event audiences.
type ChatDirectory interface {
	// ChatMembers returns the members of chatID or store.ErrNotFound.
	ChatMembers(ctx context.Context, chatID string) ([]string, error)

	// CoMemberIDs returns the users sharing any chat, direct or group, with userID.
	CoMemberIDs(ctx context.Context, userID string) ([]string, error)
}

// MessageWriter persists messages sent over a live connection.
type MessageWriter interface {
	CreateMessage(ctx context.Context, arg store.CreateMessageParams) (store.Message, error)
}

// Hub owns the registry, presence set and router of one server process and drives
// every connection from Active to Closed.
type Hub struct {
	registry *Registry
	presence *Presence
	router   *Router

	chats    ChatDirectory
	messages MessageWriter

	// lifecycle serializes registry and presence mutations with the broadcast that follows them.
	lifecycle sync.Mutex
	closed    bool

	ctx    context.Context
	cancel context.CancelFunc

	logger zerolog.Logger
}

// NewHub constructs a Hub reading membership from chats and persisting through messages.
func NewHub(chats ChatDirectory, messages MessageWriter) *Hub {
	registry := NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())

	return &Hub{
		registry: registry,
		presence: NewPresence(),
		router:   NewRouter(registry),
		chats:    chats,
		messages: messages,
		ctx:      ctx,
		cancel:   cancel,
		logger:   logx.Component("Hub"),
	}
}

// Attach registers an authenticated client, closing any session it replaces.
func (h *Hub) Attach(c *Client) error {
	h.lifecycle.Lock()
	if h.closed {
		h.lifecycle.Unlock()
		return ErrHubClosed
	}

	prev := h.registry.Register(c.UserID(), c)
	c.setState(StateActive)
	h.lifecycle.Unlock()

	// the close handshake does network I/O, keep it outside the lock
	if prev != nil {
		h.logger.Warn().
			Str("user_id", c.UserID()).
			Msg("User already connected. Closing old connection for replacement.")
		prev.Kick("Session replaced by new connection. Check other tabs.")
	}

	h.logger.Info().
		Str("user_id", c.UserID()).
		Int("connections", h.registry.Len()).
		Msg("Client connected.")

	return nil
}

// Detach removes a disconnected client. Only the identity's current handle clears the
// registry and presence entries and triggers one presence broadcast to everyone.
func (h *Hub) Detach(c *Client) {
	h.lifecycle.Lock()
	defer h.lifecycle.Unlock()

	c.closeSend()

	if !h.registry.Release(c.UserID(), c) {
		h.logger.Debug().
			Str("user_id", c.UserID()).
			Msg("Ignoring disconnect of a STALE connection.")
		return
	}

	h.presence.MarkAbsent(c.UserID())

	// every remaining socket is already closing
	if !h.closed {
		h.router.BroadcastAll(Event{Kind: EventOnlineUser, Data: h.presence.Snapshot()})
	}

	h.logger.Info().
		Str("user_id", c.UserID()).
		Int("connections", h.registry.Len()).
		Msg("Client disconnected.")
}

// EmitToUsers delivers an event to the connected users among identities.
func (h *Hub) EmitToUsers(identities []string, kind EventKind, data any) {
	h.router.EmitToUsers(identities, Event{Kind: kind, Data: data})
}

// Online returns the current presence snapshot.
func (h *Hub) Online() []string {
	return h.presence.Snapshot()
}

// Connections returns the number of live connections.
func (h *Hub) Connections() int {
	return h.registry.Len()
}

// Shutdown closes every live connection and rejects later attaches.
func (h *Hub) Shutdown() {
	h.lifecycle.Lock()
	if h.closed {
		h.lifecycle.Unlock()
		return
	}
	h.closed = true
	clients := h.registry.All()
	h.lifecycle.Unlock()

	h.logger.Info().Int("connections", len(clients)).Msg("Shutting down Hub...")

	h.cancel()
	for _, c := range clients {
		c.closeWith(websocket.CloseGoingAway, "Server shutting down.")
	}

	h.logger.Info().Msg("Hub shutdown complete.")
}

// Dispatch handles one inbound frame. Malformed frames are logged and dropped and
// never end the connection.
func (h *Hub) Dispatch(c *Client, raw []byte) {
	if c.State() != StateActive {
		return
	}

	var in inboundEnvelope
	if err := json.Unmarshal(raw, &in); err != nil {
		c.logger.Warn().Err(err).Int("size", len(raw)).Msg("Client sent invalid JSON")
		return
	}

	switch in.Event {
	case EventStartTyping, EventStopTyping:
		h.handleTyping(c, in.Event, in.Data)

	case EventNewMessage:
		h.handleNewMessage(c, in.Data)

	case EventChatJoin:
		h.handlePresence(c, in.Data, true)

	case EventChatExit:
		h.handlePresence(c, in.Data, false)

	default:
		c.logger.Warn().Str("event", string(in.Event)).Msg("Client sent unsupported event")
	}
}

func (h *Hub) handleTyping(c *Client, kind EventKind, data json.RawMessage) {
	var p TypingPayload
	if !decodePayload(c, kind, data, &p) {
		return
	}

	members, ok := h.chatAudience(c, p.ChatID)
	if !ok {
		return
	}

	targets := lo.Without(members, c.UserID())
	h.router.EmitToUsers(targets, Event{Kind: kind, Data: ChatScope{ChatID: p.ChatID}})
}

// handleNewMessage emits the live message first and persists it afterwards.
// A failed write is only logged: the delivered event is not retracted.
func (h *Hub) handleNewMessage(c *Client, data json.RawMessage) {
	var p NewMessagePayload
	if !decodePayload(c, EventNewMessage, data, &p) {
		return
	}

	members, ok := h.chatAudience(c, p.ChatID)
	if !ok {
		return
	}

	live := NewLiveMessage(p.ChatID, c.user, p.Message, nil)
	h.router.EmitToUsers(members, Event{Kind: EventNewMessage, Data: NewMessageData{ChatID: p.ChatID, Message: live}})
	h.router.EmitToUsers(members, Event{Kind: EventNewMessageAlert, Data: ChatScope{ChatID: p.ChatID}})

	ctx, cancel := context.WithTimeout(h.ctx, persistTimeout)
	defer cancel()

	stored, err := h.messages.CreateMessage(ctx, store.CreateMessageParams{
		ChatID:   p.ChatID,
		SenderID: c.UserID(),
		Content:  p.Message,
	})
	if err != nil {
		c.logger.Error().Err(err).
			Str("chat_id", p.ChatID).
			Str("live_id", live.ID).
			Msg("Failed to persist delivered message")
		return
	}

	c.logger.Debug().
		Str("chat_id", p.ChatID).
		Str("live_id", live.ID).
		Str("message_id", stored.ID).
		Msg("Live message persisted")
}

// handlePresence marks the sender present or absent and sends the snapshot to the audience.
// The presence change applies even when no audience can be resolved.
func (h *Hub) handlePresence(c *Client, data json.RawMessage, present bool) {
	kind := EventChatExit
	if present {
		kind = EventChatJoin
	}

	var p PresencePayload
	if !decodePayload(c, kind, data, &p) {
		return
	}

	if p.UserID != "" && p.UserID != c.UserID() {
		c.logger.Warn().
			Str("claimed_user_id", p.UserID).
			Str("event", string(kind)).
			Msg("Presence event names another user, using the authenticated identity")
	}

	targets, ok := h.presenceAudience(c, p)

	h.lifecycle.Lock()
	defer h.lifecycle.Unlock()

	// the connection may have been replaced or detached during the lookup
	if current, live := h.registry.Lookup(c.UserID()); !live || current != c {
		return
	}

	if present {
		h.presence.MarkPresent(c.UserID())
	} else {
		h.presence.MarkAbsent(c.UserID())
	}

	if !ok {
		return
	}
	h.router.EmitToUsers(targets, Event{Kind: EventOnlineUser, Data: h.presence.Snapshot()})
}

// chatAudience loads the members of chatID and checks the sender belongs to it.
func (h *Hub) chatAudience(c *Client, chatID string) ([]string, bool) {
	ctx, cancel := context.WithTimeout(h.ctx, lookupTimeout)
	defer cancel()

	members, err := h.chats.ChatMembers(ctx, chatID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.logger.Warn().Str("chat_id", chatID).Msg("Event for unknown chat dropped")
		} else {
			c.logger.Error().Err(err).Str("chat_id", chatID).Msg("Failed to load chat members")
		}
		return nil, false
	}

	if !lo.Contains(members, c.UserID()) {
		c.logger.Warn().Str("chat_id", chatID).Msg("Event for a chat the sender is not a member of dropped")
		return nil, false
	}

	return members, true
}

// presenceAudience picks who hears about a presence change: the chat's members when a
// chat is named, otherwise the supplied members that are the sender or share a chat with it.
func (h *Hub) presenceAudience(c *Client, p PresencePayload) ([]string, bool) {
	if p.ChatID != "" {
		return h.chatAudience(c, p.ChatID)
	}

	ctx, cancel := context.WithTimeout(h.ctx, lookupTimeout)
	defer cancel()

	coMembers, err := h.chats.CoMemberIDs(ctx, c.UserID())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to load chat co-members")
		return nil, false
	}

	allowed := append(coMembers, c.UserID())
	return lo.Intersect(allowed, p.Members), true
}

func decodePayload[T any](c *Client, kind EventKind, data json.RawMessage, dst *T) bool {
	if len(data) == 0 {
		c.logger.Warn().Str("event", string(kind)).Msg("Client sent event without data")
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		c.logger.Warn().Err(err).Str("event", string(kind)).Msg("Client sent invalid payload")
		return false
	}

	if err := req.Validator().Struct(dst); err != nil {
		c.logger.Warn().Err(err).Str("event", string(kind)).Msg("Client sent payload failing validation")
		return false
	}

	return true
}
