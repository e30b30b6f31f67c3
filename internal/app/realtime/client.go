package realtime

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"chatserver/internal/pkg/logx"
)

const (
	// timeout duration for writing to the WebSocket connection.
	writeWait = 10 * time.Second

	// maximum time allowed for the server to wait for a Pong message from the client.
	pongWait = 60 * time.Second

	// frequency at which the server sends a Ping message.
	pingPeriod = (pongWait * 9) / 10

	// maximum allowed size (in bytes) of a message sent by the client.
	maxMessageSize = 8192

	// capacity of the per-connection outbound queue.
	sendBufferSize = 256

	// WsCloseCodeSessionKicked is a custom WebSocket Close Code (4000-4999 range)
	// used to signal the client that the session was replaced by a new connection.
	WsCloseCodeSessionKicked = 4001
)

// ConnState is the lifecycle stage of a connection.
type ConnState int32

const (
	StateConnecting ConnState = iota
	StateAuthenticated
	StateActive
	StateClosed
)

func (s ConnState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateAuthenticated:
		return "authenticated"
	case StateActive:
		return "active"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// wsConn is the part of *websocket.Conn a Client uses.
type wsConn interface {
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	ReadMessage() (messageType int, p []byte, err error)
	SetWriteDeadline(t time.Time) error
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	Close() error
}

// Client is one authenticated WebSocket connection.
type Client struct {
	hub  *Hub
	conn wsConn

	// identity snapshot taken at authentication
	user Sender

	// a buffered channel used to queue messages waiting to be sent to the client.
	send chan []byte

	// mu guards closing send against concurrent enqueues.
	mu     sync.Mutex
	closed bool

	state atomic.Int32

	// structured logger with client context.
	logger zerolog.Logger
}

// NewClient wraps an upgraded connection for the authenticated user.
func NewClient(hub *Hub, conn *websocket.Conn, userID, name string) *Client {
	return newClient(hub, conn, Sender{ID: userID, Name: name})
}

func newClient(hub *Hub, conn wsConn, user Sender) *Client {
	c := &Client{
		hub:    hub,
		conn:   conn,
		user:   user,
		send:   make(chan []byte, sendBufferSize),
		logger: logx.Component("Client").With().Str("user_id", user.ID).Logger(),
	}
	c.state.Store(int32(StateAuthenticated))
	return c
}

func (c *Client) UserID() string {
	return c.user.ID
}

func (c *Client) State() ConnState {
	return ConnState(c.state.Load())
}

func (c *Client) setState(s ConnState) {
	c.state.Store(int32(s))
}

// Run starts the writer goroutine and blocks reading until the connection ends.
func (c *Client) Run() {
	go c.WritePump()
	c.ReadPump()
}

// ReadPump handles reading messages from the WebSocket connection.
// It handles heartbeats (Pong), hands frames to the hub, and performs cleanup upon connection closure.
func (c *Client) ReadPump() {
	defer c.cleanupOnDisconnect()

	c.conn.SetReadLimit(maxMessageSize)

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set read deadline")
		return
	}

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, messageBytes, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, WsCloseCodeSessionKicked) {
				c.logger.Info().Err(err).Msg("Error reading message (Client close/going away)")
			}
			break
		}

		c.hub.Dispatch(c, messageBytes)
	}
}

// cleanupOnDisconnect handles the necessary cleanup steps when the client's ReadPump terminates.
func (c *Client) cleanupOnDisconnect() {
	c.logger.Debug().Msg("Client connection cleanup starting.")

	c.hub.Detach(c)

	if err := c.conn.Close(); err != nil {
		c.logger.Debug().Err(err).Msg("Client connection close error")
	}
}

// WritePump handles writing messages from the Client.send channel to the WebSocket connection.
// It is the only goroutine writing data frames, which keeps per-recipient ordering.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()

		// ensure the connection is closed on exit
		if err := c.conn.Close(); err != nil {
			c.logger.Debug().Err(err).Msg("Client connection close error in WritePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !c.writeQueuedMessage(message, ok) {
				return
			}

		case <-ticker.C:
			if !c.writePingMessage() {
				return
			}
		}
	}
}

// writeQueuedMessage handles messages pulled from the send channel, writing them to the WebSocket.
// Returns true if the WritePump loop should continue, false if it should terminate.
func (c *Client) writeQueuedMessage(message []byte, ok bool) bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set write deadline")
		return false
	}

	if !ok {
		if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
			c.logger.Debug().Err(err).Msg("Error writing close message")
		}
		return false
	}

	if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
		c.logger.Warn().Err(err).Msg("Error writing message")
		return false
	}

	return true
}

// writePingMessage sends a periodic WebSocket Ping message to maintain the connection heartbeat.
// Returns false if the WritePump loop should terminate due to write failure.
func (c *Client) writePingMessage() bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set write deadline on ping")
		return false
	}

	if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
		c.logger.Debug().Err(err).Msg("Error writing ping")
		return false
	}

	return true
}

// enqueue queues an encoded frame without blocking. It reports false when the queue
// is full or already closed.
func (c *Client) enqueue(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

// closeSend closes the outbound queue once; WritePump then sends a close frame and exits.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
	c.setState(StateClosed)
}

// Kick gracefully closes the client's connection by sending a custom WebSocket
// Close Frame (Code 4001) indicating that the session was replaced.
func (c *Client) Kick(reason string) {
	c.closeWith(WsCloseCodeSessionKicked, reason)
}

func (c *Client) closeWith(code int, reason string) {
	c.logger.Info().
		Int("close_code", code).
		Str("reason", reason).
		Msg("Sending WS close message and closing connection.")

	// WriteControl may run concurrently with WritePump
	closeMessage := websocket.FormatCloseMessage(code, reason)
	if err := c.conn.WriteControl(websocket.CloseMessage, closeMessage, time.Now().Add(writeWait)); err != nil {
		c.logger.Debug().Err(err).Msg("Failed to send WS close message.")
	}

	c.closeSend()
}
