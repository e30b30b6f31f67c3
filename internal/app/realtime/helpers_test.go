package realtime

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"chatserver/internal/pkg/logx"
)

const (
	chatOne = "6f1c0c1e-5b7a-4f2e-9a51-2d3c4b5a6f70"
	chatTwo = "0d9b7c52-3e51-4a8c-8f6e-1b2a3c4d5e6f"
)

func TestMain(m *testing.M) {
	logx.SetOutput(io.Discard, zerolog.Disabled)
	os.Exit(m.Run())
}

// fakeConn stands in for a websocket connection. Inbound frames are served from
// frames; once drained ReadMessage reports a normal closure.
type fakeConn struct {
	mu       sync.Mutex
	frames   [][]byte
	written  [][]byte
	controls []int
	closed   bool
}

func (f *fakeConn) SetReadLimit(int64) {}
func (f *fakeConn) SetReadDeadline(time.Time) error { return nil }
func (f *fakeConn) SetPongHandler(func(string) error) {}
func (f *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeConn) ReadMessage() (int, []byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.frames) == 0 {
		return 0, nil, &websocket.CloseError{Code: websocket.CloseNormalClosure}
	}
	frame := f.frames[0]
	f.frames = f.frames[1:]
	return websocket.TextMessage, frame, nil
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return errors.New("use of closed connection")
	}
	if messageType == websocket.TextMessage {
		f.written = append(f.written, data)
	}
	return nil
}

func (f *fakeConn) WriteControl(messageType int, data []byte, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if messageType == websocket.CloseMessage && len(data) >= 2 {
		f.controls = append(f.controls, int(data[0])<<8|int(data[1]))
	}
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	return nil
}

func (f *fakeConn) closeCodes() []int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]int(nil), f.controls...)
}

// received is an outbound envelope as a client would decode it.
type received struct {
	Event EventKind       `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func testClient(hub *Hub, id string) (*Client, *fakeConn) {
	conn := &fakeConn{}
	return newClient(hub, conn, Sender{ID: id, Name: "user-" + id}), conn
}

// drain returns every event queued for c without blocking.
func drain(t *testing.T, c *Client) []received {
	t.Helper()

	var out []received
	for {
		select {
		case raw, ok := <-c.send:
			if !ok {
				return out
			}
			var ev received
			require.NoError(t, json.Unmarshal(raw, &ev), "undecodable frame %q", raw)
			out = append(out, ev)
		default:
			return out
		}
	}
}

// next waits for one event queued for c.
func next(t *testing.T, c *Client) received {
	t.Helper()

	select {
	case raw := <-c.send:
		var ev received
		require.NoError(t, json.Unmarshal(raw, &ev), "undecodable frame %q", raw)
		return ev
	case <-time.After(2 * time.Second):
		require.FailNow(t, "timed out waiting for an event")
		return received{}
	}
}

func snapshotOf(t *testing.T, ev received) []string {
	t.Helper()

	var ids []string
	require.NoError(t, json.Unmarshal(ev.Data, &ids), "presence snapshot %q", ev.Data)
	return ids
}

func frame(t *testing.T, kind EventKind, data any) []byte {
	t.Helper()

	body, err := json.Marshal(data)
	require.NoError(t, err)
	raw, err := json.Marshal(inboundEnvelope{Event: kind, Data: body})
	require.NoError(t, err)
	return raw
}

func (f *fakeConn) writtenFrames() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.written)
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.closed
}
