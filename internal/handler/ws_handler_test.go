package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chatserver/internal/app/realtime"
	"chatserver/internal/app/store"
	"chatserver/internal/mocks"
	"chatserver/internal/pkg/auth/jwt"
	"chatserver/internal/pkg/logx"
)

const (
	testSecret = "test-secret"
	testCookie = "chat-token"

	aliceID = "6f1c1a52-8d7e-4c3b-9a51-0b8f6a1d2e01"
	bobID   = "6f1c1a52-8d7e-4c3b-9a51-0b8f6a1d2e02"
)

func TestMain(m *testing.M) {
	logx.SetOutput(io.Discard, zerolog.Disabled)
	os.Exit(m.Run())
}

type fakeUsers map[string]store.User

func (f fakeUsers) GetUserByID(_ context.Context, id string) (store.User, error) {
	u, ok := f[id]
	if !ok {
		return store.User{}, store.ErrNotFound
	}
	return u, nil
}

type wsFixture struct {
	server *httptest.Server
	hub    *realtime.Hub
}

func newWSFixture(t *testing.T) wsFixture {
	ctrl := gomock.NewController(t)
	hub := realtime.NewHub(mocks.NewMockChatDirectory(ctrl), mocks.NewMockMessageWriter(ctrl))

	users := fakeUsers{
		aliceID: {ID: aliceID, Name: "Alice"},
		bobID:   {ID: bobID, Name: "Bob"},
	}
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	auth := jwt.Authenticator{CookieName: testCookie, SecretKey: testSecret}

	server := httptest.NewServer(serveWebSocket(upgrader, auth, users, hub))
	t.Cleanup(func() {
		hub.Shutdown()
		server.Close()
	})

	return wsFixture{server: server, hub: hub}
}

func (f wsFixture) dial(payload *jwt.Payload) (*websocket.Conn, *http.Response, error) {
	header := http.Header{}
	if payload != nil {
		token, err := jwt.GenerateToken(payload, testSecret, time.Minute)
		if err != nil {
			return nil, nil, err
		}
		header.Set("Cookie", testCookie+"="+token)
	}

	url := "ws" + strings.TrimPrefix(f.server.URL, "http")
	return websocket.DefaultDialer.Dial(url, header)
}

func TestServeWebSocket_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		payload *jwt.Payload
	}{
		{name: "no session", payload: nil},
		{name: "admin session", payload: &jwt.Payload{Role: jwt.RoleAdmin}},
		{name: "deleted user", payload: &jwt.Payload{ID: "6f1c1a52-8d7e-4c3b-9a51-0b8f6a1d2eff", Role: jwt.RoleUser}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			f := newWSFixture(t)

			// When the handshake carries no usable session
			conn, resp, err := f.dial(tt.payload)

			// Then it is refused before the upgrade
			req.ErrorIs(err, websocket.ErrBadHandshake)
			req.Nil(conn)
			req.Equal(http.StatusUnauthorized, resp.StatusCode)
			req.Zero(f.hub.Connections())
		})
	}
}

func TestServeWebSocket_Connects(t *testing.T) {
	req := require.New(t)
	f := newWSFixture(t)

	// When Alice dials with a valid session
	conn, resp, err := f.dial(&jwt.Payload{ID: aliceID, Role: jwt.RoleUser})
	req.NoError(err)
	defer conn.Close()
	req.Equal(http.StatusSwitchingProtocols, resp.StatusCode)

	// Then the hub registers her connection
	req.Eventually(func() bool { return f.hub.Connections() == 1 }, time.Second, 10*time.Millisecond)

	// And events addressed to her arrive on the socket
	f.hub.EmitToUsers([]string{aliceID}, realtime.EventRefetchData, nil)

	req.NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, data, err := conn.ReadMessage()
	req.NoError(err)
	req.Contains(string(data), `"event":"refetch-data"`)
}

func TestServeWebSocket_SecondConnectionKicksFirst(t *testing.T) {
	req := require.New(t)
	f := newWSFixture(t)
	alice := &jwt.Payload{ID: aliceID, Role: jwt.RoleUser}

	// Given Alice connected once
	first, _, err := f.dial(alice)
	req.NoError(err)
	defer first.Close()
	req.Eventually(func() bool { return f.hub.Connections() == 1 }, time.Second, 10*time.Millisecond)

	// When she connects again from another tab
	second, _, err := f.dial(alice)
	req.NoError(err)
	defer second.Close()

	// Then the first socket is closed with the session-replaced code
	req.NoError(first.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, _, err = first.ReadMessage()

	var closeErr *websocket.CloseError
	req.True(errors.As(err, &closeErr))
	req.Equal(realtime.WsCloseCodeSessionKicked, closeErr.Code)

	// And only the new connection stays registered
	req.Equal(1, f.hub.Connections())
}

func TestServeWebSocket_AfterShutdown(t *testing.T) {
	req := require.New(t)
	f := newWSFixture(t)

	// Given a hub that has shut down
	f.hub.Shutdown()

	// When Bob dials
	conn, _, err := f.dial(&jwt.Payload{ID: bobID, Role: jwt.RoleUser})
	req.NoError(err)
	defer conn.Close()

	// Then the socket is closed right after the upgrade
	req.NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, _, err = conn.ReadMessage()
	req.True(websocket.IsCloseError(err, websocket.CloseGoingAway))
	req.Zero(f.hub.Connections())
}
