/*
Package handler provides the HTTP handler function for WebSocket connection upgrading and initialization.

This file contains HandleWebSocket, which authenticates the session cookie before the upgrade,
hands the upgraded connection to the realtime hub and runs the client lifecycle.
*/
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"chatserver/internal/app/realtime"
	"chatserver/internal/app/store"
	"chatserver/internal/pkg/auth/jwt"
	"chatserver/internal/pkg/errs"
	"chatserver/internal/pkg/logx"
	"chatserver/internal/pkg/resp"
)

// userLookup loads the account behind a session.
type userLookup interface {
	GetUserByID(ctx context.Context, id string) (store.User, error)
}

// HandleWebSocket creates an HTTP HandlerFunc to process WebSocket connection requests.
func HandleWebSocket(upgrader websocket.Upgrader, deps *AppDeps) http.HandlerFunc {
	return serveWebSocket(upgrader, deps.Auth, deps.DB, deps.Hub)
}

func serveWebSocket(upgrader websocket.Upgrader, auth jwt.Authenticator, users userLookup, hub *realtime.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := jwt.Verify(r, auth.CookieName, auth.SecretKey)
		if err != nil || payload.Role != jwt.RoleUser {
			logx.Info("WebSocket connection rejected: no valid session.")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		user, err := users.GetUserByID(ctx, payload.ID)
		cancel()
		if err != nil {
			if store.IsNotFound(err) {
				logx.Warn("WebSocket connection rejected: session user no longer exists.", "user_id", payload.ID)
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
				return
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logx.Error(err, "Failed to upgrade connection to WebSocket")
			return
		}

		client := realtime.NewClient(hub, conn, user.ID, user.Name)

		if err := hub.Attach(client); err != nil {
			logx.Warn("WebSocket connection refused: hub is shutting down.", "user_id", user.ID)
			closeMessage := websocket.FormatCloseMessage(websocket.CloseGoingAway, "Server shutting down.")
			_ = conn.WriteControl(websocket.CloseMessage, closeMessage, time.Now().Add(time.Second))
			_ = conn.Close()
			return
		}

		logx.Info("WebSocket connection established and client registered", "user_id", user.ID)

		client.Run()
	}
}
