/*
Package handler provides the HTTP handlers and routing setup for the chat server.

This file defines the main Router, applying middleware like logging, CORS and IP-based
rate limiting before delegating requests to the REST handlers and the WebSocket endpoint.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"chatserver/internal/pkg/limiter"
	"chatserver/internal/pkg/logx"
	"chatserver/internal/pkg/resp"
)

const (
	// AuthRate limits register, login and admin verification attempts per IP.
	AuthRate  = 0.2
	AuthBurst = 5

	// ConnectRate limits WebSocket handshakes per IP.
	ConnectRate  = 0.5
	ConnectBurst = 10
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
func Router(deps *AppDeps) http.Handler {
	authLimiter := limiter.NewIPRateLimiter(rate.Limit(AuthRate), AuthBurst)
	connectLimiter := limiter.NewIPRateLimiter(rate.Limit(ConnectRate), ConnectBurst)

	r := chi.NewRouter()

	allowedOrigins := make(map[string]struct{})
	for _, origin := range deps.Config.AllowedOrigins {
		allowedOrigins[origin] = struct{}{}
	}

	var wsUpgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			if deps.Config.IsDevelopment() {
				return true
			}

			origin := r.Header.Get("Origin")
			if _, ok := allowedOrigins[origin]; ok {
				return true
			}

			logx.Warn("WebSocket connection rejected: Origin not allowed.", "origin", origin)
			return false
		},
	}

	corsAllowedOrigins := []string{}
	if deps.Config.IsDevelopment() {
		corsAllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173", "http://localhost:4173"}
	}
	corsAllowedOrigins = append(corsAllowedOrigins, deps.Config.AllowedOrigins...)

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", HandleHealth(deps))

	r.With(connectLimiter.Middleware).Get("/ws", HandleWebSocket(wsUpgrader, deps))

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/user", func(user chi.Router) {
			user.Group(func(public chi.Router) {
				public.Use(authLimiter.Middleware)
				public.Use(deps.Auth.Optional)
				public.Post("/new", HandleRegister(deps))
				public.Post("/login", HandleLogin(deps))
			})

			user.Group(func(private chi.Router) {
				private.Use(deps.Auth.RequireUser)
				private.Get("/profile", HandleGetProfile(deps))
				private.Get("/logout", HandleLogout(deps))
				private.Get("/search", HandleSearchUsers(deps))
				private.Put("/sendrequest", HandleSendRequest(deps))
				private.Get("/getnotify", HandleGetNotifications(deps))
				private.Put("/acceptrequest", HandleAcceptRequest(deps))
				private.Get("/getfriends", HandleGetFriends(deps))
			})
		})

		api.Route("/chat", func(chat chi.Router) {
			chat.Use(deps.Auth.RequireUser)

			chat.Post("/new", HandleNewGroup(deps))
			chat.Get("/my", HandleGetMyChats(deps))
			chat.Get("/my/group", HandleGetMyGroups(deps))
			chat.Put("/addMembers", HandleAddMembers(deps))
			chat.Put("/removeMembers", HandleRemoveMember(deps))
			chat.Delete("/leaveMember/{id}", HandleLeaveGroup(deps))
			chat.Post("/message", HandleSendAttachments(deps))
			chat.Post("/attachments", HandleSendAttachments(deps))
			chat.Get("/message/{id}", HandleGetMessages(deps))

			chat.Get("/{id}", HandleGetChat(deps))
			chat.Put("/{id}", HandleRenameGroup(deps))
			chat.Delete("/{id}", HandleDeleteChat(deps))
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.With(authLimiter.Middleware).Post("/verify", HandleAdminVerify(deps))
			admin.Get("/logout", HandleAdminLogout(deps))

			admin.Group(func(private chi.Router) {
				private.Use(deps.AdminAuth.RequireAdmin)
				private.Get("/", HandleAdminDashboard(deps))
				private.Get("/users", HandleAdminUsers(deps))
				private.Get("/chats", HandleAdminChats(deps))
				private.Get("/messages", HandleAdminMessages(deps))
				private.Get("/stats", HandleAdminStats(deps))
			})
		})
	})

	return r
}

// HandleHealth reports liveness and the number of live connections.
func HandleHealth(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]any{
			"status":  "ok",
			"service": "Chat Server",
		}
		if deps.Hub != nil {
			data["connections"] = deps.Hub.Connections()
		}
		resp.RespondSuccess(w, r, data)
	}
}
