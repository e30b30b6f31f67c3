package handler

import (
	"net/http"

	"chatserver/internal/app/realtime"
	"chatserver/internal/app/storage"
	"chatserver/internal/configs"
	"chatserver/internal/pkg/auth/jwt"
)

// adminCookieName keeps the admin session apart from the user session.
const adminCookieName = "chat-admin-token"

// EventEmitter delivers live events to connected users.
type EventEmitter interface {
	EmitToUsers(identities []string, kind realtime.EventKind, data any)
}

type AppDeps struct {
	Config         *configs.AppConfig
	DB             Store
	StorageService storage.StorageService
	Hub            *realtime.Hub
	Events         EventEmitter

	Auth      jwt.Authenticator
	AdminAuth jwt.Authenticator
}

// NewAppDeps wires the request-scoped collaborators of every handler.
func NewAppDeps(cfg *configs.AppConfig, db Store, storageService storage.StorageService, hub *realtime.Hub) *AppDeps {
	deps := &AppDeps{
		Config:         cfg,
		DB:             db,
		StorageService: storageService,
		Hub:            hub,
		Auth:           jwt.Authenticator{CookieName: cfg.SessionCookieName, SecretKey: cfg.JWTSecret},
		AdminAuth:      jwt.Authenticator{CookieName: adminCookieName, SecretKey: cfg.JWTSecret},
	}
	if hub != nil {
		deps.Events = hub
	}
	return deps
}

// emit pushes a live event to the connected users among ids.
func (deps *AppDeps) emit(ids []string, kind realtime.EventKind, data any) {
	if deps.Events == nil || len(ids) == 0 {
		return
	}
	deps.Events.EmitToUsers(ids, kind, data)
}

// startSession signs a token for payload and stores it in cookieName.
func (deps *AppDeps) startSession(w http.ResponseWriter, cookieName string, payload *jwt.Payload) error {
	ttl := jwt.SessionExpiration
	if payload.IsAdmin() {
		ttl = jwt.AdminSessionExpiration
	}

	token, err := jwt.GenerateToken(payload, deps.Config.JWTSecret, ttl)
	if err != nil {
		return err
	}

	jwt.SetSessionCookie(w, cookieName, token, ttl, !deps.Config.IsDevelopment())
	return nil
}
