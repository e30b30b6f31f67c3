package jwt

import (
	"context"
	"net/http"

	"chatserver/internal/pkg/errs"
	"chatserver/internal/pkg/logx"
	"chatserver/internal/pkg/resp"
)

// Define Context Key for storing the Payload struct, preventing key collisions with other packages.
type contextKey string

const (
	// ContextAuthPayloadKey is the key used to store the parsed Payload in the request Context.
	ContextAuthPayloadKey contextKey = "auth_payload"
)

// Authenticator verifies session tokens carried by a cookie or bearer header.
type Authenticator struct {
	CookieName string
	SecretKey  string
}

// RequireUser rejects requests without a valid user session (HTTP 401).
func (a Authenticator) RequireUser(next http.Handler) http.Handler {
	return a.require(RoleUser, errs.ErrUnauthorized, next)
}

// RequireAdmin rejects requests without a valid admin session (HTTP 401).
func (a Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return a.require(RoleAdmin, errs.ErrAdminUnauthorized, next)
}

// Optional injects the payload when a valid token is present and never rejects.
func (a Authenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, err := Verify(r, a.CookieName, a.SecretKey)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPayload(r.Context(), payload)))
	})
}

func (a Authenticator) require(role string, code int, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, err := Verify(r, a.CookieName, a.SecretKey)
		if err != nil {
			if err != ErrMissingToken {
				logx.Warn("Rejected invalid session token", "error", err.Error(), "path", r.URL.Path)
			}
			resp.RespondError(w, r, errs.NewError(code))
			return
		}

		if payload.Role != role {
			resp.RespondError(w, r, errs.NewError(code))
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPayload(r.Context(), payload)))
	})
}

// WithPayload returns a copy of ctx carrying payload.
func WithPayload(ctx context.Context, payload *Payload) context.Context {
	return context.WithValue(ctx, ContextAuthPayloadKey, payload)
}

// GetPayloadFromContext extracts the authenticated Payload from the request Context.
// A nil return means the request is anonymous.
func GetPayloadFromContext(r *http.Request) *Payload {
	payload, ok := r.Context().Value(ContextAuthPayloadKey).(*Payload)

	if !ok {
		return nil
	}

	return payload
}

// UserID returns the user identifier of the authenticated request, or "".
func UserID(r *http.Request) string {
	if payload := GetPayloadFromContext(r); payload != nil {
		return payload.ID
	}
	return ""
}
