package jwt

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"chatserver/internal/pkg/logx"
)

const (
	testSecret = "test-secret"
	testCookie = "chat-token"
)

func init() {
	logx.SetOutput(io.Discard, zerolog.Disabled)
}

func TestGenerateAndParseToken(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken(&Payload{ID: "u1", Role: RoleUser}, testSecret, time.Minute)
	req.NoError(err)

	payload, err := ParseToken(token, testSecret)
	req.NoError(err)
	req.Equal("u1", payload.ID)
	req.Equal(RoleUser, payload.Role)
	req.Equal(TokenIssuer, payload.Issuer)
}

func TestParseToken_Rejects(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateToken(&Payload{ID: "u1", Role: RoleUser}, testSecret, time.Minute)
		require.NoError(t, err)

		_, err = ParseToken(token, "other-secret")
		require.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := GenerateToken(&Payload{ID: "u1", Role: RoleUser}, testSecret, -time.Minute)
		require.NoError(t, err)

		_, err = ParseToken(token, testSecret)
		require.Error(t, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		token, err := GenerateToken(&Payload{ID: "u1", Role: "root"}, testSecret, time.Minute)
		require.NoError(t, err)

		_, err = ParseToken(token, testSecret)
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseToken("not.a.token", testSecret)
		require.Error(t, err)
	})
}

func TestTokenFromRequest(t *testing.T) {
	req := require.New(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := TokenFromRequest(r, testCookie)
	req.ErrorIs(err, ErrMissingToken)

	r.Header.Set("Authorization", "Bearer from-header")
	token, err := TokenFromRequest(r, testCookie)
	req.NoError(err)
	req.Equal("from-header", token)

	// the cookie wins over the header
	r.AddCookie(&http.Cookie{Name: testCookie, Value: "from-cookie"})
	token, err = TokenFromRequest(r, testCookie)
	req.NoError(err)
	req.Equal("from-cookie", token)
}

func TestAuthenticator(t *testing.T) {
	auth := Authenticator{CookieName: testCookie, SecretKey: testSecret}

	var seen *Payload
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetPayloadFromContext(r)
		w.WriteHeader(http.StatusNoContent)
	})

	userToken, err := GenerateToken(&Payload{ID: "u1", Role: RoleUser}, testSecret, time.Minute)
	require.NoError(t, err)
	adminToken, err := GenerateToken(&Payload{Role: RoleAdmin}, testSecret, time.Minute)
	require.NoError(t, err)

	withCookie := func(token string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if token != "" {
			r.AddCookie(&http.Cookie{Name: testCookie, Value: token})
		}
		return r
	}

	t.Run("user route accepts user session", func(t *testing.T) {
		req := require.New(t)
		seen = nil
		rec := httptest.NewRecorder()

		auth.RequireUser(ok).ServeHTTP(rec, withCookie(userToken))

		req.Equal(http.StatusNoContent, rec.Code)
		req.Equal("u1", seen.ID)
	})

	t.Run("user route rejects anonymous", func(t *testing.T) {
		rec := httptest.NewRecorder()

		auth.RequireUser(ok).ServeHTTP(rec, withCookie(""))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("user route rejects admin session", func(t *testing.T) {
		rec := httptest.NewRecorder()

		auth.RequireUser(ok).ServeHTTP(rec, withCookie(adminToken))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("admin route rejects user session", func(t *testing.T) {
		rec := httptest.NewRecorder()

		auth.RequireAdmin(ok).ServeHTTP(rec, withCookie(userToken))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("optional passes anonymous through", func(t *testing.T) {
		req := require.New(t)
		seen = &Payload{}
		rec := httptest.NewRecorder()

		auth.Optional(ok).ServeHTTP(rec, withCookie("broken"))

		req.Equal(http.StatusNoContent, rec.Code)
		req.Nil(seen)
	})
}

func TestClearSessionCookie(t *testing.T) {
	rec := httptest.NewRecorder()

	ClearSessionCookie(rec, testCookie, true)

	require.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
}
