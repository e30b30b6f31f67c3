package limiter

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"chatserver/internal/pkg/logx"
)

func init() {
	logx.SetOutput(io.Discard, zerolog.Disabled)
}

func requestFrom(addr string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = addr
	return r
}

func TestMiddleware_LimitsPerIP(t *testing.T) {
	req := require.New(t)
	l := NewIPRateLimiter(rate.Every(time.Hour), 2)
	t.Cleanup(l.Stop)

	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	// Given two requests inside the burst
	for k := 0; k < 2; k++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom("10.0.0.1:1234"))
		req.Equal(http.StatusNoContent, rec.Code)
	}

	// When the same IP sends a third one
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, requestFrom("10.0.0.1:9999"))

	// Then it is rejected
	req.Equal(http.StatusTooManyRequests, rec.Code)

	// And another IP is unaffected
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, requestFrom("10.0.0.2:1234"))
	req.Equal(http.StatusNoContent, rec.Code)
}

func TestRemoveIdle(t *testing.T) {
	req := require.New(t)
	l := NewIPRateLimiter(rate.Every(time.Second), 1)
	t.Cleanup(l.Stop)

	req.True(l.GetLimiter("a").Allow())
	l.GetLimiter("b")
	req.Equal(2, l.Len())

	// "b" is untouched and full, "a" has spent its token
	removed, remaining := l.removeIdle(time.Now())
	req.Equal(1, removed)
	req.Equal(1, remaining)

	// a minute later "a" has refilled too
	removed, remaining = l.removeIdle(time.Now().Add(time.Minute))
	req.Equal(1, removed)
	req.Equal(0, remaining)
}

func TestClientIP(t *testing.T) {
	req := require.New(t)

	req.Equal("192.0.2.1", ClientIP(requestFrom("192.0.2.1:443")))
	req.Equal("192.0.2.1", ClientIP(requestFrom("192.0.2.1")))
	req.Equal("unknown_ip", ClientIP(requestFrom("")))
}
