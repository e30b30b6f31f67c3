package req

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"chatserver/internal/pkg/errs"
	"chatserver/internal/pkg/logx"
)

func init() {
	logx.SetOutput(io.Discard, zerolog.Disabled)
}

type renameInput struct {
	Name    string   `json:"name" validate:"required,max=50"`
	Members []string `json:"members,omitempty" validate:"omitempty,max=3,dive,uuid"`
}

func newJSONRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestBindJSON(t *testing.T) {
	t.Run("binds a valid body", func(t *testing.T) {
		req := require.New(t)
		var in renameInput

		err := BindJSON(httptest.NewRecorder(), newJSONRequest(`{"name":"friends"}`), &in)

		req.Nil(err)
		req.Equal("friends", in.Name)
	})

	t.Run("rejects wrong content type", func(t *testing.T) {
		r := newJSONRequest(`{"name":"x"}`)
		r.Header.Set("Content-Type", "text/plain")

		err := BindJSON(httptest.NewRecorder(), r, &renameInput{})

		require.Equal(t, errs.ErrUnsupportedMediaType, err.Code)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		err := BindJSON(httptest.NewRecorder(), newJSONRequest(`{"name":"x","admin":true}`), &renameInput{})

		require.Equal(t, errs.ErrInvalidJSONFormat, err.Code)
	})

	t.Run("rejects trailing content", func(t *testing.T) {
		err := BindJSON(httptest.NewRecorder(), newJSONRequest(`{"name":"x"}{"name":"y"}`), &renameInput{})

		require.Equal(t, errs.ErrExtraContentInBody, err.Code)
	})

	t.Run("reports the json name of the failing field", func(t *testing.T) {
		req := require.New(t)

		err := BindJSON(httptest.NewRecorder(), newJSONRequest(`{"name":""}`), &renameInput{})

		req.Equal(errs.ErrValidationFailed, err.Code)
		req.Contains(err.Message, "name")
	})

	t.Run("validates slice elements", func(t *testing.T) {
		req := require.New(t)

		err := BindJSON(httptest.NewRecorder(), newJSONRequest(`{"name":"x","members":["not-a-uuid"]}`), &renameInput{})

		req.Equal(errs.ErrValidationFailed, err.Code)
		req.Contains(err.Message, "members")
	})
}

func TestQueryInt(t *testing.T) {
	req := require.New(t)

	req.Equal(3, QueryInt(httptest.NewRequest(http.MethodGet, "/?page=3", nil), "page", 1))
	req.Equal(1, QueryInt(httptest.NewRequest(http.MethodGet, "/?page=-2", nil), "page", 1))
	req.Equal(1, QueryInt(httptest.NewRequest(http.MethodGet, "/?page=abc", nil), "page", 1))
	req.Equal(1, QueryInt(httptest.NewRequest(http.MethodGet, "/", nil), "page", 1))
}
