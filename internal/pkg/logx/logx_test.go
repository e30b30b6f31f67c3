package logx

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestAnonymizeIP(t *testing.T) {
	cases := map[string]string{
		"203.0.113.42:5555":         "203.0.113.0",
		"203.0.113.42":              "203.0.113.0",
		"127.0.0.1:80":              "127.0.0.1",
		"[2001:db8:1:2:3:4:5:6]:80": "2001:db8:1:2::",
		"not-an-ip":                 "unknown_ip",
	}

	for in, want := range cases {
		require.Equal(t, want, AnonymizeIP(in), in)
	}
}

func TestComponentLoggerCarriesFields(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.DebugLevel)

	logger := Component("Hub")
	logger.Info().Str("user_id", "u1").Msg("attached")

	var line map[string]any
	req.NoError(json.Unmarshal(buf.Bytes(), &line))
	req.Equal("Hub", line["component"])
	req.Equal("u1", line["user_id"])
	req.Equal("attached", line["message"])
}

func TestOddFieldsAreDropped(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.DebugLevel)

	Info("odd", "only_key")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	req.Len(lines, 2)

	var last map[string]any
	req.NoError(json.Unmarshal(lines[1], &last))
	req.Equal("odd", last["message"])
	req.NotContains(last, "only_key")
}
