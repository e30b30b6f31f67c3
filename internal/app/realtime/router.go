package realtime

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"chatserver/internal/pkg/logx"
)

// Router delivers events to the live connections of a set of users.
type Router struct {
	registry *Registry
	logger   zerolog.Logger
}

func NewRouter(registry *Registry) *Router {
	return &Router{
		registry: registry,
		logger:   logx.Component("Router"),
	}
}

// EmitToUsers delivers ev to every connected identity and returns how many connections
// accepted it. Offline identities are skipped silently.
func (r *Router) EmitToUsers(identities []string, ev Event) int {
	if len(identities) == 0 {
		return 0
	}
	return r.deliver(r.registry.Resolve(identities), ev)
}

// BroadcastAll delivers ev to every live connection.
func (r *Router) BroadcastAll(ev Event) int {
	return r.deliver(r.registry.All(), ev)
}

// deliver encodes once and enqueues without blocking. A full queue drops the event
// for that recipient only.
func (r *Router) deliver(clients []*Client, ev Event) int {
	if len(clients) == 0 {
		return 0
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		r.logger.Error().Err(err).Str("event", string(ev.Kind)).Msg("Error marshaling event for delivery.")
		return 0
	}

	delivered := 0
	for _, c := range clients {
		if c.enqueue(payload) {
			delivered++
			continue
		}
		r.logger.Warn().
			Str("user_id", c.UserID()).
			Str("event", string(ev.Kind)).
			Msg("Client send queue full or closed, event dropped.")
	}

	return delivered
}
