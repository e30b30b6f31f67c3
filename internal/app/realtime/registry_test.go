package realtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("resolve skips offline and duplicate identities", func(t *testing.T) {
		req := require.New(t)

		// Given a registry with A and B connected
		r := NewRegistry()
		a, _ := testClient(nil, "A")
		b, _ := testClient(nil, "B")
		r.Register("A", a)
		r.Register("B", b)

		// When resolving a list with an unknown and a repeated identity
		got := r.Resolve([]string{"B", "C", "A", "B"})

		// Then each live handle appears once, in input order
		req.Equal([]*Client{b, a}, got)
	})

	t.Run("resolve after unregister omits the identity", func(t *testing.T) {
		req := require.New(t)

		r := NewRegistry()
		a, _ := testClient(nil, "A")
		r.Register("A", a)

		r.Unregister("A")

		req.Empty(r.Resolve([]string{"A"}))
		_, ok := r.Lookup("A")
		req.False(ok)
		req.Zero(r.Len())
	})

	t.Run("register replaces and returns the previous handle", func(t *testing.T) {
		req := require.New(t)

		r := NewRegistry()
		first, _ := testClient(nil, "A")
		second, _ := testClient(nil, "A")

		req.Nil(r.Register("A", first))
		req.Same(first, r.Register("A", second))
		req.Nil(r.Register("A", second), "re-registering the same handle replaces nothing")

		got, ok := r.Lookup("A")
		req.True(ok)
		req.Same(second, got)
		req.Equal(1, r.Len())
	})

	t.Run("release of a stale handle keeps the current mapping", func(t *testing.T) {
		req := require.New(t)

		// Given A reconnected on a second handle
		r := NewRegistry()
		stale, _ := testClient(nil, "A")
		current, _ := testClient(nil, "A")
		r.Register("A", stale)
		r.Register("A", current)

		// When the first handle is released
		req.False(r.Release("A", stale))

		// Then the current handle is still resolvable
		req.Equal([]*Client{current}, r.Resolve([]string{"A"}))

		req.True(r.Release("A", current))
		req.Empty(r.All())
	})
}

func TestPresence(t *testing.T) {
	req := require.New(t)

	p := NewPresence()
	req.Empty(p.Snapshot())

	p.MarkPresent("B")
	p.MarkPresent("A")
	p.MarkPresent("A")
	req.Equal([]string{"A", "B"}, p.Snapshot(), "set semantics, sorted")
	req.True(p.Contains("A"))

	p.MarkAbsent("A")
	req.Equal([]string{"B"}, p.Snapshot())
	req.False(p.Contains("A"))

	p.MarkAbsent("unknown")
	req.Equal([]string{"B"}, p.Snapshot())
}

func TestRouter(t *testing.T) {
	t.Run("emit reaches only connected targets", func(t *testing.T) {
		req := require.New(t)

		// Given A and B connected and C never connected
		r := NewRegistry()
		a, _ := testClient(nil, "A")
		b, _ := testClient(nil, "B")
		r.Register("A", a)
		r.Register("B", b)
		router := NewRouter(r)

		// When emitting to B and C
		n := router.EmitToUsers([]string{"B", "C"}, Event{Kind: EventStartTyping, Data: ChatScope{ChatID: chatOne}})

		// Then only B receives it
		req.Equal(1, n)
		req.Empty(drain(t, a))
		got := drain(t, b)
		req.Len(got, 1)
		req.Equal(EventStartTyping, got[0].Event)
		req.JSONEq(`{"chatId":"`+chatOne+`"}`, string(got[0].Data))
	})

	t.Run("empty target list sends nothing", func(t *testing.T) {
		req := require.New(t)

		router := NewRouter(NewRegistry())
		req.Zero(router.EmitToUsers(nil, Event{Kind: EventRefetchData}))
	})

	t.Run("broadcast reaches every connection", func(t *testing.T) {
		req := require.New(t)

		r := NewRegistry()
		a, _ := testClient(nil, "A")
		b, _ := testClient(nil, "B")
		r.Register("A", a)
		r.Register("B", b)

		n := NewRouter(r).BroadcastAll(Event{Kind: EventOnlineUser, Data: []string{"A"}})

		req.Equal(2, n)
		req.Len(drain(t, a), 1)
		req.Len(drain(t, b), 1)
	})

	t.Run("full queue drops the event for that recipient only", func(t *testing.T) {
		req := require.New(t)

		r := NewRegistry()
		slow, _ := testClient(nil, "A")
		fast, _ := testClient(nil, "B")
		r.Register("A", slow)
		r.Register("B", fast)
		for k := 0; k < sendBufferSize; k++ {
			req.True(slow.enqueue([]byte(`{}`)))
		}

		n := NewRouter(r).EmitToUsers([]string{"A", "B"}, Event{Kind: EventRefetchData})

		req.Equal(1, n)
		req.Len(drain(t, fast), 1)
		req.Len(drain(t, slow), sendBufferSize)
	})

	t.Run("per-recipient order follows send order", func(t *testing.T) {
		req := require.New(t)

		r := NewRegistry()
		a, _ := testClient(nil, "A")
		r.Register("A", a)
		router := NewRouter(r)

		router.EmitToUsers([]string{"A"}, Event{Kind: EventStartTyping})
		router.EmitToUsers([]string{"A"}, Event{Kind: EventNewMessage})
		router.EmitToUsers([]string{"A"}, Event{Kind: EventStopTyping})

		got := drain(t, a)
		req.Len(got, 3)
		req.Equal(EventStartTyping, got[0].Event)
		req.Equal(EventNewMessage, got[1].Event)
		req.Equal(EventStopTyping, got[2].Event)
	})
}
