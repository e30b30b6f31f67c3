package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClient_Run(t *testing.T) {
	req := require.New(t)
	f := newHubFixture(t)

	// Given A with one typing frame and one garbage frame waiting, and B watching
	a, aConn := testClient(f.hub, "A")
	aConn.frames = [][]byte{
		[]byte("not json"),
		frame(t, EventStartTyping, TypingPayload{ChatID: chatOne}),
	}
	req.NoError(f.hub.Attach(a))
	b, _ := f.attach(t, "B")
	f.chats.EXPECT().ChatMembers(gomock.Any(), chatOne).Return([]string{"A", "B"}, nil)

	// When A's pumps run until the peer closes
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Run()
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		req.FailNow("read loop did not finish")
	}

	// Then the garbage frame was skipped, typing reached B, and the disconnect broadcast followed
	got := drain(t, b)
	req.Len(got, 2)
	req.Equal(EventStartTyping, got[0].Event)
	req.Equal(EventOnlineUser, got[1].Event)
	req.Empty(snapshotOf(t, got[1]))

	req.Equal(StateClosed, a.State())
	_, ok := f.hub.registry.Lookup("A")
	req.False(ok)
	req.Eventually(aConn.isClosed, time.Second, 10*time.Millisecond)
}

func TestClient_WritePump(t *testing.T) {
	req := require.New(t)

	// Given two queued frames and a closed queue
	c, conn := testClient(nil, "A")
	req.True(c.enqueue([]byte(`{"event":"refetch-data"}`)))
	req.True(c.enqueue([]byte(`{"event":"new-message-alert"}`)))
	c.closeSend()

	// When the writer runs
	c.WritePump()

	// Then both frames are flushed before the connection closes
	req.Equal(2, conn.writtenFrames())
	req.True(conn.isClosed())
}

func TestClient_EnqueueAfterClose(t *testing.T) {
	req := require.New(t)

	c, _ := testClient(nil, "A")
	c.closeSend()
	c.closeSend()

	req.False(c.enqueue([]byte(`{}`)))
	req.Equal(StateClosed, c.State())
	req.Equal("closed", c.State().String())
}
