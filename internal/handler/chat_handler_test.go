package handler

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"chatserver/internal/app/store"
	"chatserver/internal/pkg/errs"
)

const (
	carolID = "6f1c1a52-8d7e-4c3b-9a51-0b8f6a1d2e03"
	daveID  = "6f1c1a52-8d7e-4c3b-9a51-0b8f6a1d2e04"
)

func TestBuildChatList(t *testing.T) {
	req := require.New(t)

	// Given one direct chat with Bob and one group of four
	chats := []store.Chat{
		{ID: "direct", Name: "Alice--Bob", Members: []string{aliceID, bobID}},
		{ID: "group", Name: "Climbers", GroupChat: true, Members: []string{aliceID, bobID, carolID, daveID}},
	}
	profiles := []store.MemberProfile{
		{ChatID: "direct", ID: aliceID, Name: "Alice", Avatar: "a.png"},
		{ChatID: "direct", ID: bobID, Name: "Bob", Avatar: "b.png"},
		{ChatID: "group", ID: aliceID, Name: "Alice", Avatar: "a.png"},
		{ChatID: "group", ID: bobID, Name: "Bob", Avatar: "b.png"},
		{ChatID: "group", ID: carolID, Name: "Carol", Avatar: "c.png"},
		{ChatID: "group", ID: daveID, Name: "Dave", Avatar: "d.png"},
	}

	// When Alice lists her chats
	items := buildChatList(chats, profiles, aliceID)

	// Then the direct chat is shown as the other party
	req.Len(items, 2)
	req.Equal("Bob", items[0].Name)
	req.Equal([]string{"b.png"}, items[0].Avatar)
	req.Equal([]string{bobID}, items[0].Members)
	req.False(items[0].GroupChat)

	// And the group keeps its name and shows at most three avatars
	req.Equal("Climbers", items[1].Name)
	req.Equal([]string{"a.png", "b.png", "c.png"}, items[1].Avatar)
	req.Equal([]string{bobID, carolID, daveID}, items[1].Members)
}

func TestBuildChatList_MissingProfiles(t *testing.T) {
	req := require.New(t)

	items := buildChatList([]store.Chat{{ID: "direct", Name: "Alice--Bob", Members: []string{aliceID, bobID}}}, nil, aliceID)

	req.Len(items, 1)
	req.Equal("Alice--Bob", items[0].Name)
	req.NotNil(items[0].Avatar)
	req.Empty(items[0].Avatar)
}

func TestHistoryPage(t *testing.T) {
	req := require.New(t)
	now := time.Now()

	// Given a page read newest first
	page := []store.ChatMessage{
		{ID: "m3", ChatID: "c", SenderID: bobID, SenderName: "Bob", Content: "third", CreatedAt: now},
		{ID: "m2", ChatID: "c", SenderID: aliceID, SenderName: "Alice", Content: "second", CreatedAt: now.Add(-time.Minute)},
		{ID: "m1", ChatID: "c", SenderID: bobID, SenderName: "Bob", Content: "first", CreatedAt: now.Add(-2 * time.Minute)},
	}

	// When it is shaped for the client
	views := historyPage(page)

	// Then it reads oldest to newest with the sender embedded
	req.Len(views, 3)
	req.Equal([]string{"m1", "m2", "m3"}, []string{views[0].ID, views[1].ID, views[2].ID})
	req.Equal("Alice", views[1].Sender.Name)
	req.Equal(aliceID, views[1].Sender.ID)
	req.Equal("c", views[2].Chat)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		want  int
	}{
		{total: 0, want: 0},
		{total: 1, want: 1},
		{total: 20, want: 1},
		{total: 21, want: 2},
		{total: 100, want: 5},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, totalPages(tt.total, MessagesPerPage), "total=%d", tt.total)
	}
}

func TestCanDelete(t *testing.T) {
	group := store.Chat{
		GroupChat: true,
		CreatorID: pgtype.Text{String: aliceID, Valid: true},
		Members:   []string{aliceID, bobID, carolID},
	}
	direct := store.Chat{Members: []string{aliceID, bobID}}

	tests := []struct {
		name string
		chat store.Chat
		user string
		want int
	}{
		{name: "group creator", chat: group, user: aliceID},
		{name: "group member", chat: group, user: bobID, want: errs.ErrNotChatCreator},
		{name: "direct member", chat: direct, user: bobID},
		{name: "direct outsider", chat: direct, user: carolID, want: errs.ErrNotChatMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := canDelete(tt.chat, tt.user)
			if tt.want == 0 {
				require.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			require.Equal(t, tt.want, err.Code)
		})
	}
}

func TestNewChatView(t *testing.T) {
	req := require.New(t)
	chat := store.Chat{
		ID:        "group",
		Name:      "Climbers",
		GroupChat: true,
		CreatorID: pgtype.Text{String: aliceID, Valid: true},
		Members:   []string{aliceID, bobID},
	}

	// Without profiles the members stay ids
	view := newChatView(chat, nil)
	req.Equal(aliceID, view.Creator)
	req.Equal([]string{aliceID, bobID}, view.Members)

	// With profiles they are populated
	profiles := []store.Profile{{ID: aliceID, Name: "Alice"}, {ID: bobID, Name: "Bob"}}
	view = newChatView(chat, profiles)
	req.Equal(profiles, view.Members)
}
