package handler

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"chatserver/internal/app/store"
)

func TestMessageChart(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	// Given messages spread over the last week plus some outside it
	times := []time.Time{
		now.Add(-time.Minute),
		now.Add(-2 * time.Hour),
		now.Add(-day - time.Hour),
		now.Add(-6*day - time.Hour),
		now.Add(-7*day - time.Hour),
		now.Add(time.Hour),
	}

	// When they are bucketed
	chart := messageChart(now, times)

	// Then the last slot holds today and older or future times are ignored
	req.Equal([]int{1, 0, 0, 0, 0, 1, 2}, chart)
}

func TestMessageChart_Empty(t *testing.T) {
	require.Equal(t, make([]int, chartDays), messageChart(time.Now(), nil))
}

func TestAdminChatRows(t *testing.T) {
	req := require.New(t)

	// Given a group with a creator and a direct chat whose creator is unset
	chats := []store.ChatSummary{
		{
			ID:            "group",
			Name:          "Climbers",
			GroupChat:     true,
			CreatorName:   pgtype.Text{String: "Alice", Valid: true},
			CreatorAvatar: pgtype.Text{String: "a.png", Valid: true},
			TotalMembers:  4,
			TotalMessages: 12,
		},
		{ID: "direct", Name: "Alice--Bob", TotalMembers: 2},
	}
	profiles := []store.MemberProfile{
		{ChatID: "group", ID: aliceID, Name: "Alice", Avatar: "a.png"},
		{ChatID: "group", ID: bobID, Name: "Bob", Avatar: "b.png"},
		{ChatID: "group", ID: carolID, Name: "Carol", Avatar: "c.png"},
		{ChatID: "group", ID: daveID, Name: "Dave", Avatar: "d.png"},
		{ChatID: "direct", ID: aliceID, Name: "Alice", Avatar: "a.png"},
		{ChatID: "direct", ID: bobID, Name: "Bob", Avatar: "b.png"},
	}

	// When the rows are built
	rows := adminChatRows(chats, profiles)

	// Then members are grouped per chat with three avatars at most
	req.Len(rows, 2)
	req.Equal([]string{"a.png", "b.png", "c.png"}, rows[0]["avatar"])
	req.Len(rows[0]["members"], 4)
	req.Equal(adminSender{Name: "Alice", Avatar: "a.png"}, rows[0]["creator"])
	req.Equal(int64(12), rows[0]["totalMessages"])

	// And a missing creator is reported as None
	req.Equal(adminSender{Name: "None"}, rows[1]["creator"])
	req.Len(rows[1]["members"], 2)
}
