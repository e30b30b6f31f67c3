package handler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chatserver/internal/app/store"
)

func TestAvailableFriends(t *testing.T) {
	req := require.New(t)

	friends := []store.Profile{
		{ID: bobID, Name: "Bob"},
		{ID: carolID, Name: "Carol"},
		{ID: daveID, Name: "Dave"},
	}

	// Bob and Carol are already in the group
	available := availableFriends(friends, []string{aliceID, bobID, carolID})

	req.Equal([]store.Profile{{ID: daveID, Name: "Dave"}}, available)
	req.Empty(availableFriends(friends, []string{bobID, carolID, daveID}))
	req.Equal(friends, availableFriends(friends, nil))
}

func TestDirectChatName(t *testing.T) {
	require.Equal(t, "Alice--Bob", directChatName("Alice", "Bob"))
}

func TestNewUserView(t *testing.T) {
	req := require.New(t)

	user := store.User{
		ID:           aliceID,
		Name:         "Alice",
		Username:     "alice",
		PasswordHash: "hash",
		AvatarKey:    "avatars/a.png",
		AvatarURL:    "https://cdn.test/avatars/a.png",
	}

	view := newUserView(user)

	req.Equal(aliceID, view.ID)
	req.Equal(store.Attachment{PublicID: "avatars/a.png", URL: "https://cdn.test/avatars/a.png"}, view.Avatar)
}
