package handler

import (
	"context"
	"time"

	"chatserver/internal/app/store"
)

//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_store.go -package=mocks -exclude_interfaces=UserStore,RequestStore,ChatStore,MessageStore,AdminStore

// UserStore reads and creates accounts.
type UserStore interface {
	CreateUser(ctx context.Context, arg store.CreateUserParams) (store.User, error)
	GetUserByID(ctx context.Context, id string) (store.User, error)
	GetUserByUsername(ctx context.Context, username string) (store.User, error)
	// GetUsersByIDs skips unknown ids and keeps input order.
	GetUsersByIDs(ctx context.Context, ids []string) ([]store.User, error)
	SearchUsers(ctx context.Context, userID, name string) ([]store.Profile, error)
	DirectChatPartners(ctx context.Context, userID string) ([]store.MemberProfile, error)
}

// RequestStore manages friend requests.
type RequestStore interface {
	// FindRequestBetween matches a request sent in either direction.
	FindRequestBetween(ctx context.Context, a, b string) (store.FriendRequest, error)
	CreateRequest(ctx context.Context, senderID, receiverID string) (store.FriendRequest, error)
	GetRequest(ctx context.Context, id string) (store.FriendRequest, error)
	DeleteRequest(ctx context.Context, id string) error
	ListRequestsForReceiver(ctx context.Context, userID string) ([]store.IncomingRequest, error)
	// AcceptRequest opens the direct chat and removes the request in one transaction.
	AcceptRequest(ctx context.Context, r store.FriendRequest, chatName string) (store.Chat, error)
}

// ChatStore manages chats and their membership.
type ChatStore interface {
	CreateChat(ctx context.Context, arg store.CreateChatParams) (store.Chat, error)
	GetChat(ctx context.Context, id string) (store.Chat, error)
	ChatMembers(ctx context.Context, chatID string) ([]string, error)
	ListChatsForUser(ctx context.Context, userID string) ([]store.Chat, error)
	ListGroupsCreatedBy(ctx context.Context, userID string) ([]store.Chat, error)
	ListMemberProfiles(ctx context.Context, chatIDs []string) ([]store.MemberProfile, error)
	AddChatMembers(ctx context.Context, chatID string, members []string) error
	RemoveChatMember(ctx context.Context, chatID, userID string) error
	// LeaveChat hands the group to newCreator unless it is empty.
	LeaveChat(ctx context.Context, chatID, userID, newCreator string) error
	RenameChat(ctx context.Context, chatID, name string) error
	DeleteChat(ctx context.Context, chatID string) error
	ChatAttachmentKeys(ctx context.Context, chatID string) ([]string, error)
}

// MessageStore writes and pages chat messages.
type MessageStore interface {
	CreateMessage(ctx context.Context, arg store.CreateMessageParams) (store.Message, error)
	ListChatMessages(ctx context.Context, chatID string, limit, offset int) ([]store.ChatMessage, error)
	CountChatMessages(ctx context.Context, chatID string) (int64, error)
}

// AdminStore serves the dashboard aggregates.
type AdminStore interface {
	Counts(ctx context.Context) (store.Counts, error)
	RecentMessages(ctx context.Context, limit int) ([]store.AdminMessage, error)
	ListUsersWithCounts(ctx context.Context) ([]store.UserWithCounts, error)
	ListAllChats(ctx context.Context) ([]store.ChatSummary, error)
	ListAllMessages(ctx context.Context) ([]store.AdminMessage, error)
	MessageTimesSince(ctx context.Context, since, until time.Time) ([]time.Time, error)
}

// Store is everything the handlers read and write. *store.Store implements it.
type Store interface {
	UserStore
	RequestStore
	ChatStore
	MessageStore
	AdminStore
}

var _ Store = (*store.Store)(nil)
