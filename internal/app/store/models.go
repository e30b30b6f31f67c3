package store

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Friend request states.
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

// Attachment is a blob stored alongside a message or as an avatar.
// PublicID is the blob key used for deletion.
type Attachment struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

type User struct {
	ID           string    `db:"id" json:"_id"`
	Name         string    `db:"name" json:"name"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Bio          string    `db:"bio" json:"bio"`
	AvatarKey    string    `db:"avatar_key" json:"-"`
	AvatarURL    string    `db:"avatar_url" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Avatar returns the avatar as an attachment descriptor.
func (u User) Avatar() Attachment {
	return Attachment{PublicID: u.AvatarKey, URL: u.AvatarURL}
}

// Profile is the short public view of a user.
type Profile struct {
	ID     string `db:"id" json:"_id"`
	Name   string `db:"name" json:"name"`
	Avatar string `db:"avatar_url" json:"avatar"`
}

// MemberProfile is a Profile tagged with the chat it was loaded for.
type MemberProfile struct {
	ChatID   string `db:"chat_id" json:"-"`
	ID       string `db:"id" json:"_id"`
	Name     string `db:"name" json:"name"`
	Username string `db:"username" json:"username"`
	Avatar   string `db:"avatar_url" json:"avatar"`
}

// Chat is a direct or group conversation. Members are ordered by join time.
type Chat struct {
	ID        string      `db:"id" json:"_id"`
	Name      string      `db:"name" json:"name"`
	GroupChat bool        `db:"group_chat" json:"groupChat"`
	CreatorID pgtype.Text `db:"creator_id" json:"-"`
	Members   []string    `db:"members" json:"members"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time   `db:"updated_at" json:"updatedAt"`
}

// IsCreator reports whether userID created the chat.
func (c Chat) IsCreator(userID string) bool {
	return c.CreatorID.Valid && c.CreatorID.String == userID
}

// HasMember reports whether userID belongs to the chat.
func (c Chat) HasMember(userID string) bool {
	for _, m := range c.Members {
		if m == userID {
			return true
		}
	}
	return false
}

type Message struct {
	ID          string       `db:"id" json:"_id"`
	ChatID      string       `db:"chat_id" json:"chat"`
	SenderID    string       `db:"sender_id" json:"sender"`
	Content     string       `db:"content" json:"content"`
	Attachments []Attachment `db:"attachments" json:"attachments"`
	CreatedAt   time.Time    `db:"created_at" json:"createdAt"`
}

// ChatMessage is a message joined with its sender's name, as listed in a chat.
type ChatMessage struct {
	ID          string       `db:"id"`
	ChatID      string       `db:"chat_id"`
	SenderID    string       `db:"sender_id"`
	SenderName  string       `db:"sender_name"`
	Content     string       `db:"content"`
	Attachments []Attachment `db:"attachments"`
	CreatedAt   time.Time    `db:"created_at"`
}

// AdminMessage is a message joined with sender and chat details for the dashboard.
type AdminMessage struct {
	ID           string       `db:"id"`
	ChatID       string       `db:"chat_id"`
	ChatName     string       `db:"chat_name"`
	GroupChat    bool         `db:"group_chat"`
	SenderID     string       `db:"sender_id"`
	SenderName   string       `db:"sender_name"`
	SenderAvatar string       `db:"sender_avatar"`
	Content      string       `db:"content"`
	Attachments  []Attachment `db:"attachments"`
	CreatedAt    time.Time    `db:"created_at"`
}

type FriendRequest struct {
	ID         string    `db:"id" json:"_id"`
	SenderID   string    `db:"sender_id" json:"sender"`
	ReceiverID string    `db:"receiver_id" json:"receiver"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// IncomingRequest is a pending request joined with its sender's profile.
type IncomingRequest struct {
	ID           string `db:"id"`
	SenderID     string `db:"sender_id"`
	SenderName   string `db:"sender_name"`
	SenderAvatar string `db:"sender_avatar"`
}

// UserWithCounts is a dashboard row: a user with group and direct chat counts.
type UserWithCounts struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Username string `db:"username"`
	Avatar   string `db:"avatar_url"`
	Groups   int64  `db:"groups"`
	Friends  int64  `db:"friends"`
}

// ChatSummary is a dashboard row: a chat with its creator and totals.
type ChatSummary struct {
	ID            string      `db:"id"`
	Name          string      `db:"name"`
	GroupChat     bool        `db:"group_chat"`
	CreatorName   pgtype.Text `db:"creator_name"`
	CreatorAvatar pgtype.Text `db:"creator_avatar"`
	TotalMembers  int64       `db:"total_members"`
	TotalMessages int64       `db:"total_messages"`
}

// Counts holds the dashboard totals.
type Counts struct {
	Users    int64
	Chats    int64
	Groups   int64
	Messages int64
}
