package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

type CreateMessageParams struct {
	ChatID      string
	SenderID    string
	Content     string
	Attachments []Attachment
}

const createMessage = `
INSERT INTO messages (chat_id, sender_id, content, attachments)
VALUES ($1, $2, $3, $4)
RETURNING id::text, chat_id::text, sender_id::text, content, attachments, created_at`

func (q *Queries) CreateMessage(ctx context.Context, arg CreateMessageParams) (Message, error) {
	attachments := arg.Attachments
	if attachments == nil {
		attachments = []Attachment{}
	}

	rows, err := q.db.Query(ctx, createMessage, arg.ChatID, arg.SenderID, arg.Content, attachments)
	if err != nil {
		return Message{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Message])
}

const listChatMessages = `
SELECT m.id::text, m.chat_id::text, m.sender_id::text, u.name AS sender_name,
       m.content, m.attachments, m.created_at
FROM messages m
JOIN users u ON u.id = m.sender_id
WHERE m.chat_id = $1
ORDER BY m.created_at DESC, m.id DESC
LIMIT $2 OFFSET $3`

// ListChatMessages returns one page of a chat's messages, newest first.
func (q *Queries) ListChatMessages(ctx context.Context, chatID string, limit, offset int) ([]ChatMessage, error) {
	rows, err := q.db.Query(ctx, listChatMessages, chatID, limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[ChatMessage])
}

const countChatMessages = `SELECT count(*) FROM messages WHERE chat_id = $1`

func (q *Queries) CountChatMessages(ctx context.Context, chatID string) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, countChatMessages, chatID).Scan(&n)
	return n, err
}

const chatAttachmentKeys = `
SELECT a->>'public_id'
FROM messages m, jsonb_array_elements(m.attachments) AS a
WHERE m.chat_id = $1 AND coalesce(a->>'public_id', '') <> ''`

// ChatAttachmentKeys lists the blob keys of every attachment sent in a chat.
func (q *Queries) ChatAttachmentKeys(ctx context.Context, chatID string) ([]string, error) {
	rows, err := q.db.Query(ctx, chatAttachmentKeys, chatID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

const adminMessageColumns = `
m.id::text, m.chat_id::text, c.name AS chat_name, c.group_chat,
m.sender_id::text, u.name AS sender_name, u.avatar_url AS sender_avatar,
m.content, m.attachments, m.created_at`

const listAllMessages = `
SELECT ` + adminMessageColumns + `
FROM messages m
JOIN chats c ON c.id = m.chat_id
JOIN users u ON u.id = m.sender_id
ORDER BY m.created_at DESC`

func (q *Queries) ListAllMessages(ctx context.Context) ([]AdminMessage, error) {
	rows, err := q.db.Query(ctx, listAllMessages)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[AdminMessage])
}

const recentMessages = listAllMessages + ` LIMIT $1`

func (q *Queries) RecentMessages(ctx context.Context, limit int) ([]AdminMessage, error) {
	rows, err := q.db.Query(ctx, recentMessages, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[AdminMessage])
}

const countMessages = `SELECT count(*) FROM messages`

func (q *Queries) CountMessages(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, countMessages).Scan(&n)
	return n, err
}

const messageTimesSince = `SELECT created_at FROM messages WHERE created_at >= $1 AND created_at <= $2`

// MessageTimesSince returns the creation times of messages sent in [since, until].
func (q *Queries) MessageTimesSince(ctx context.Context, since, until time.Time) ([]time.Time, error) {
	rows, err := q.db.Query(ctx, messageTimesSince, since, until)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[time.Time])
}

// Counts gathers the dashboard totals.
func (q *Queries) Counts(ctx context.Context) (Counts, error) {
	var (
		c   Counts
		err error
	)
	if c.Users, err = q.CountUsers(ctx); err != nil {
		return Counts{}, err
	}
	if c.Chats, c.Groups, err = q.CountChats(ctx); err != nil {
		return Counts{}, err
	}
	if c.Messages, err = q.CountMessages(ctx); err != nil {
		return Counts{}, err
	}
	return c, nil
}
