package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

const chatColumns = `
c.id::text, c.name, c.group_chat, c.creator_id::text, c.created_at, c.updated_at,
ARRAY(SELECT cm.user_id::text FROM chat_members cm WHERE cm.chat_id = c.id ORDER BY cm.seq) AS members`

type CreateChatParams struct {
	Name      string
	GroupChat bool
	// CreatorID is empty for direct chats.
	CreatorID string
	Members   []string
}

const insertChat = `
INSERT INTO chats (name, group_chat, creator_id)
VALUES ($1, $2, NULLIF($3, '')::uuid)
RETURNING id::text`

// CreateChat inserts the chat and its members in one transaction.
func (s *Store) CreateChat(ctx context.Context, arg CreateChatParams) (Chat, error) {
	var chat Chat
	err := s.ExecTx(ctx, func(q *Queries) error {
		var err error
		chat, err = q.createChat(ctx, arg)
		return err
	})
	return chat, err
}

func (q *Queries) createChat(ctx context.Context, arg CreateChatParams) (Chat, error) {
	var id string
	if err := q.db.QueryRow(ctx, insertChat, arg.Name, arg.GroupChat, arg.CreatorID).Scan(&id); err != nil {
		return Chat{}, err
	}
	if err := q.AddChatMembers(ctx, id, arg.Members); err != nil {
		return Chat{}, err
	}
	return q.GetChat(ctx, id)
}

const getChat = `SELECT ` + chatColumns + ` FROM chats c WHERE c.id = $1`

func (q *Queries) GetChat(ctx context.Context, id string) (Chat, error) {
	rows, err := q.db.Query(ctx, getChat, id)
	if err != nil {
		return Chat{}, err
	}
	chat, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Chat])
	return chat, notFound(err)
}

const chatMembers = `
SELECT ARRAY(SELECT cm.user_id::text FROM chat_members cm WHERE cm.chat_id = c.id ORDER BY cm.seq)
FROM chats c
WHERE c.id = $1`

// ChatMembers returns the ordered member ids of a chat, or ErrNotFound.
func (q *Queries) ChatMembers(ctx context.Context, chatID string) ([]string, error) {
	var members []string
	err := q.db.QueryRow(ctx, chatMembers, chatID).Scan(&members)
	if err != nil {
		return nil, notFound(err)
	}
	return members, nil
}

const coMemberIDs = `
SELECT DISTINCT other.user_id::text
FROM chat_members mine
JOIN chat_members other ON other.chat_id = mine.chat_id AND other.user_id <> mine.user_id
WHERE mine.user_id = $1`

// CoMemberIDs returns the users sharing at least one chat, direct or group, with userID.
func (q *Queries) CoMemberIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := q.db.Query(ctx, coMemberIDs, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

const directChatPartners = `
SELECT other.chat_id::text, u.id::text, u.name, u.username, u.avatar_url
FROM chat_members mine
JOIN chats c ON c.id = mine.chat_id AND NOT c.group_chat
JOIN chat_members other ON other.chat_id = c.id AND other.user_id <> mine.user_id
JOIN users u ON u.id = other.user_id
WHERE mine.user_id = $1
ORDER BY u.name`

// DirectChatPartners returns the profile of the other member of each direct chat of userID.
func (q *Queries) DirectChatPartners(ctx context.Context, userID string) ([]MemberProfile, error) {
	rows, err := q.db.Query(ctx, directChatPartners, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[MemberProfile])
}

const listChatsForUser = `
SELECT ` + chatColumns + `
FROM chats c
JOIN chat_members me ON me.chat_id = c.id AND me.user_id = $1
ORDER BY c.updated_at DESC`

func (q *Queries) ListChatsForUser(ctx context.Context, userID string) ([]Chat, error) {
	rows, err := q.db.Query(ctx, listChatsForUser, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Chat])
}

const listGroupsCreatedBy = `
SELECT ` + chatColumns + `
FROM chats c
JOIN chat_members me ON me.chat_id = c.id AND me.user_id = $1
WHERE c.group_chat AND c.creator_id = $1
ORDER BY c.updated_at DESC`

func (q *Queries) ListGroupsCreatedBy(ctx context.Context, userID string) ([]Chat, error) {
	rows, err := q.db.Query(ctx, listGroupsCreatedBy, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Chat])
}

const listMemberProfiles = `
SELECT cm.chat_id::text, u.id::text, u.name, u.username, u.avatar_url
FROM chat_members cm
JOIN users u ON u.id = cm.user_id
WHERE cm.chat_id = ANY($1::text[]::uuid[])
ORDER BY cm.chat_id, cm.seq`

// ListMemberProfiles loads the member profiles of several chats, each chat's members in join order.
func (q *Queries) ListMemberProfiles(ctx context.Context, chatIDs []string) ([]MemberProfile, error) {
	rows, err := q.db.Query(ctx, listMemberProfiles, chatIDs)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[MemberProfile])
}

const addChatMembers = `
INSERT INTO chat_members (chat_id, user_id)
SELECT $1::uuid, t.member::uuid
FROM unnest($2::text[]) WITH ORDINALITY AS t(member, ord)
ORDER BY t.ord
ON CONFLICT (chat_id, user_id) DO NOTHING`

// AddChatMembers appends members in the given order. Existing members are left untouched.
func (q *Queries) AddChatMembers(ctx context.Context, chatID string, members []string) error {
	if len(members) == 0 {
		return nil
	}
	if _, err := q.db.Exec(ctx, addChatMembers, chatID, members); err != nil {
		return err
	}
	return q.touchChat(ctx, chatID)
}

const removeChatMember = `DELETE FROM chat_members WHERE chat_id = $1 AND user_id = $2`

func (q *Queries) RemoveChatMember(ctx context.Context, chatID, userID string) error {
	tag, err := q.db.Exec(ctx, removeChatMember, chatID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return q.touchChat(ctx, chatID)
}

const setChatCreator = `UPDATE chats SET creator_id = $2, updated_at = now() WHERE id = $1`

func (q *Queries) SetChatCreator(ctx context.Context, chatID, userID string) error {
	return q.execOne(ctx, setChatCreator, chatID, userID)
}

const renameChat = `UPDATE chats SET name = $2, updated_at = now() WHERE id = $1`

func (q *Queries) RenameChat(ctx context.Context, chatID, name string) error {
	return q.execOne(ctx, renameChat, chatID, name)
}

const deleteChat = `DELETE FROM chats WHERE id = $1`

// DeleteChat removes the chat. Memberships and messages cascade.
func (q *Queries) DeleteChat(ctx context.Context, chatID string) error {
	return q.execOne(ctx, deleteChat, chatID)
}

const touchChat = `UPDATE chats SET updated_at = now() WHERE id = $1`

func (q *Queries) touchChat(ctx context.Context, chatID string) error {
	_, err := q.db.Exec(ctx, touchChat, chatID)
	return err
}

func (q *Queries) execOne(ctx context.Context, sql string, args ...any) error {
	tag, err := q.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// LeaveChat removes userID from the chat and, when newCreator is set, hands the chat over.
func (s *Store) LeaveChat(ctx context.Context, chatID, userID, newCreator string) error {
	return s.ExecTx(ctx, func(q *Queries) error {
		if err := q.RemoveChatMember(ctx, chatID, userID); err != nil {
			return err
		}
		if newCreator == "" {
			return nil
		}
		return q.SetChatCreator(ctx, chatID, newCreator)
	})
}

const countChats = `SELECT count(*), count(*) FILTER (WHERE group_chat) FROM chats`

// CountChats returns the number of chats and how many of them are groups.
func (q *Queries) CountChats(ctx context.Context) (total, groups int64, err error) {
	err = q.db.QueryRow(ctx, countChats).Scan(&total, &groups)
	return total, groups, err
}

const listAllChats = `
SELECT c.id::text, c.name, c.group_chat,
       u.name       AS creator_name,
       u.avatar_url AS creator_avatar,
       (SELECT count(*) FROM chat_members cm WHERE cm.chat_id = c.id) AS total_members,
       (SELECT count(*) FROM messages m WHERE m.chat_id = c.id)       AS total_messages
FROM chats c
LEFT JOIN users u ON u.id = c.creator_id
ORDER BY c.created_at DESC`

func (q *Queries) ListAllChats(ctx context.Context) ([]ChatSummary, error) {
	rows, err := q.db.Query(ctx, listAllChats)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[ChatSummary])
}

// IsNotFound reports whether err is ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
