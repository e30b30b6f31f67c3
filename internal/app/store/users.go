package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id::text, name, username, password_hash, bio, avatar_key, avatar_url, created_at, updated_at`

type CreateUserParams struct {
	Name         string
	Username     string
	PasswordHash string
	Bio          string
	AvatarKey    string
	AvatarURL    string
}

const createUser = `
INSERT INTO users (name, username, password_hash, bio, avatar_key, avatar_url)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + userColumns

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	rows, err := q.db.Query(ctx, createUser,
		arg.Name,
		arg.Username,
		arg.PasswordHash,
		arg.Bio,
		arg.AvatarKey,
		arg.AvatarURL,
	)
	if err != nil {
		return User{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[User])
}

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, id string) (User, error) {
	rows, err := q.db.Query(ctx, getUserByID, id)
	if err != nil {
		return User{}, err
	}
	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[User])
	return user, notFound(err)
}

const getUserByUsername = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

func (q *Queries) GetUserByUsername(ctx context.Context, username string) (User, error) {
	rows, err := q.db.Query(ctx, getUserByUsername, username)
	if err != nil {
		return User{}, err
	}
	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[User])
	return user, notFound(err)
}

const getUsersByIDs = `
SELECT ` + userColumns + `
FROM users
WHERE id = ANY($1::text[]::uuid[])
ORDER BY array_position($1::text[], id::text)`

// GetUsersByIDs loads the users that exist among ids, in input order. Unknown ids are skipped.
func (q *Queries) GetUsersByIDs(ctx context.Context, ids []string) ([]User, error) {
	rows, err := q.db.Query(ctx, getUsersByIDs, ids)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[User])
}

const searchUsers = `
SELECT u.id::text, u.name, u.avatar_url
FROM users u
WHERE u.id <> $1
  AND u.name ILIKE '%' || $2 || '%'
  AND NOT EXISTS (
    SELECT 1
    FROM chat_members mine
    JOIN chats c ON c.id = mine.chat_id AND NOT c.group_chat
    JOIN chat_members other ON other.chat_id = c.id
    WHERE mine.user_id = $1 AND other.user_id = u.id
  )
ORDER BY u.name
LIMIT 50`

// SearchUsers finds users whose name contains name and who share no direct chat with userID.
func (q *Queries) SearchUsers(ctx context.Context, userID, name string) ([]Profile, error) {
	rows, err := q.db.Query(ctx, searchUsers, userID, name)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Profile])
}

const listUsersWithCounts = `
SELECT u.id::text, u.name, u.username, u.avatar_url,
       count(m.chat_id) FILTER (WHERE c.group_chat)     AS groups,
       count(m.chat_id) FILTER (WHERE NOT c.group_chat) AS friends
FROM users u
LEFT JOIN chat_members m ON m.user_id = u.id
LEFT JOIN chats c ON c.id = m.chat_id
GROUP BY u.id
ORDER BY u.created_at DESC`

func (q *Queries) ListUsersWithCounts(ctx context.Context) ([]UserWithCounts, error) {
	rows, err := q.db.Query(ctx, listUsersWithCounts)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[UserWithCounts])
}

const countUsers = `SELECT count(*) FROM users`

func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, countUsers).Scan(&n)
	return n, err
}
