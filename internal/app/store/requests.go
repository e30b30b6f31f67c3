package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const requestColumns = `id::text, sender_id::text, receiver_id::text, status, created_at`

const findRequestBetween = `
SELECT ` + requestColumns + `
FROM friend_requests
WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
LIMIT 1`

// FindRequestBetween returns the request between a and b in either direction, or ErrNotFound.
func (q *Queries) FindRequestBetween(ctx context.Context, a, b string) (FriendRequest, error) {
	rows, err := q.db.Query(ctx, findRequestBetween, a, b)
	if err != nil {
		return FriendRequest{}, err
	}
	r, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[FriendRequest])
	return r, notFound(err)
}

const createRequest = `
INSERT INTO friend_requests (sender_id, receiver_id)
VALUES ($1, $2)
RETURNING ` + requestColumns

// CreateRequest inserts a pending request. A request already existing for the pair
// in either direction fails with a unique violation.
func (q *Queries) CreateRequest(ctx context.Context, senderID, receiverID string) (FriendRequest, error) {
	rows, err := q.db.Query(ctx, createRequest, senderID, receiverID)
	if err != nil {
		return FriendRequest{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[FriendRequest])
}

const getRequest = `SELECT ` + requestColumns + ` FROM friend_requests WHERE id = $1`

func (q *Queries) GetRequest(ctx context.Context, id string) (FriendRequest, error) {
	rows, err := q.db.Query(ctx, getRequest, id)
	if err != nil {
		return FriendRequest{}, err
	}
	r, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[FriendRequest])
	return r, notFound(err)
}

const deleteRequest = `DELETE FROM friend_requests WHERE id = $1`

func (q *Queries) DeleteRequest(ctx context.Context, id string) error {
	return q.execOne(ctx, deleteRequest, id)
}

const listRequestsForReceiver = `
SELECT r.id::text, r.sender_id::text, u.name AS sender_name, u.avatar_url AS sender_avatar
FROM friend_requests r
JOIN users u ON u.id = r.sender_id
WHERE r.receiver_id = $1 AND r.status = 'pending'
ORDER BY r.created_at DESC`

func (q *Queries) ListRequestsForReceiver(ctx context.Context, userID string) ([]IncomingRequest, error) {
	rows, err := q.db.Query(ctx, listRequestsForReceiver, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[IncomingRequest])
}

// AcceptRequest creates the direct chat between the two parties and removes the request.
func (s *Store) AcceptRequest(ctx context.Context, r FriendRequest, chatName string) (Chat, error) {
	var chat Chat
	err := s.ExecTx(ctx, func(q *Queries) error {
		var err error
		chat, err = q.createChat(ctx, CreateChatParams{
			Name:    chatName,
			Members: []string{r.ReceiverID, r.SenderID},
		})
		if err != nil {
			return err
		}
		return q.DeleteRequest(ctx, r.ID)
	})
	return chat, err
}
