package message

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/markbaxman/WightCars-sub000/model"
)

type SQL struct {
	conn *sqlx.DB
}

type MessageRepository interface {
	Insert(ctx context.Context, data *model.MessageEntity) (*model.MessageEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.MessageEntity, error)
	ListInbox(ctx context.Context, userID uint64, page, perPage int) ([]model.MessageListItem, int64, error)
	ListThread(ctx context.Context, carID, userID uint64) ([]model.MessageListItem, error)
	MarkRead(ctx context.Context, id uint64) error
	UnreadCount(ctx context.Context, userID uint64) (int64, error)
}

func NewMessageRepository(conn *sqlx.DB) MessageRepository {
	return &SQL{conn: conn}
}

const (
	insertMessageQuery = `INSERT INTO messages (car_id, sender_id, recipient_id, content, created_at) VALUES (?, ?, ?, ?, NOW())`

	listInboxQuery = `SELECT m.id, m.car_id, c.title AS car_title, m.sender_id, u.name AS sender_name, m.recipient_id, m.content, m.is_read, m.created_at
FROM messages m
JOIN cars c ON m.car_id = c.id
JOIN users u ON m.sender_id = u.id
WHERE m.recipient_id = ?
ORDER BY m.created_at DESC, m.id DESC
LIMIT ? OFFSET ?`

	countInboxQuery = `SELECT COUNT(*) FROM messages WHERE recipient_id = ?`

	listThreadQuery = `SELECT m.id, m.car_id, c.title AS car_title, m.sender_id, u.name AS sender_name, m.recipient_id, m.content, m.is_read, m.created_at
FROM messages m
JOIN cars c ON m.car_id = c.id
JOIN users u ON m.sender_id = u.id
WHERE m.car_id = ? AND (m.sender_id = ? OR m.recipient_id = ?)
ORDER BY m.created_at ASC, m.id ASC`

	getMessageByID = `SELECT id, car_id, sender_id, recipient_id, content, is_read, created_at FROM messages WHERE id = ?`

	markReadQuery = `UPDATE messages SET is_read = true WHERE id = ?`

	unreadCountQuery = `SELECT COUNT(*) FROM messages WHERE recipient_id = ? AND is_read = false`
)

func (s *SQL) Insert(ctx context.Context, data *model.MessageEntity) (*model.MessageEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertMessageQuery, data.CarID, data.SenderID, data.RecipientID, data.Content)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) ListInbox(ctx context.Context, userID uint64, page, perPage int) ([]model.MessageListItem, int64, error) {
	offset := (page - 1) * perPage

	rows, err := s.conn.QueryxContext(ctx, listInboxQuery, userID, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.MessageListItem, 0)
	for rows.Next() {
		var it model.MessageListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countInboxQuery, userID); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) ListThread(ctx context.Context, carID, userID uint64) ([]model.MessageListItem, error) {
	rows, err := s.conn.QueryxContext(ctx, listThreadQuery, carID, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.MessageListItem, 0)
	for rows.Next() {
		var it model.MessageListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.MessageEntity, error) {
	var entity model.MessageEntity
	if err := s.conn.QueryRowxContext(ctx, getMessageByID, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) MarkRead(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, markReadQuery, id)
	return err
}

func (s *SQL) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, unreadCountQuery, userID); err != nil {
		return 0, err
	}
	return total, nil
}
