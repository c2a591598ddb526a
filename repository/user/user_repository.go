package user

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/markbaxman/WightCars-sub000/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	UpdateProfile(ctx context.Context, id uint64, patch *model.UserPatch) error
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) error
	List(ctx context.Context, search string, page, perPage int) ([]model.AdminUserListItem, int64, error)
	SetSuspendedTx(ctx context.Context, tx *sqlx.Tx, id uint64, suspended bool) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (name, email, phone, password_hash, location, is_dealer, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`

	getUserBase = `SELECT id, name, email, phone, password_hash, location, is_dealer, is_verified, is_admin, is_suspended, created_at, updated_at FROM users WHERE true`

	updatePasswordQuery = `UPDATE users SET password_hash = ? WHERE id = ?`

	listUsersBase = `SELECT u.id, u.name, u.email, u.location, u.is_dealer, u.is_verified, u.is_admin, u.is_suspended, u.created_at, COUNT(c.id) AS car_count
FROM users u
LEFT JOIN cars c ON c.user_id = u.id
WHERE true`

	countUsersBase = `SELECT COUNT(*) FROM users WHERE true`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.Name, data.Email, data.Phone, data.PasswordHash, data.Location, data.IsDealer)
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

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateProfile(ctx context.Context, id uint64, patch *model.UserPatch) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *patch.Phone)
	}
	if patch.Location != nil {
		sets = append(sets, "location = ?")
		args = append(args, *patch.Location)
	}
	if patch.IsDealer != nil {
		sets = append(sets, "is_dealer = ?")
		args = append(args, *patch.IsDealer)
	}
	if len(sets) == 0 {
		return nil
	}

	query := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	_, err := s.conn.ExecContext(ctx, updatePasswordQuery, passwordHash, id)
	return err
}

func (s *SQL) List(ctx context.Context, search string, page, perPage int) ([]model.AdminUserListItem, int64, error) {
	offset := (page - 1) * perPage

	query := listUsersBase
	countQuery := countUsersBase
	args := make([]any, 0, 2)
	countArgs := make([]any, 0, 2)

	if search != "" {
		like := "%" + search + "%"
		query += " AND (u.name LIKE ? OR u.email LIKE ?)"
		args = append(args, like, like)
		countQuery += " AND (name LIKE ? OR email LIKE ?)"
		countArgs = append(countArgs, like, like)
	}

	query += " GROUP BY u.id ORDER BY u.created_at DESC, u.id DESC LIMIT ? OFFSET ?"
	args = append(args, perPage, offset)

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.AdminUserListItem, 0)
	for rows.Next() {
		var it model.AdminUserListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) SetSuspendedTx(ctx context.Context, tx *sqlx.Tx, id uint64, suspended bool) error {
	_, err := tx.ExecContext(ctx, "UPDATE users SET is_suspended = ? WHERE id = ?", suspended, id)
	return err
}
