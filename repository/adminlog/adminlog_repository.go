package adminlog

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/markbaxman/WightCars-sub000/model"
)

type SQL struct {
	conn *sqlx.DB
}

// AdminLogRepository is append-only: rows are written inside the same
// transaction as the admin mutation they record, and only ever listed.
type AdminLogRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.AdminLogEntity) error
	List(ctx context.Context, page, perPage int) ([]model.AdminLogEntity, int64, error)
}

func NewAdminLogRepository(conn *sqlx.DB) AdminLogRepository {
	return &SQL{conn: conn}
}

const (
	insertLogQuery = `INSERT INTO admin_logs (admin_id, action, target_type, target_id, details, ip_address, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`

	listLogsQuery = `SELECT id, admin_id, action, target_type, target_id, details, ip_address, created_at
FROM admin_logs
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?`

	countLogsQuery = `SELECT COUNT(*) FROM admin_logs`
)

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.AdminLogEntity) error {
	_, err := tx.ExecContext(ctx, insertLogQuery,
		data.AdminID, data.Action, data.TargetType, data.TargetID, data.Details, data.IPAddress)
	return err
}

func (s *SQL) List(ctx context.Context, page, perPage int) ([]model.AdminLogEntity, int64, error) {
	offset := (page - 1) * perPage

	rows, err := s.conn.QueryxContext(ctx, listLogsQuery, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.AdminLogEntity, 0)
	for rows.Next() {
		var it model.AdminLogEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countLogsQuery); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
