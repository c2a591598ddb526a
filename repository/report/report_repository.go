package report

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/markbaxman/WightCars-sub000/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ReportRepository interface {
	Insert(ctx context.Context, data *model.ReportEntity) (*model.ReportEntity, error)
	List(ctx context.Context, status string, page, perPage int) ([]model.ReportListItem, int64, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ReportEntity, error)
	ResolveTx(ctx context.Context, tx *sqlx.Tx, id, adminID uint64, status string) error
}

func NewReportRepository(conn *sqlx.DB) ReportRepository {
	return &SQL{conn: conn}
}

const (
	insertReportQuery = `INSERT INTO reports (reporter_id, target_type, target_id, reason, details, status, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`

	listReportsBase = `SELECT r.id, r.reporter_id, u.name AS reporter_name, r.target_type, r.target_id, r.reason, r.status, r.created_at, r.resolved_at
FROM reports r
JOIN users u ON r.reporter_id = u.id
WHERE true`

	countReportsBase = `SELECT COUNT(*) FROM reports WHERE true`
)

func (s *SQL) Insert(ctx context.Context, data *model.ReportEntity) (*model.ReportEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertReportQuery,
		data.ReporterID, data.TargetType, data.TargetID, data.Reason, data.Details, data.Status)
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

func (s *SQL) List(ctx context.Context, status string, page, perPage int) ([]model.ReportListItem, int64, error) {
	offset := (page - 1) * perPage

	query := listReportsBase
	countQuery := countReportsBase
	args := make([]any, 0, 3)
	countArgs := make([]any, 0, 1)

	if status != "" {
		query += " AND r.status = ?"
		args = append(args, status)
		countQuery += " AND status = ?"
		countArgs = append(countArgs, status)
	}

	query += " ORDER BY r.created_at DESC, r.id DESC LIMIT ? OFFSET ?"
	args = append(args, perPage, offset)

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ReportListItem, 0)
	for rows.Next() {
		var it model.ReportListItem
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

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ReportEntity, error) {
	var entity model.ReportEntity
	row := tx.QueryRowxContext(ctx, "SELECT id, reporter_id, target_type, target_id, reason, details, status, admin_id, created_at, resolved_at FROM reports WHERE id = ? FOR UPDATE", id)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ResolveTx(ctx context.Context, tx *sqlx.Tx, id, adminID uint64, status string) error {
	_, err := tx.ExecContext(ctx, "UPDATE reports SET status = ?, admin_id = ?, resolved_at = NOW() WHERE id = ?", status, adminID, id)
	return err
}
