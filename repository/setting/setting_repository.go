package setting

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/markbaxman/WightCars-sub000/model"
)

type SQL struct {
	conn *sqlx.DB
}

type SettingRepository interface {
	GetAll(ctx context.Context) ([]model.SettingEntity, error)
	UpsertTx(ctx context.Context, tx *sqlx.Tx, key, value string) error
}

func NewSettingRepository(conn *sqlx.DB) SettingRepository {
	return &SQL{conn: conn}
}

const (
	getAllSettingsQuery = "SELECT `key`, value, updated_at FROM settings ORDER BY `key` ASC"

	upsertSettingQuery = "INSERT INTO settings (`key`, value) VALUES (?, ?) ON DUPLICATE KEY UPDATE value = VALUES(value)"
)

func (s *SQL) GetAll(ctx context.Context) ([]model.SettingEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, getAllSettingsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.SettingEntity, 0)
	for rows.Next() {
		var it model.SettingEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (s *SQL) UpsertTx(ctx context.Context, tx *sqlx.Tx, key, value string) error {
	_, err := tx.ExecContext(ctx, upsertSettingQuery, key, value)
	return err
}
