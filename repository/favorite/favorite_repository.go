package favorite

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/markbaxman/WightCars-sub000/model"
)

type SQL struct {
	conn *sqlx.DB
}

type FavoriteRepository interface {
	Insert(ctx context.Context, userID, carID uint64) error
	Delete(ctx context.Context, userID, carID uint64) (bool, error)
	ListByUser(ctx context.Context, userID uint64, page, perPage int) ([]model.CarListItem, int64, error)
}

func NewFavoriteRepository(conn *sqlx.DB) FavoriteRepository {
	return &SQL{conn: conn}
}

const (
	// INSERT IGNORE under the (user_id, car_id) unique key absorbs a
	// concurrent duplicate save.
	insertFavoriteQuery = `INSERT IGNORE INTO saved_cars (user_id, car_id, created_at) VALUES (?, ?, NOW())`

	deleteFavoriteQuery = `DELETE FROM saved_cars WHERE user_id = ? AND car_id = ?`

	listFavoritesQuery = `SELECT c.id, c.title, c.make, c.model, c.year, c.mileage, c.price, c.fuel_type, c.transmission, c.body_type, c.location, c.status, c.images, c.featured_image, c.views, c.is_featured, c.created_at,
u.name AS seller_name, u.location AS seller_location, u.is_dealer AS seller_dealer, u.is_verified AS seller_verified
FROM saved_cars sc
JOIN cars c ON sc.car_id = c.id
JOIN users u ON c.user_id = u.id
WHERE sc.user_id = ?
ORDER BY sc.created_at DESC, sc.id DESC
LIMIT ? OFFSET ?`

	countFavoritesQuery = `SELECT COUNT(*) FROM saved_cars WHERE user_id = ?`
)

func (s *SQL) Insert(ctx context.Context, userID, carID uint64) error {
	_, err := s.conn.ExecContext(ctx, insertFavoriteQuery, userID, carID)
	return err
}

// Delete removes the saved row and reports whether one existed.
func (s *SQL) Delete(ctx context.Context, userID, carID uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteFavoriteQuery, userID, carID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) ListByUser(ctx context.Context, userID uint64, page, perPage int) ([]model.CarListItem, int64, error) {
	offset := (page - 1) * perPage

	rows, err := s.conn.QueryxContext(ctx, listFavoritesQuery, userID, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.CarListItem, 0)
	for rows.Next() {
		var it model.CarListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countFavoritesQuery, userID); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
