package car

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

type CarRepository interface {
	List(ctx context.Context, filter *model.CarFilter) ([]model.CarListItem, int64, error)
	GetDetail(ctx context.Context, id uint64) (*model.CarDetail, error)
	GetByID(ctx context.Context, id uint64) (*model.CarEntity, error)
	Insert(ctx context.Context, data *model.CarEntity) (*model.CarEntity, error)
	Update(ctx context.Context, id uint64, patch *model.CarUpdateRequest) error
	UpdateStatus(ctx context.Context, id uint64, status string) error
	IncrementViews(ctx context.Context, id uint64) (bool, error)
	Delete(ctx context.Context, id uint64) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) (bool, error)
	ListByOwner(ctx context.Context, userID uint64) ([]model.CarEntity, error)
	ListByModeration(ctx context.Context, status string, page, perPage int) ([]model.CarListItem, int64, error)
	SetModerationTx(ctx context.Context, tx *sqlx.Tx, id uint64, status string) error
	SetFeaturedTx(ctx context.Context, tx *sqlx.Tx, id uint64, featured bool) error
}

func NewCarRepository(conn *sqlx.DB) CarRepository {
	return &SQL{conn: conn}
}

const (
	listCarsBase = `SELECT c.id, c.title, c.make, c.model, c.year, c.mileage, c.price, c.fuel_type, c.transmission, c.body_type, c.location, c.status, c.images, c.featured_image, c.views, c.is_featured, c.created_at,
u.name AS seller_name, u.location AS seller_location, u.is_dealer AS seller_dealer, u.is_verified AS seller_verified
FROM cars c
JOIN users u ON c.user_id = u.id
WHERE true`

	countCarsBase = `SELECT COUNT(*)
FROM cars c
JOIN users u ON c.user_id = u.id
WHERE true`

	getCarDetail = `SELECT c.id, c.user_id, c.title, c.description, c.make, c.model, c.year, c.mileage, c.price, c.fuel_type, c.transmission, c.body_type, c.location, c.status, c.moderation_status, c.features, c.images, c.featured_image, c.views, c.is_featured, c.created_at, c.updated_at,
u.name AS seller_name, u.email AS seller_email, u.phone AS seller_phone, u.location AS seller_location, u.is_dealer AS seller_dealer, u.is_verified AS seller_verified
FROM cars c
JOIN users u ON c.user_id = u.id
WHERE c.id = ?`

	getCarByID = `SELECT id, user_id, title, description, make, model, year, mileage, price, fuel_type, transmission, body_type, location, status, moderation_status, features, images, featured_image, views, is_featured, created_at, updated_at
FROM cars WHERE id = ?`

	insertCarQuery = `INSERT INTO cars (user_id, title, description, make, model, year, mileage, price, fuel_type, transmission, body_type, location, status, moderation_status, features, images, featured_image, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	updateCarStatusQuery = `UPDATE cars SET status = ?, updated_at = NOW() WHERE id = ?`

	incrementViewsQuery = `UPDATE cars SET views = views + 1 WHERE id = ?`

	deleteCarQuery = `DELETE FROM cars WHERE id = ?`

	listCarsByOwner = `SELECT id, user_id, title, description, make, model, year, mileage, price, fuel_type, transmission, body_type, location, status, moderation_status, features, images, featured_image, views, is_featured, created_at, updated_at
FROM cars WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	listCarsByModeration = `SELECT c.id, c.title, c.make, c.model, c.year, c.mileage, c.price, c.fuel_type, c.transmission, c.body_type, c.location, c.status, c.images, c.featured_image, c.views, c.is_featured, c.created_at,
u.name AS seller_name, u.location AS seller_location, u.is_dealer AS seller_dealer, u.is_verified AS seller_verified
FROM cars c
JOIN users u ON c.user_id = u.id
WHERE c.moderation_status = ?
ORDER BY c.created_at ASC, c.id ASC
LIMIT ? OFFSET ?`

	countCarsByModeration = `SELECT COUNT(*) FROM cars WHERE moderation_status = ?`
)

func (s *SQL) List(ctx context.Context, filter *model.CarFilter) ([]model.CarListItem, int64, error) {
	ps := carPredicates(filter)

	query, args := appendWhere(listCarsBase, ps)
	limit, offset := pageWindow(filter.Page, filter.Limit)
	query += orderClause(filter.SortBy) + " LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := s.conn.QueryxContext(ctx, query, args...)
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

	countQuery, countArgs := appendWhere(countCarsBase, ps)
	var total int64
	if err := s.conn.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) GetDetail(ctx context.Context, id uint64) (*model.CarDetail, error) {
	var detail model.CarDetail
	if err := s.conn.QueryRowxContext(ctx, getCarDetail, id).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.CarEntity, error) {
	var entity model.CarEntity
	if err := s.conn.QueryRowxContext(ctx, getCarByID, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Insert(ctx context.Context, data *model.CarEntity) (*model.CarEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertCarQuery,
		data.UserID, data.Title, data.Description, data.Make, data.Model, data.Year, data.Mileage, data.Price,
		data.FuelType, data.Transmission, data.BodyType, data.Location, data.Status, data.ModerationStatus,
		data.Features, data.Images, data.FeaturedImage)
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

func (s *SQL) Update(ctx context.Context, id uint64, patch *model.CarUpdateRequest) error {
	sets := make([]string, 0, 15)
	args := make([]any, 0, 16)

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Make != nil {
		sets = append(sets, "make = ?")
		args = append(args, *patch.Make)
	}
	if patch.Model != nil {
		sets = append(sets, "model = ?")
		args = append(args, *patch.Model)
	}
	if patch.Year != nil {
		sets = append(sets, "year = ?")
		args = append(args, *patch.Year)
	}
	if patch.Mileage != nil {
		sets = append(sets, "mileage = ?")
		args = append(args, *patch.Mileage)
	}
	if patch.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *patch.Price)
	}
	if patch.FuelType != nil {
		sets = append(sets, "fuel_type = ?")
		args = append(args, *patch.FuelType)
	}
	if patch.Transmission != nil {
		sets = append(sets, "transmission = ?")
		args = append(args, *patch.Transmission)
	}
	if patch.BodyType != nil {
		sets = append(sets, "body_type = ?")
		args = append(args, *patch.BodyType)
	}
	if patch.Location != nil {
		sets = append(sets, "location = ?")
		args = append(args, *patch.Location)
	}
	if patch.Features != nil {
		sets = append(sets, "features = ?")
		args = append(args, *patch.Features)
	}
	if patch.Images != nil {
		sets = append(sets, "images = ?")
		args = append(args, *patch.Images)
	}
	if patch.FeaturedImage != nil {
		sets = append(sets, "featured_image = ?")
		args = append(args, *patch.FeaturedImage)
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	query := "UPDATE cars SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) UpdateStatus(ctx context.Context, id uint64, status string) error {
	_, err := s.conn.ExecContext(ctx, updateCarStatusQuery, status, id)
	return err
}

func (s *SQL) IncrementViews(ctx context.Context, id uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, incrementViewsQuery, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteCarQuery, id)
	return err
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) (bool, error) {
	res, err := tx.ExecContext(ctx, deleteCarQuery, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) ListByOwner(ctx context.Context, userID uint64) ([]model.CarEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listCarsByOwner, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CarEntity, 0)
	for rows.Next() {
		var it model.CarEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (s *SQL) ListByModeration(ctx context.Context, status string, page, perPage int) ([]model.CarListItem, int64, error) {
	limit, offset := pageWindow(page, perPage)

	rows, err := s.conn.QueryxContext(ctx, listCarsByModeration, status, limit, offset)
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
	if err := s.conn.GetContext(ctx, &total, countCarsByModeration, status); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) SetModerationTx(ctx context.Context, tx *sqlx.Tx, id uint64, status string) error {
	_, err := tx.ExecContext(ctx, "UPDATE cars SET moderation_status = ?, updated_at = NOW() WHERE id = ?", status, id)
	return err
}

func (s *SQL) SetFeaturedTx(ctx context.Context, tx *sqlx.Tx, id uint64, featured bool) error {
	_, err := tx.ExecContext(ctx, "UPDATE cars SET is_featured = ?, updated_at = NOW() WHERE id = ?", featured, id)
	return err
}
