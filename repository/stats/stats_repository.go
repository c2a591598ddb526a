package stats

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/markbaxman/WightCars-sub000/model"
)

type SQL struct {
	conn *sqlx.DB
}

// StatsRepository runs the fixed dashboard statements. Nothing here
// composes predicates; every query is a constant.
type StatsRepository interface {
	Overview(ctx context.Context) (*model.DashboardStats, error)
	UserGrowth(ctx context.Context, days int) ([]model.DateCount, error)
	CarGrowth(ctx context.Context, days int) ([]model.DateCount, error)
	TopMakes(ctx context.Context, limit int) ([]model.MakeCount, error)
	PriceHistogram(ctx context.Context) (*model.PriceHistogramRow, error)
	UsersByLocation(ctx context.Context, limit int) ([]model.LocationCount, error)
}

func NewStatsRepository(conn *sqlx.DB) StatsRepository {
	return &SQL{conn: conn}
}

const (
	overviewQuery = `SELECT
(SELECT COUNT(*) FROM users) AS total_users,
(SELECT COUNT(*) FROM users WHERE created_at >= CURDATE()) AS new_users_today,
(SELECT COUNT(*) FROM cars) AS total_cars,
(SELECT COUNT(*) FROM cars WHERE status = 'active') AS active_cars,
(SELECT COUNT(*) FROM cars WHERE created_at >= CURDATE()) AS new_cars_today,
(SELECT COUNT(*) FROM cars WHERE moderation_status = 'pending') AS pending_cars,
(SELECT COUNT(*) FROM messages) AS total_messages,
(SELECT COUNT(*) FROM messages WHERE created_at >= CURDATE()) AS new_messages_today,
(SELECT COUNT(*) FROM reports WHERE status = 'open') AS open_reports`

	userGrowthQuery = `SELECT DATE_FORMAT(created_at, '%Y-%m-%d') AS bucket, COUNT(*) AS cnt
FROM users
WHERE created_at >= DATE_SUB(CURDATE(), INTERVAL ? DAY)
GROUP BY bucket
ORDER BY bucket ASC`

	carGrowthQuery = `SELECT DATE_FORMAT(created_at, '%Y-%m-%d') AS bucket, COUNT(*) AS cnt
FROM cars
WHERE created_at >= DATE_SUB(CURDATE(), INTERVAL ? DAY)
GROUP BY bucket
ORDER BY bucket ASC`

	topMakesQuery = `SELECT make, COUNT(*) AS cnt, CAST(AVG(price) AS SIGNED) AS avg_price
FROM cars
WHERE status = 'active'
GROUP BY make
ORDER BY cnt DESC, make ASC
LIMIT ?`

	// Boolean SUMs over fixed pence buckets come back as one row.
	priceHistogramQuery = `SELECT
COALESCE(SUM(price < 500000), 0) AS under_5k,
COALESCE(SUM(price >= 500000 AND price < 1000000), 0) AS to_10k,
COALESCE(SUM(price >= 1000000 AND price < 2000000), 0) AS to_20k,
COALESCE(SUM(price >= 2000000 AND price < 5000000), 0) AS to_50k,
COALESCE(SUM(price >= 5000000), 0) AS over_50k
FROM cars
WHERE status = 'active'`

	usersByLocationQuery = `SELECT location, COUNT(*) AS cnt
FROM users
WHERE location <> ''
GROUP BY location
ORDER BY cnt DESC, location ASC
LIMIT ?`
)

func (s *SQL) Overview(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := s.conn.QueryRowxContext(ctx, overviewQuery).StructScan(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *SQL) UserGrowth(ctx context.Context, days int) ([]model.DateCount, error) {
	return s.growth(ctx, userGrowthQuery, days)
}

func (s *SQL) CarGrowth(ctx context.Context, days int) ([]model.DateCount, error) {
	return s.growth(ctx, carGrowthQuery, days)
}

func (s *SQL) growth(ctx context.Context, query string, days int) ([]model.DateCount, error) {
	rows, err := s.conn.QueryxContext(ctx, query, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DateCount, 0)
	for rows.Next() {
		var it model.DateCount
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (s *SQL) TopMakes(ctx context.Context, limit int) ([]model.MakeCount, error) {
	rows, err := s.conn.QueryxContext(ctx, topMakesQuery, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.MakeCount, 0)
	for rows.Next() {
		var it model.MakeCount
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (s *SQL) PriceHistogram(ctx context.Context) (*model.PriceHistogramRow, error) {
	var row model.PriceHistogramRow
	if err := s.conn.QueryRowxContext(ctx, priceHistogramQuery).StructScan(&row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *SQL) UsersByLocation(ctx context.Context, limit int) ([]model.LocationCount, error) {
	rows, err := s.conn.QueryxContext(ctx, usersByLocationQuery, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.LocationCount, 0)
	for rows.Next() {
		var it model.LocationCount
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}
