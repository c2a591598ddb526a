package car

import (
	"github.com/markbaxman/WightCars-sub000/constant"
	"github.com/markbaxman/WightCars-sub000/model"
)

// predicate is one bound WHERE condition. Values always travel as args,
// never concatenated into the expression.
type predicate struct {
	expr string
	args []any
}

// carPredicates folds the present filter fields into predicates. Zero
// values mean absent (open range); IsDealer is tri-state through the
// pointer. Status defaults to active, and public listings are always
// restricted to approved moderation.
func carPredicates(f *model.CarFilter) []predicate {
	ps := make([]predicate, 0, 16)

	status := f.Status
	if status == "" {
		status = constant.CarStatusActive
	}
	ps = append(ps,
		predicate{"c.status = ?", []any{status}},
		predicate{"c.moderation_status = ?", []any{constant.ModerationApproved}},
	)

	if f.Make != "" {
		ps = append(ps, predicate{"c.make = ?", []any{f.Make}})
	}
	if f.Model != "" {
		ps = append(ps, predicate{"c.model = ?", []any{f.Model}})
	}
	if f.MinYear != 0 {
		ps = append(ps, predicate{"c.year >= ?", []any{f.MinYear}})
	}
	if f.MaxYear != 0 {
		ps = append(ps, predicate{"c.year <= ?", []any{f.MaxYear}})
	}
	if f.MinPrice != 0 {
		ps = append(ps, predicate{"c.price >= ?", []any{f.MinPrice}})
	}
	if f.MaxPrice != 0 {
		ps = append(ps, predicate{"c.price <= ?", []any{f.MaxPrice}})
	}
	if f.MinMileage != 0 {
		ps = append(ps, predicate{"c.mileage >= ?", []any{f.MinMileage}})
	}
	if f.MaxMileage != 0 {
		ps = append(ps, predicate{"c.mileage <= ?", []any{f.MaxMileage}})
	}
	if f.FuelType != "" {
		ps = append(ps, predicate{"c.fuel_type = ?", []any{f.FuelType}})
	}
	if f.Transmission != "" {
		ps = append(ps, predicate{"c.transmission = ?", []any{f.Transmission}})
	}
	if f.BodyType != "" {
		ps = append(ps, predicate{"c.body_type = ?", []any{f.BodyType}})
	}
	if f.Location != "" {
		ps = append(ps, predicate{"c.location LIKE ?", []any{"%" + f.Location + "%"}})
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		ps = append(ps, predicate{"(c.title LIKE ? OR c.make LIKE ? OR c.model LIKE ?)", []any{like, like, like}})
	}
	if f.IsDealer != nil {
		ps = append(ps, predicate{"u.is_dealer = ?", []any{*f.IsDealer}})
	}

	return ps
}

// appendWhere folds predicates onto a base query ending in "WHERE true".
func appendWhere(query string, ps []predicate) (string, []any) {
	args := make([]any, 0, len(ps)*2)
	for _, p := range ps {
		query += " AND " + p.expr
		args = append(args, p.args...)
	}
	return query, args
}

// sortColumns whitelists the sortable keys. Unknown keys fall back to
// newest first; c.id breaks created_at ties so pages never overlap.
var sortColumns = map[string]string{
	constant.SortPriceAsc:    "c.price ASC",
	constant.SortPriceDesc:   "c.price DESC",
	constant.SortYearAsc:     "c.year ASC",
	constant.SortYearDesc:    "c.year DESC",
	constant.SortMileageAsc:  "c.mileage ASC",
	constant.SortMileageDesc: "c.mileage DESC",
	constant.SortCreatedAsc:  "c.created_at ASC",
	constant.SortCreatedDesc: "c.created_at DESC",
}

func orderClause(sortBy string) string {
	col, ok := sortColumns[sortBy]
	if !ok {
		col = sortColumns[constant.SortCreatedDesc]
	}
	return " ORDER BY " + col + ", c.id DESC"
}

// pageWindow normalizes page/limit and returns (limit, offset).
func pageWindow(page, limit int) (int, int) {
	if limit <= 0 {
		limit = constant.DefaultPageSize
	}
	if limit > constant.MaxPageSize {
		limit = constant.MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}
