package car

import (
	"reflect"
	"testing"

	"github.com/markbaxman/WightCars-sub000/constant"
	"github.com/markbaxman/WightCars-sub000/model"
)

func TestCarPredicates(t *testing.T) {
	dealer := true
	private := false

	tests := []struct {
		name      string
		filter    *model.CarFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "empty filter defaults to active approved",
			filter:    &model.CarFilter{},
			wantQuery: "WHERE true AND c.status = ? AND c.moderation_status = ?",
			wantArgs:  []any{"active", "approved"},
		},
		{
			name:      "explicit status overrides default",
			filter:    &model.CarFilter{Status: constant.CarStatusSold},
			wantQuery: "WHERE true AND c.status = ? AND c.moderation_status = ?",
			wantArgs:  []any{"sold", "approved"},
		},
		{
			name:      "make and model",
			filter:    &model.CarFilter{Make: "Ford", Model: "Fiesta"},
			wantQuery: "WHERE true AND c.status = ? AND c.moderation_status = ? AND c.make = ? AND c.model = ?",
			wantArgs:  []any{"active", "approved", "Ford", "Fiesta"},
		},
		{
			name:      "price range binds both bounds",
			filter:    &model.CarFilter{MinPrice: 500000, MaxPrice: 1000000},
			wantQuery: "WHERE true AND c.status = ? AND c.moderation_status = ? AND c.price >= ? AND c.price <= ?",
			wantArgs:  []any{"active", "approved", int64(500000), int64(1000000)},
		},
		{
			name:      "year and mileage ranges",
			filter:    &model.CarFilter{MinYear: 2015, MaxYear: 2020, MaxMileage: 60000},
			wantQuery: "WHERE true AND c.status = ? AND c.moderation_status = ? AND c.year >= ? AND c.year <= ? AND c.mileage <= ?",
			wantArgs:  []any{"active", "approved", 2015, 2020, 60000},
		},
		{
			name:      "location is substring match",
			filter:    &model.CarFilter{Location: "Newport"},
			wantQuery: "WHERE true AND c.status = ? AND c.moderation_status = ? AND c.location LIKE ?",
			wantArgs:  []any{"active", "approved", "%Newport%"},
		},
		{
			name:      "search spans title make model",
			filter:    &model.CarFilter{Search: "estate"},
			wantQuery: "WHERE true AND c.status = ? AND c.moderation_status = ? AND (c.title LIKE ? OR c.make LIKE ? OR c.model LIKE ?)",
			wantArgs:  []any{"active", "approved", "%estate%", "%estate%", "%estate%"},
		},
		{
			name:      "dealer true",
			filter:    &model.CarFilter{IsDealer: &dealer},
			wantQuery: "WHERE true AND c.status = ? AND c.moderation_status = ? AND u.is_dealer = ?",
			wantArgs:  []any{"active", "approved", true},
		},
		{
			name:      "dealer false is a predicate, not absence",
			filter:    &model.CarFilter{IsDealer: &private},
			wantQuery: "WHERE true AND c.status = ? AND c.moderation_status = ? AND u.is_dealer = ?",
			wantArgs:  []any{"active", "approved", false},
		},
		{
			name: "all scalar fields together",
			filter: &model.CarFilter{
				Make: "BMW", Model: "320d", MinYear: 2018, MaxYear: 2022,
				MinPrice: 1000000, MaxPrice: 3000000, MinMileage: 1000, MaxMileage: 50000,
				FuelType: "diesel", Transmission: "manual", BodyType: "saloon",
			},
			wantQuery: "WHERE true AND c.status = ? AND c.moderation_status = ? AND c.make = ? AND c.model = ? AND c.year >= ? AND c.year <= ? AND c.price >= ? AND c.price <= ? AND c.mileage >= ? AND c.mileage <= ? AND c.fuel_type = ? AND c.transmission = ? AND c.body_type = ?",
			wantArgs: []any{"active", "approved", "BMW", "320d", 2018, 2022,
				int64(1000000), int64(3000000), 1000, 50000, "diesel", "manual", "saloon"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			query, args := appendWhere("WHERE true", carPredicates(tt.filter))
			if query != tt.wantQuery {
				t.Fatalf("query = %q, want %q", query, tt.wantQuery)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Fatalf("args = %#v, want %#v", args, tt.wantArgs)
			}
		})
	}
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name   string
		sortBy string
		want   string
	}{
		{name: "price ascending", sortBy: constant.SortPriceAsc, want: " ORDER BY c.price ASC, c.id DESC"},
		{name: "price descending", sortBy: constant.SortPriceDesc, want: " ORDER BY c.price DESC, c.id DESC"},
		{name: "year ascending", sortBy: constant.SortYearAsc, want: " ORDER BY c.year ASC, c.id DESC"},
		{name: "mileage descending", sortBy: constant.SortMileageDesc, want: " ORDER BY c.mileage DESC, c.id DESC"},
		{name: "created ascending", sortBy: constant.SortCreatedAsc, want: " ORDER BY c.created_at ASC, c.id DESC"},
		{name: "empty falls back to newest", sortBy: "", want: " ORDER BY c.created_at DESC, c.id DESC"},
		{name: "unknown falls back to newest", sortBy: "price; DROP TABLE cars", want: " ORDER BY c.created_at DESC, c.id DESC"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := orderClause(tt.sortBy); got != tt.want {
				t.Fatalf("orderClause(%q) = %q, want %q", tt.sortBy, got, tt.want)
			}
		})
	}
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", page: 0, limit: 0, wantLimit: 20, wantOffset: 0},
		{name: "first page explicit", page: 1, limit: 20, wantLimit: 20, wantOffset: 0},
		{name: "second page", page: 2, limit: 20, wantLimit: 20, wantOffset: 20},
		{name: "custom limit", page: 3, limit: 10, wantLimit: 10, wantOffset: 20},
		{name: "limit capped at fifty", page: 2, limit: 500, wantLimit: 50, wantOffset: 50},
		{name: "negative page clamps to first", page: -4, limit: 20, wantLimit: 20, wantOffset: 0},
		{name: "negative limit uses default", page: 1, limit: -1, wantLimit: 20, wantOffset: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := pageWindow(tt.page, tt.limit)
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Fatalf("pageWindow(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.limit, limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}
