package model

import "time"

// AdminLogEntity is an append-only audit row; the core only ever inserts
// and lists these.
type AdminLogEntity struct {
	ID         uint64    `db:"id" json:"id"`
	AdminID    uint64    `db:"admin_id" json:"admin_id"`
	Action     string    `db:"action" json:"action"`
	TargetType string    `db:"target_type" json:"target_type"`
	TargetID   uint64    `db:"target_id" json:"target_id"`
	Details    string    `db:"details" json:"details,omitempty"`
	IPAddress  string    `db:"ip_address" json:"ip_address,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// DashboardStats is the fixed overview shape. A store failure yields the
// zero value rather than an error so the dashboard keeps rendering.
type DashboardStats struct {
	TotalUsers       int64 `db:"total_users" json:"total_users"`
	NewUsersToday    int64 `db:"new_users_today" json:"new_users_today"`
	TotalCars        int64 `db:"total_cars" json:"total_cars"`
	ActiveCars       int64 `db:"active_cars" json:"active_cars"`
	NewCarsToday     int64 `db:"new_cars_today" json:"new_cars_today"`
	PendingCars      int64 `db:"pending_cars" json:"pending_cars"`
	TotalMessages    int64 `db:"total_messages" json:"total_messages"`
	NewMessagesToday int64 `db:"new_messages_today" json:"new_messages_today"`
	OpenReports      int64 `db:"open_reports" json:"open_reports"`
}

// DateCount is one day of a growth series.
type DateCount struct {
	Date  string `db:"bucket" json:"date"`
	Count int64  `db:"cnt" json:"count"`
}

// MakeCount is one row of the top-makes table. AvgPrice stays in integer
// pence like every other price in the system.
type MakeCount struct {
	Make     string `db:"make" json:"make"`
	Count    int64  `db:"cnt" json:"count"`
	AvgPrice int64  `db:"avg_price" json:"avg_price"`
}

// PriceBucket is one labeled bar of the price histogram.
type PriceBucket struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// PriceHistogramRow is the single-row shape the fixed histogram statement
// scans into; the application renders it as ordered PriceBuckets.
type PriceHistogramRow struct {
	Under5k int64 `db:"under_5k"`
	To10k   int64 `db:"to_10k"`
	To20k   int64 `db:"to_20k"`
	To50k   int64 `db:"to_50k"`
	Over50k int64 `db:"over_50k"`
}

// LocationCount is one row of the per-location user counts.
type LocationCount struct {
	Location string `db:"location" json:"location"`
	Count    int64  `db:"cnt" json:"count"`
}

// DashboardResponse is the admin dashboard payload; sections are fetched
// concurrently and zeroed individually on failure.
type DashboardResponse struct {
	Stats           DashboardStats  `json:"stats"`
	TopMakes        []MakeCount     `json:"top_makes"`
	PriceHistogram  []PriceBucket   `json:"price_histogram"`
	UsersByLocation []LocationCount `json:"users_by_location"`
}

// GrowthResponse holds the date-bucketed growth series for the requested
// day window.
type GrowthResponse struct {
	Days  int         `json:"days"`
	Users []DateCount `json:"users"`
	Cars  []DateCount `json:"cars"`
}

type ModerateCarRequest struct {
	Status string `json:"status" validate:"required"`
}

type FeatureCarRequest struct {
	Featured bool `json:"featured"`
}

type SuspendUserRequest struct {
	Suspended bool `json:"suspended"`
}

type AdminUserListResponse struct {
	Users      []AdminUserListItem `json:"users"`
	Pagination Pagination          `json:"pagination"`
}

type AdminLogListResponse struct {
	Logs       []AdminLogEntity `json:"logs"`
	Pagination Pagination       `json:"pagination"`
}
