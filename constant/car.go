package constant

// Seller-controlled listing status.
const (
	CarStatusActive    = "active"
	CarStatusSold      = "sold"
	CarStatusWithdrawn = "withdrawn"
	CarStatusPending   = "pending"
)

// Admin-controlled moderation workflow, independent of listing status.
const (
	ModerationPending  = "pending"
	ModerationApproved = "approved"
	ModerationRejected = "rejected"
	ModerationFlagged  = "flagged"
)

// Sort keys accepted by the listing filter. Anything else falls back to
// SortCreatedDesc (newest first).
const (
	SortPriceAsc    = "price_asc"
	SortPriceDesc   = "price_desc"
	SortYearAsc     = "year_asc"
	SortYearDesc    = "year_desc"
	SortMileageAsc  = "mileage_asc"
	SortMileageDesc = "mileage_desc"
	SortCreatedAsc  = "created_asc"
	SortCreatedDesc = "created_desc"
)

const (
	// MinCarYear is the oldest accepted registration year.
	MinCarYear = 1900

	DefaultPageSize = 20
	MaxPageSize     = 50
)

func ValidCarStatus(s string) bool {
	switch s {
	case CarStatusActive, CarStatusSold, CarStatusWithdrawn, CarStatusPending:
		return true
	}
	return false
}

func ValidModerationStatus(s string) bool {
	switch s {
	case ModerationPending, ModerationApproved, ModerationRejected, ModerationFlagged:
		return true
	}
	return false
}
