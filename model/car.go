package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList maps a JSON-encoded array stored in a TEXT column. The
// encode/decode happens at the data-access boundary; queries never filter
// on elements.
type StringList []string

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(raw, l)
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// CarEntity represents the cars table entity. Price is an integer in minor
// currency units (pence), never floating point.
type CarEntity struct {
	ID               uint64     `db:"id" json:"id"`
	UserID           uint64     `db:"user_id" json:"user_id"`
	Title            string     `db:"title" json:"title"`
	Description      string     `db:"description" json:"description,omitempty"`
	Make             string     `db:"make" json:"make"`
	Model            string     `db:"model" json:"model"`
	Year             int        `db:"year" json:"year"`
	Mileage          int        `db:"mileage" json:"mileage"`
	Price            int64      `db:"price" json:"price"`
	FuelType         string     `db:"fuel_type" json:"fuel_type,omitempty"`
	Transmission     string     `db:"transmission" json:"transmission,omitempty"`
	BodyType         string     `db:"body_type" json:"body_type,omitempty"`
	Location         string     `db:"location" json:"location"`
	Status           string     `db:"status" json:"status"`
	ModerationStatus string     `db:"moderation_status" json:"moderation_status"`
	Features         StringList `db:"features" json:"features"`
	Images           StringList `db:"images" json:"images"`
	FeaturedImage    string     `db:"featured_image" json:"featured_image,omitempty"`
	Views            int64      `db:"views" json:"views"`
	IsFeatured       bool       `db:"is_featured" json:"is_featured"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// CarListItem is a listing row joined with the seller's display fields.
type CarListItem struct {
	ID             uint64     `db:"id" json:"id"`
	Title          string     `db:"title" json:"title"`
	Make           string     `db:"make" json:"make"`
	Model          string     `db:"model" json:"model"`
	Year           int        `db:"year" json:"year"`
	Mileage        int        `db:"mileage" json:"mileage"`
	Price          int64      `db:"price" json:"price"`
	FuelType       string     `db:"fuel_type" json:"fuel_type,omitempty"`
	Transmission   string     `db:"transmission" json:"transmission,omitempty"`
	BodyType       string     `db:"body_type" json:"body_type,omitempty"`
	Location       string     `db:"location" json:"location"`
	Status         string     `db:"status" json:"status"`
	Images         StringList `db:"images" json:"images"`
	FeaturedImage  string     `db:"featured_image" json:"featured_image,omitempty"`
	Views          int64      `db:"views" json:"views"`
	IsFeatured     bool       `db:"is_featured" json:"is_featured"`
	SellerName     string     `db:"seller_name" json:"seller_name"`
	SellerLocation string     `db:"seller_location" json:"seller_location"`
	SellerDealer   bool       `db:"seller_dealer" json:"seller_dealer"`
	SellerVerified bool       `db:"seller_verified" json:"seller_verified"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// CarDetail is the full listing view, including seller contact fields the
// list view does not expose.
type CarDetail struct {
	CarEntity
	SellerName     string `db:"seller_name" json:"seller_name"`
	SellerEmail    string `db:"seller_email" json:"seller_email"`
	SellerPhone    string `db:"seller_phone" json:"seller_phone"`
	SellerLocation string `db:"seller_location" json:"seller_location"`
	SellerDealer   bool   `db:"seller_dealer" json:"seller_dealer"`
	SellerVerified bool   `db:"seller_verified" json:"seller_verified"`
}

// CarFilter carries the optional listing search predicates. Zero values
// mean "no predicate" (open range); IsDealer is tri-state via pointer.
// Status defaults to "active" when blank.
type CarFilter struct {
	Make         string
	Model        string
	MinYear      int
	MaxYear      int
	MinPrice     int64
	MaxPrice     int64
	MinMileage   int
	MaxMileage   int
	FuelType     string
	Transmission string
	BodyType     string
	Location     string
	Search       string
	IsDealer     *bool
	Status       string
	SortBy       string
	Page         int
	Limit        int
}

type CarListResponse struct {
	Cars       []CarListItem `json:"cars"`
	Pagination Pagination    `json:"pagination"`
}

// CarCreateRequest is the listing submission payload. The application
// layer re-checks year/price bounds so the contract holds without HTTP.
type CarCreateRequest struct {
	Title         string     `json:"title" validate:"required"`
	Description   string     `json:"description"`
	Make          string     `json:"make" validate:"required"`
	Model         string     `json:"model" validate:"required"`
	Year          int        `json:"year" validate:"required"`
	Mileage       int        `json:"mileage" validate:"gte=0"`
	Price         int64      `json:"price" validate:"required"`
	FuelType      string     `json:"fuel_type"`
	Transmission  string     `json:"transmission"`
	BodyType      string     `json:"body_type"`
	Location      string     `json:"location" validate:"required"`
	Features      StringList `json:"features"`
	Images        StringList `json:"images"`
	FeaturedImage string     `json:"featured_image"`
}

// CarUpdateRequest is a sparse patch: only non-nil fields are applied.
type CarUpdateRequest struct {
	Title         *string     `json:"title,omitempty"`
	Description   *string     `json:"description,omitempty"`
	Make          *string     `json:"make,omitempty"`
	Model         *string     `json:"model,omitempty"`
	Year          *int        `json:"year,omitempty"`
	Mileage       *int        `json:"mileage,omitempty"`
	Price         *int64      `json:"price,omitempty"`
	FuelType      *string     `json:"fuel_type,omitempty"`
	Transmission  *string     `json:"transmission,omitempty"`
	BodyType      *string     `json:"body_type,omitempty"`
	Location      *string     `json:"location,omitempty"`
	Features      *StringList `json:"features,omitempty"`
	Images        *StringList `json:"images,omitempty"`
	FeaturedImage *string     `json:"featured_image,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (r *CarUpdateRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Make == nil &&
		r.Model == nil && r.Year == nil && r.Mileage == nil && r.Price == nil &&
		r.FuelType == nil && r.Transmission == nil && r.BodyType == nil &&
		r.Location == nil && r.Features == nil && r.Images == nil &&
		r.FeaturedImage == nil
}

type CarStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
