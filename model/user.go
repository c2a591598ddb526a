package model

import "time"

// UserEntity represents the users table entity
type UserEntity struct {
	ID           uint64     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	Phone        string     `db:"phone" json:"phone"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Location     string     `db:"location" json:"location"`
	IsDealer     bool       `db:"is_dealer" json:"is_dealer"`
	IsVerified   bool       `db:"is_verified" json:"is_verified"`
	IsAdmin      bool       `db:"is_admin" json:"is_admin"`
	IsSuspended  bool       `db:"is_suspended" json:"is_suspended"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
	Phone string
}

// UserPatch applies a sparse profile update; nil fields are left untouched.
type UserPatch struct {
	Name     *string
	Phone    *string
	Location *string
	IsDealer *bool
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=6"`
	Location string `json:"location" validate:"required"`
	IsDealer bool   `json:"is_dealer"`
}

// LoginRequest for user login (accepts email or phone)
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"` // email or phone
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type RegisterResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProfileResponse is the caller's own account view.
type ProfileResponse struct {
	ID         uint64     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Location   string     `json:"location"`
	IsDealer   bool       `json:"is_dealer"`
	IsVerified bool       `json:"is_verified"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	IsDealer *bool   `json:"is_dealer,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// AdminUserListItem is the moderation view of an account.
type AdminUserListItem struct {
	ID          uint64    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Location    string    `db:"location" json:"location"`
	IsDealer    bool      `db:"is_dealer" json:"is_dealer"`
	IsVerified  bool      `db:"is_verified" json:"is_verified"`
	IsAdmin     bool      `db:"is_admin" json:"is_admin"`
	IsSuspended bool      `db:"is_suspended" json:"is_suspended"`
	CarCount    int64     `db:"car_count" json:"car_count"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
