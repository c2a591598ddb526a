package model

import "time"

// SettingEntity is one site-configuration key/value row.
type SettingEntity struct {
	Key       string     `db:"key" json:"key"`
	Value     string     `db:"value" json:"value"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type UpdateSettingRequest struct {
	Key   string `json:"key" validate:"required,max=100"`
	Value string `json:"value" validate:"required"`
}
