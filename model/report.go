package model

import "time"

// ReportEntity represents the reports table entity. AdminID is set when a
// report is resolved or dismissed.
type ReportEntity struct {
	ID         uint64     `db:"id" json:"id"`
	ReporterID uint64     `db:"reporter_id" json:"reporter_id"`
	TargetType string     `db:"target_type" json:"target_type"`
	TargetID   uint64     `db:"target_id" json:"target_id"`
	Reason     string     `db:"reason" json:"reason"`
	Details    string     `db:"details" json:"details,omitempty"`
	Status     string     `db:"status" json:"status"`
	AdminID    *uint64    `db:"admin_id" json:"admin_id,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	ResolvedAt *time.Time `db:"resolved_at" json:"resolved_at,omitempty"`
}

// ReportListItem is the admin queue view with the reporter's name joined.
type ReportListItem struct {
	ID           uint64     `db:"id" json:"id"`
	ReporterID   uint64     `db:"reporter_id" json:"reporter_id"`
	ReporterName string     `db:"reporter_name" json:"reporter_name"`
	TargetType   string     `db:"target_type" json:"target_type"`
	TargetID     uint64     `db:"target_id" json:"target_id"`
	Reason       string     `db:"reason" json:"reason"`
	Status       string     `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	ResolvedAt   *time.Time `db:"resolved_at" json:"resolved_at,omitempty"`
}

type CreateReportRequest struct {
	TargetType string `json:"target_type" validate:"required"`
	TargetID   uint64 `json:"target_id" validate:"required"`
	Reason     string `json:"reason" validate:"required,max=200"`
	Details    string `json:"details" validate:"max=2000"`
}

type CreateReportResponse struct {
	ReportID uint64 `json:"report_id"`
	Status   string `json:"status"`
}

type ResolveReportRequest struct {
	Status string `json:"status" validate:"required"`
}

type ReportListResponse struct {
	Reports    []ReportListItem `json:"reports"`
	Pagination Pagination       `json:"pagination"`
}
