package constant

const (
	ReportStatusOpen      = "open"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)

const (
	ReportTargetCar  = "car"
	ReportTargetUser = "user"
)

func ValidReportTarget(t string) bool {
	return t == ReportTargetCar || t == ReportTargetUser
}

// ValidReportResolution covers the statuses an admin may move an open
// report into.
func ValidReportResolution(s string) bool {
	return s == ReportStatusResolved || s == ReportStatusDismissed
}
