package constant

// Admin audit-log actions. Every moderation write records one of these.
const (
	AdminActionModerateCar   = "car.moderate"
	AdminActionFeatureCar    = "car.feature"
	AdminActionDeleteCar     = "car.delete"
	AdminActionSuspendUser   = "user.suspend"
	AdminActionResolveReport = "report.resolve"
	AdminActionUpdateSetting = "setting.update"
)

// Audit-log target types.
const (
	TargetTypeCar     = "car"
	TargetTypeUser    = "user"
	TargetTypeReport  = "report"
	TargetTypeSetting = "setting"
)

const (
	// DefaultGrowthDays is the dashboard growth window when the caller
	// does not supply one.
	DefaultGrowthDays = 30
	MaxGrowthDays     = 365

	DefaultTopMakes   = 10
	DefaultTopRegions = 10
)
