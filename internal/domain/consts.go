package domain

import "time"

// DefaultTimezone is used when a request carries no timezone.
const DefaultTimezone = "Canada/Mountain"

// History defaults
const (
	DefaultHistoryLimit         = 20
	MaxHistoryLimit             = 100
	DefaultHistoryRetention     = 30 * 24 * time.Hour
	DefaultHistoryPruneSchedule = "@hourly"
)

// Error messages returned to API clients
const (
	MsgInvalidWeekday     = "expected a weekday like /next/saturday?tz=America/New_York or /next/sunday?tz=Canada/Eastern"
	MsgInvalidTimezone    = "invalid tz"
	MsgUnresolvableLocal  = "failed to construct datetime in timezone (possible DST transition issue)"
	MsgInvalidUnitInput   = "expected a number like /unit/42 or /unit/-3.5"
	MsgHistoryUnavailable = "lookup history is disabled"
)
