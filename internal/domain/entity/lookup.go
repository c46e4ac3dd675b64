package entity

import "time"

// Lookup is one recorded weekday computation.
type Lookup struct {
	ID                   int64     `json:"id"`
	UUID                 string    `json:"uuid"`
	WeekdayInput         string    `json:"weekday_input"`
	Weekday              string    `json:"weekday"`
	Timezone             string    `json:"timezone"`
	Mode                 Mode      `json:"mode"`
	ResolvedAt           string    `json:"resolved_at"`
	EpochSeconds         int64     `json:"epoch_seconds"`
	UsedMidnightFallback bool      `json:"used_midnight_fallback"`
	CreatedAt            time.Time `json:"created_at"`
}
