package entity

import "time"

// DayRequest carries everything Compute needs. Now is injected so that the
// same request always yields the same output.
type DayRequest struct {
	Weekday  string
	Timezone string
	Mode     Mode
	Now      time.Time
}

type Timestamps struct {
	Input Input           `json:"input"`
	Local LocalTimestamps `json:"local"`
	UTC   UTCTimestamps   `json:"utc"`
	Epoch EpochTimestamps `json:"epoch"`

	// UsedMidnightFallback is set when the requested time of day could not be
	// mapped to a single instant and midnight was used instead.
	UsedMidnightFallback bool `json:"-"`
}

type Input struct {
	Weekday  string `json:"weekday"`
	Day      string `json:"day"`
	Mode     Mode   `json:"mode"`
	Timezone string `json:"timezone"`
}

type LocalTimestamps struct {
	RFC3339       string `json:"rfc3339"`
	RFC3339Micros string `json:"rfc3339_micros"`
	RFC2822       string `json:"rfc2822"`
	ISOExtended   string `json:"iso_extended"`
	ISOBasic      string `json:"iso_basic"`
	DateOnly      string `json:"date_only"`
	TimeOnly      string `json:"time_only"`
	WeekDate      string `json:"week_date"`
	OrdinalDate   string `json:"ordinal_date"`
	WithTZName    string `json:"with_tzname"`
}

type UTCTimestamps struct {
	RFC3339     string `json:"rfc3339"`
	RFC2822     string `json:"rfc2822"`
	ISOExtended string `json:"iso_extended"`
	ISOBasic    string `json:"iso_basic"`
}

type EpochTimestamps struct {
	Seconds      int64 `json:"seconds"`
	Milliseconds int64 `json:"milliseconds"`
	Microseconds int64 `json:"microseconds"`
	Nanoseconds  int64 `json:"nanoseconds"`
}
