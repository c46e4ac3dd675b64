package service

import (
	"fmt"
	"math"
	"time"

	"github.com/diegoclair/weekday-api/internal/domain/entity"
)

const (
	layoutRFC3339Micros = "2006-01-02T15:04:05.000000Z07:00"
	layoutISOExtended   = "2006-01-02T15:04:05-07:00"
	layoutISOBasic      = "20060102T150405-0700"
	layoutWithTZName    = "2006-01-02 15:04:05 MST-07:00"
	layoutUTCExtended   = "2006-01-02T15:04:05Z"
	layoutUTCBasic      = "20060102T150405Z"
)

// UnixNano is only defined between these two instants.
var (
	minNanoTime = time.Unix(0, math.MinInt64)
	maxNanoTime = time.Unix(0, math.MaxInt64)
)

// FormatTimestamps renders t, in its own location and in UTC. It does no
// date arithmetic of its own.
func FormatTimestamps(t time.Time, weekdayInput, tzName string) entity.Timestamps {
	utc := t.UTC()
	isoYear, isoWeek := t.ISOWeek()
	wd := entity.WeekdayOf(t.Weekday())

	return entity.Timestamps{
		Input: entity.Input{
			Weekday:  weekdayInput,
			Day:      wd.String(),
			Timezone: tzName,
		},
		Local: entity.LocalTimestamps{
			RFC3339:       t.Format(time.RFC3339),
			RFC3339Micros: t.Format(layoutRFC3339Micros),
			RFC2822:       t.Format(time.RFC1123Z),
			ISOExtended:   t.Format(layoutISOExtended),
			ISOBasic:      t.Format(layoutISOBasic),
			DateOnly:      t.Format(time.DateOnly),
			TimeOnly:      t.Format(time.TimeOnly),
			WeekDate:      fmt.Sprintf("%04d-W%02d-%d", isoYear, isoWeek, int(wd)+1),
			OrdinalDate:   fmt.Sprintf("%04d-%03d", t.Year(), t.YearDay()),
			WithTZName:    t.Format(layoutWithTZName),
		},
		UTC: entity.UTCTimestamps{
			RFC3339:     utc.Format(time.RFC3339),
			RFC2822:     utc.Format(time.RFC1123Z),
			ISOExtended: utc.Format(layoutUTCExtended),
			ISOBasic:    utc.Format(layoutUTCBasic),
		},
		Epoch: entity.EpochTimestamps{
			Seconds:      t.Unix(),
			Milliseconds: t.UnixMilli(),
			Microseconds: t.UnixMicro(),
			Nanoseconds:  epochNanos(t),
		},
	}
}

func epochNanos(t time.Time) int64 {
	if t.Before(minNanoTime) || t.After(maxNanoTime) {
		return 0
	}
	return t.UnixNano()
}
