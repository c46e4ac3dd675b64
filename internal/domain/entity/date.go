package entity

import (
	"fmt"
	"time"
)

// CalendarDate is a plain proleptic Gregorian date with no clock or zone.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar fields of t in t's own location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

func (d CalendarDate) midnightUTC() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CalendarDate) Weekday() Weekday {
	return WeekdayOf(d.midnightUTC().Weekday())
}

// AddDays normalizes across month and year boundaries.
func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(d.midnightUTC().AddDate(0, 0, n))
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// TimeOfDay is a wall-clock reading with second precision.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

var Midnight = TimeOfDay{}

func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{Hour: h, Minute: m, Second: s}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}
