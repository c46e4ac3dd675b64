package entity

import (
	"fmt"
	"strings"
	"time"
)

// Weekday counts days from Monday (0) to Sunday (6).
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// WeekdayOf converts a time.Weekday (Sunday = 0) to the Monday-based ordering.
func WeekdayOf(wd time.Weekday) Weekday {
	return Weekday((int(wd) + 6) % 7)
}

// WeekdayAliases maps every accepted lowercase spelling to its weekday.
// Sunday and Saturday have no single-letter form because "s" is ambiguous.
var WeekdayAliases = map[string]Weekday{
	"monday": Monday,
	"mon":    Monday,
	"m":      Monday,

	"tuesday": Tuesday,
	"tues":    Tuesday,
	"tue":     Tuesday,
	"t":       Tuesday,

	"wednesday": Wednesday,
	"wed":       Wednesday,
	"w":         Wednesday,

	"thursday": Thursday,
	"thurs":    Thursday,
	"thur":     Thursday,
	"th":       Thursday,
	"r":        Thursday,

	"friday": Friday,
	"fri":    Friday,
	"f":      Friday,

	"saturday": Saturday,
	"sat":      Saturday,

	"sunday": Sunday,
	"sun":    Sunday,
}

// ParseWeekday matches s case-insensitively against WeekdayAliases.
func ParseWeekday(s string) (Weekday, bool) {
	wd, ok := WeekdayAliases[strings.ToLower(strings.TrimSpace(s))]
	return wd, ok
}

// Mode selects between the occurrence in the current seven-day cycle and the
// strictly-next one.
type Mode string

const (
	ModeThis Mode = "this"
	ModeNext Mode = "next"
)

func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeThis:
		return ModeThis, true
	case ModeNext:
		return ModeNext, true
	default:
		return "", false
	}
}
