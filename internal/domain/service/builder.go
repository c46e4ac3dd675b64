package service

import (
	"fmt"
	"slices"
	"time"

	"github.com/diegoclair/weekday-api/internal/domain"
	"github.com/diegoclair/weekday-api/internal/domain/entity"
)

// BuildInstant places tod on date in loc.
//
// The wall-clock reading must map to exactly one instant. When it falls in a
// DST gap or overlap the build is retried at midnight of the same date, and
// the returned bool reports that the fallback was taken. If midnight is not
// unique either, ErrUnresolvableLocalTime is returned.
func BuildInstant(loc *time.Location, date entity.CalendarDate, tod entity.TimeOfDay) (time.Time, bool, error) {
	if t, ok := uniqueLocalTime(loc, date, tod); ok {
		return t, false, nil
	}
	if t, ok := uniqueLocalTime(loc, date, entity.Midnight); ok {
		return t, true, nil
	}
	return time.Time{}, false, fmt.Errorf("%w: %s %s in %s", domain.ErrUnresolvableLocalTime, date, tod, loc)
}

func uniqueLocalTime(loc *time.Location, date entity.CalendarDate, tod entity.TimeOfDay) (time.Time, bool) {
	instants := localInstants(loc, date, tod)
	if len(instants) != 1 {
		return time.Time{}, false
	}
	return instants[0], true
}

// localInstants returns every instant whose wall clock in loc reads
// date+tod: none inside a gap, two inside an overlap.
//
// time.Date silently normalizes both cases, so its result is only used to
// find the zone periods around the wall time. Each candidate offset is then
// checked against the offset loc actually reports at the resulting instant.
func localInstants(loc *time.Location, date entity.CalendarDate, tod entity.TimeOfDay) []time.Time {
	wall := time.Date(date.Year, date.Month, date.Day, tod.Hour, tod.Minute, tod.Second, 0, time.UTC)
	guess := time.Date(date.Year, date.Month, date.Day, tod.Hour, tod.Minute, tod.Second, 0, loc)

	offsets := []int{zoneOffset(guess)}
	start, end := guess.ZoneBounds()
	if !start.IsZero() {
		offsets = append(offsets, zoneOffset(start.Add(-time.Second)))
	}
	if !end.IsZero() {
		offsets = append(offsets, zoneOffset(end))
	}

	var instants []time.Time
	for _, off := range offsets {
		t := wall.Add(-time.Duration(off) * time.Second).In(loc)
		if zoneOffset(t) != off || slices.ContainsFunc(instants, t.Equal) {
			continue
		}
		instants = append(instants, t)
	}
	return instants
}

func zoneOffset(t time.Time) int {
	_, off := t.Zone()
	return off
}
