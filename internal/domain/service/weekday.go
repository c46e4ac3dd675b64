package service

import "github.com/diegoclair/weekday-api/internal/domain/entity"

// ResolveDate returns the date of target counted from base.
//
// ModeThis yields an offset in [0,6], so base itself when it already falls on
// target. ModeNext yields an offset in [1,7] and never returns base.
func ResolveDate(base entity.CalendarDate, target entity.Weekday, mode entity.Mode) entity.CalendarDate {
	delta := (7 + int(target) - int(base.Weekday())) % 7
	if mode == entity.ModeNext && delta == 0 {
		delta = 7
	}
	return base.AddDays(delta)
}
