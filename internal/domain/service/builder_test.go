package service

import (
	"testing"
	"time"

	"github.com/diegoclair/weekday-api/internal/domain"
	"github.com/diegoclair/weekday-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestBuildInstant(t *testing.T) {
	edmonton := mustLoad(t, "America/Edmonton")
	havana := mustLoad(t, "America/Havana")

	tests := []struct {
		name         string
		loc          *time.Location
		date         entity.CalendarDate
		tod          entity.TimeOfDay
		wantUTC      time.Time
		wantFallback bool
		wantErr      error
	}{
		{
			name:    "Should build ordinary summer time",
			loc:     edmonton,
			date:    entity.CalendarDate{Year: 2025, Month: time.August, Day: 16},
			tod:     entity.TimeOfDay{Hour: 6},
			wantUTC: time.Date(2025, time.August, 16, 12, 0, 0, 0, time.UTC),
		},
		{
			name:    "Should build ordinary winter time",
			loc:     edmonton,
			date:    entity.CalendarDate{Year: 2025, Month: time.January, Day: 10},
			tod:     entity.TimeOfDay{Hour: 23, Minute: 59, Second: 59},
			wantUTC: time.Date(2025, time.January, 11, 6, 59, 59, 0, time.UTC),
		},
		{
			name:         "Should fall back to midnight inside spring-forward gap",
			loc:          edmonton,
			date:         entity.CalendarDate{Year: 2025, Month: time.March, Day: 9},
			tod:          entity.TimeOfDay{Hour: 2, Minute: 30},
			wantUTC:      time.Date(2025, time.March, 9, 7, 0, 0, 0, time.UTC),
			wantFallback: true,
		},
		{
			name:         "Should fall back to midnight inside fall-back overlap",
			loc:          edmonton,
			date:         entity.CalendarDate{Year: 2025, Month: time.November, Day: 2},
			tod:          entity.TimeOfDay{Hour: 1, Minute: 30},
			wantUTC:      time.Date(2025, time.November, 2, 6, 0, 0, 0, time.UTC),
			wantFallback: true,
		},
		{
			name:    "Should build time just after the gap",
			loc:     edmonton,
			date:    entity.CalendarDate{Year: 2025, Month: time.March, Day: 9},
			tod:     entity.TimeOfDay{Hour: 3},
			wantUTC: time.Date(2025, time.March, 9, 9, 0, 0, 0, time.UTC),
		},
		{
			name:    "Should fail when midnight is skipped too",
			loc:     havana,
			date:    entity.CalendarDate{Year: 2025, Month: time.March, Day: 9},
			tod:     entity.TimeOfDay{Minute: 30},
			wantErr: domain.ErrUnresolvableLocalTime,
		},
		{
			name:    "Should build in UTC",
			loc:     time.UTC,
			date:    entity.CalendarDate{Year: 2000, Month: time.February, Day: 29},
			tod:     entity.TimeOfDay{Hour: 12, Minute: 34, Second: 56},
			wantUTC: time.Date(2000, time.February, 29, 12, 34, 56, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fallback, err := BuildInstant(tt.loc, tt.date, tt.tod)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFallback, fallback)
			assert.True(t, tt.wantUTC.Equal(got), "got %s, want %s", got.UTC(), tt.wantUTC)
			assert.Equal(t, tt.loc, got.Location())
			assert.Equal(t, tt.date, entity.DateOf(got))
		})
	}
}

func TestBuildInstant_RoundTrip(t *testing.T) {
	locs := []*time.Location{
		mustLoad(t, "America/Edmonton"),
		mustLoad(t, "Europe/London"),
		mustLoad(t, "Australia/Lord_Howe"),
		mustLoad(t, "Asia/Kolkata"),
	}
	start := entity.CalendarDate{Year: 2025, Month: time.January, Day: 1}

	for _, loc := range locs {
		for day := 0; day < 366; day += 3 {
			date := start.AddDays(day)
			for _, tod := range []entity.TimeOfDay{{Hour: 0}, {Hour: 1, Minute: 30}, {Hour: 2, Minute: 15}, {Hour: 13, Minute: 5, Second: 7}} {
				got, fallback, err := BuildInstant(loc, date, tod)
				require.NoError(t, err)

				want := tod
				if fallback {
					want = entity.Midnight
				}
				assert.Equal(t, date, entity.DateOf(got), "%s %s", loc, date)
				assert.Equal(t, want, entity.TimeOfDayOf(got), "%s %s", loc, date)
			}
		}
	}
}
