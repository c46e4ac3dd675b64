package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/diegoclair/weekday-api/internal/config"
	"github.com/diegoclair/weekday-api/internal/domain"
	"github.com/diegoclair/weekday-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_runLookup(t *testing.T) {
	cfg := &config.Config{DefaultTimezone: "Canada/Mountain"}

	tests := []struct {
		name       string
		mode       entity.Mode
		weekday    string
		tz         string
		at         string
		wantEpoch  int64
		wantZone   string
		wantErr    error
		wantAnyErr bool
	}{
		{
			name:      "Should print next saturday in the default zone",
			mode:      entity.ModeNext,
			weekday:   "sat",
			at:        "2025-08-13T12:00:00Z",
			wantEpoch: 1755345600,
			wantZone:  "Canada/Mountain",
		},
		{
			name:      "Should print this friday in the requested zone",
			mode:      entity.ModeThis,
			weekday:   "friday",
			tz:        "america/new_york",
			at:        "2025-08-13T12:00:00Z",
			wantEpoch: 1755259200,
			wantZone:  "America/New_York",
		},
		{
			name:    "Should reject unknown weekday",
			mode:    entity.ModeNext,
			weekday: "someday",
			wantErr: domain.ErrInvalidWeekday,
		},
		{
			name:    "Should reject unknown zone",
			mode:    entity.ModeNext,
			weekday: "mon",
			tz:      "Not/AZone",
			wantErr: domain.ErrInvalidTimezone,
		},
		{
			name:       "Should reject malformed --at",
			mode:       entity.ModeNext,
			weekday:    "mon",
			at:         "yesterday",
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookupTZ, lookupAt = tt.tz, tt.at
			t.Cleanup(func() { lookupTZ, lookupAt = "", "" })

			var out bytes.Buffer
			err := runLookup(&out, cfg, tt.mode, tt.weekday)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantAnyErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			var got entity.Timestamps
			require.NoError(t, json.Unmarshal(out.Bytes(), &got))
			assert.Equal(t, tt.wantEpoch, got.Epoch.Seconds)
			assert.Equal(t, tt.wantZone, got.Input.Timezone)
			assert.Equal(t, tt.weekday, got.Input.Weekday)
		})
	}
}
