//go:build unit

package repository

import (
	"testing"
	"time"

	"bakehouse/internal/domain/schedule"
	"bakehouse/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestBookingInterval(t *testing.T) {
	// pgx hands back timestamptz values in the process-local zone. The grid
	// reconstruction must not depend on that zone.
	eastern := time.FixedZone("UTC-5", -5*60*60)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected schedule.Interval
	}{
		{
			name:  "afternoon slot decoded in a non-UTC zone",
			start: time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC).In(eastern),
			end:   time.Date(2026, 9, 10, 15, 30, 0, 0, time.UTC).In(eastern),
			expected: schedule.Interval{
				Date:  clock.Date{Year: 2026, Month: 9, Day: 10},
				Start: clock.TimeOfDay(14 * 60),
				End:   clock.TimeOfDay(15*60 + 30),
			},
		},
		{
			name:  "early slot that falls on the previous local day",
			start: time.Date(2026, 9, 11, 1, 0, 0, 0, time.UTC).In(eastern),
			end:   time.Date(2026, 9, 11, 2, 0, 0, 0, time.UTC).In(eastern),
			expected: schedule.Interval{
				Date:  clock.Date{Year: 2026, Month: 9, Day: 11},
				Start: clock.TimeOfDay(60),
				End:   clock.TimeOfDay(120),
			},
		},
		{
			name:  "already UTC passes through",
			start: time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC),
			expected: schedule.Interval{
				Date:  clock.Date{Year: 2026, Month: 9, Day: 10},
				Start: clock.TimeOfDay(9 * 60),
				End:   clock.TimeOfDay(10 * 60),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, bookingInterval(tt.start, tt.end))
		})
	}
}
