//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"bakehouse/internal/domain/schedule"
	"bakehouse/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) clock.Date {
	t.Helper()
	d, err := clock.ParseDate(s)
	require.NoError(t, err)
	return d
}

func tod(hour, minute int) clock.TimeOfDay {
	return clock.TimeOfDay(hour*60 + minute)
}

func weeklyWindow(wd time.Weekday, start, end clock.TimeOfDay) schedule.Window {
	return schedule.Window{Weekday: wd, Start: start, End: end, IsActive: true}
}

// times flattens one day's slot starts for comparison.
func times(day schedule.DaySlots) []clock.TimeOfDay {
	var out []clock.TimeOfDay
	for _, s := range day.Slots {
		out = append(out, s.Time)
	}
	return out
}

func TestComputeSlots_Bakery(t *testing.T) {
	cfg := schedule.DefaultTenantConfig()
	cfg.SlotIntervalMinutes = 30
	cfg.DefaultSlotCapacity = 2
	cfg.DefaultLeadTimeDays = 2
	cfg.LeadTimes = map[string]int{"wedding": 14}

	// 2026-09-07 is a Monday.
	today := date(t, "2026-09-01")
	monday := date(t, "2026-09-07")

	rules := schedule.Rules{
		Windows: []schedule.Window{weeklyWindow(time.Monday, tod(10, 0), tod(12, 0))},
	}

	req := func(mutate func(*schedule.SlotRequest)) schedule.SlotRequest {
		r := schedule.SlotRequest{
			Kind:      schedule.KindBakery,
			OrderType: "cookies",
			From:      monday,
			To:        monday,
			Today:     today,
		}
		if mutate != nil {
			mutate(&r)
		}
		return r
	}

	t.Run("rejects inverted range", func(t *testing.T) {
		_, err := schedule.ComputeSlots(cfg, rules, schedule.Commitments{}, req(func(r *schedule.SlotRequest) {
			r.From = monday
			r.To = monday.AddDays(-1)
		}))
		require.ErrorIs(t, err, schedule.ErrInvalidRange)
	})

	t.Run("steps on the tenant interval within the window", func(t *testing.T) {
		days, err := schedule.ComputeSlots(cfg, rules, schedule.Commitments{}, req(nil))
		require.NoError(t, err)
		require.Len(t, days, 1)

		assert.Equal(t, []clock.TimeOfDay{tod(10, 0), tod(10, 30), tod(11, 0), tod(11, 30)}, times(days[0]))
		for _, s := range days[0].Slots {
			assert.True(t, s.Available)
			assert.Equal(t, 2, s.Remaining)
		}
	})

	t.Run("lead time closes dates before the floor", func(t *testing.T) {
		days, err := schedule.ComputeSlots(cfg, rules, schedule.Commitments{}, req(func(r *schedule.SlotRequest) {
			r.Today = monday.AddDays(-1)
		}))
		require.NoError(t, err)
		require.Len(t, days, 1)
		assert.Empty(t, days[0].Slots)
	})

	t.Run("per-type lead time beats the default", func(t *testing.T) {
		days, err := schedule.ComputeSlots(cfg, rules, schedule.Commitments{}, req(func(r *schedule.SlotRequest) {
			r.OrderType = "wedding"
		}))
		require.NoError(t, err)
		assert.Empty(t, days[0].Slots, "wedding needs 14 days of lead, window is 6 days out")

		assert.Equal(t, today.AddDays(14), schedule.MinOrderDate(cfg, "wedding", today))
		assert.Equal(t, today.AddDays(2), schedule.MinOrderDate(cfg, "cookies", today))
	})

	t.Run("blackout closes the date", func(t *testing.T) {
		blacked := rules
		blacked.Blackouts = []schedule.Blackout{{Date: monday, Reason: "family holiday"}}

		days, err := schedule.ComputeSlots(cfg, blacked, schedule.Commitments{}, req(nil))
		require.NoError(t, err)
		assert.Empty(t, days[0].Slots)
	})

	t.Run("unavailable override closes the date", func(t *testing.T) {
		overridden := rules
		overridden.Overrides = []schedule.Override{{Date: monday, Available: false}}

		days, err := schedule.ComputeSlots(cfg, overridden, schedule.Commitments{}, req(nil))
		require.NoError(t, err)
		assert.Empty(t, days[0].Slots)
	})

	t.Run("override hours replace the weekly window", func(t *testing.T) {
		start, end := tod(14, 0), tod(15, 0)
		overridden := rules
		overridden.Overrides = []schedule.Override{{Date: monday, Available: true, Start: &start, End: &end}}

		days, err := schedule.ComputeSlots(cfg, overridden, schedule.Commitments{}, req(nil))
		require.NoError(t, err)
		assert.Equal(t, []clock.TimeOfDay{tod(14, 0), tod(14, 30)}, times(days[0]))
	})

	t.Run("available override without hours keeps the weekly window", func(t *testing.T) {
		overridden := rules
		overridden.Overrides = []schedule.Override{{Date: monday, Available: true}}

		days, err := schedule.ComputeSlots(cfg, overridden, schedule.Commitments{}, req(nil))
		require.NoError(t, err)
		assert.Len(t, days[0].Slots, 4)
	})

	t.Run("no window for the weekday closes the date", func(t *testing.T) {
		tuesday := monday.AddDays(1)
		days, err := schedule.ComputeSlots(cfg, rules, schedule.Commitments{}, req(func(r *schedule.SlotRequest) {
			r.From = tuesday
			r.To = tuesday
		}))
		require.NoError(t, err)
		assert.Empty(t, days[0].Slots)
	})

	t.Run("commitments consume capacity per exact slot", func(t *testing.T) {
		com := schedule.Commitments{SlotCounts: map[schedule.SlotKey]int{
			{Date: monday, Time: tod(10, 0)}: 1,
			{Date: monday, Time: tod(10, 30)}: 2,
			{Date: monday, Time: tod(11, 0)}: 3, // oversold by hand
		}}

		days, err := schedule.ComputeSlots(cfg, rules, com, req(nil))
		require.NoError(t, err)
		require.Len(t, days[0].Slots, 4)

		assert.Equal(t, 1, days[0].Slots[0].Remaining)
		assert.True(t, days[0].Slots[0].Available)
		assert.Equal(t, 0, days[0].Slots[1].Remaining)
		assert.False(t, days[0].Slots[1].Available)
		assert.Equal(t, -1, days[0].Slots[2].Remaining)
		assert.False(t, days[0].Slots[2].Available)
		assert.Equal(t, 2, days[0].Slots[3].Remaining)
	})

	t.Run("capacity override replaces the default for one slot", func(t *testing.T) {
		capped := rules
		capped.CapacityOverrides = []schedule.CapacityOverride{{Date: monday, Time: tod(10, 0), Capacity: 0}}

		days, err := schedule.ComputeSlots(cfg, capped, schedule.Commitments{}, req(nil))
		require.NoError(t, err)
		assert.False(t, days[0].Slots[0].Available)
		assert.Equal(t, 0, days[0].Slots[0].Remaining)
		assert.True(t, days[0].Slots[1].Available)
	})
}

func TestComputeSlots_Consulting(t *testing.T) {
	cfg := schedule.DefaultTenantConfig()
	cfg.DefaultLeadTimeDays = 1

	today := date(t, "2026-09-01")
	monday := date(t, "2026-09-07")

	rules := schedule.Rules{
		Windows: []schedule.Window{weeklyWindow(time.Monday, tod(9, 0), tod(12, 0))},
	}

	req := func(mutate func(*schedule.SlotRequest)) schedule.SlotRequest {
		r := schedule.SlotRequest{
			Kind:            schedule.KindConsulting,
			DurationMinutes: 60,
			BufferMinutes:   30,
			MaxPerDay:       2,
			From:            monday,
			To:              monday,
			Today:           today,
		}
		if mutate != nil {
			mutate(&r)
		}
		return r
	}

	t.Run("steps on duration plus buffer, last start must still fit", func(t *testing.T) {
		days, err := schedule.ComputeSlots(cfg, rules, schedule.Commitments{}, req(nil))
		require.NoError(t, err)

		// 9:00 and 10:30 fit a 60-minute session before 12:00; 12:00 does not start.
		assert.Equal(t, []clock.TimeOfDay{tod(9, 0), tod(10, 30)}, times(days[0]))
	})

	t.Run("overlapping commitment blocks the slot", func(t *testing.T) {
		com := schedule.Commitments{Intervals: []schedule.Interval{
			{Date: monday, Start: tod(9, 30), End: tod(10, 0)},
		}}

		days, err := schedule.ComputeSlots(cfg, rules, com, req(nil))
		require.NoError(t, err)
		require.Len(t, days[0].Slots, 2)

		assert.False(t, days[0].Slots[0].Available, "9:00-10:00 overlaps the held 9:30-10:00")
		assert.True(t, days[0].Slots[1].Available)
	})

	t.Run("back-to-back interval does not overlap", func(t *testing.T) {
		com := schedule.Commitments{Intervals: []schedule.Interval{
			{Date: monday, Start: tod(8, 0), End: tod(9, 0)},
		}}

		days, err := schedule.ComputeSlots(cfg, rules, com, req(nil))
		require.NoError(t, err)
		assert.True(t, days[0].Slots[0].Available)
	})

	t.Run("per-day cap closes every slot once reached", func(t *testing.T) {
		com := schedule.Commitments{Intervals: []schedule.Interval{
			{Date: monday, Start: tod(13, 0), End: tod(14, 0)},
			{Date: monday, Start: tod(15, 0), End: tod(16, 0)},
		}}

		days, err := schedule.ComputeSlots(cfg, rules, com, req(nil))
		require.NoError(t, err)
		for _, s := range days[0].Slots {
			assert.False(t, s.Available)
		}
	})

	t.Run("non-positive duration yields no slots", func(t *testing.T) {
		days, err := schedule.ComputeSlots(cfg, rules, schedule.Commitments{}, req(func(r *schedule.SlotRequest) {
			r.DurationMinutes = 0
		}))
		require.NoError(t, err)
		assert.Empty(t, days[0].Slots)
	})

	t.Run("consulting uses the default lead time", func(t *testing.T) {
		days, err := schedule.ComputeSlots(cfg, rules, schedule.Commitments{}, req(func(r *schedule.SlotRequest) {
			r.Today = monday
			r.From = monday
			r.To = monday
		}))
		require.NoError(t, err)
		assert.Empty(t, days[0].Slots, "same-day booking sits inside the one-day lead floor")
	})
}
