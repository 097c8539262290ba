package schedule

import (
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/pkg/errs"
)

var ErrInvalidRange = errs.New("date range start must not be after end")

// SlotRequest describes one availability computation.
//
// For KindBakery, OrderType selects the lead time and slots step on the
// tenant's SlotIntervalMinutes. For KindConsulting, DurationMinutes and
// BufferMinutes come from the booking type and also drive the stepping;
// MaxPerDay caps commitments per calendar day.
type SlotRequest struct {
	Kind            ServiceKind
	OrderType       string
	DurationMinutes int
	BufferMinutes   int
	MaxPerDay       int
	From            clock.Date
	To              clock.Date
	Today           clock.Date
}

// MinOrderDate is the earliest date the lead-time floor permits. Exposed so
// callers can report the effective policy alongside the slots.
func MinOrderDate(cfg TenantConfig, orderType string, today clock.Date) clock.Date {
	return today.AddDays(cfg.LeadTimeDays(orderType))
}

// ComputeSlots returns, for every date in [From, To], the offerable slots with
// remaining capacity. Checks short-circuit in a fixed precedence order so an
// empty date is always attributable to exactly one rule:
//
//  1. lead time: a hard floor, dates before today+leadTimeDays yield nothing
//  2. blackout: bakery dates on the blackout list yield nothing
//  3. window resolution: a date override beats the weekly window; an
//     unavailable override closes the date; no resolved window closes it too
//  4. candidate stepping within each window, keeping starts whose service
//     duration still fits before window end
//  5. remaining = capacity - committed per candidate; available iff > 0
//
// All date comparisons are civil-date comparisons; a slot list is never
// affected by the time-of-day "now" happens to be.
func ComputeSlots(cfg TenantConfig, rules Rules, com Commitments, req SlotRequest) ([]DaySlots, error) {
	if req.From.After(req.To) {
		return nil, ErrInvalidRange
	}

	minDate := req.Today.AddDays(leadDays(cfg, req))

	var days []DaySlots
	for d := req.From; !d.After(req.To); d = d.AddDays(1) {
		day := DaySlots{Date: d}

		if d.Before(minDate) {
			days = append(days, day)
			continue
		}
		if req.Kind == KindBakery && rules.isBlackout(d) {
			days = append(days, day)
			continue
		}

		for _, w := range resolveWindows(rules, d) {
			day.Slots = append(day.Slots, slotsInWindow(cfg, rules, com, req, d, w.start, w.end)...)
		}

		days = append(days, day)
	}
	return days, nil
}

func leadDays(cfg TenantConfig, req SlotRequest) int {
	if req.Kind == KindBakery {
		return cfg.LeadTimeDays(req.OrderType)
	}
	return cfg.DefaultLeadTimeDays
}

type resolvedWindow struct {
	start, end clock.TimeOfDay
}

// resolveWindows applies override-beats-window precedence for one date.
func resolveWindows(rules Rules, d clock.Date) []resolvedWindow {
	if o, ok := rules.overrideFor(d); ok {
		if !o.Available {
			return nil
		}
		if o.Start != nil && o.End != nil {
			return []resolvedWindow{{start: *o.Start, end: *o.End}}
		}
		// Available override without explicit hours re-opens the date under
		// the normal weekly windows (used to lift a standing closure).
	}

	var out []resolvedWindow
	for _, w := range rules.windowsFor(d.Weekday()) {
		out = append(out, resolvedWindow{start: w.Start, end: w.End})
	}
	return out
}

func slotsInWindow(cfg TenantConfig, rules Rules, com Commitments, req SlotRequest, d clock.Date, start, end clock.TimeOfDay) []Slot {
	duration := req.DurationMinutes
	step := req.DurationMinutes + req.BufferMinutes
	if req.Kind == KindBakery {
		duration = cfg.SlotIntervalMinutes
		step = cfg.SlotIntervalMinutes
	}
	if step <= 0 || duration <= 0 {
		return nil
	}

	var slots []Slot
	for t := start; t.AddMinutes(duration) <= end; t = t.AddMinutes(step) {
		remaining := remainingAt(cfg, rules, com, req, d, t, duration)
		slots = append(slots, Slot{
			Time:      t,
			Available: remaining > 0,
			Remaining: remaining,
		})
	}
	return slots
}

// remainingAt computes capacity − committed for one candidate. Bakery counts
// commitments by exact (date,time) match; consulting counts interval overlap
// and additionally respects the per-day booking cap. Remaining can go
// negative when staff oversold manually; Available stays a pure derivation.
func remainingAt(cfg TenantConfig, rules Rules, com Commitments, req SlotRequest, d clock.Date, t clock.TimeOfDay, duration int) int {
	if req.Kind == KindBakery {
		capacity := rules.capacityFor(d, t, cfg.DefaultSlotCapacity)
		return capacity - com.countAt(SlotKey{Date: d, Time: t})
	}

	if req.MaxPerDay > 0 && com.countOn(d) >= req.MaxPerDay {
		return 0
	}
	if com.overlapping(d, t, t.AddMinutes(duration)) > 0 {
		return 0
	}
	return 1
}
