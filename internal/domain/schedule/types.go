package schedule

import (
	"time"

	"bakehouse/internal/pkg/clock"

	"github.com/google/uuid"
)

// ServiceKind selects the slot-generation family: bakery pickup/delivery
// slots step on a fixed tenant interval; consulting slots step on the booking
// type's duration plus buffer.
type ServiceKind string

const (
	KindBakery     ServiceKind = "bakery"
	KindConsulting ServiceKind = "consulting"
)

// Window is a recurring weekly availability rule.
type Window struct {
	ID       uuid.UUID
	Weekday  time.Weekday
	Start    clock.TimeOfDay
	End      clock.TimeOfDay
	IsActive bool
}

// Override is a date-specific exception that beats the weekly window for its
// date. Available=false closes the whole date; Available=true with Start/End
// replaces the window, without them the weekly window still applies.
type Override struct {
	ID        uuid.UUID
	Date      clock.Date
	Available bool
	Start     *clock.TimeOfDay
	End       *clock.TimeOfDay
}

// Blackout closes a date to bakery order types regardless of hours.
type Blackout struct {
	ID     uuid.UUID
	Date   clock.Date
	Reason string
}

// CapacityOverride replaces the tenant default capacity for one exact slot.
type CapacityOverride struct {
	Date     clock.Date
	Time     clock.TimeOfDay
	Capacity int
}

// Rules bundles the calendar data the engine reads. Pure data, admin-managed,
// read-only here.
type Rules struct {
	Windows           []Window
	Overrides         []Override
	Blackouts         []Blackout
	CapacityOverrides []CapacityOverride
}

func (r Rules) overrideFor(d clock.Date) (Override, bool) {
	for _, o := range r.Overrides {
		if o.Date == d {
			return o, true
		}
	}
	return Override{}, false
}

func (r Rules) isBlackout(d clock.Date) bool {
	for _, b := range r.Blackouts {
		if b.Date == d {
			return true
		}
	}
	return false
}

func (r Rules) windowsFor(wd time.Weekday) []Window {
	var out []Window
	for _, w := range r.Windows {
		if w.IsActive && w.Weekday == wd {
			out = append(out, w)
		}
	}
	return out
}

func (r Rules) capacityFor(d clock.Date, t clock.TimeOfDay, fallback int) int {
	for _, c := range r.CapacityOverrides {
		if c.Date == d && c.Time == t {
			return c.Capacity
		}
	}
	return fallback
}

// SlotKey addresses one exact bakery pickup slot.
type SlotKey struct {
	Date clock.Date
	Time clock.TimeOfDay
}

// Interval is an existing consulting commitment expressed in tenant-local
// wall-clock terms.
type Interval struct {
	Date  clock.Date
	Start clock.TimeOfDay
	End   clock.TimeOfDay
}

func (iv Interval) overlaps(start, end clock.TimeOfDay) bool {
	return iv.Start < end && iv.End > start
}

// Commitments is the ledger aggregation the engine consumes: placed orders
// and bookings that hold capacity, already filtered by status policy at the
// query layer. The engine never mutates the ledger.
type Commitments struct {
	SlotCounts map[SlotKey]int
	Intervals  []Interval
}

func (c Commitments) countAt(key SlotKey) int {
	if c.SlotCounts == nil {
		return 0
	}
	return c.SlotCounts[key]
}

func (c Commitments) overlapping(d clock.Date, start, end clock.TimeOfDay) int {
	n := 0
	for _, iv := range c.Intervals {
		if iv.Date == d && iv.overlaps(start, end) {
			n++
		}
	}
	return n
}

func (c Commitments) countOn(d clock.Date) int {
	n := 0
	for _, iv := range c.Intervals {
		if iv.Date == d {
			n++
		}
	}
	return n
}

// Slot is one offerable (time) within a date. Available is derived, never
// stored: remaining > 0.
type Slot struct {
	Time      clock.TimeOfDay
	Available bool
	Remaining int
}

// DaySlots lists a date's slots; an empty list means the date is closed
// (lead time, blackout, override, or no window).
type DaySlots struct {
	Date  clock.Date
	Slots []Slot
}

// TenantConfig is the typed settings snapshot loaded once per request and
// passed by value into the engine. Every field has a default so a tenant with
// no settings rows still behaves sanely.
type TenantConfig struct {
	SlotIntervalMinutes     int
	DefaultSlotCapacity     int
	DefaultLeadTimeDays     int
	LeadTimes               map[string]int   // order type key → days
	Prices                  map[string]int64 // order type key → minor units
	ReminderOffsetDays      int
	CountPendingAsCommitted bool
}

const (
	DefaultSlotIntervalMinutes = 30
	DefaultSlotCapacity        = 4
	DefaultLeadTimeDays        = 3
	DefaultReminderOffsetDays  = 2
)

func DefaultTenantConfig() TenantConfig {
	return TenantConfig{
		SlotIntervalMinutes: DefaultSlotIntervalMinutes,
		DefaultSlotCapacity: DefaultSlotCapacity,
		DefaultLeadTimeDays: DefaultLeadTimeDays,
		LeadTimes:           map[string]int{},
		Prices:              map[string]int64{},
		ReminderOffsetDays:  DefaultReminderOffsetDays,
	}
}

// LeadTimeDays resolves the lead time for an order type key, falling back to
// the tenant default.
func (c TenantConfig) LeadTimeDays(orderType string) int {
	if days, ok := c.LeadTimes[orderType]; ok {
		return days
	}
	return c.DefaultLeadTimeDays
}

// PriceFor returns the fixed price for an order type, false when the type is
// quote-priced or unconfigured.
func (c TenantConfig) PriceFor(orderType string) (int64, bool) {
	p, ok := c.Prices[orderType]
	return p, ok
}
