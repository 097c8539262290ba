package clock

import (
	"errors"
	"fmt"
	"time"
)

// Date is a civil calendar date with no time zone attached. Availability and
// lead-time math compares dates, never timestamps, so a customer one time zone
// over cannot shift which day a slot falls on.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// At anchors the date at midnight UTC. Only used for date arithmetic and
// weekday lookup; never compared against wall-clock timestamps.
func (d Date) At() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.At().AddDate(0, 0, n))
}

// MonthRange returns the first and last days of the given civil month.
func MonthRange(year int, month time.Month) (Date, Date) {
	first := Date{Year: year, Month: month, Day: 1}
	last := DateOf(first.At().AddDate(0, 1, -1))
	return first, last
}

func (d Date) Weekday() time.Weekday {
	return d.At().Weekday()
}

func (d Date) Before(o Date) bool {
	return d.At().Before(o.At())
}

func (d Date) After(o Date) bool {
	return d.At().After(o.At())
}

// DaysUntil returns the number of whole calendar days from d to o.
func (d Date) DaysUntil(o Date) int {
	return int(o.At().Sub(d.At()) / (24 * time.Hour))
}

// TimeOfDay is minutes since midnight. Slot times are wall-clock labels within
// a tenant's business day, not instants.
type TimeOfDay int

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hour*60 + minute), nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) Hour() int    { return int(t) / 60 }
func (t TimeOfDay) Minute() int  { return int(t) % 60 }
func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) AddMinutes(n int) TimeOfDay {
	return t + TimeOfDay(n)
}
