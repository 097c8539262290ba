package request

import (
	"bakehouse/internal/pkg/clock"
)

// Dates travel as "2006-01-02" and slot times as "15:04" everywhere in the
// API, matching how the availability engine reasons about them.

func ParseDate(s string) (clock.Date, error) {
	return clock.ParseDate(s)
}

func ParseDatePtr(s *string) (*clock.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := clock.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func ParseTimeOfDayPtr(s *string) (*clock.TimeOfDay, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := clock.ParseTimeOfDay(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
