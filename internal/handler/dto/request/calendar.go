package request

import (
	"bakehouse/internal/domain/schedule"
	"bakehouse/internal/infra/repository"
	"bakehouse/internal/pkg/clock"
)

type WindowRequest struct {
	Weekday  int    `json:"weekday" binding:"min=0,max=6"`
	Start    string `json:"start" binding:"required"`
	End      string `json:"end" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

func (r WindowRequest) ToParams() (repository.WindowParams, error) {
	start, err := clock.ParseTimeOfDay(r.Start)
	if err != nil {
		return repository.WindowParams{}, err
	}
	end, err := clock.ParseTimeOfDay(r.End)
	if err != nil {
		return repository.WindowParams{}, err
	}

	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return repository.WindowParams{
		Weekday:  r.Weekday,
		Start:    start,
		End:      end,
		IsActive: active,
	}, nil
}

type OverrideRequest struct {
	Date      string  `json:"date" binding:"required"`
	Available bool    `json:"available"`
	Start     *string `json:"start"`
	End       *string `json:"end"`
}

func (r OverrideRequest) ToParams() (repository.OverrideParams, error) {
	date, err := clock.ParseDate(r.Date)
	if err != nil {
		return repository.OverrideParams{}, err
	}
	start, err := ParseTimeOfDayPtr(r.Start)
	if err != nil {
		return repository.OverrideParams{}, err
	}
	end, err := ParseTimeOfDayPtr(r.End)
	if err != nil {
		return repository.OverrideParams{}, err
	}
	return repository.OverrideParams{
		Date:      date,
		Available: r.Available,
		Start:     start,
		End:       end,
	}, nil
}

type BlackoutRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
}

type CapacityRequest struct {
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Capacity int    `json:"capacity" binding:"min=0"`
}

func (r CapacityRequest) ToOverride() (schedule.CapacityOverride, error) {
	date, err := clock.ParseDate(r.Date)
	if err != nil {
		return schedule.CapacityOverride{}, err
	}
	t, err := clock.ParseTimeOfDay(r.Time)
	if err != nil {
		return schedule.CapacityOverride{}, err
	}
	return schedule.CapacityOverride{Date: date, Time: t, Capacity: r.Capacity}, nil
}

type SettingRequest struct {
	Value string `json:"value" binding:"required"`
}
