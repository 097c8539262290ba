package response

import (
	"bakehouse/internal/domain/schedule"
	"bakehouse/internal/usecase"
)

type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Remaining int    `json:"remaining"`
}

type DaySlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type PickupAvailabilityResponse struct {
	OrderType    string             `json:"orderType"`
	LeadTimeDays int                `json:"leadTimeDays"`
	MinDate      string             `json:"minDate"`
	Days         []DaySlotsResponse `json:"days"`
}

type ConsultingAvailabilityResponse struct {
	BookingTypeID   string             `json:"bookingTypeId"`
	DurationMinutes int                `json:"durationMinutes"`
	MinDate         string             `json:"minDate"`
	Days            []DaySlotsResponse `json:"days"`
}

func FromPickupAvailability(a usecase.PickupAvailability) *PickupAvailabilityResponse {
	return &PickupAvailabilityResponse{
		OrderType:    a.OrderType.String(),
		LeadTimeDays: a.LeadTimeDays,
		MinDate:      a.MinDate.String(),
		Days:         fromDaySlots(a.Days),
	}
}

func FromConsultingAvailability(a usecase.ConsultingAvailability) *ConsultingAvailabilityResponse {
	return &ConsultingAvailabilityResponse{
		BookingTypeID:   a.BookingTypeID.String(),
		DurationMinutes: a.DurationMinutes,
		MinDate:         a.MinDate.String(),
		Days:            fromDaySlots(a.Days),
	}
}

func fromDaySlots(days []schedule.DaySlots) []DaySlotsResponse {
	out := make([]DaySlotsResponse, 0, len(days))
	for _, d := range days {
		dr := DaySlotsResponse{Date: d.Date.String(), Slots: make([]SlotResponse, 0, len(d.Slots))}
		for _, s := range d.Slots {
			dr.Slots = append(dr.Slots, SlotResponse{
				Time:      s.Time.String(),
				Available: s.Available,
				Remaining: s.Remaining,
			})
		}
		out = append(out, dr)
	}
	return out
}
