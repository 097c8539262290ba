package response

import (
	"bakehouse/internal/domain/schedule"

	"github.com/google/uuid"
)

type WindowResponse struct {
	ID       uuid.UUID `json:"id"`
	Weekday  int       `json:"weekday"`
	Start    string    `json:"start"`
	End      string    `json:"end"`
	IsActive bool      `json:"isActive"`
}

func FromWindows(windows []schedule.Window) []WindowResponse {
	out := make([]WindowResponse, 0, len(windows))
	for _, w := range windows {
		out = append(out, WindowResponse{
			ID:       w.ID,
			Weekday:  int(w.Weekday),
			Start:    w.Start.String(),
			End:      w.End.String(),
			IsActive: w.IsActive,
		})
	}
	return out
}

type BlackoutResponse struct {
	ID     uuid.UUID `json:"id"`
	Date   string    `json:"date"`
	Reason string    `json:"reason,omitempty"`
}

func FromBlackouts(blackouts []schedule.Blackout) []BlackoutResponse {
	out := make([]BlackoutResponse, 0, len(blackouts))
	for _, b := range blackouts {
		out = append(out, BlackoutResponse{ID: b.ID, Date: b.Date.String(), Reason: b.Reason})
	}
	return out
}
