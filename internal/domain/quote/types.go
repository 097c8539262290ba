package quote

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusApproved  Status = "approved"
	StatusExpired   Status = "expired"
	StatusConverted Status = "converted"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusApproved, StatusExpired, StatusConverted:
		return true
	default:
		return false
	}
}

// IsEditable: line items, deposit percentage and message may only change
// while the customer has not acted on the quote.
func (s Status) IsEditable() bool {
	return s == StatusDraft || s == StatusSent
}

// IsDeletable: once approved or converted the quote is part of the payment
// trail and may not be removed.
func (s Status) IsDeletable() bool {
	return s != StatusApproved && s != StatusConverted
}
