package contract

type Status string

const (
	StatusDraft   Status = "draft"
	StatusSent    Status = "sent"
	StatusSigned  Status = "signed"
	StatusExpired Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusSigned, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsEditable() bool {
	return s == StatusDraft || s == StatusSent
}
