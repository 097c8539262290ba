package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// ConsumesCapacity: cancelled bookings never hold a slot. Whether pending ones
// do is tenant policy, resolved by the caller.
func (s Status) ConsumesCapacity(countPending bool) bool {
	switch s {
	case StatusConfirmed:
		return true
	case StatusPending:
		return countPending
	default:
		return false
	}
}
