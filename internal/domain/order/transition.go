package order

// Transition is the order lifecycle as a pure function of (current status,
// event). It returns the next status and whether the event applies; applied ==
// false means the event is a no-op for this status and the caller must leave
// the order untouched. Because webhook delivery is at-least-once and possibly
// out of order, applying the same event twice, or applying an event after a
// later one already landed, must converge: terminal statuses absorb
// everything, and each event names the exact statuses it may fire from.
func Transition(current Status, ev Event) (Status, bool) {
	if current.IsTerminal() {
		return current, false
	}

	switch ev {
	case EventCheckoutCompleted:
		if current == StatusPendingPayment {
			return StatusConfirmed, true
		}
	case EventCheckoutExpired:
		if current == StatusPendingPayment {
			return StatusCancelled, true
		}
	case EventDepositPaid:
		if current == StatusPendingPayment || current == StatusInquiry {
			return StatusDepositPaid, true
		}
	case EventBalancePaid:
		if current == StatusDepositPaid {
			return StatusConfirmed, true
		}
	case EventQuoteApproved:
		if current == StatusInquiry {
			return StatusPendingPayment, true
		}
	case EventCompleted:
		if current == StatusConfirmed || current == StatusDepositPaid {
			return StatusCompleted, true
		}
	case EventCancelled:
		return StatusCancelled, true
	}

	return current, false
}
