package order

// Type identifies the product line an order was placed for. Pricing and
// gating policy hang off the type: fixed-price types go straight to checkout,
// quote-gated types start as inquiries until staff have built a quote.
type Type string

const (
	TypeCookies          Type = "cookies"
	TypeCookiesLarge     Type = "cookies_large"
	TypeCake             Type = "cake"
	TypeWedding          Type = "wedding"
	TypeTasting          Type = "tasting"
	TypeCookieCups       Type = "cookie_cups"
	TypeEasterCollection Type = "easter_collection"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeCookies, TypeCookiesLarge, TypeCake, TypeWedding,
		TypeTasting, TypeCookieCups, TypeEasterCollection:
		return true
	default:
		return false
	}
}

// RequiresQuote reports whether the type has no fixed price and needs a
// staff-built quote before any payment can be initiated.
func (t Type) RequiresQuote() bool {
	return t == TypeWedding
}

// RequiresContract reports whether a signed contract must exist before the
// order may reach StatusConfirmed.
func (t Type) RequiresContract() bool {
	return t == TypeWedding
}

type Status string

const (
	StatusInquiry        Status = "inquiry"
	StatusPendingPayment Status = "pending_payment"
	StatusDepositPaid    Status = "deposit_paid"
	StatusConfirmed      Status = "confirmed"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusInquiry, StatusPendingPayment, StatusDepositPaid,
		StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal statuses absorb every further event.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Event is an input to the order lifecycle. Payment-provider webhooks, quote
// approval and staff actions all funnel through the same transition table.
type Event string

const (
	EventCheckoutCompleted Event = "checkout_completed"
	EventCheckoutExpired   Event = "checkout_expired"
	EventDepositPaid       Event = "deposit_paid"
	EventBalancePaid       Event = "balance_paid"
	EventQuoteApproved     Event = "quote_approved"
	EventCompleted         Event = "completed"
	EventCancelled         Event = "cancelled"
)
