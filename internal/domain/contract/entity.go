package contract

import (
	"strings"
	"time"

	"bakehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotEditable   = errs.New("contract is no longer editable")
	ErrNotSent       = errs.New("contract has not been sent")
	ErrAlreadySigned = errs.New("contract is already signed")
	ErrMissingSigner = errs.New("signer name is required")
	ErrNotAgreed     = errs.New("explicit agreement is required")
	ErrEmptyBody     = errs.New("contract body is required")
)

// Contract is the staff-authored terms document gating wedding fulfillment.
// Once signed it is immutable and undeletable; that is enforced here and again
// at the repository boundary, not just in any UI.
type Contract struct {
	id           uuid.UUID
	tenantID     uuid.UUID
	orderID      uuid.UUID
	status       Status
	signingToken uuid.UUID
	title        string
	body         string

	signerName *string
	signedAt   *time.Time
	signerIP   *string

	createdAt time.Time
	updatedAt time.Time
}

func NewContract(tenantID, orderID uuid.UUID, title, body string) (*Contract, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyBody
	}

	return &Contract{
		id:           uuid.New(),
		tenantID:     tenantID,
		orderID:      orderID,
		status:       StatusDraft,
		signingToken: uuid.New(),
		title:        strings.TrimSpace(title),
		body:         body,
	}, nil
}

type ReconstructContractParams struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	OrderID      uuid.UUID
	Status       Status
	SigningToken uuid.UUID
	Title        string
	Body         string
	SignerName   *string
	SignedAt     *time.Time
	SignerIP     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ReconstructContract(p ReconstructContractParams) *Contract {
	return &Contract{
		id:           p.ID,
		tenantID:     p.TenantID,
		orderID:      p.OrderID,
		status:       p.Status,
		signingToken: p.SigningToken,
		title:        p.Title,
		body:         p.Body,
		signerName:   p.SignerName,
		signedAt:     p.SignedAt,
		signerIP:     p.SignerIP,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}
}

// UpdateDetails patches title and body while the contract is still editable.
func (c *Contract) UpdateDetails(title, body *string) error {
	if !c.status.IsEditable() {
		return ErrNotEditable
	}

	if title != nil {
		c.title = strings.TrimSpace(*title)
	}
	if body != nil {
		if strings.TrimSpace(*body) == "" {
			return ErrEmptyBody
		}
		c.body = *body
	}
	return nil
}

func (c *Contract) Send() error {
	switch c.status {
	case StatusDraft:
		c.status = StatusSent
		return nil
	case StatusSent:
		return nil
	default:
		return ErrNotEditable
	}
}

// Sign is the customer-facing token action: legal only from sent, requires a
// name and explicit agreement, and stamps who/when/where. Signed is terminal.
func (c *Contract) Sign(signerName string, agreed bool, signerIP string, now time.Time) error {
	if c.status == StatusSigned {
		return ErrAlreadySigned
	}
	if c.status != StatusSent {
		return ErrNotSent
	}
	signerName = strings.TrimSpace(signerName)
	if signerName == "" {
		return ErrMissingSigner
	}
	if !agreed {
		return ErrNotAgreed
	}

	c.status = StatusSigned
	c.signerName = &signerName
	c.signedAt = &now
	c.signerIP = &signerIP
	return nil
}

func (c *Contract) IsSigned() bool {
	return c.status == StatusSigned
}

func (c *Contract) CanDelete() bool {
	return c.status != StatusSigned
}

func (c *Contract) ID() uuid.UUID           { return c.id }
func (c *Contract) TenantID() uuid.UUID     { return c.tenantID }
func (c *Contract) OrderID() uuid.UUID      { return c.orderID }
func (c *Contract) Status() Status          { return c.status }
func (c *Contract) SigningToken() uuid.UUID { return c.signingToken }
func (c *Contract) Title() string           { return c.title }
func (c *Contract) Body() string            { return c.body }
func (c *Contract) SignerName() *string     { return c.signerName }
func (c *Contract) SignedAt() *time.Time    { return c.signedAt }
func (c *Contract) SignerIP() *string       { return c.signerIP }
func (c *Contract) CreatedAt() time.Time    { return c.createdAt }
func (c *Contract) UpdatedAt() time.Time    { return c.updatedAt }
