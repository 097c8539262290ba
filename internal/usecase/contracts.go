package usecase

import (
	"context"

	"bakehouse/internal/domain/contract"
	"bakehouse/internal/infra/db"
	"bakehouse/internal/infra/repository"
	"bakehouse/internal/pkg/clock"
	"bakehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOrderNotContractable = errs.New("order type does not take a contract")

type CreateContractInput struct {
	OrderID uuid.UUID
	Title   string
	Body    string
}

type SignContractInput struct {
	SignerName string
	Agreed     bool
	SignerIP   string
}

type ContractUsecase interface {
	Create(ctx context.Context, tenantID uuid.UUID, in CreateContractInput) (*contract.Contract, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, title, body *string) (*contract.Contract, error)
	Send(ctx context.Context, tenantID, id uuid.UUID) (*contract.Contract, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	Get(ctx context.Context, tenantID, id uuid.UUID) (*contract.Contract, error)
	GetByOrder(ctx context.Context, tenantID, orderID uuid.UUID) (*contract.Contract, error)
	GetByToken(ctx context.Context, token uuid.UUID) (*contract.Contract, error)
	SignByToken(ctx context.Context, token uuid.UUID, in SignContractInput) (*contract.Contract, error)
}

type contractInteractor struct {
	tx            TxRunner
	contracts     ContractRepo
	orders        OrderRepo
	notifications NotificationRepo
	clk           clock.Clock
}

func NewContractUsecase(
	tx TxRunner,
	contracts ContractRepo,
	orders OrderRepo,
	notifications NotificationRepo,
	clk clock.Clock,
) ContractUsecase {
	return &contractInteractor{
		tx:            tx,
		contracts:     contracts,
		orders:        orders,
		notifications: notifications,
		clk:           clk,
	}
}

func (u *contractInteractor) Create(ctx context.Context, tenantID uuid.UUID, in CreateContractInput) (*contract.Contract, error) {
	o, err := u.orders.FindByIDForTenant(ctx, tenantID, in.OrderID)
	if err != nil {
		return nil, err
	}
	if !o.OrderType().RequiresContract() {
		return nil, ErrOrderNotContractable
	}

	c, err := contract.NewContract(tenantID, in.OrderID, in.Title, in.Body)
	if err != nil {
		return nil, err
	}

	err = u.tx.RunInTx(ctx, func(tx db.DBTX) error {
		return u.contracts.Create(ctx, tx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (u *contractInteractor) Update(ctx context.Context, tenantID, id uuid.UUID, title, body *string) (*contract.Contract, error) {
	c, err := u.contracts.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := c.UpdateDetails(title, body); err != nil {
		return nil, err
	}

	err = u.tx.RunInTx(ctx, func(tx db.DBTX) error {
		return u.contracts.Save(ctx, tx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (u *contractInteractor) Send(ctx context.Context, tenantID, id uuid.UUID) (*contract.Contract, error) {
	c, err := u.contracts.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := c.Send(); err != nil {
		return nil, err
	}

	o, err := u.orders.FindByIDForTenant(ctx, tenantID, c.OrderID())
	if err != nil {
		return nil, err
	}

	err = u.tx.RunInTx(ctx, func(tx db.DBTX) error {
		if err := u.contracts.Save(ctx, tx, c); err != nil {
			return err
		}
		return u.notifications.Enqueue(ctx, tx, tenantID, repository.NotifyContractSent, o.Customer().Email, map[string]string{
			"order_number":  o.OrderNumber(),
			"signing_token": c.SigningToken().String(),
		}, u.clk.Now())
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (u *contractInteractor) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return u.contracts.Delete(ctx, tenantID, id)
}

func (u *contractInteractor) Get(ctx context.Context, tenantID, id uuid.UUID) (*contract.Contract, error) {
	return u.contracts.FindByID(ctx, tenantID, id)
}

func (u *contractInteractor) GetByOrder(ctx context.Context, tenantID, orderID uuid.UUID) (*contract.Contract, error) {
	return u.contracts.FindByOrderID(ctx, tenantID, orderID)
}

func (u *contractInteractor) GetByToken(ctx context.Context, token uuid.UUID) (*contract.Contract, error) {
	return u.contracts.FindByToken(ctx, token)
}

// SignByToken validates through the entity, then records the signature with a
// conditional sent→signed update. Two concurrent signers get one signature;
// the loser sees ErrAlreadySigned.
func (u *contractInteractor) SignByToken(ctx context.Context, token uuid.UUID, in SignContractInput) (*contract.Contract, error) {
	c, err := u.contracts.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	now := u.clk.Now()
	if err := c.Sign(in.SignerName, in.Agreed, in.SignerIP, now); err != nil {
		return nil, err
	}

	o, err := u.orders.FindByID(ctx, c.OrderID())
	if err != nil {
		return nil, err
	}

	err = u.tx.RunInTx(ctx, func(tx db.DBTX) error {
		won, err := u.contracts.Sign(ctx, tx, c.ID(), in.SignerName, in.SignerIP, now)
		if err != nil {
			return err
		}
		if !won {
			return contract.ErrAlreadySigned
		}
		return u.notifications.Enqueue(ctx, tx, c.TenantID(), repository.NotifyContractSigned, o.Customer().Email, map[string]string{
			"order_number": o.OrderNumber(),
			"signer_name":  in.SignerName,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
