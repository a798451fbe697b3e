package commands

import (
	"context"

	"hotelres/internal/infra"
	"hotelres/internal/infra/payment"
	"hotelres/internal/pkg/clock"
	"hotelres/internal/pkg/errs"
	"hotelres/internal/usecase/shared"
)

var (
	ErrHoldNotFound   = errs.New("hold not found")
	ErrHoldExpired    = errs.New("hold already expired")
	ErrAmountMismatch = errs.New("payment amount does not match hold total")
)

type ConfirmPaymentParams struct {
	HoldCode   string
	PaymentKey string
	OrderID    string
	Amount     int
}

type PaymentCommands interface {
	// Confirm verifies the hold is still live and the amount matches its
	// total, then confirms the payment with the gateway. Capacity stays
	// held; converting the hold into a reservation is a separate step.
	Confirm(ctx context.Context, params ConfirmPaymentParams) (*payment.ConfirmResult, error)
}

type paymentCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway payment.Gateway
	clock   clock.Clock
}

func NewPaymentCommands(uow shared.UnitOfWork, gateway payment.Gateway, clk clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{
		uow:     uow,
		gateway: gateway,
		clock:   clk,
	}
}

func (p *paymentCommandsImpl) Confirm(ctx context.Context, params ConfirmPaymentParams) (*payment.ConfirmResult, error) {
	var total int
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, findErr := tx.Holds().FindByCode(ctx, params.HoldCode)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return ErrHoldNotFound
			}
			return errs.Mark(findErr, ErrStorageUnavailable)
		}
		if entity.HasExpired(p.clock.Now()) {
			return ErrHoldExpired
		}
		total = entity.TotalAmount().Amount()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if params.Amount != total {
		return nil, errs.Wrapf(ErrAmountMismatch, "expected %d, got %d", total, params.Amount)
	}

	return p.gateway.Confirm(ctx, payment.ConfirmParams{
		PaymentKey: params.PaymentKey,
		OrderID:    params.OrderID,
		Amount:     params.Amount,
	})
}
