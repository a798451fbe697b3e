package commands

import (
	"context"
	"log/slog"
	"time"

	"hotelres/internal/domain/hold"
	"hotelres/internal/infra"
	"hotelres/internal/pkg/clock"
	"hotelres/internal/pkg/config"
	"hotelres/internal/pkg/errs"
	"hotelres/internal/pkg/metrics"
	"hotelres/internal/usecase/shared"
)

var (
	ErrInvalidStayRange   = errs.New("check-out must be after check-in")
	ErrSoldOut            = errs.New("no sellable inventory for the requested range")
	ErrHoldCodeExhausted  = errs.New("could not generate a unique hold code")
	ErrStorageUnavailable = errs.New("storage unavailable")
	ErrDomainValidation   = errs.New("domain validation error")
)

// maxCodeAttempts bounds the collision retry loop for hold codes; with an
// 8-hex-character space collisions are vanishingly rare.
const maxCodeAttempts = 5

type CreateHoldParams struct {
	UserID     int64
	HotelID    int64
	RoomTypeID int64
	RatePlanID int64
	CheckIn    time.Time
	CheckOut   time.Time
	Quantity   int
	CouponCode *string
}

type HoldResult struct {
	HoldCode    string
	ExpiresAt   time.Time
	TotalAmount int
	Currency    string
}

// DiscountResolver turns an optional coupon code into a discount amount.
// Coupon rules live outside this engine; the default resolves to zero.
type DiscountResolver interface {
	Resolve(ctx context.Context, couponCode *string, subtotal int) (int, error)
}

type NoDiscount struct{}

func NewNoDiscount() *NoDiscount { return &NoDiscount{} }

func (NoDiscount) Resolve(_ context.Context, _ *string, _ int) (int, error) {
	return 0, nil
}

type HoldCommands interface {
	// CreateHold locks the requested date range, validates sellability and
	// hard-holds capacity, then records the hold atomically with the
	// capacity decrement.
	CreateHold(ctx context.Context, params CreateHoldParams) (*HoldResult, error)
	// CancelHold releases a hold by code. Cancelling a missing or already
	// released hold is success, not an error.
	CancelHold(ctx context.Context, holdCode string) error
	// ReleaseExpired releases every hold past its expiry, each in its own
	// transaction, and returns the number released.
	ReleaseExpired(ctx context.Context) (int, error)
}

type holdCommandsImpl struct {
	uow       shared.UnitOfWork
	discounts DiscountResolver
	clock     clock.Clock
	cfg       config.HoldConfig
}

func NewHoldCommands(uow shared.UnitOfWork, discounts DiscountResolver, clk clock.Clock, cfg config.Config) HoldCommands {
	return &holdCommandsImpl{
		uow:       uow,
		discounts: discounts,
		clock:     clk,
		cfg:       cfg.Hold,
	}
}

func (h *holdCommandsImpl) CreateHold(ctx context.Context, params CreateHoldParams) (*HoldResult, error) {
	stay, err := hold.NewStayRange(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	qty := params.Quantity
	if qty < 1 {
		qty = 1
	}

	// A unique violation on the hold code aborts the storage transaction
	// (postgres rejects every statement after it), so a collision cannot be
	// retried in place; the whole unit re-runs with a fresh code draw.
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		result, err := h.createHoldUnit(ctx, params, stay, qty)
		if err == nil {
			metrics.HoldsCreated.Inc()
			return result, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, err
		}
		slog.Warn("hold code collided on insert, retrying in a fresh transaction",
			"attempt", attempt+1)
	}

	return nil, ErrHoldCodeExhausted
}

func (h *holdCommandsImpl) createHoldUnit(ctx context.Context, params CreateHoldParams, stay hold.StayRange, qty int) (*HoldResult, error) {
	var result *HoldResult
	err := h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		days, lockErr := tx.Inventory().LockRange(ctx, params.HotelID, params.RoomTypeID, stay.CheckIn(), stay.CheckOut())
		if lockErr != nil {
			return errs.Mark(lockErr, ErrStorageUnavailable)
		}

		// Missing rows mean the range is not fully covered; treated exactly
		// like zero remaining capacity. No partial holds.
		if len(days) != stay.Nights() {
			metrics.HoldSoldOut.Inc()
			return ErrSoldOut
		}

		subtotal := 0
		for _, day := range days {
			if reserveErr := day.Reserve(qty); reserveErr != nil {
				metrics.HoldSoldOut.Inc()
				return errs.Mark(
					errs.Wrapf(reserveErr, "sold out on %s", day.StayDate().Format(time.DateOnly)),
					ErrSoldOut,
				)
			}
			subtotal += day.Price() * qty
		}

		if saveErr := tx.Inventory().SaveBooked(ctx, days); saveErr != nil {
			return errs.Mark(saveErr, ErrStorageUnavailable)
		}

		discount, discErr := h.discounts.Resolve(ctx, params.CouponCode, subtotal)
		if discErr != nil {
			return errs.Mark(discErr, ErrDomainValidation)
		}

		entity, buildErr := h.buildHold(params, stay, qty, subtotal, discount)
		if buildErr != nil {
			return errs.Mark(buildErr, ErrDomainValidation)
		}

		inserted, insertErr := h.insertHold(ctx, tx, entity)
		if insertErr != nil {
			return insertErr
		}

		result = &HoldResult{
			HoldCode:    inserted.Code(),
			ExpiresAt:   inserted.ExpiresAt(),
			TotalAmount: inserted.TotalAmount().Amount(),
			Currency:    inserted.Currency(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (h *holdCommandsImpl) buildHold(params CreateHoldParams, stay hold.StayRange, qty, subtotal, discount int) (*hold.Hold, error) {
	subtotalMoney, err := hold.NewMoney(subtotal)
	if err != nil {
		return nil, err
	}
	discountMoney, err := hold.NewMoney(discount)
	if err != nil {
		return nil, err
	}

	return hold.NewHold(
		hold.NewCode(),
		params.UserID,
		params.HotelID,
		params.RoomTypeID,
		params.RatePlanID,
		stay,
		qty,
		params.CouponCode,
		subtotalMoney,
		discountMoney,
		h.cfg.Currency,
		h.clock.Now().Add(h.cfg.TTL),
	)
}

// insertHold draws codes until the exists-check finds a free one, then
// inserts exactly once. The exists-check is advisory (reads are safe to
// repeat in-transaction); the unique constraint is authoritative, and a
// racing insert's duplicate-key error is returned as-is so the caller can
// retry the whole unit.
func (h *holdCommandsImpl) insertHold(ctx context.Context, tx shared.Tx, entity *hold.Hold) (*hold.Hold, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		exists, err := tx.Holds().ExistsByCode(ctx, entity.Code())
		if err != nil {
			return nil, errs.Mark(err, ErrStorageUnavailable)
		}
		if !exists {
			if _, err := tx.Holds().Insert(ctx, entity); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return nil, err
				}
				return nil, errs.Mark(err, ErrStorageUnavailable)
			}
			return entity, nil
		}

		regenerated, regenErr := hold.NewHold(
			hold.NewCode(),
			entity.UserID(),
			entity.HotelID(),
			entity.RoomTypeID(),
			entity.RatePlanID(),
			entity.Stay(),
			entity.Quantity(),
			entity.CouponCode(),
			entity.RoomSubtotal(),
			entity.Discount(),
			entity.Currency(),
			entity.ExpiresAt(),
		)
		if regenErr != nil {
			return nil, errs.Mark(regenErr, ErrDomainValidation)
		}
		entity = regenerated
	}

	return nil, ErrHoldCodeExhausted
}

func (h *holdCommandsImpl) CancelHold(ctx context.Context, holdCode string) error {
	released := false
	err := h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, findErr := tx.Holds().FindByCode(ctx, holdCode)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				// Already cancelled or expired; idempotent success.
				return nil
			}
			return errs.Mark(findErr, ErrStorageUnavailable)
		}

		if releaseErr := h.releaseHold(ctx, tx, entity); releaseErr != nil {
			return releaseErr
		}
		released = true
		return nil
	})
	if err != nil {
		return err
	}

	if released {
		metrics.HoldsReleased.WithLabelValues(metrics.ReleaseReasonCancel).Inc()
	}
	return nil
}

func (h *holdCommandsImpl) ReleaseExpired(ctx context.Context) (int, error) {
	start := h.clock.Now()
	defer func() {
		metrics.SweepDuration.Observe(time.Since(start).Seconds())
	}()

	expired, err := h.uow.HoldReads().FindExpired(ctx, h.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, ErrStorageUnavailable)
	}

	// Each hold gets its own transaction so one transient lock conflict
	// cannot block the rest of the batch.
	released := 0
	for _, candidate := range expired {
		entity := candidate
		releaseErr := h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			current, findErr := tx.Holds().FindByCode(ctx, entity.Code())
			if findErr != nil {
				if infra.IsKind(findErr, infra.KindNotFound) {
					// Raced with a cancel; nothing left to release.
					return nil
				}
				return errs.Mark(findErr, ErrStorageUnavailable)
			}
			return h.releaseHold(ctx, tx, current)
		})
		if releaseErr != nil {
			slog.Warn("failed to release expired hold",
				"hold_code", entity.Code(),
				"error", releaseErr.Error())
			continue
		}
		released++
		metrics.HoldsReleased.WithLabelValues(metrics.ReleaseReasonExpired).Inc()
	}

	return released, nil
}

// releaseHold restores the capacity a hold consumed and deletes its row,
// inside the caller's transaction. Locks the same range in the same
// ascending-date order as CreateHold.
func (h *holdCommandsImpl) releaseHold(ctx context.Context, tx shared.Tx, entity *hold.Hold) error {
	days, err := tx.Inventory().LockRange(ctx,
		entity.HotelID(), entity.RoomTypeID(), entity.Stay().CheckIn(), entity.Stay().CheckOut())
	if err != nil {
		return errs.Mark(err, ErrStorageUnavailable)
	}

	qty := entity.Quantity()
	if qty < 1 {
		qty = 1
	}
	for _, day := range days {
		day.Release(qty)
	}

	if err := tx.Inventory().SaveBooked(ctx, days); err != nil {
		return errs.Mark(err, ErrStorageUnavailable)
	}

	if err := tx.Holds().DeleteByID(ctx, entity.ID()); err != nil {
		return errs.Mark(err, ErrStorageUnavailable)
	}

	return nil
}
