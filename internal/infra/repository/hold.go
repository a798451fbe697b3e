package repository

import (
	"context"
	"time"

	"hotelres/internal/domain/hold"
	"hotelres/internal/infra"
	"hotelres/internal/infra/db"
	"hotelres/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type HoldRepository struct {
	db db.DBTX
}

func NewHoldRepository(dbtx db.DBTX) *HoldRepository {
	return &HoldRepository{db: dbtx}
}

const insertHoldQuery = `
INSERT INTO booking_holds (
	hold_code, user_id, hotel_id, room_type_id, rate_plan_id,
	check_in, check_out, quantity, coupon_code,
	room_subtotal, discount, total_amount, currency, expires_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id`

// Insert persists a new hold. A hold_code collision surfaces as
// KindDuplicateKey so the engine can regenerate and retry.
func (r *HoldRepository) Insert(ctx context.Context, h *hold.Hold) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, insertHoldQuery,
		h.Code(),
		h.UserID(),
		h.HotelID(),
		h.RoomTypeID(),
		h.RatePlanID(),
		h.Stay().CheckIn(),
		h.Stay().CheckOut(),
		h.Quantity(),
		pgconv.StringPtrToPgtype(h.CouponCode()),
		h.RoomSubtotal().Amount(),
		h.Discount().Amount(),
		h.TotalAmount().Amount(),
		h.Currency(),
		h.ExpiresAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert hold", err)
	}

	return id, nil
}

func (r *HoldRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM booking_holds WHERE id = $1`, id); err != nil {
		return infra.WrapRepoErr("failed to delete hold", err)
	}
	return nil
}

const selectHoldColumns = `
SELECT id, hold_code, user_id, hotel_id, room_type_id, rate_plan_id,
       check_in, check_out, quantity, coupon_code,
       room_subtotal, discount, currency, expires_at, created_at
  FROM booking_holds`

func (r *HoldRepository) FindByCode(ctx context.Context, code string) (*hold.Hold, error) {
	row := r.db.QueryRow(ctx, selectHoldColumns+` WHERE hold_code = $1`, code)

	h, err := scanHold(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hold not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hold by code", err)
	}

	return h, nil
}

func (r *HoldRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM booking_holds WHERE hold_code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check hold code", err)
	}
	return exists, nil
}

// FindExpired lists holds whose expiry is strictly before the cutoff,
// oldest first so the sweep releases in creation order.
func (r *HoldRepository) FindExpired(ctx context.Context, cutoff time.Time) ([]*hold.Hold, error) {
	rows, err := r.db.Query(ctx, selectHoldColumns+` WHERE expires_at < $1 ORDER BY id`, cutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired holds", err)
	}
	defer rows.Close()

	var holds []*hold.Hold
	for rows.Next() {
		h, err := scanHold(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan expired hold", err)
		}
		holds = append(holds, h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read expired holds", err)
	}

	return holds, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHold(row rowScanner) (*hold.Hold, error) {
	var (
		id           int64
		code         string
		userID       int64
		hotelID      int64
		roomTypeID   int64
		ratePlanID   int64
		checkIn      time.Time
		checkOut     time.Time
		quantity     int
		couponCode   pgtype.Text
		roomSubtotal int
		discount     int
		currency     string
		expiresAt    time.Time
		createdAt    time.Time
	)

	err := row.Scan(&id, &code, &userID, &hotelID, &roomTypeID, &ratePlanID,
		&checkIn, &checkOut, &quantity, &couponCode,
		&roomSubtotal, &discount, &currency, &expiresAt, &createdAt)
	if err != nil {
		return nil, err
	}

	stay, err := hold.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	subtotal, err := hold.NewMoney(roomSubtotal)
	if err != nil {
		return nil, err
	}
	disc, err := hold.NewMoney(discount)
	if err != nil {
		return nil, err
	}

	return hold.ReconstructHold(
		id, code, userID, hotelID, roomTypeID, ratePlanID,
		stay, quantity, pgconv.StringPtrFromPgtype(couponCode),
		subtotal, disc, currency, expiresAt, createdAt,
	), nil
}
