package hold

import (
	"errors"
	"time"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidCurrency = errors.New("currency must be a 3-letter code")
)

// Hold is a time-bounded hard reservation of inventory pending payment.
// A hold is immutable once created; its only terminal transitions are
// explicit cancellation and expiry, both of which delete the row. Row
// presence is the authoritative state.
type Hold struct {
	id           int64
	code         string
	userID       int64
	hotelID      int64
	roomTypeID   int64
	ratePlanID   int64
	stay         StayRange
	quantity     int
	couponCode   *string
	roomSubtotal Money
	discount     Money
	currency     string
	expiresAt    time.Time
	createdAt    time.Time
}

func NewHold(
	code string,
	userID, hotelID, roomTypeID, ratePlanID int64,
	stay StayRange,
	quantity int,
	couponCode *string,
	roomSubtotal, discount Money,
	currency string,
	expiresAt time.Time,
) (*Hold, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}

	return &Hold{
		code:         code,
		userID:       userID,
		hotelID:      hotelID,
		roomTypeID:   roomTypeID,
		ratePlanID:   ratePlanID,
		stay:         stay,
		quantity:     quantity,
		couponCode:   couponCode,
		roomSubtotal: roomSubtotal,
		discount:     discount,
		currency:     currency,
		expiresAt:    expiresAt,
	}, nil
}

func ReconstructHold(
	id int64,
	code string,
	userID, hotelID, roomTypeID, ratePlanID int64,
	stay StayRange,
	quantity int,
	couponCode *string,
	roomSubtotal, discount Money,
	currency string,
	expiresAt, createdAt time.Time,
) *Hold {
	return &Hold{
		id:           id,
		code:         code,
		userID:       userID,
		hotelID:      hotelID,
		roomTypeID:   roomTypeID,
		ratePlanID:   ratePlanID,
		stay:         stay,
		quantity:     quantity,
		couponCode:   couponCode,
		roomSubtotal: roomSubtotal,
		discount:     discount,
		currency:     currency,
		expiresAt:    expiresAt,
		createdAt:    createdAt,
	}
}

func (h *Hold) ID() int64            { return h.id }
func (h *Hold) Code() string         { return h.code }
func (h *Hold) UserID() int64        { return h.userID }
func (h *Hold) HotelID() int64       { return h.hotelID }
func (h *Hold) RoomTypeID() int64    { return h.roomTypeID }
func (h *Hold) RatePlanID() int64    { return h.ratePlanID }
func (h *Hold) Stay() StayRange      { return h.stay }
func (h *Hold) Quantity() int        { return h.quantity }
func (h *Hold) CouponCode() *string  { return h.couponCode }
func (h *Hold) RoomSubtotal() Money  { return h.roomSubtotal }
func (h *Hold) Discount() Money      { return h.discount }
func (h *Hold) Currency() string     { return h.currency }
func (h *Hold) ExpiresAt() time.Time { return h.expiresAt }
func (h *Hold) CreatedAt() time.Time { return h.createdAt }

func (h *Hold) TotalAmount() Money {
	return h.roomSubtotal.Sub(h.discount)
}

func (h *Hold) HasExpired(now time.Time) bool {
	return h.expiresAt.Before(now)
}
