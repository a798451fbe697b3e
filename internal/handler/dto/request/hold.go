package request

import (
	"strings"
	"time"
)

type CreateHoldRequest struct {
	HotelID    int64   `json:"hotel_id" binding:"required"`
	RoomTypeID int64   `json:"room_type_id" binding:"required"`
	RatePlanID int64   `json:"rate_plan_id" binding:"required"`
	CheckIn    string  `json:"check_in" binding:"required"`
	CheckOut   string  `json:"check_out" binding:"required"`
	Quantity   int     `json:"quantity"`
	CouponCode *string `json:"coupon_code,omitempty"`
}

func (r CreateHoldRequest) ParseCheckIn() (time.Time, error) {
	return time.Parse(time.DateOnly, r.CheckIn)
}

func (r CreateHoldRequest) ParseCheckOut() (time.Time, error) {
	return time.Parse(time.DateOnly, r.CheckOut)
}

func (r CreateHoldRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
