package response

import (
	"time"

	"hotelres/internal/usecase/commands"
)

type HoldResponse struct {
	HoldCode    string    `json:"holdCode"`
	ExpiresAt   time.Time `json:"expiresAt"`
	TotalAmount int       `json:"totalAmount"`
	Currency    string    `json:"currency"`
}

type SweepResponse struct {
	Released int `json:"released"`
}

func FromHoldResult(result *commands.HoldResult) *HoldResponse {
	return &HoldResponse{
		HoldCode:    result.HoldCode,
		ExpiresAt:   result.ExpiresAt,
		TotalAmount: result.TotalAmount,
		Currency:    result.Currency,
	}
}
