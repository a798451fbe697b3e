package response

import (
	"hotelres/internal/infra/payment"
)

type PaymentResponse struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Status     string `json:"status"`
	Method     string `json:"method,omitempty"`
	ApprovedAt string `json:"approvedAt,omitempty"`
}

func FromConfirmResult(result *payment.ConfirmResult) *PaymentResponse {
	return &PaymentResponse{
		PaymentKey: result.PaymentKey,
		OrderID:    result.OrderID,
		Status:     result.Status,
		Method:     result.Method,
		ApprovedAt: result.ApprovedAt,
	}
}
