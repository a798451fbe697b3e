package request

type ConfirmPaymentRequest struct {
	HoldCode   string `json:"hold_code" binding:"required"`
	PaymentKey string `json:"payment_key" binding:"required"`
	OrderID    string `json:"order_id" binding:"required"`
	Amount     int    `json:"amount" binding:"required"`
}
