package payment

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"hotelres/internal/pkg/config"
	"hotelres/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

var (
	ErrPaymentRejected    = errs.New("payment confirmation rejected")
	ErrPaymentUnavailable = errs.New("payment gateway unavailable")
)

type ConfirmParams struct {
	PaymentKey string
	OrderID    string
	Amount     int
}

type ConfirmResult struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Status     string `json:"status"`
	Method     string `json:"method"`
	ApprovedAt string `json:"approvedAt"`
}

type Gateway interface {
	Confirm(ctx context.Context, params ConfirmParams) (*ConfirmResult, error)
}

// TossClient calls the Toss Payments confirmation API behind a circuit
// breaker so a degraded gateway cannot pile up blocked requests.
type TossClient struct {
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
}

func NewTossClient(cfg config.Config) *TossClient {
	// Toss uses HTTP basic auth with the secret key as username and an
	// empty password.
	authorization := "Basic " + base64.StdEncoding.EncodeToString([]byte(cfg.Toss.SecretKey+":"))

	client := resty.New().
		SetBaseURL(cfg.Toss.BaseURL).
		SetTimeout(cfg.Toss.Timeout).
		SetRetryCount(0). // failures feed the circuit breaker instead
		SetHeader("Authorization", authorization).
		SetHeader("Content-Type", "application/json")

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "toss-payments",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
	})

	return &TossClient{http: client, breaker: breaker}
}

func (t *TossClient) Confirm(ctx context.Context, params ConfirmParams) (*ConfirmResult, error) {
	raw, err := t.breaker.Execute(func() (any, error) {
		var result ConfirmResult
		resp, callErr := t.http.R().
			SetContext(ctx).
			SetBody(map[string]any{
				"paymentKey": params.PaymentKey,
				"orderId":    params.OrderID,
				"amount":     params.Amount,
			}).
			SetResult(&result).
			Post("/v1/payments/confirm")
		if callErr != nil {
			return nil, callErr
		}
		if resp.IsError() {
			if resp.StatusCode() >= 500 {
				return nil, errs.Wrapf(ErrPaymentUnavailable, "toss returned %d", resp.StatusCode())
			}
			return nil, errs.Wrapf(ErrPaymentRejected, "toss returned %d", resp.StatusCode())
		}
		return &result, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errs.Mark(err, ErrPaymentUnavailable)
		}
		return nil, err
	}

	return raw.(*ConfirmResult), nil
}
