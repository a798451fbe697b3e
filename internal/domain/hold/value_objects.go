package hold

import (
	"errors"
	"time"
)

var ErrInvalidStayRange = errors.New("check-out must be after check-in")

// StayRange is a half-open date range [checkIn, checkOut); the check-out
// night itself is not consumed.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	checkIn = truncateToDate(checkIn)
	checkOut = truncateToDate(checkOut)
	if !checkOut.After(checkIn) {
		return StayRange{}, ErrInvalidStayRange
	}
	return StayRange{checkIn: checkIn, checkOut: checkOut}, nil
}

func (r StayRange) CheckIn() time.Time  { return r.checkIn }
func (r StayRange) CheckOut() time.Time { return r.checkOut }

func (r StayRange) Nights() int {
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

// Dates returns every stay date in ascending order, check-out excluded.
func (r StayRange) Dates() []time.Time {
	dates := make([]time.Time, 0, r.Nights())
	for d := r.checkIn; d.Before(r.checkOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type Money struct {
	amount int
}

func NewMoney(amount int) (Money, error) {
	if amount < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int { return m.amount }

func (m Money) Sub(other Money) Money {
	remaining := m.amount - other.amount
	if remaining < 0 {
		remaining = 0
	}
	return Money{amount: remaining}
}
