//go:build unit

package inventory_test

import (
	"testing"
	"time"

	"hotelres/internal/domain/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, allotment, booked int, status inventory.DayStatus) *inventory.Day {
	t.Helper()
	stayDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return inventory.ReconstructDay(1, 10, 20, stayDate, allotment, booked, 100, status)
}

func TestNewDay(t *testing.T) {
	stayDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid day starts with zero booked", func(t *testing.T) {
		d, err := inventory.NewDay(10, 20, stayDate, 5, 100, inventory.DayStatusOpen)
		require.NoError(t, err)
		assert.Equal(t, 0, d.Booked())
		assert.Equal(t, 5, d.Remaining())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name      string
			allotment int
			price     int
			status    inventory.DayStatus
			errIs     error
		}{
			{name: "negative allotment", allotment: -1, price: 100, status: inventory.DayStatusOpen, errIs: inventory.ErrNegativeAllotment},
			{name: "negative price", allotment: 5, price: -1, status: inventory.DayStatusOpen, errIs: inventory.ErrNegativePrice},
			{name: "bogus status", allotment: 5, price: 100, status: inventory.DayStatus("HALF_OPEN"), errIs: inventory.ErrInvalidDayStatus},
			{name: "zero allotment is allowed", allotment: 0, price: 100, status: inventory.DayStatusOpen},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := inventory.NewDay(10, 20, stayDate, tc.allotment, tc.price, tc.status)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestDayRemaining(t *testing.T) {
	cases := []struct {
		name      string
		allotment int
		booked    int
		want      int
	}{
		{name: "unbooked", allotment: 5, booked: 0, want: 5},
		{name: "partially booked", allotment: 5, booked: 3, want: 2},
		{name: "fully booked", allotment: 5, booked: 5, want: 0},
		{name: "drifted over allotment clamps to zero", allotment: 5, booked: 7, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := day(t, tc.allotment, tc.booked, inventory.DayStatusOpen)
			assert.Equal(t, tc.want, d.Remaining())
		})
	}
}

func TestDayIsSellable(t *testing.T) {
	t.Run("open with capacity", func(t *testing.T) {
		assert.True(t, day(t, 5, 4, inventory.DayStatusOpen).IsSellable())
	})
	t.Run("open but full", func(t *testing.T) {
		assert.False(t, day(t, 5, 5, inventory.DayStatusOpen).IsSellable())
	})
	t.Run("closed with capacity", func(t *testing.T) {
		assert.False(t, day(t, 5, 0, inventory.DayStatusClosed).IsSellable())
	})
}

func TestDayReserve(t *testing.T) {
	t.Run("reserves up to remaining", func(t *testing.T) {
		d := day(t, 5, 3, inventory.DayStatusOpen)
		require.NoError(t, d.Reserve(2))
		assert.Equal(t, 5, d.Booked())
		assert.Equal(t, 0, d.Remaining())
	})

	t.Run("rejects more than remaining", func(t *testing.T) {
		d := day(t, 5, 3, inventory.DayStatusOpen)
		err := d.Reserve(3)
		assert.ErrorIs(t, err, inventory.ErrInsufficientUnits)
		assert.Equal(t, 3, d.Booked(), "failed reserve must not mutate booked")
	})

	t.Run("rejects closed day even with capacity", func(t *testing.T) {
		d := day(t, 5, 0, inventory.DayStatusClosed)
		err := d.Reserve(1)
		assert.ErrorIs(t, err, inventory.ErrInsufficientUnits)
	})
}

func TestDayRelease(t *testing.T) {
	t.Run("returns units", func(t *testing.T) {
		d := day(t, 5, 3, inventory.DayStatusOpen)
		d.Release(2)
		assert.Equal(t, 1, d.Booked())
	})

	t.Run("clamps at zero", func(t *testing.T) {
		d := day(t, 5, 1, inventory.DayStatusOpen)
		d.Release(4)
		assert.Equal(t, 0, d.Booked())
	})

	t.Run("release on closed day still works", func(t *testing.T) {
		d := day(t, 5, 2, inventory.DayStatusClosed)
		d.Release(1)
		assert.Equal(t, 1, d.Booked())
	})
}
