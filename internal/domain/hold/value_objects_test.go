//go:build unit

package hold_test

import (
	"testing"
	"time"

	"hotelres/internal/domain/hold"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStayRange(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid range", func(t *testing.T) {
		stay, err := hold.NewStayRange(checkIn, checkIn.AddDate(0, 0, 2))
		require.NoError(t, err)
		assert.Equal(t, 2, stay.Nights())
	})

	t.Run("truncates time-of-day to date", func(t *testing.T) {
		in := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)
		out := time.Date(2026, 9, 3, 11, 0, 0, 0, time.UTC)
		stay, err := hold.NewStayRange(in, out)
		require.NoError(t, err)
		assert.Equal(t, checkIn, stay.CheckIn())
		assert.Equal(t, 2, stay.Nights())
	})

	t.Run("check-out equal to check-in", func(t *testing.T) {
		_, err := hold.NewStayRange(checkIn, checkIn)
		assert.ErrorIs(t, err, hold.ErrInvalidStayRange)
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		_, err := hold.NewStayRange(checkIn, checkIn.AddDate(0, 0, -1))
		assert.ErrorIs(t, err, hold.ErrInvalidStayRange)
	})

	t.Run("same calendar day after truncation", func(t *testing.T) {
		in := time.Date(2026, 9, 1, 1, 0, 0, 0, time.UTC)
		out := time.Date(2026, 9, 1, 23, 0, 0, 0, time.UTC)
		_, err := hold.NewStayRange(in, out)
		assert.ErrorIs(t, err, hold.ErrInvalidStayRange)
	})
}

func TestStayRangeDates(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	stay, err := hold.NewStayRange(checkIn, checkIn.AddDate(0, 0, 3))
	require.NoError(t, err)

	want := []time.Time{
		checkIn,
		checkIn.AddDate(0, 0, 1),
		checkIn.AddDate(0, 0, 2),
	}
	if diff := cmp.Diff(want, stay.Dates()); diff != "" {
		t.Errorf("Dates() mismatch (-want +got):\n%s", diff)
	}
}

func TestMoney(t *testing.T) {
	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := hold.NewMoney(-1)
		assert.Error(t, err)
	})

	t.Run("sub floors at zero", func(t *testing.T) {
		subtotal, err := hold.NewMoney(100)
		require.NoError(t, err)
		discount, err := hold.NewMoney(150)
		require.NoError(t, err)

		assert.Equal(t, 0, subtotal.Sub(discount).Amount())
	})

	t.Run("sub normal case", func(t *testing.T) {
		subtotal, err := hold.NewMoney(400)
		require.NoError(t, err)
		discount, err := hold.NewMoney(50)
		require.NoError(t, err)

		assert.Equal(t, 350, subtotal.Sub(discount).Amount())
	})
}

func TestCode(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		code := hold.NewCode()
		assert.True(t, hold.IsCode(code), "generated code %q should satisfy IsCode", code)
		assert.Len(t, code, 12)
		assert.Equal(t, "HLD-", code[:4])
	})

	t.Run("IsCode rejects malformed input", func(t *testing.T) {
		assert.False(t, hold.IsCode(""))
		assert.False(t, hold.IsCode("HLD-"))
		assert.False(t, hold.IsCode("XYZ-DEADBEEF"))
		assert.False(t, hold.IsCode("HLD-DEADBEEF0"))
	})
}
