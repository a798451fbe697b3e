//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"hotelres/internal/domain/hold"
	"hotelres/internal/domain/inventory"
	"hotelres/internal/pkg/clock"
	"hotelres/internal/pkg/config"
	"hotelres/internal/pkg/errs"
	"hotelres/internal/usecase/commands"
	"hotelres/tests/common/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

const (
	hotelID    = int64(10)
	roomTypeID = int64(20)
	ratePlanID = int64(30)
	userID     = int64(1)
)

func checkInDate(offsetDays int) time.Time {
	return time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offsetDays)
}

func newEngine(store *memstore.Store, clk clock.Clock) commands.HoldCommands {
	return commands.NewHoldCommands(store, commands.NewNoDiscount(), clk, config.NewTestConfig())
}

func seedRange(store *memstore.Store, from time.Time, nights, allotment, price int) {
	for i := 0; i < nights; i++ {
		store.SeedDay(hotelID, roomTypeID, from.AddDate(0, 0, i), allotment, 0, price, inventory.DayStatusOpen)
	}
}

func createParams(checkIn, checkOut time.Time, qty int) commands.CreateHoldParams {
	return commands.CreateHoldParams{
		UserID:     userID,
		HotelID:    hotelID,
		RoomTypeID: roomTypeID,
		RatePlanID: ratePlanID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Quantity:   qty,
	}
}

func TestCreateHold(t *testing.T) {
	t.Run("two rooms for two nights totals price times quantity times nights", func(t *testing.T) {
		store := memstore.New()
		clk := clock.NewMockClock(baseTime)
		engine := newEngine(store, clk)
		seedRange(store, checkInDate(0), 2, 5, 100)

		result, err := engine.CreateHold(context.Background(), createParams(checkInDate(0), checkInDate(2), 2))
		require.NoError(t, err)

		assert.Equal(t, 400, result.TotalAmount)
		assert.Equal(t, "KRW", result.Currency)
		assert.Equal(t, baseTime.Add(15*time.Minute), result.ExpiresAt)
		assert.True(t, hold.IsCode(result.HoldCode))

		assert.Equal(t, 2, store.Booked(hotelID, roomTypeID, checkInDate(0)))
		assert.Equal(t, 2, store.Booked(hotelID, roomTypeID, checkInDate(1)))
		assert.Equal(t, 1, store.HoldCount())
	})

	t.Run("quantity below one is coerced to one", func(t *testing.T) {
		store := memstore.New()
		engine := newEngine(store, clock.NewMockClock(baseTime))
		seedRange(store, checkInDate(0), 1, 5, 100)

		result, err := engine.CreateHold(context.Background(), createParams(checkInDate(0), checkInDate(1), 0))
		require.NoError(t, err)

		assert.Equal(t, 100, result.TotalAmount)
		assert.Equal(t, 1, store.Booked(hotelID, roomTypeID, checkInDate(0)))
	})

	t.Run("inverted range is rejected before touching storage", func(t *testing.T) {
		store := memstore.New()
		engine := newEngine(store, clock.NewMockClock(baseTime))
		seedRange(store, checkInDate(0), 2, 5, 100)

		_, err := engine.CreateHold(context.Background(), createParams(checkInDate(2), checkInDate(0), 1))
		assert.True(t, errs.Is(err, commands.ErrInvalidStayRange))
		assert.Equal(t, 0, store.Booked(hotelID, roomTypeID, checkInDate(0)))
	})

	t.Run("missing day in the middle of the range is sold out", func(t *testing.T) {
		store := memstore.New()
		engine := newEngine(store, clock.NewMockClock(baseTime))
		store.SeedDay(hotelID, roomTypeID, checkInDate(0), 5, 0, 100, inventory.DayStatusOpen)
		store.SeedDay(hotelID, roomTypeID, checkInDate(2), 5, 0, 100, inventory.DayStatusOpen)

		_, err := engine.CreateHold(context.Background(), createParams(checkInDate(0), checkInDate(3), 1))
		assert.True(t, errs.Is(err, commands.ErrSoldOut))
		assert.Equal(t, 0, store.Booked(hotelID, roomTypeID, checkInDate(0)), "no partial hold")
		assert.Equal(t, 0, store.HoldCount())
	})

	t.Run("one full day rejects the whole range", func(t *testing.T) {
		store := memstore.New()
		engine := newEngine(store, clock.NewMockClock(baseTime))
		store.SeedDay(hotelID, roomTypeID, checkInDate(0), 5, 0, 100, inventory.DayStatusOpen)
		store.SeedDay(hotelID, roomTypeID, checkInDate(1), 5, 5, 100, inventory.DayStatusOpen)

		_, err := engine.CreateHold(context.Background(), createParams(checkInDate(0), checkInDate(2), 1))
		assert.True(t, errs.Is(err, commands.ErrSoldOut))
		assert.Equal(t, 0, store.Booked(hotelID, roomTypeID, checkInDate(0)), "first day rolled back")
	})

	t.Run("closed day is not sellable even with capacity", func(t *testing.T) {
		store := memstore.New()
		engine := newEngine(store, clock.NewMockClock(baseTime))
		store.SeedDay(hotelID, roomTypeID, checkInDate(0), 5, 0, 100, inventory.DayStatusClosed)

		_, err := engine.CreateHold(context.Background(), createParams(checkInDate(0), checkInDate(1), 1))
		assert.True(t, errs.Is(err, commands.ErrSoldOut))
	})

	t.Run("code collision re-runs the unit and books only once", func(t *testing.T) {
		store := memstore.New()
		clk := clock.NewMockClock(baseTime)
		engine := newEngine(store, clk)
		seedRange(store, checkInDate(0), 2, 5, 100)

		// Each collision aborts the whole transaction, so the booked
		// increments from failed attempts must not accumulate.
		store.FailNextInsertDup(2)

		result, err := engine.CreateHold(context.Background(), createParams(checkInDate(0), checkInDate(2), 1))
		require.NoError(t, err)

		assert.True(t, hold.IsCode(result.HoldCode))
		assert.Equal(t, 1, store.Booked(hotelID, roomTypeID, checkInDate(0)))
		assert.Equal(t, 1, store.Booked(hotelID, roomTypeID, checkInDate(1)))
		assert.Equal(t, 1, store.HoldCount())
	})

	t.Run("persistent collisions give up without booking", func(t *testing.T) {
		store := memstore.New()
		engine := newEngine(store, clock.NewMockClock(baseTime))
		seedRange(store, checkInDate(0), 1, 5, 100)

		store.FailNextInsertDup(5)

		_, err := engine.CreateHold(context.Background(), createParams(checkInDate(0), checkInDate(1), 1))
		assert.True(t, errs.Is(err, commands.ErrHoldCodeExhausted))
		assert.Equal(t, 0, store.Booked(hotelID, roomTypeID, checkInDate(0)))
		assert.Equal(t, 0, store.HoldCount())
	})

	t.Run("coupon discount reduces the total", func(t *testing.T) {
		store := memstore.New()
		seedRange(store, checkInDate(0), 2, 5, 100)
		resolver := fixedDiscount{amount: 50}
		engine := commands.NewHoldCommands(store, resolver, clock.NewMockClock(baseTime), config.NewTestConfig())

		coupon := "WELCOME50"
		params := createParams(checkInDate(0), checkInDate(2), 1)
		params.CouponCode = &coupon

		result, err := engine.CreateHold(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, 150, result.TotalAmount)
	})
}

type fixedDiscount struct {
	amount int
}

func (f fixedDiscount) Resolve(_ context.Context, couponCode *string, _ int) (int, error) {
	if couponCode == nil {
		return 0, nil
	}
	return f.amount, nil
}

func TestCreateHoldConcurrency(t *testing.T) {
	store := memstore.New()
	engine := newEngine(store, clock.NewMockClock(baseTime))
	seedRange(store, checkInDate(0), 2, 5, 100)

	const attempts = 20
	var wg sync.WaitGroup
	errCh := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.CreateHold(context.Background(), createParams(checkInDate(0), checkInDate(2), 1))
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	succeeded := 0
	for err := range errCh {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, errs.Is(err, commands.ErrSoldOut))
		}
	}

	assert.Equal(t, 5, succeeded, "exactly allotment holds may succeed")
	assert.Equal(t, 5, store.Booked(hotelID, roomTypeID, checkInDate(0)))
	assert.Equal(t, 5, store.Booked(hotelID, roomTypeID, checkInDate(1)))
	assert.Equal(t, 5, store.HoldCount())
}

func TestCancelHold(t *testing.T) {
	t.Run("returns capacity and deletes the hold", func(t *testing.T) {
		store := memstore.New()
		engine := newEngine(store, clock.NewMockClock(baseTime))
		seedRange(store, checkInDate(0), 2, 5, 100)

		result, err := engine.CreateHold(context.Background(), createParams(checkInDate(0), checkInDate(2), 2))
		require.NoError(t, err)
		require.Equal(t, 2, store.Booked(hotelID, roomTypeID, checkInDate(0)))

		require.NoError(t, engine.CancelHold(context.Background(), result.HoldCode))

		assert.Equal(t, 0, store.Booked(hotelID, roomTypeID, checkInDate(0)))
		assert.Equal(t, 0, store.Booked(hotelID, roomTypeID, checkInDate(1)))
		assert.Equal(t, 0, store.HoldCount())
	})

	t.Run("cancelling twice is success", func(t *testing.T) {
		store := memstore.New()
		engine := newEngine(store, clock.NewMockClock(baseTime))
		seedRange(store, checkInDate(0), 1, 5, 100)

		result, err := engine.CreateHold(context.Background(), createParams(checkInDate(0), checkInDate(1), 1))
		require.NoError(t, err)

		require.NoError(t, engine.CancelHold(context.Background(), result.HoldCode))
		require.NoError(t, engine.CancelHold(context.Background(), result.HoldCode))
		assert.Equal(t, 0, store.Booked(hotelID, roomTypeID, checkInDate(0)))
	})

	t.Run("cancelling an unknown code is success", func(t *testing.T) {
		store := memstore.New()
		engine := newEngine(store, clock.NewMockClock(baseTime))

		assert.NoError(t, engine.CancelHold(context.Background(), "HLD-DEADBEEF"))
	})
}

func TestReleaseExpired(t *testing.T) {
	t.Run("releases only holds past expiry", func(t *testing.T) {
		store := memstore.New()
		clk := clock.NewMockClock(baseTime)
		engine := newEngine(store, clk)
		seedRange(store, checkInDate(0), 2, 5, 100)

		expired, err := engine.CreateHold(context.Background(), createParams(checkInDate(0), checkInDate(2), 1))
		require.NoError(t, err)

		clk.Add(10 * time.Minute)
		live, err := engine.CreateHold(context.Background(), createParams(checkInDate(0), checkInDate(2), 1))
		require.NoError(t, err)
		require.Equal(t, 2, store.Booked(hotelID, roomTypeID, checkInDate(0)))

		// First hold expires at base+15m, second at base+25m.
		clk.Add(10 * time.Minute)

		released, err := engine.ReleaseExpired(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, released)
		assert.Equal(t, 1, store.Booked(hotelID, roomTypeID, checkInDate(0)))
		_, liveExists := store.HoldByCode(live.HoldCode)
		assert.True(t, liveExists)
		_, expiredExists := store.HoldByCode(expired.HoldCode)
		assert.False(t, expiredExists)
	})

	t.Run("empty sweep releases nothing", func(t *testing.T) {
		store := memstore.New()
		engine := newEngine(store, clock.NewMockClock(baseTime))

		released, err := engine.ReleaseExpired(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, released)
	})

	t.Run("sweep racing a cancel skips the vanished hold", func(t *testing.T) {
		store := memstore.New()
		clk := clock.NewMockClock(baseTime)
		engine := newEngine(store, clk)
		seedRange(store, checkInDate(0), 1, 5, 100)

		result, err := engine.CreateHold(context.Background(), createParams(checkInDate(0), checkInDate(1), 1))
		require.NoError(t, err)

		clk.Add(20 * time.Minute)
		require.NoError(t, engine.CancelHold(context.Background(), result.HoldCode))

		released, err := engine.ReleaseExpired(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, released, "already cancelled hold must not be double-released")
		assert.Equal(t, 0, store.Booked(hotelID, roomTypeID, checkInDate(0)))
	})
}
