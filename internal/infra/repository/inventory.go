package repository

import (
	"context"
	"time"

	"hotelres/internal/domain/inventory"
	"hotelres/internal/infra"
	"hotelres/internal/infra/db"
)

// InventoryRepository persists booking_day rows. The FOR UPDATE range scan is
// the single blocking point of the hold engine: a caller whose rows overlap a
// held lock waits until that transaction commits or rolls back.
type InventoryRepository struct {
	db db.DBTX
}

func NewInventoryRepository(dbtx db.DBTX) *InventoryRepository {
	return &InventoryRepository{db: dbtx}
}

const lockRangeQuery = `
SELECT id, hotel_id, room_type_id, stay_date, allotment, booked, price, status
  FROM booking_day
 WHERE hotel_id = $1
   AND room_type_id = $2
   AND stay_date >= $3
   AND stay_date < $4
 ORDER BY stay_date
   FOR UPDATE`

// LockRange returns the days in [checkIn, checkOut) in ascending stay-date
// order, locked for exclusive write. Missing dates are simply absent; the
// caller detects a short result to recognize a coverage gap.
func (r *InventoryRepository) LockRange(ctx context.Context, hotelID, roomTypeID int64, checkIn, checkOut time.Time) ([]*inventory.Day, error) {
	rows, err := r.db.Query(ctx, lockRangeQuery, hotelID, roomTypeID, checkIn, checkOut)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking day range", err)
	}
	defer rows.Close()

	var days []*inventory.Day
	for rows.Next() {
		var (
			id         int64
			hID, rtID  int64
			stayDate   time.Time
			allotment  int
			booked     int
			price      int
			status     string
		)
		if err := rows.Scan(&id, &hID, &rtID, &stayDate, &allotment, &booked, &price, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking day row", err)
		}
		days = append(days, inventory.ReconstructDay(id, hID, rtID, stayDate, allotment, booked, price, inventory.DayStatus(status)))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking day range", err)
	}

	return days, nil
}

const saveBookedQuery = `
UPDATE booking_day
   SET booked = $1, updated_at = now()
 WHERE id = $2`

// SaveBooked persists updated booked counts. Must run in the same
// transaction that locked the rows.
func (r *InventoryRepository) SaveBooked(ctx context.Context, days []*inventory.Day) error {
	for _, d := range days {
		tag, err := r.db.Exec(ctx, saveBookedQuery, d.Booked(), d.ID())
		if err != nil {
			return infra.WrapRepoErr("failed to update booked count", err)
		}
		if tag.RowsAffected() != 1 {
			return infra.WrapRepoErr("booking day row disappeared during update", nil, infra.KindNotFound)
		}
	}
	return nil
}
