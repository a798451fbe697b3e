package readstore

import (
	"context"

	"hotelres/internal/domain/inventory"
	"hotelres/internal/infra"
	"hotelres/internal/infra/db"
	"hotelres/internal/pkg/pgconv"
	"hotelres/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type HotelReadStore struct {
	db db.DBTX
}

func NewHotelReadStore(dbtx db.DBTX) *HotelReadStore {
	return &HotelReadStore{db: dbtx}
}

const findHotelQuery = `
SELECT id, name, region FROM hotels WHERE id = $1`

// Today's price and remaining come from the booking_day row for the current
// date; remaining is recomputed from allotment/booked, never read from a
// stored derived column.
const roomTypesTodayQuery = `
SELECT rt.id, rt.name, bd.stay_date, bd.price, bd.allotment, bd.booked, bd.status
  FROM room_types rt
  LEFT JOIN booking_day bd
    ON bd.room_type_id = rt.id
   AND bd.hotel_id = rt.hotel_id
   AND bd.stay_date = CURRENT_DATE
 WHERE rt.hotel_id = $1
 ORDER BY rt.id`

func (r *HotelReadStore) FindFeaturedByID(ctx context.Context, hotelID int64) (*queries.FeaturedHotelView, error) {
	var view queries.FeaturedHotelView
	err := r.db.QueryRow(ctx, findHotelQuery, hotelID).Scan(&view.HotelID, &view.Name, &view.Region)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}

	rows, err := r.db.Query(ctx, roomTypesTodayQuery, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        int64
			name      string
			stayDate  pgtype.Date
			price     pgtype.Int4
			allotment pgtype.Int4
			booked    pgtype.Int4
			status    pgtype.Text
		)
		if err := rows.Scan(&id, &name, &stayDate, &price, &allotment, &booked, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type row", err)
		}

		item := queries.RoomTypeView{ID: id, Name: name}
		if stayDate.Valid && price.Valid && allotment.Valid && booked.Valid && status.Valid {
			day := inventory.ReconstructDay(0, hotelID, id, pgconv.DateFromPgtype(stayDate),
				int(allotment.Int32), int(booked.Int32), int(price.Int32), inventory.DayStatus(status.String))
			p := day.Price()
			remaining := day.Remaining()
			item.Price = &p
			item.TodayRemaining = &remaining
		}
		view.RoomTypes = append(view.RoomTypes, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room types", err)
	}

	return &view, nil
}
