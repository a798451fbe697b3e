package queries

import (
	"context"

	"hotelres/internal/infra"
	"hotelres/internal/pkg/errs"
)

var (
	ErrHotelNotFound    = errs.New("hotel not found")
	ErrHotelUnavailable = errs.New("hotel lookup unavailable")
)

type HotelReadStore interface {
	FindFeaturedByID(ctx context.Context, hotelID int64) (*FeaturedHotelView, error)
}

type HotelQueries interface {
	GetFeatured(ctx context.Context, hotelID int64) (*FeaturedHotelView, error)
}

type hotelQueriesImpl struct {
	readStore HotelReadStore
}

func NewHotelQueries(readStore HotelReadStore) HotelQueries {
	return &hotelQueriesImpl{readStore: readStore}
}

func (q *hotelQueriesImpl) GetFeatured(ctx context.Context, hotelID int64) (*FeaturedHotelView, error) {
	view, err := q.readStore.FindFeaturedByID(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, errs.Mark(err, ErrHotelUnavailable)
	}
	return view, nil
}
