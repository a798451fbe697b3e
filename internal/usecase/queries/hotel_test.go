//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotelres/internal/infra"
	"hotelres/internal/pkg/errs"
	"hotelres/internal/usecase/queries"
	queriesmock "hotelres/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetFeatured(t *testing.T) {
	t.Run("passes the view through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockHotelReadStore(ctrl)
		view := &queries.FeaturedHotelView{HotelID: 7, Name: "Grand Seoul", Region: "Seoul"}
		readStore.EXPECT().FindFeaturedByID(gomock.Any(), int64(7)).Return(view, nil)

		got, err := queries.NewHotelQueries(readStore).GetFeatured(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("missing hotel maps to not-found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockHotelReadStore(ctrl)
		readStore.EXPECT().FindFeaturedByID(gomock.Any(), int64(7)).
			Return(nil, infra.WrapRepoErr("hotel not found", errs.New("no rows"), infra.KindNotFound))

		_, err := queries.NewHotelQueries(readStore).GetFeatured(context.Background(), 7)
		assert.True(t, errs.Is(err, queries.ErrHotelNotFound))
	})

	t.Run("store failure is unavailable, not not-found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockHotelReadStore(ctrl)
		readStore.EXPECT().FindFeaturedByID(gomock.Any(), int64(7)).
			Return(nil, infra.WrapRepoErr("query failed", errs.New("connection refused")))

		_, err := queries.NewHotelQueries(readStore).GetFeatured(context.Background(), 7)
		assert.True(t, errs.Is(err, queries.ErrHotelUnavailable))
		assert.False(t, errs.Is(err, queries.ErrHotelNotFound))
	})
}
