//go:build e2e

package hold_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"hotelres/internal/handler/dto/response"
	"hotelres/tests/common/dbtest"
	"hotelres/tests/common/httptest"
	"hotelres/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HoldE2ESuite struct {
	e2e.SharedSuite
}

func TestHoldE2E(t *testing.T) {
	suite.Run(t, new(HoldE2ESuite))
}

func (s *HoldE2ESuite) login(loginID string) string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login", map[string]any{
		"login_id": loginID,
		"password": dbtest.TestPassword,
	}, "")
	require.Equal(s.T(), http.StatusOK, rec.Code, "ログインに失敗: %s", rec.Body.String())

	var body response.LoginResponse
	httptest.DecodeResponseBody(s.T(), rec.Body, &body)
	require.NotEmpty(s.T(), body.AccessToken)
	return body.AccessToken
}

type stayFixture struct {
	hotelID    int64
	roomTypeID int64
	checkIn    time.Time
	checkOut   time.Time
}

// seeds a hotel, a room type, and booking days covering [checkIn, checkOut)
func (s *HoldE2ESuite) seedStay(allotment, price int) stayFixture {
	hotelID := dbtest.CreateTestHotel(s.T(), s.DB, "Grand Seoul", "Seoul")
	roomTypeID := dbtest.CreateTestRoomType(s.T(), s.DB, hotelID, "Deluxe Twin")

	checkIn := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		dbtest.CreateBookingDay(s.T(), s.DB, hotelID, roomTypeID, d, allotment, price)
	}

	return stayFixture{hotelID: hotelID, roomTypeID: roomTypeID, checkIn: checkIn, checkOut: checkOut}
}

func (s *HoldE2ESuite) createHoldBody(fx stayFixture, quantity int) map[string]any {
	return map[string]any{
		"hotel_id":     fx.hotelID,
		"room_type_id": fx.roomTypeID,
		"rate_plan_id": 1,
		"check_in":     fx.checkIn.Format(time.DateOnly),
		"check_out":    fx.checkOut.Format(time.DateOnly),
		"quantity":     quantity,
	}
}

func (s *HoldE2ESuite) bookedOn(fx stayFixture, day time.Time) int {
	var booked int
	err := s.DB.QueryRow(context.Background(), `
		SELECT booked FROM booking_day
		WHERE hotel_id = $1 AND room_type_id = $2 AND stay_date = $3`,
		fx.hotelID, fx.roomTypeID, day).Scan(&booked)
	require.NoError(s.T(), err)
	return booked
}

func (s *HoldE2ESuite) holdCount() int {
	var count int
	err := s.DB.QueryRow(context.Background(), "SELECT count(*) FROM booking_holds").Scan(&count)
	require.NoError(s.T(), err)
	return count
}

func (s *HoldE2ESuite) TestCreateHold() {
	s.Run("正常系: ホールド作成で全泊分の在庫が引き当てられる", func() {
		token := s.login("testuser")
		fx := s.seedStay(5, 120000)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations/hold",
			s.createHoldBody(fx, 2), token)
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())

		var body response.HoldResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Regexp(`^HLD-[0-9A-F]{8}$`, body.HoldCode)
		s.Equal(2*2*120000, body.TotalAmount) // 2 rooms x 2 nights
		s.Equal("KRW", body.Currency)
		s.True(body.ExpiresAt.After(time.Now()))

		s.Equal(2, s.bookedOn(fx, fx.checkIn))
		s.Equal(2, s.bookedOn(fx, fx.checkIn.AddDate(0, 0, 1)))
		s.Equal(1, s.holdCount())
	})

	s.Run("異常系: 在庫不足は409で一切引き当てない", func() {
		token := s.login("testuser")
		fx := s.seedStay(1, 120000)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations/hold",
			s.createHoldBody(fx, 3), token)
		require.Equal(s.T(), http.StatusConflict, rec.Code, rec.Body.String())

		s.Equal(0, s.bookedOn(fx, fx.checkIn))
		s.Equal(0, s.holdCount())
	})

	s.Run("異常系: 在庫が無い日があると全体が失敗する", func() {
		token := s.login("testuser")
		fx := s.seedStay(5, 120000)

		// 2泊目を先に売り切る
		_, err := s.DB.Exec(context.Background(), `
			UPDATE booking_day SET booked = allotment
			WHERE hotel_id = $1 AND room_type_id = $2 AND stay_date = $3`,
			fx.hotelID, fx.roomTypeID, fx.checkIn.AddDate(0, 0, 1))
		require.NoError(s.T(), err)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations/hold",
			s.createHoldBody(fx, 1), token)
		require.Equal(s.T(), http.StatusConflict, rec.Code, rec.Body.String())

		// 1泊目も引き当てられていないこと
		s.Equal(0, s.bookedOn(fx, fx.checkIn))
		s.Equal(0, s.holdCount())
	})

	s.Run("異常系: 未認証は401", func() {
		fx := s.seedStay(5, 120000)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations/hold",
			s.createHoldBody(fx, 1), "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *HoldE2ESuite) TestCancelHold() {
	s.Run("正常系: キャンセルで在庫が戻りホールドが消える", func() {
		token := s.login("testuser")
		fx := s.seedStay(3, 90000)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations/hold",
			s.createHoldBody(fx, 2), token)
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())

		var created response.HoldResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &created)
		s.Equal(2, s.bookedOn(fx, fx.checkIn))

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			fmt.Sprintf("/api/reservations/hold/%s", created.HoldCode), nil, token)
		s.Equal(http.StatusNoContent, rec.Code)

		s.Equal(0, s.bookedOn(fx, fx.checkIn))
		s.Equal(0, s.bookedOn(fx, fx.checkIn.AddDate(0, 0, 1)))
		s.Equal(0, s.holdCount())

		// 二重キャンセルも204
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			fmt.Sprintf("/api/reservations/hold/%s", created.HoldCode), nil, token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("異常系: 不正なホールドコードは400", func() {
		token := s.login("testuser")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/reservations/hold/not-a-code", nil, token)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HoldE2ESuite) TestReleaseExpired() {
	s.Run("正常系: 期限切れホールドのみ解放される", func() {
		userToken := s.login("testuser")
		adminToken := s.login("testadmin")
		fx := s.seedStay(5, 100000)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations/hold",
			s.createHoldBody(fx, 1), userToken)
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())
		var expired response.HoldResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &expired)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations/hold",
			s.createHoldBody(fx, 1), userToken)
		require.Equal(s.T(), http.StatusCreated, rec.Code, rec.Body.String())

		// 1件目だけ期限切れにする
		_, err := s.DB.Exec(context.Background(),
			"UPDATE booking_holds SET expires_at = now() - interval '1 minute' WHERE hold_code = $1",
			expired.HoldCode)
		require.NoError(s.T(), err)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/reservations/holds/release-expired", nil, adminToken)
		require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())

		var sweep response.SweepResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &sweep)
		s.Equal(1, sweep.Released)

		s.Equal(1, s.bookedOn(fx, fx.checkIn))
		s.Equal(1, s.holdCount())
	})

	s.Run("異常系: 一般ユーザーは403", func() {
		userToken := s.login("testuser")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/reservations/holds/release-expired", nil, userToken)
		s.Equal(http.StatusForbidden, rec.Code)
	})
}
