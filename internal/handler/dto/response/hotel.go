package response

import (
	"hotelres/internal/usecase/queries"
)

type FeaturedHotelResponse struct {
	HotelID   int64              `json:"hotelId"`
	Name      string             `json:"name"`
	Region    string             `json:"region"`
	RoomTypes []RoomTypeResponse `json:"roomTypes"`
}

type RoomTypeResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Price          *int   `json:"price,omitempty"`
	TodayRemaining *int   `json:"todayRemaining,omitempty"`
}

func FromFeaturedHotelView(view *queries.FeaturedHotelView) *FeaturedHotelResponse {
	roomTypes := make([]RoomTypeResponse, len(view.RoomTypes))
	for i, rt := range view.RoomTypes {
		roomTypes[i] = RoomTypeResponse{
			ID:             rt.ID,
			Name:           rt.Name,
			Price:          rt.Price,
			TodayRemaining: rt.TodayRemaining,
		}
	}
	return &FeaturedHotelResponse{
		HotelID:   view.HotelID,
		Name:      view.Name,
		Region:    view.Region,
		RoomTypes: roomTypes,
	}
}
