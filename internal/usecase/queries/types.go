package queries

type FeaturedHotelView struct {
	HotelID   int64
	Name      string
	Region    string
	RoomTypes []RoomTypeView
}

// Price and TodayRemaining are nil when no inventory row exists for today.
type RoomTypeView struct {
	ID             int64
	Name           string
	Price          *int
	TodayRemaining *int
}
