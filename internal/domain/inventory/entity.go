package inventory

import (
	"errors"
	"time"
)

var (
	ErrNegativeAllotment = errors.New("allotment cannot be negative")
	ErrNegativeBooked    = errors.New("booked cannot be negative")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrInvalidDayStatus  = errors.New("invalid day status")
	ErrInsufficientUnits = errors.New("insufficient remaining units")
)

// Day is one night of sellable capacity for a (hotel, room type) pair.
// remaining and sellable are derived from the base fields on every read;
// they are never stored.
type Day struct {
	id         int64
	hotelID    int64
	roomTypeID int64
	stayDate   time.Time
	allotment  int
	booked     int
	price      int
	status     DayStatus
}

func NewDay(hotelID, roomTypeID int64, stayDate time.Time, allotment, price int, status DayStatus) (*Day, error) {
	if allotment < 0 {
		return nil, ErrNegativeAllotment
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if !status.IsValid() {
		return nil, ErrInvalidDayStatus
	}

	return &Day{
		hotelID:    hotelID,
		roomTypeID: roomTypeID,
		stayDate:   stayDate,
		allotment:  allotment,
		booked:     0,
		price:      price,
		status:     status,
	}, nil
}

func ReconstructDay(id, hotelID, roomTypeID int64, stayDate time.Time, allotment, booked, price int, status DayStatus) *Day {
	return &Day{
		id:         id,
		hotelID:    hotelID,
		roomTypeID: roomTypeID,
		stayDate:   stayDate,
		allotment:  allotment,
		booked:     booked,
		price:      price,
		status:     status,
	}
}

func (d *Day) ID() int64           { return d.id }
func (d *Day) HotelID() int64      { return d.hotelID }
func (d *Day) RoomTypeID() int64   { return d.roomTypeID }
func (d *Day) StayDate() time.Time { return d.stayDate }
func (d *Day) Allotment() int      { return d.allotment }
func (d *Day) Booked() int         { return d.booked }
func (d *Day) Price() int          { return d.price }
func (d *Day) Status() DayStatus   { return d.status }

// Remaining never goes below zero even if booked has drifted past allotment.
func (d *Day) Remaining() int {
	remaining := d.allotment - d.booked
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (d *Day) IsSellable() bool {
	return d.status == DayStatusOpen && d.Remaining() > 0
}

// Reserve hard-holds qty units. Callers must hold the row lock for the day;
// serialized access is what keeps booked <= allotment.
func (d *Day) Reserve(qty int) error {
	if !d.IsSellable() || d.Remaining() < qty {
		return ErrInsufficientUnits
	}
	d.booked += qty
	return nil
}

// Release returns qty units, clamping at zero. The clamp is defensive: no
// other writer of booked should exist, but a drifted row must not go negative.
func (d *Day) Release(qty int) {
	d.booked -= qty
	if d.booked < 0 {
		d.booked = 0
	}
}
