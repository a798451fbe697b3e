//go:build unit

// Package memstore provides an in-memory UnitOfWork for exercising the hold
// engine without postgres. Transactions are serialized by a store-wide mutex,
// which stands in for the row-range locks the real repository takes; writes
// are staged per transaction and applied only on commit.
package memstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"hotelres/internal/domain/hold"
	"hotelres/internal/domain/inventory"
	"hotelres/internal/infra"
	"hotelres/internal/infra/db"
	"hotelres/internal/usecase/shared"
)

type dayKey struct {
	hotelID    int64
	roomTypeID int64
	stayDate   string // YYYY-MM-DD
}

type dayRecord struct {
	id         int64
	hotelID    int64
	roomTypeID int64
	stayDate   time.Time
	allotment  int
	booked     int
	price      int
	status     inventory.DayStatus
}

type Store struct {
	mu             sync.Mutex
	days           map[dayKey]*dayRecord
	daysByID       map[int64]*dayRecord
	holds          map[string]*hold.Hold
	nextDayID      int64
	nextHoldID     int64
	failDupInserts int
}

func New() *Store {
	return &Store{
		days:     make(map[dayKey]*dayRecord),
		daysByID: make(map[int64]*dayRecord),
		holds:    make(map[string]*hold.Hold),
	}
}

func keyFor(hotelID, roomTypeID int64, date time.Time) dayKey {
	return dayKey{hotelID: hotelID, roomTypeID: roomTypeID, stayDate: date.Format(time.DateOnly)}
}

// SeedDay adds an inventory row. Dates are truncated to UTC midnight.
func (s *Store) SeedDay(hotelID, roomTypeID int64, date time.Time, allotment, booked, price int, status inventory.DayStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextDayID++
	d := date.UTC().Truncate(24 * time.Hour)
	rec := &dayRecord{
		id:         s.nextDayID,
		hotelID:    hotelID,
		roomTypeID: roomTypeID,
		stayDate:   d,
		allotment:  allotment,
		booked:     booked,
		price:      price,
		status:     status,
	}
	s.days[keyFor(hotelID, roomTypeID, d)] = rec
	s.daysByID[rec.id] = rec
}

// Booked reports the committed booked count for a day, or -1 if absent.
func (s *Store) Booked(hotelID, roomTypeID int64, date time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.days[keyFor(hotelID, roomTypeID, date.UTC().Truncate(24*time.Hour))]
	if !ok {
		return -1
	}
	return rec.booked
}

func (s *Store) HoldCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.holds)
}

func (s *Store) HoldByCode(code string) (*hold.Hold, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.holds[code]
	return h, ok
}

// FailNextInsertDup makes the next n hold inserts fail with a duplicate-key
// error, simulating hold-code collisions against the unique constraint.
func (s *Store) FailNextInsertDup(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failDupInserts = n
}

// PutHold installs a hold directly, bypassing the engine. For sweep tests.
func (s *Store) PutHold(h *hold.Hold) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextHoldID++
	s.holds[h.Code()] = reassignID(h, s.nextHoldID)
}

func reassignID(h *hold.Hold, id int64) *hold.Hold {
	return hold.ReconstructHold(
		id, h.Code(), h.UserID(), h.HotelID(), h.RoomTypeID(), h.RatePlanID(),
		h.Stay(), h.Quantity(), h.CouponCode(),
		h.RoomSubtotal(), h.Discount(), h.Currency(), h.ExpiresAt(), h.CreatedAt(),
	)
}

// --- shared.UnitOfWork ---

func (s *Store) Within(_ context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{
		store:        s,
		stagedBooked: make(map[int64]int),
		staged:       make(map[string]*hold.Hold),
		deleted:      make(map[int64]bool),
	}

	if err := fn(context.Background(), tx); err != nil {
		return err
	}

	tx.commit()
	return nil
}

func (s *Store) WithDB(_ context.Context, _ func(ctx context.Context, dbtx db.DBTX) error) error {
	panic("memstore: WithDB not supported")
}

func (s *Store) HoldReads() shared.HoldReads {
	return &memHoldReads{store: s}
}

type memHoldReads struct {
	store *Store
}

func (r *memHoldReads) FindExpired(_ context.Context, cutoff time.Time) ([]*hold.Hold, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var expired []*hold.Hold
	for _, h := range r.store.holds {
		if h.ExpiresAt().Before(cutoff) {
			expired = append(expired, h)
		}
	}
	return expired, nil
}

// --- shared.Tx ---

type memTx struct {
	store        *Store
	stagedBooked map[int64]int         // day id -> new booked
	staged       map[string]*hold.Hold // inserted this tx, by code
	deleted      map[int64]bool        // hold ids deleted this tx
}

func (t *memTx) Inventory() shared.InventoryRepository { return &memInventoryRepo{tx: t} }
func (t *memTx) Holds() shared.HoldRepository          { return &memHoldRepo{tx: t} }
func (t *memTx) DB() db.DBTX                           { return nil }

func (t *memTx) commit() {
	for id, booked := range t.stagedBooked {
		if rec, ok := t.store.daysByID[id]; ok {
			rec.booked = booked
		}
	}
	for code, h := range t.staged {
		t.store.holds[code] = h
	}
	if len(t.deleted) > 0 {
		for code, h := range t.store.holds {
			if t.deleted[h.ID()] {
				delete(t.store.holds, code)
			}
		}
	}
}

type memInventoryRepo struct {
	tx *memTx
}

func (r *memInventoryRepo) LockRange(_ context.Context, hotelID, roomTypeID int64, checkIn, checkOut time.Time) ([]*inventory.Day, error) {
	var days []*inventory.Day
	for d := checkIn.UTC().Truncate(24 * time.Hour); d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		rec, ok := r.tx.store.days[keyFor(hotelID, roomTypeID, d)]
		if !ok {
			continue
		}
		booked := rec.booked
		if staged, ok := r.tx.stagedBooked[rec.id]; ok {
			booked = staged
		}
		days = append(days, inventory.ReconstructDay(
			rec.id, rec.hotelID, rec.roomTypeID, rec.stayDate,
			rec.allotment, booked, rec.price, rec.status,
		))
	}
	return days, nil
}

func (r *memInventoryRepo) SaveBooked(_ context.Context, days []*inventory.Day) error {
	for _, day := range days {
		r.tx.stagedBooked[day.ID()] = day.Booked()
	}
	return nil
}

type memHoldRepo struct {
	tx *memTx
}

func (r *memHoldRepo) Insert(_ context.Context, h *hold.Hold) (int64, error) {
	if r.tx.store.failDupInserts > 0 {
		r.tx.store.failDupInserts--
		return 0, infra.WrapRepoErr("duplicate hold code", errors.New("unique violation"), infra.KindDuplicateKey)
	}
	if _, exists := r.tx.store.holds[h.Code()]; exists {
		return 0, infra.WrapRepoErr("duplicate hold code", errors.New("unique violation"), infra.KindDuplicateKey)
	}
	if _, exists := r.tx.staged[h.Code()]; exists {
		return 0, infra.WrapRepoErr("duplicate hold code", errors.New("unique violation"), infra.KindDuplicateKey)
	}

	r.tx.store.nextHoldID++
	id := r.tx.store.nextHoldID
	r.tx.staged[h.Code()] = reassignID(h, id)
	return id, nil
}

func (r *memHoldRepo) DeleteByID(_ context.Context, id int64) error {
	r.tx.deleted[id] = true
	return nil
}

func (r *memHoldRepo) FindByCode(_ context.Context, code string) (*hold.Hold, error) {
	if h, ok := r.tx.staged[code]; ok {
		return h, nil
	}
	if h, ok := r.tx.store.holds[code]; ok && !r.tx.deleted[h.ID()] {
		return h, nil
	}
	return nil, infra.WrapRepoErr("hold not found", errors.New("no rows"), infra.KindNotFound)
}

func (r *memHoldRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	_, err := r.FindByCode(context.Background(), code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
