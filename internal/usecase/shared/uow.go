package shared

import (
	"context"
	"time"

	"hotelres/internal/domain/hold"
	"hotelres/internal/domain/inventory"
	"hotelres/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// HoldReads: Pool-bound hold reads for operations outside a transaction
	HoldReads() HoldReads
}

type Tx interface {
	Inventory() InventoryRepository
	Holds() HoldRepository
	DB() db.DBTX
}

// InventoryRepository is the capacity ledger. LockRange acquires exclusive
// row locks ordered by ascending stay date within one (hotel, room type)
// pair; different pairs are never ordered against each other, which bounds
// deadlock risk to contention within a single room type. Both methods must
// run inside the unit of work that will commit or roll back the lock.
type InventoryRepository interface {
	LockRange(ctx context.Context, hotelID, roomTypeID int64, checkIn, checkOut time.Time) ([]*inventory.Day, error)
	SaveBooked(ctx context.Context, days []*inventory.Day) error
}

type HoldRepository interface {
	Insert(ctx context.Context, h *hold.Hold) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
	FindByCode(ctx context.Context, code string) (*hold.Hold, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

type HoldReads interface {
	FindExpired(ctx context.Context, cutoff time.Time) ([]*hold.Hold, error)
}
