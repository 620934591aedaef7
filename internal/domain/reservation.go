package domain

import (
	"context"
	"time"
)

// Reservation is one seat held by one user for one slot. The ledger
// guarantees at most one row per (slot, seat) pair; that invariant is
// enforced by the repository's transactional batch insert together with a
// unique index on (slot_id, seat_id).
type Reservation struct {
	ID         int
	UserID     int
	SlotID     int
	SeatID     int
	ReservedAt time.Time
	CreatedAt  time.Time
}

type ReservationRepository interface {
	// CreateBatch inserts one reservation per seat inside a single
	// serialized transaction. All rows share the same reserved_at. If any
	// of the requested seats is already taken for the slot, nothing is
	// inserted and ErrSeatAlreadyReserved is returned.
	CreateBatch(ctx context.Context, userId, slotId int, seatIds []int) ([]Reservation, error)
	GetById(ctx context.Context, id int) (*Reservation, error)
	GetAllByUser(ctx context.Context, userId int, pagination Pagination) ([]Reservation, *Metadata, error)
	GetAllBySlot(ctx context.Context, slotId int) ([]Reservation, error)
	Delete(ctx context.Context, id int) error
}
