package domain

import (
	"context"
	"time"
)

type Seat struct {
	ID         int
	ScreenID   int
	SeatNumber int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SeatRepository interface {
	CreateBatch(ctx context.Context, screenId int, seatNumbers []int) ([]Seat, error)
	GetByIdAndScreen(ctx context.Context, id, screenId int) (*Seat, error)
	GetByIdsAndScreen(ctx context.Context, ids []int, screenId int) ([]Seat, error)
	GetAllByScreen(ctx context.Context, screenId int) ([]Seat, error)
	Delete(ctx context.Context, id int) error
}

// PartitionSeats splits a screen's seat roster into the seats still free for
// a slot and the seats taken by the given reservations. Roster order is
// preserved in both halves, so available ∪ reserved always equals the input
// roster and the two halves never overlap.
func PartitionSeats(roster []Seat, reservations []Reservation) (available, reserved []Seat) {
	available = make([]Seat, 0, len(roster))
	reserved = make([]Seat, 0)

	taken := make(map[int]bool, len(reservations))
	for _, r := range reservations {
		taken[r.SeatID] = true
	}

	for _, seat := range roster {
		if taken[seat.ID] {
			reserved = append(reserved, seat)
		} else {
			available = append(available, seat)
		}
	}

	return available, reserved
}
