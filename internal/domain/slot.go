package domain

import (
	"context"
	"time"
)

// Slot is one scheduled screening of a movie on a screen. Two slots on the
// same screen may overlap in time; the schedule is not validated here.
type Slot struct {
	ID        int
	ScreenID  int
	MovieID   int
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Started reports whether the screening has begun. Booking and cancellation
// are both refused from the slot's start time onwards.
func (s *Slot) Started(now time.Time) bool {
	return !s.StartTime.After(now)
}

type SlotAvailability struct {
	Available []Seat
	Reserved  []Seat
}

type SlotRepository interface {
	Create(ctx context.Context, slot *Slot) error
	GetById(ctx context.Context, id int) (*Slot, error)
	GetByIdAndScreen(ctx context.Context, id, screenId int) (*Slot, error)
	GetAllByScreen(ctx context.Context, screenId int) ([]Slot, error)
	GetAllByScreenIds(ctx context.Context, screenIds []int) ([]Slot, error)
	GetAllByMovie(ctx context.Context, movieId int) ([]Slot, error)
	Update(ctx context.Context, slot *Slot) error
	Delete(ctx context.Context, id int) error
}
