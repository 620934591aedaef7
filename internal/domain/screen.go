package domain

import (
	"context"
	"time"
)

type Screen struct {
	ID        int
	TheaterID int
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ScreenRepository interface {
	Create(ctx context.Context, screen *Screen) error
	GetById(ctx context.Context, id int) (*Screen, error)
	GetByIdAndTheater(ctx context.Context, id, theaterId int) (*Screen, error)
	GetAllByTheater(ctx context.Context, theaterId int) ([]Screen, error)
	GetByIds(ctx context.Context, ids []int) ([]Screen, error)
	Update(ctx context.Context, screen *Screen) error
	Delete(ctx context.Context, id int) error
}
