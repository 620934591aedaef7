package domain

import (
	"context"
	"time"
)

type Theater struct {
	ID        int
	Name      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TheaterRepository interface {
	Create(ctx context.Context, theater *Theater) error
	GetAll(ctx context.Context) ([]Theater, error)
	GetById(ctx context.Context, id int) (*Theater, error)
	GetByIds(ctx context.Context, ids []int) ([]Theater, error)
	Update(ctx context.Context, theater *Theater) error
	Delete(ctx context.Context, id int) error
}
