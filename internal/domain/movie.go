package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID          int
	Title       string
	Description string
	ReleaseDate time.Time
	Duration    int
	Rating      float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	GetAll(ctx context.Context, pagination Pagination) ([]Movie, *Metadata, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	GetByIds(ctx context.Context, ids []int) ([]Movie, error)
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}
