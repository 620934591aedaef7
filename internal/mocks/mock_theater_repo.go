package mocks

import (
	"context"

	"github.com/metinatakli/theater-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTheaterRepo struct {
	mock.Mock
	domain.TheaterRepository
}

func (m *MockTheaterRepo) Create(ctx context.Context, theater *domain.Theater) error {
	args := m.Called(ctx, theater)
	return args.Error(0)
}

func (m *MockTheaterRepo) GetAll(ctx context.Context) ([]domain.Theater, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Theater), args.Error(1)
}

func (m *MockTheaterRepo) GetById(ctx context.Context, id int) (*domain.Theater, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Theater), args.Error(1)
}

func (m *MockTheaterRepo) GetByIds(ctx context.Context, ids []int) ([]domain.Theater, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Theater), args.Error(1)
}

func (m *MockTheaterRepo) Update(ctx context.Context, theater *domain.Theater) error {
	args := m.Called(ctx, theater)
	return args.Error(0)
}

func (m *MockTheaterRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
