package mocks

import (
	"context"

	"github.com/metinatakli/theater-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockScreenRepo struct {
	mock.Mock
	domain.ScreenRepository
}

func (m *MockScreenRepo) Create(ctx context.Context, screen *domain.Screen) error {
	args := m.Called(ctx, screen)
	return args.Error(0)
}

func (m *MockScreenRepo) GetById(ctx context.Context, id int) (*domain.Screen, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Screen), args.Error(1)
}

func (m *MockScreenRepo) GetByIdAndTheater(ctx context.Context, id, theaterId int) (*domain.Screen, error) {
	args := m.Called(ctx, id, theaterId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Screen), args.Error(1)
}

func (m *MockScreenRepo) GetAllByTheater(ctx context.Context, theaterId int) ([]domain.Screen, error) {
	args := m.Called(ctx, theaterId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Screen), args.Error(1)
}

func (m *MockScreenRepo) GetByIds(ctx context.Context, ids []int) ([]domain.Screen, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Screen), args.Error(1)
}

func (m *MockScreenRepo) Update(ctx context.Context, screen *domain.Screen) error {
	args := m.Called(ctx, screen)
	return args.Error(0)
}

func (m *MockScreenRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
