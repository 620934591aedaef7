package mocks

import (
	"context"

	"github.com/metinatakli/theater-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSeatRepo struct {
	mock.Mock
	domain.SeatRepository
}

func (m *MockSeatRepo) CreateBatch(ctx context.Context, screenId int, seatNumbers []int) ([]domain.Seat, error) {
	args := m.Called(ctx, screenId, seatNumbers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seat), args.Error(1)
}

func (m *MockSeatRepo) GetByIdAndScreen(ctx context.Context, id, screenId int) (*domain.Seat, error) {
	args := m.Called(ctx, id, screenId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seat), args.Error(1)
}

func (m *MockSeatRepo) GetByIdsAndScreen(ctx context.Context, ids []int, screenId int) ([]domain.Seat, error) {
	args := m.Called(ctx, ids, screenId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seat), args.Error(1)
}

func (m *MockSeatRepo) GetAllByScreen(ctx context.Context, screenId int) ([]domain.Seat, error) {
	args := m.Called(ctx, screenId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seat), args.Error(1)
}

func (m *MockSeatRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
