package mocks

import (
	"context"

	"github.com/metinatakli/theater-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockReservationRepo struct {
	mock.Mock
	domain.ReservationRepository
}

func (m *MockReservationRepo) CreateBatch(ctx context.Context, userId, slotId int, seatIds []int) ([]domain.Reservation, error) {
	args := m.Called(ctx, userId, slotId, seatIds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) GetById(ctx context.Context, id int) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) GetAllByUser(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.Reservation, *domain.Metadata, error) {

	args := m.Called(ctx, userId, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Reservation), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockReservationRepo) GetAllBySlot(ctx context.Context, slotId int) ([]domain.Reservation, error) {
	args := m.Called(ctx, slotId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
