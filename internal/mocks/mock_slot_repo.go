package mocks

import (
	"context"

	"github.com/metinatakli/theater-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSlotRepo struct {
	mock.Mock
	domain.SlotRepository
}

func (m *MockSlotRepo) Create(ctx context.Context, slot *domain.Slot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *MockSlotRepo) GetById(ctx context.Context, id int) (*domain.Slot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Slot), args.Error(1)
}

func (m *MockSlotRepo) GetByIdAndScreen(ctx context.Context, id, screenId int) (*domain.Slot, error) {
	args := m.Called(ctx, id, screenId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Slot), args.Error(1)
}

func (m *MockSlotRepo) GetAllByScreen(ctx context.Context, screenId int) ([]domain.Slot, error) {
	args := m.Called(ctx, screenId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Slot), args.Error(1)
}

func (m *MockSlotRepo) GetAllByScreenIds(ctx context.Context, screenIds []int) ([]domain.Slot, error) {
	args := m.Called(ctx, screenIds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Slot), args.Error(1)
}

func (m *MockSlotRepo) GetAllByMovie(ctx context.Context, movieId int) ([]domain.Slot, error) {
	args := m.Called(ctx, movieId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Slot), args.Error(1)
}

func (m *MockSlotRepo) Update(ctx context.Context, slot *domain.Slot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *MockSlotRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
