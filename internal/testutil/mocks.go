package testutil

import (
	"context"

	"mygriya/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockRoomRepository is a mock for RoomRepository
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
