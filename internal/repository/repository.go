package repository

import (
	"context"

	"mygriya/internal/domain"
)

// RoomRepository defines catalog read operations. The catalog is
// read-only: rooms are created at start and never written back.
type RoomRepository interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
}
