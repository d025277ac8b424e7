package testutil

import (
	"mygriya/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRoom creates a valid test room
func NewTestRoom(id, name string, price int64, available bool) domain.Room {
	room, err := domain.NewRoom(id, name, price, 12, 1, "Kamar untuk pengujian", []string{"AC", "WiFi", "Lemari"}, available)
	if err != nil {
		panic(err)
	}
	return room
}

// NewTestCatalog returns the three rooms used across service tests
func NewTestCatalog() []domain.Room {
	return []domain.Room{
		NewTestRoom("1", "Kamar A1", 1000000, true),
		NewTestRoom("2", "Kamar B2", 1200000, true),
		NewTestRoom("3", "Kamar C3", 1500000, false),
	}
}
