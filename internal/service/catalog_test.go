package service

import (
	"context"
	"fmt"
	"testing"

	"mygriya/internal/domain"
	"mygriya/internal/testutil"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Load(t *testing.T) {
	tests := []struct {
		name          string
		rooms         []domain.Room
		mockError     error
		expectedError bool
	}{
		{
			name:  "loads rooms",
			rooms: testutil.NewTestCatalog(),
		},
		{
			name:          "repository error",
			mockError:     fmt.Errorf("db down"),
			expectedError: true,
		},
		{
			name:          "empty catalog",
			rooms:         []domain.Room{},
			expectedError: true,
		},
		{
			name: "duplicate ids",
			rooms: []domain.Room{
				testutil.NewTestRoom("1", "Kamar A1", 1000000, true),
				testutil.NewTestRoom("1", "Kamar A1 bis", 1000000, true),
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(testutil.MockRoomRepository)
			if tt.mockError != nil {
				repo.On("ListRooms", mock.Anything).Return(nil, tt.mockError)
			} else {
				repo.On("ListRooms", mock.Anything).Return(tt.rooms, nil)
			}

			catalog := NewCatalogService(repo, testutil.NewTestLogger())
			err := catalog.Load(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Empty(t, catalog.List())
			} else {
				assert.NoError(t, err)
				assert.Len(t, catalog.List(), len(tt.rooms))
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_Get(t *testing.T) {
	catalog := loadedCatalog(t)

	room, err := catalog.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "Kamar B2", room.Name)

	_, err = catalog.Get("99")
	assert.True(t, errors.Is(err, domain.ErrRoomNotFound))
}

func TestCatalogService_ListIsACopy(t *testing.T) {
	catalog := loadedCatalog(t)

	rooms := catalog.List()
	rooms[0].Price = 1

	room, err := catalog.Get("1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000000), room.Price)
	assert.Equal(t, int64(1000000), catalog.List()[0].Price)
}
