package postgres

import (
	"context"
	"fmt"
	"testing"

	"mygriya/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roomCols = []string{"id", "name", "price", "size_m2", "floor", "description", "facilities", "available"}

func TestRoomRepo_ListRooms(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRoomRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM rooms ORDER BY position").
		WillReturnRows(sqlmock.NewRows(roomCols).
			AddRow("1", "Kamar A1", 1000000, 12, 1, "Kamar nyaman", "{AC,WiFi,\"Kamar Mandi\"}", true).
			AddRow("3", "Kamar C3", 1500000, 18, 3, "Kamar premium", "{\"Dapur Bersama\"}", false))

	rooms, err := repo.ListRooms(context.Background())

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "Kamar A1", rooms[0].Name)
	assert.Equal(t, []string{"AC", "WiFi", "Kamar Mandi"}, rooms[0].FacilityLabels())
	assert.Equal(t, domain.FacilityBathroom, rooms[0].Facilities[2].Kind)
	assert.False(t, rooms[1].Available)
	assert.Equal(t, domain.FacilitySharedKitchen, rooms[1].Facilities[0].Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepo_ListRooms_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(mock sqlmock.Sqlmock)
	}{
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM rooms").WillReturnError(fmt.Errorf("connection refused"))
			},
		},
		{
			name: "invalid row",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM rooms").
					WillReturnRows(sqlmock.NewRows(roomCols).
						AddRow("1", "", 1000000, 12, 1, "", "{}", true))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			rooms, err := NewRoomRepo(db).ListRooms(context.Background())

			assert.Error(t, err)
			assert.Nil(t, rooms)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRoomRepo_GetRoom(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRoomRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM rooms WHERE id = \\$1").
		WithArgs("2").
		WillReturnRows(sqlmock.NewRows(roomCols).
			AddRow("2", "Kamar B2", 1200000, 15, 2, "Kamar luas", "{TV}", true))

	room, err := repo.GetRoom(context.Background(), "2")

	require.NoError(t, err)
	assert.Equal(t, "Kamar B2", room.Name)
	assert.Equal(t, int64(1200000), room.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepo_GetRoom_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRoomRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM rooms WHERE id = \\$1").
		WithArgs("9").
		WillReturnRows(sqlmock.NewRows(roomCols))

	room, err := repo.GetRoom(context.Background(), "9")

	assert.Nil(t, room)
	assert.True(t, errors.Is(err, domain.ErrRoomNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
