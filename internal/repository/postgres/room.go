package postgres

import (
	"context"
	"database/sql"

	"mygriya/internal/domain"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

// RoomRepo implements repository.RoomRepository over the rooms table
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo creates a new room repository
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

const roomColumns = `id, name, price, size_m2, floor, description, facilities, available`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (domain.Room, error) {
	var (
		id, name, description string
		price                 int64
		size, floor           int
		facilities            []string
		available             bool
	)
	if err := row.Scan(&id, &name, &price, &size, &floor, &description, pq.Array(&facilities), &available); err != nil {
		return domain.Room{}, err
	}
	return domain.NewRoom(id, name, price, size, floor, description, facilities, available)
}

// ListRooms returns all rooms ordered by their position in the listing
func (r *RoomRepo) ListRooms(ctx context.Context) ([]domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY position, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "query rooms")
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan room")
		}
		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

// GetRoom returns a room by id
func (r *RoomRepo) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(domain.ErrRoomNotFound, "room %q", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get room %q", id)
	}

	return &room, nil
}
