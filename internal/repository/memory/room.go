package memory

import (
	"context"

	"mygriya/internal/domain"

	"github.com/cockroachdb/errors"
)

type roomSeed struct {
	id          string
	name        string
	price       int64
	size        int
	floor       int
	description string
	facilities  []string
	available   bool
}

var demoRooms = []roomSeed{
	{
		id:    "1",
		name:  "Kamar A1",
		price: 1000000,
		size:  12,
		floor: 1,
		description: "Kamar nyaman dengan ventilasi baik, lokasi strategis di lantai 1. " +
			"Cocok untuk mahasiswa atau pekerja profesional. " +
			"Dekat dengan area parkir dan akses mudah ke fasilitas umum.",
		facilities: []string{"AC", "WiFi", "Kamar Mandi", "Kasur", "Lemari"},
		available:  true,
	},
	{
		id:    "2",
		name:  "Kamar B2",
		price: 1200000,
		size:  15,
		floor: 2,
		description: "Kamar luas dengan pemandangan taman, dilengkapi AC dan WiFi berkecepatan tinggi. " +
			"Suasana tenang dan nyaman untuk bekerja atau belajar.",
		facilities: []string{"AC", "WiFi", "Kamar Mandi", "TV", "Kasur", "Lemari", "Meja Kerja"},
		available:  true,
	},
	{
		id:    "3",
		name:  "Kamar C3",
		price: 1500000,
		size:  18,
		floor: 3,
		description: "Kamar premium dengan fasilitas lengkap dan view terbaik. " +
			"Dilengkapi dengan kamar mandi dalam, AC, TV, dan area kerja yang luas. " +
			"Termasuk akses dapur bersama.",
		facilities: []string{"AC", "WiFi", "Kamar Mandi", "TV", "Kasur", "Lemari", "Meja Kerja", "Dapur Bersama"},
		available:  false,
	},
}

// RoomRepo implements repository.RoomRepository over the built-in demo catalog
type RoomRepo struct {
	rooms []domain.Room
}

// NewRoomRepo builds the demo catalog
func NewRoomRepo() (*RoomRepo, error) {
	rooms := make([]domain.Room, 0, len(demoRooms))
	for _, s := range demoRooms {
		room, err := domain.NewRoom(s.id, s.name, s.price, s.size, s.floor, s.description, s.facilities, s.available)
		if err != nil {
			return nil, errors.Wrap(err, "build demo catalog")
		}
		rooms = append(rooms, room)
	}
	return &RoomRepo{rooms: rooms}, nil
}

// ListRooms returns the catalog in listing order
func (r *RoomRepo) ListRooms(ctx context.Context) ([]domain.Room, error) {
	out := make([]domain.Room, len(r.rooms))
	copy(out, r.rooms)
	return out, nil
}

// GetRoom returns a room by id
func (r *RoomRepo) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	for i := range r.rooms {
		if r.rooms[i].ID == id {
			room := r.rooms[i]
			return &room, nil
		}
	}
	return nil, errors.Wrapf(domain.ErrRoomNotFound, "room %q", id)
}
