package service

import (
	"context"

	"mygriya/internal/domain"
	"mygriya/internal/repository"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// CatalogService serves the room catalog. The catalog is read once by Load
// and stays immutable afterwards.
type CatalogService struct {
	roomRepo repository.RoomRepository
	logger   *zap.Logger

	rooms []domain.Room
	byID  map[string]domain.Room
}

// NewCatalogService creates a new catalog service
func NewCatalogService(roomRepo repository.RoomRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		roomRepo: roomRepo,
		logger:   logger,
		byID:     make(map[string]domain.Room),
	}
}

// Load reads the catalog from the repository
func (s *CatalogService) Load(ctx context.Context) error {
	rooms, err := s.roomRepo.ListRooms(ctx)
	if err != nil {
		return errors.Wrap(err, "load catalog")
	}
	if len(rooms) == 0 {
		return errors.New("catalog is empty")
	}

	byID := make(map[string]domain.Room, len(rooms))
	for _, room := range rooms {
		if _, dup := byID[room.ID]; dup {
			return errors.Newf("duplicate room id %q", room.ID)
		}
		byID[room.ID] = room
	}

	s.rooms = rooms
	s.byID = byID

	s.logger.Info("Catalog loaded", zap.Int("rooms", len(rooms)))
	return nil
}

// List returns the rooms in listing order
func (s *CatalogService) List() []domain.Room {
	out := make([]domain.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// Get returns a room by id
func (s *CatalogService) Get(id string) (domain.Room, error) {
	room, ok := s.byID[id]
	if !ok {
		return domain.Room{}, errors.Wrapf(domain.ErrRoomNotFound, "room %q", id)
	}
	return room, nil
}
