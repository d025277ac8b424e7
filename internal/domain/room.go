package domain

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Room is a rentable unit of the catalog. Rooms are built once at start
// and never mutated afterwards.
type Room struct {
	ID          string
	Name        string
	Price       int64 // Rupiah per month
	Size        int   // m²
	Floor       int
	Description string
	Facilities  []Facility
	Available   bool
}

// NewRoom validates the record and resolves facility labels to kinds.
func NewRoom(id, name string, price int64, size, floor int, description string, facilities []string, available bool) (Room, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)

	switch {
	case id == "":
		return Room{}, errors.Wrap(ErrInvalidRoom, "empty id")
	case name == "":
		return Room{}, errors.Wrapf(ErrInvalidRoom, "room %s: empty name", id)
	case price <= 0:
		return Room{}, errors.Wrapf(ErrInvalidRoom, "room %s: price must be positive", id)
	case size <= 0:
		return Room{}, errors.Wrapf(ErrInvalidRoom, "room %s: size must be positive", id)
	case floor <= 0:
		return Room{}, errors.Wrapf(ErrInvalidRoom, "room %s: floor must be positive", id)
	}

	parsed := make([]Facility, 0, len(facilities))
	for _, label := range facilities {
		if strings.TrimSpace(label) == "" {
			continue
		}
		parsed = append(parsed, ParseFacility(label))
	}

	return Room{
		ID:          id,
		Name:        name,
		Price:       price,
		Size:        size,
		Floor:       floor,
		Description: description,
		Facilities:  parsed,
		Available:   available,
	}, nil
}

// StatusLabel returns the availability badge shown on the detail view
func (r Room) StatusLabel() string {
	if r.Available {
		return "Tersedia"
	}
	return "Tidak Tersedia"
}

// ListingLabel returns the shorter badge used on the room list
func (r Room) ListingLabel() string {
	if r.Available {
		return "Tersedia"
	}
	return "Penuh"
}

// FacilityLabels returns the raw catalog labels
func (r Room) FacilityLabels() []string {
	labels := make([]string, len(r.Facilities))
	for i, f := range r.Facilities {
		labels[i] = f.Label
	}
	return labels
}
