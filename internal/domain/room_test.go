package domain

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		roomNm  string
		price   int64
		size    int
		floor   int
		wantErr bool
	}{
		{name: "valid", id: "1", roomNm: "Kamar A1", price: 1000000, size: 12, floor: 1},
		{name: "empty id", id: " ", roomNm: "Kamar A1", price: 1000000, size: 12, floor: 1, wantErr: true},
		{name: "empty name", id: "1", price: 1000000, size: 12, floor: 1, wantErr: true},
		{name: "zero price", id: "1", roomNm: "Kamar A1", size: 12, floor: 1, wantErr: true},
		{name: "zero size", id: "1", roomNm: "Kamar A1", price: 1, floor: 1, wantErr: true},
		{name: "zero floor", id: "1", roomNm: "Kamar A1", price: 1, size: 12, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room, err := NewRoom(tt.id, tt.roomNm, tt.price, tt.size, tt.floor, "", nil, true)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidRoom))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, room.ID)
		})
	}
}

func TestNewRoom_Facilities(t *testing.T) {
	room, err := NewRoom("2", "Kamar B2", 1200000, 15, 2, "", []string{"AC", "", "Meja Kerja", "Dapur Bersama"}, true)
	require.NoError(t, err)

	require.Len(t, room.Facilities, 3)
	assert.Equal(t, FacilityAC, room.Facilities[0].Kind)
	assert.Equal(t, FacilityOther, room.Facilities[1].Kind)
	assert.Equal(t, "Meja Kerja", room.Facilities[1].Label)
	assert.Equal(t, FacilitySharedKitchen, room.Facilities[2].Kind)
	assert.Equal(t, []string{"AC", "Meja Kerja", "Dapur Bersama"}, room.FacilityLabels())
}

func TestFacilityIcons(t *testing.T) {
	tests := []struct {
		label    string
		expected Icon
	}{
		{label: "AC", expected: IconWind},
		{label: "WiFi", expected: IconWifi},
		{label: "Kamar Mandi", expected: IconDroplet},
		{label: "TV", expected: IconTV},
		{label: "Kasur", expected: IconBed},
		{label: "Dapur Bersama", expected: IconUtensils},
		{label: "Lemari", expected: IconBed},
		{label: "Jacuzzi", expected: IconBed},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			f := ParseFacility(tt.label)
			assert.Equal(t, tt.expected, f.Kind.Icon())
			assert.Equal(t, string(tt.expected)+" "+tt.label, f.String())
		})
	}
}

func TestRoom_Labels(t *testing.T) {
	assert.Equal(t, "Tersedia", Room{Available: true}.StatusLabel())
	assert.Equal(t, "Tidak Tersedia", Room{}.StatusLabel())
	assert.Equal(t, "Penuh", Room{}.ListingLabel())
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 1.000.000", FormatRupiah(1000000))
	assert.Equal(t, "Rp 1.500.000", FormatRupiah(1500000))
	assert.Equal(t, "Rp 500", FormatRupiah(500))
}
