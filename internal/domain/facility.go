package domain

import "strings"

// FacilityKind enumerates the facilities that have a dedicated icon
type FacilityKind int

const (
	FacilityOther FacilityKind = iota
	FacilityAC
	FacilityWiFi
	FacilityBathroom
	FacilityTV
	FacilityBed
	FacilitySharedKitchen
)

// Icon identifies the glyph rendered next to a facility
type Icon string

const (
	IconWind     Icon = "🌬️"
	IconWifi     Icon = "📶"
	IconDroplet  Icon = "🚿"
	IconTV       Icon = "📺"
	IconBed      Icon = "🛏️"
	IconUtensils Icon = "🍳"
)

var facilityLabels = map[string]FacilityKind{
	"ac":            FacilityAC,
	"wifi":          FacilityWiFi,
	"kamar mandi":   FacilityBathroom,
	"tv":            FacilityTV,
	"kasur":         FacilityBed,
	"dapur bersama": FacilitySharedKitchen,
}

// Facility is a catalog facility tag with its resolved kind
type Facility struct {
	Kind  FacilityKind
	Label string
}

// ParseFacility resolves a catalog label. Unknown labels keep their text
// and get FacilityOther.
func ParseFacility(label string) Facility {
	label = strings.TrimSpace(label)
	kind, ok := facilityLabels[strings.ToLower(label)]
	if !ok {
		kind = FacilityOther
	}
	return Facility{Kind: kind, Label: label}
}

// Icon returns the icon for the kind, falling back to the bed icon
func (k FacilityKind) Icon() Icon {
	switch k {
	case FacilityAC:
		return IconWind
	case FacilityWiFi:
		return IconWifi
	case FacilityBathroom:
		return IconDroplet
	case FacilityTV:
		return IconTV
	case FacilitySharedKitchen:
		return IconUtensils
	default:
		return IconBed
	}
}

// String renders the facility with its icon
func (f Facility) String() string {
	return string(f.Kind.Icon()) + " " + f.Label
}
