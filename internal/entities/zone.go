package entities

// ZoneType is a named geographic service area. Zones drive courier lookup
// and default delivery-time estimation.
type ZoneType string

const (
	ZoneNorth   ZoneType = "north"
	ZoneSouth   ZoneType = "south"
	ZoneEast    ZoneType = "east"
	ZoneWest    ZoneType = "west"
	ZoneCentral ZoneType = "central"
)

func (z ZoneType) String() string {
	return string(z)
}

func (z ZoneType) IsValid() bool {
	switch z {
	case ZoneNorth, ZoneSouth, ZoneEast, ZoneWest, ZoneCentral:
		return true
	default:
		return false
	}
}
