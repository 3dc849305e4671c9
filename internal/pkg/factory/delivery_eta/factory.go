package delivery_eta

import (
	"dispatch/internal/entities"
)

// Per-zone base travel time in minutes.
const (
	centralBaseMinutes = 25
	northBaseMinutes   = 30
	eastBaseMinutes    = 35
	westBaseMinutes    = 40
	southBaseMinutes   = 45

	defaultBaseMinutes = 30
)

// Priority speeds the estimate up, not down.
const (
	normalMultiplier = 1.0
	highMultiplier   = 0.8
	urgentMultiplier = 0.6
)

type ETAFactory struct{}

func New() *ETAFactory {
	return &ETAFactory{}
}

func (f *ETAFactory) EstimateMinutes(zone entities.ZoneType, priority entities.OrderPriorityType) int {
	base := defaultBaseMinutes
	switch zone {
	case entities.ZoneCentral:
		base = centralBaseMinutes
	case entities.ZoneNorth:
		base = northBaseMinutes
	case entities.ZoneEast:
		base = eastBaseMinutes
	case entities.ZoneWest:
		base = westBaseMinutes
	case entities.ZoneSouth:
		base = southBaseMinutes
	}

	multiplier := normalMultiplier
	switch priority {
	case entities.PriorityHigh:
		multiplier = highMultiplier
	case entities.PriorityUrgent:
		multiplier = urgentMultiplier
	}

	return int(float64(base) * multiplier)
}
