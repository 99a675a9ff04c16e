package game

// Zone configuration bounds (meters / seconds)
const (
	MinZoneRadius  = 20 // hard floor for the live radius, not configurable
	MinStartRadius = 20
	MaxStartRadius = 100000

	MinShrinkStepSec = 1
	MaxShrinkStepSec = 86400

	MinShrinkAmount = 1
	MaxShrinkAmount = 100000
)

// Catch mechanics
const (
	DefaultCatchMeters = 30.0
)

// Player limits
const (
	MaxNameLength = 40 // runes
)

// EarthRadius is the mean Earth radius in meters used for haversine.
const EarthRadius = 6371000.0
