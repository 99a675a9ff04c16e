package game

import (
	"math"
	"time"
)

// PlayerView is one player's entry in a state response, narrowed to what
// the requesting viewer is allowed to see. Withheld fields are nil and
// omitted from the JSON encoding.
type PlayerView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Status Status `json:"status"`

	Lat      *float64   `json:"lat,omitempty"`
	Lng      *float64   `json:"lng,omitempty"`
	LastSeen *time.Time `json:"last_seen,omitempty"`

	// DistanceToViewer is filled for hunter viewers (nil when either
	// location is unknown).
	DistanceToViewer *float64 `json:"distance_to_viewer,omitempty"`
	// DistanceToRunner is the only positional intel a runner gets about
	// a hunter.
	DistanceToRunner *float64 `json:"distance_to_runner,omitempty"`
	// NearestHunter is filled on a runner's own entry: distance to the
	// closest hunter without revealing which one.
	NearestHunter *float64 `json:"nearest_hunter,omitempty"`
}

// Project applies the visibility policy to a snapshot for the given
// viewer. An empty or unknown viewerID yields the anonymous projection:
// no coordinates, no distances. Hunters see everything; runners see
// their own position, distances to hunters, and nothing about other
// runners beyond name and status. Snapshot order is preserved.
func Project(players []*PlayerLocation, viewerID string) []PlayerView {
	var viewer *PlayerLocation
	for _, pl := range players {
		if pl.Player.ID == viewerID {
			viewer = pl
			break
		}
	}

	views := make([]PlayerView, 0, len(players))
	for _, pl := range players {
		views = append(views, projectOne(players, viewer, pl))
	}
	return views
}

func projectOne(players []*PlayerLocation, viewer, p *PlayerLocation) PlayerView {
	v := PlayerView{
		ID:     p.Player.ID,
		Name:   p.Player.Name,
		Role:   p.Player.Role,
		Status: p.Player.Status,
	}

	if viewer == nil {
		// Anonymous spectator: identity and status only.
		return v
	}

	switch viewer.Player.Role {
	case RoleHunter:
		// The hunting side is coordinate-complete.
		v.LastSeen = timePtr(p.Player.LastSeen)
		if p.Loc != nil {
			v.Lat = floatPtr(p.Loc.Lat)
			v.Lng = floatPtr(p.Loc.Lng)
		}
		v.DistanceToViewer = roundedDistance(viewer, p)

	case RoleRunner:
		switch {
		case p.Player.ID == viewer.Player.ID:
			// A runner always sees their own position.
			v.LastSeen = timePtr(p.Player.LastSeen)
			if p.Loc != nil {
				v.Lat = floatPtr(p.Loc.Lat)
				v.Lng = floatPtr(p.Loc.Lng)
			}
			if nearest := NearestOpponentDistance(players, p); !math.IsInf(nearest, 1) {
				v.NearestHunter = floatPtr(math.Round(nearest))
			}
		case p.Player.Role == RoleHunter:
			// Coordinates withheld: distance only.
			v.LastSeen = timePtr(p.Player.LastSeen)
			v.DistanceToRunner = roundedDistance(viewer, p)
		default:
			// Other runners get no tactical intel about each other.
			v.LastSeen = timePtr(p.Player.LastSeen)
		}
	}

	return v
}

// roundedDistance returns the rounded distance between two players, nil
// when either location is unknown.
func roundedDistance(a, b *PlayerLocation) *float64 {
	d := DistanceBetween(a, b)
	if math.IsInf(d, 1) {
		return nil
	}
	return floatPtr(math.Round(d))
}

func floatPtr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }
