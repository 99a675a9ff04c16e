package game

import "math"

// CatchEvent records a hunter coming within catch range of a runner.
type CatchEvent struct {
	HunterID string  `json:"hunter_id"`
	RunnerID string  `json:"runner_id"`
	Distance float64 `json:"distance"` // meters, rounded
}

// DetectCatches scans every (hunter, runner) pair and marks runners
// within catchMeters of a hunter as caught, mutating the snapshot in
// place. Already-caught runners are skipped, so the transition happens
// at most once per runner; when several hunters are in range the first
// one in snapshot order is credited. Pairs with an unknown location on
// either side never match.
func DetectCatches(players []*PlayerLocation, catchMeters float64) []CatchEvent {
	var hunters []*PlayerLocation
	var runners []*PlayerLocation

	for _, pl := range players {
		switch pl.Player.Role {
		case RoleHunter:
			hunters = append(hunters, pl)
		case RoleRunner:
			if !pl.Player.IsCaught() {
				runners = append(runners, pl)
			}
		}
	}

	var events []CatchEvent
	for _, runner := range runners {
		for _, hunter := range hunters {
			d := DistanceBetween(hunter, runner)
			// An unknown distance is +Inf and must never match, even
			// against an infinite threshold.
			if !math.IsInf(d, 1) && d <= catchMeters {
				runner.Player.Catch()
				events = append(events, CatchEvent{
					HunterID: hunter.Player.ID,
					RunnerID: runner.Player.ID,
					Distance: math.Round(d),
				})
				break
			}
		}
	}
	return events
}

// NearestOpponentDistance returns the distance from p to the closest
// player of the opposite role, +Inf when there is none or no pair has
// known locations.
func NearestOpponentDistance(players []*PlayerLocation, p *PlayerLocation) float64 {
	nearest := math.Inf(1)
	for _, other := range players {
		if other.Player.ID == p.Player.ID || other.Player.Role == p.Player.Role {
			continue
		}
		if d := DistanceBetween(p, other); d < nearest {
			nearest = d
		}
	}
	return nearest
}
