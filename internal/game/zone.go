package game

import "time"

// ZoneRadius derives the live zone radius in meters at the given time.
// Before the room starts it equals the configured start radius; after,
// it shrinks by ShrinkAmount every ShrinkStepSec seconds, floored at
// MinZoneRadius. The value is recomputed on every request and never
// stored.
func ZoneRadius(r *Room, now time.Time) int {
	if r.StartedAt == nil {
		return r.Config.StartRadius
	}

	elapsed := now.Sub(*r.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}

	stepMs := int64(r.Config.ShrinkStepSec) * 1000
	steps := elapsed.Milliseconds() / stepMs

	radius := r.Config.StartRadius - int(steps)*r.Config.ShrinkAmount
	if radius < MinZoneRadius {
		return MinZoneRadius
	}
	return radius
}
