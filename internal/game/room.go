package game

import (
	"strings"
	"time"
)

// RoomConfig holds the zone-shrink parameters of a room.
type RoomConfig struct {
	StartRadius   int `json:"start_radius"`    // meters
	ShrinkStepSec int `json:"shrink_step_sec"` // seconds per shrink step
	ShrinkAmount  int `json:"shrink_amount"`   // meters removed per step
}

// Clamp forces every field into its allowed range, regardless of what the
// client sent.
func (c RoomConfig) Clamp() RoomConfig {
	c.StartRadius = clampInt(c.StartRadius, MinStartRadius, MaxStartRadius)
	c.ShrinkStepSec = clampInt(c.ShrinkStepSec, MinShrinkStepSec, MaxShrinkStepSec)
	c.ShrinkAmount = clampInt(c.ShrinkAmount, MinShrinkAmount, MaxShrinkAmount)
	return c
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Room is a game session identified by a short code.
type Room struct {
	Code      string     `json:"code"`
	Config    RoomConfig `json:"config"`
	StartedAt *time.Time `json:"started_at,omitempty"` // nil until the shrink countdown begins
	CreatedAt time.Time  `json:"created_at"`
}

// NewRoom creates a room with the given code and clamped config.
func NewRoom(code string, cfg RoomConfig, now time.Time) *Room {
	return &Room{
		Code:      NormalizeCode(code),
		Config:    cfg.Clamp(),
		CreatedAt: now,
	}
}

// Started reports whether the shrink countdown has begun.
func (r *Room) Started() bool {
	return r.StartedAt != nil
}

// NormalizeCode uppercases a room code. Codes are matched
// case-insensitively on every path.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
