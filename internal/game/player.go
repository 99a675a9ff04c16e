package game

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Role int

const (
	RoleHunter Role = iota
	RoleRunner
)

func (r Role) String() string {
	switch r {
	case RoleRunner:
		return "runner"
	default:
		return "hunter"
	}
}

// MarshalJSON serializes Role as a string.
func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON deserializes Role from a string.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = ParseRole(s)
	return nil
}

// ParseRole maps a wire string to a Role. Anything other than "runner"
// is a hunter.
func ParseRole(s string) Role {
	if s == "runner" {
		return RoleRunner
	}
	return RoleHunter
}

type Status int

const (
	StatusReady Status = iota
	StatusCaught
)

func (s Status) String() string {
	switch s {
	case StatusCaught:
		return "caught"
	default:
		return "ready"
	}
}

// MarshalJSON serializes Status as a string.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON deserializes Status from a string.
func (s *Status) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = ParseStatus(str)
	return nil
}

// ParseStatus maps a wire string to a Status. Anything other than
// "caught" is ready.
func ParseStatus(s string) Status {
	if s == "caught" {
		return StatusCaught
	}
	return StatusReady
}

// Player is a participant in a room.
type Player struct {
	ID       string    `json:"id"`
	RoomCode string    `json:"room_code"`
	Name     string    `json:"name"`
	Role     Role      `json:"role"`
	Status   Status    `json:"status"`
	LastSeen time.Time `json:"last_seen"`
}

// NewPlayer creates a player joining the given room. The name is
// truncated to MaxNameLength runes.
func NewPlayer(roomCode, name string, role Role, now time.Time) *Player {
	return &Player{
		ID:       uuid.New().String(),
		RoomCode: roomCode,
		Name:     TruncateName(name),
		Role:     role,
		Status:   StatusReady,
		LastSeen: now,
	}
}

// Catch marks the player as caught. The transition is monotonic; callers
// never reverse it.
func (p *Player) Catch() {
	p.Status = StatusCaught
}

// IsCaught reports whether the player has been caught.
func (p *Player) IsCaught() bool {
	return p.Status == StatusCaught
}

// TruncateName limits a display name to MaxNameLength runes.
func TruncateName(name string) string {
	runes := []rune(name)
	if len(runes) > MaxNameLength {
		return string(runes[:MaxNameLength])
	}
	return name
}

// Location is a player's latest known position. At most one exists per
// player; each update replaces the previous one.
type Location struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlayerLocation joins a player with their latest location, nil when the
// player has never reported one.
type PlayerLocation struct {
	Player *Player
	Loc    *Location
}
