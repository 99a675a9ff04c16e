package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Store is the subset of persistence the engine needs. The full store
// interface lives in internal/store; this consumer-side view keeps the
// engine testable against any fake.
type Store interface {
	GetRoom(ctx context.Context, code string) (*Room, error)
	RoomSnapshot(ctx context.Context, code string) ([]*PlayerLocation, error)
	SetPlayerStatus(ctx context.Context, playerID string, status Status) error
}

// State is the result of one engine pass.
type State struct {
	Now        time.Time    `json:"now"`
	Room       *Room        `json:"room"`
	ZoneRadius int          `json:"zone_radius"`
	Catches    []CatchEvent `json:"catches,omitempty"`
	Players    []PlayerView `json:"players"`
}

// Engine derives game state from a room snapshot.
type Engine struct {
	store Store
}

// NewEngine creates an engine backed by the given store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// ComputeState runs one state pass for a room: derive the zone radius,
// detect catches, and project the players for the viewer.
//
// This is a read-and-conditionally-write operation, not a pure query:
// newly detected catches are persisted immediately, one write per caught
// runner. Concurrent passes over the same room may interleave, which is
// safe because the ready→caught transition is monotonic and idempotent.
// Lookup failures happen before any write.
func (e *Engine) ComputeState(ctx context.Context, code, viewerID string, catchMeters float64, now time.Time) (*State, error) {
	code = NormalizeCode(code)

	room, err := e.store.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	players, err := e.store.RoomSnapshot(ctx, code)
	if err != nil {
		return nil, err
	}

	events := DetectCatches(players, catchMeters)
	for _, ev := range events {
		if err := e.store.SetPlayerStatus(ctx, ev.RunnerID, StatusCaught); err != nil {
			return nil, fmt.Errorf("persist catch of %s: %w", ev.RunnerID, err)
		}
		slog.Info("runner caught", "room", code, "hunter", ev.HunterID, "runner", ev.RunnerID, "distance", ev.Distance)
	}

	return &State{
		Now:        now,
		Room:       room,
		ZoneRadius: ZoneRadius(room, now),
		Catches:    events,
		Players:    Project(players, viewerID),
	}, nil
}
