package store

import (
	"context"
	"time"

	"github.com/ugaemi/sullaejapgi-server/internal/game"
)

// Store defines the interface for room, player, and location persistence.
// Lookup misses return game.ErrRoomNotFound / game.ErrPlayerNotFound.
type Store interface {
	// CreateRoom creates a room with a fresh unique code. The config is
	// clamped to its allowed ranges.
	CreateRoom(ctx context.Context, cfg game.RoomConfig) (*game.Room, error)
	// GetRoom looks up a room by code (case-insensitive).
	GetRoom(ctx context.Context, code string) (*game.Room, error)
	// ListRooms returns all rooms, newest first.
	ListRooms(ctx context.Context) ([]*game.Room, error)
	// StartRoom begins the shrink countdown. Starting an already-started
	// room is a no-op; StartedAt is set at most once.
	StartRoom(ctx context.Context, code string, now time.Time) error

	// JoinPlayer adds a player to an existing room.
	JoinPlayer(ctx context.Context, code, name string, role game.Role) (*game.Player, error)
	// LeavePlayer removes a player and cascades the location delete.
	// Removing an absent player is a no-op.
	LeavePlayer(ctx context.Context, playerID string) error
	// GetPlayer looks up a player by ID.
	GetPlayer(ctx context.Context, playerID string) (*game.Player, error)
	// UpsertLocation replaces the player's single location record and
	// bumps LastSeen. The player must exist.
	UpsertLocation(ctx context.Context, playerID string, lat, lng float64, now time.Time) error
	// SetPlayerStatus updates a player's status. Used by catch detection.
	SetPlayerStatus(ctx context.Context, playerID string, status game.Status) error

	// RoomSnapshot returns every player in the room joined with their
	// latest location (nil when never reported), in join order.
	RoomSnapshot(ctx context.Context, code string) ([]*game.PlayerLocation, error)

	// Close releases any underlying resources.
	Close() error
}
