package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ugaemi/sullaejapgi-server/internal/game"
)

// MemoryStore implements Store with in-process maps. It backs the server
// when no DATABASE_URL is configured and serves as the test double for
// the engine and handlers.
type MemoryStore struct {
	rooms     map[string]*game.Room
	players   map[string]*game.Player
	locations map[string]*game.Location
	joinOrder []string // player IDs in join order
	mu        sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:     make(map[string]*game.Room),
		players:   make(map[string]*game.Player),
		locations: make(map[string]*game.Location),
	}
}

// CreateRoom creates a room with a fresh unique code.
func (s *MemoryStore) CreateRoom(_ context.Context, cfg game.RoomConfig) (*game.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]bool, len(s.rooms))
	for code := range s.rooms {
		existing[code] = true
	}

	room := game.NewRoom(game.GenerateCode(existing), cfg, time.Now())
	s.rooms[room.Code] = room
	return cloneRoom(room), nil
}

// GetRoom looks up a room by code.
func (s *MemoryStore) GetRoom(_ context.Context, code string) (*game.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[game.NormalizeCode(code)]
	if !ok {
		return nil, game.ErrRoomNotFound
	}
	return cloneRoom(room), nil
}

// ListRooms returns all rooms, newest first.
func (s *MemoryStore) ListRooms(_ context.Context) ([]*game.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]*game.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, cloneRoom(room))
	}
	// Newest first, matching the SQL store.
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].CreatedAt.After(rooms[j].CreatedAt)
	})
	return rooms, nil
}

// StartRoom begins the shrink countdown; already-started rooms keep
// their original StartedAt.
func (s *MemoryStore) StartRoom(_ context.Context, code string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[game.NormalizeCode(code)]
	if !ok {
		return game.ErrRoomNotFound
	}
	if room.StartedAt == nil {
		t := now
		room.StartedAt = &t
	}
	return nil
}

// JoinPlayer adds a player to an existing room.
func (s *MemoryStore) JoinPlayer(_ context.Context, code, name string, role game.Role) (*game.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[game.NormalizeCode(code)]
	if !ok {
		return nil, game.ErrRoomNotFound
	}

	player := game.NewPlayer(room.Code, name, role, time.Now())
	s.players[player.ID] = player
	s.joinOrder = append(s.joinOrder, player.ID)
	return clonePlayer(player), nil
}

// LeavePlayer removes a player and its location. No-op when absent.
func (s *MemoryStore) LeavePlayer(_ context.Context, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[playerID]; !ok {
		return nil
	}
	delete(s.players, playerID)
	delete(s.locations, playerID)
	for i, id := range s.joinOrder {
		if id == playerID {
			s.joinOrder = append(s.joinOrder[:i], s.joinOrder[i+1:]...)
			break
		}
	}
	return nil
}

// GetPlayer looks up a player by ID.
func (s *MemoryStore) GetPlayer(_ context.Context, playerID string) (*game.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	player, ok := s.players[playerID]
	if !ok {
		return nil, game.ErrPlayerNotFound
	}
	return clonePlayer(player), nil
}

// UpsertLocation replaces the player's single location record and bumps
// LastSeen.
func (s *MemoryStore) UpsertLocation(_ context.Context, playerID string, lat, lng float64, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, ok := s.players[playerID]
	if !ok {
		return game.ErrPlayerNotFound
	}
	player.LastSeen = now
	s.locations[playerID] = &game.Location{Lat: lat, Lng: lng, UpdatedAt: now}
	return nil
}

// SetPlayerStatus updates a player's status.
func (s *MemoryStore) SetPlayerStatus(_ context.Context, playerID string, status game.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, ok := s.players[playerID]
	if !ok {
		return game.ErrPlayerNotFound
	}
	player.Status = status
	return nil
}

// RoomSnapshot returns every player in the room joined with their latest
// location, in join order.
func (s *MemoryStore) RoomSnapshot(_ context.Context, code string) ([]*game.PlayerLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	code = game.NormalizeCode(code)
	var snapshot []*game.PlayerLocation
	for _, id := range s.joinOrder {
		player, ok := s.players[id]
		if !ok || player.RoomCode != code {
			continue
		}
		pl := &game.PlayerLocation{Player: clonePlayer(player)}
		if loc, ok := s.locations[id]; ok {
			l := *loc
			pl.Loc = &l
		}
		snapshot = append(snapshot, pl)
	}
	return snapshot, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

func cloneRoom(room *game.Room) *game.Room {
	c := *room
	if room.StartedAt != nil {
		t := *room.StartedAt
		c.StartedAt = &t
	}
	return &c
}

func clonePlayer(player *game.Player) *game.Player {
	c := *player
	return &c
}
