package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ugaemi/sullaejapgi-server/internal/game"
)

const schema = `
CREATE TABLE IF NOT EXISTS rooms (
    code TEXT PRIMARY KEY,
    start_radius INTEGER NOT NULL,
    shrink_step_sec INTEGER NOT NULL,
    shrink_amount INTEGER NOT NULL,
    started_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS players (
    id TEXT PRIMARY KEY,
    room_code TEXT NOT NULL REFERENCES rooms(code) ON DELETE CASCADE,
    name TEXT NOT NULL,
    role TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'ready',
    last_seen TIMESTAMPTZ NOT NULL,
    joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS locations (
    player_id TEXT PRIMARY KEY REFERENCES players(id) ON DELETE CASCADE,
    lat DOUBLE PRECISION NOT NULL,
    lng DOUBLE PRECISION NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_players_room_code ON players(room_code);
`

// PostgresStore implements Store using PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL and initializes the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// CreateRoom creates a room with a fresh unique code. The config is
// clamped to its allowed ranges.
func (s *PostgresStore) CreateRoom(ctx context.Context, cfg game.RoomConfig) (*game.Room, error) {
	cfg = cfg.Clamp()
	now := time.Now()

	// Codes collide rarely (26^4 space); retry the insert until one lands.
	for i := 0; i < 100; i++ {
		room := game.NewRoom(game.RandomCode(), cfg, now)
		tag, err := s.pool.Exec(ctx,
			`INSERT INTO rooms (code, start_radius, shrink_step_sec, shrink_amount, created_at)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (code) DO NOTHING`,
			room.Code, cfg.StartRadius, cfg.ShrinkStepSec, cfg.ShrinkAmount, now)
		if err != nil {
			return nil, err
		}
		if tag.RowsAffected() == 1 {
			return room, nil
		}
	}
	return nil, fmt.Errorf("could not allocate a unique room code")
}

// GetRoom looks up a room by code.
func (s *PostgresStore) GetRoom(ctx context.Context, code string) (*game.Room, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT code, start_radius, shrink_step_sec, shrink_amount, started_at, created_at
		 FROM rooms WHERE code = $1`, game.NormalizeCode(code))

	room, err := scanRoom(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, game.ErrRoomNotFound
	}
	return room, err
}

// ListRooms returns all rooms, newest first.
func (s *PostgresStore) ListRooms(ctx context.Context) ([]*game.Room, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT code, start_radius, shrink_step_sec, shrink_amount, started_at, created_at
		 FROM rooms ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*game.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// StartRoom begins the shrink countdown; already-started rooms keep
// their original StartedAt.
func (s *PostgresStore) StartRoom(ctx context.Context, code string, now time.Time) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE rooms SET started_at = COALESCE(started_at, $1) WHERE code = $2`,
		now, game.NormalizeCode(code))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return game.ErrRoomNotFound
	}
	return nil
}

// JoinPlayer adds a player to an existing room.
func (s *PostgresStore) JoinPlayer(ctx context.Context, code, name string, role game.Role) (*game.Player, error) {
	room, err := s.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	player := game.NewPlayer(room.Code, name, role, time.Now())
	_, err = s.pool.Exec(ctx,
		`INSERT INTO players (id, room_code, name, role, status, last_seen, joined_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		player.ID, player.RoomCode, player.Name, player.Role.String(), player.Status.String(), player.LastSeen)
	if err != nil {
		return nil, err
	}
	return player, nil
}

// LeavePlayer removes a player; the location row goes with it via the
// FK cascade. Absent players are a no-op.
func (s *PostgresStore) LeavePlayer(ctx context.Context, playerID string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM players WHERE id = $1`, playerID)
	return err
}

// GetPlayer looks up a player by ID.
func (s *PostgresStore) GetPlayer(ctx context.Context, playerID string) (*game.Player, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, room_code, name, role, status, last_seen
		 FROM players WHERE id = $1`, playerID)

	player, err := scanPlayer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, game.ErrPlayerNotFound
	}
	return player, err
}

// UpsertLocation replaces the player's single location record and bumps
// LastSeen.
func (s *PostgresStore) UpsertLocation(ctx context.Context, playerID string, lat, lng float64, now time.Time) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE players SET last_seen = $1 WHERE id = $2`, now, playerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return game.ErrPlayerNotFound
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO locations (player_id, lat, lng, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (player_id) DO UPDATE SET lat = $2, lng = $3, updated_at = $4`,
		playerID, lat, lng, now)
	return err
}

// SetPlayerStatus updates a player's status.
func (s *PostgresStore) SetPlayerStatus(ctx context.Context, playerID string, status game.Status) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE players SET status = $1 WHERE id = $2`, status.String(), playerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return game.ErrPlayerNotFound
	}
	return nil
}

// RoomSnapshot returns every player in the room joined with their latest
// location, in join order.
func (s *PostgresStore) RoomSnapshot(ctx context.Context, code string) ([]*game.PlayerLocation, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT p.id, p.room_code, p.name, p.role, p.status, p.last_seen,
		        l.lat, l.lng, l.updated_at
		 FROM players p
		 LEFT JOIN locations l ON l.player_id = p.id
		 WHERE p.room_code = $1
		 ORDER BY p.joined_at, p.id`, game.NormalizeCode(code))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshot []*game.PlayerLocation
	for rows.Next() {
		var (
			p         game.Player
			role      string
			status    string
			lat, lng  *float64
			updatedAt *time.Time
		)
		if err := rows.Scan(&p.ID, &p.RoomCode, &p.Name, &role, &status, &p.LastSeen, &lat, &lng, &updatedAt); err != nil {
			return nil, err
		}
		p.Role = game.ParseRole(role)
		p.Status = game.ParseStatus(status)

		pl := &game.PlayerLocation{Player: &p}
		if lat != nil && lng != nil && updatedAt != nil {
			pl.Loc = &game.Location{Lat: *lat, Lng: *lng, UpdatedAt: *updatedAt}
		}
		snapshot = append(snapshot, pl)
	}
	return snapshot, rows.Err()
}

// Close releases database resources.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func scanRoom(row pgx.Row) (*game.Room, error) {
	var room game.Room
	err := row.Scan(&room.Code, &room.Config.StartRadius, &room.Config.ShrinkStepSec,
		&room.Config.ShrinkAmount, &room.StartedAt, &room.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func scanPlayer(row pgx.Row) (*game.Player, error) {
	var (
		p      game.Player
		role   string
		status string
	)
	err := row.Scan(&p.ID, &p.RoomCode, &p.Name, &role, &status, &p.LastSeen)
	if err != nil {
		return nil, err
	}
	p.Role = game.ParseRole(role)
	p.Status = game.ParseStatus(status)
	return &p, nil
}
