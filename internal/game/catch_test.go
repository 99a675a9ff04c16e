package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func hunterAt(id string, lat, lng float64) *PlayerLocation {
	return &PlayerLocation{
		Player: &Player{ID: id, Role: RoleHunter},
		Loc:    &Location{Lat: lat, Lng: lng},
	}
}

func runnerAt(id string, lat, lng float64) *PlayerLocation {
	return &PlayerLocation{
		Player: &Player{ID: id, Role: RoleRunner},
		Loc:    &Location{Lat: lat, Lng: lng},
	}
}

func TestDetectCatches(t *testing.T) {
	tests := []struct {
		name        string
		players     []*PlayerLocation
		catchMeters float64
		wantEvents  int
		checkAfter  func(t *testing.T, players []*PlayerLocation)
	}{
		{
			name: "identical coordinates is a catch",
			players: []*PlayerLocation{
				hunterAt("h1", 10.0, 10.0),
				runnerAt("r1", 10.0, 10.0),
			},
			catchMeters: 30,
			wantEvents:  1,
			checkAfter: func(t *testing.T, players []*PlayerLocation) {
				assert.Equal(t, StatusCaught, players[1].Player.Status)
			},
		},
		{
			name: "just inside range",
			players: []*PlayerLocation{
				hunterAt("h1", 0, 0),
				runnerAt("r1", 0, 0.0002), // ~22 m
			},
			catchMeters: 30,
			wantEvents:  1,
			checkAfter:  func(t *testing.T, players []*PlayerLocation) {},
		},
		{
			name: "outside range never catches",
			players: []*PlayerLocation{
				hunterAt("h1", 0, 0),
				runnerAt("r1", 0, 0.0005), // ~56 m
			},
			catchMeters: 30,
			wantEvents:  0,
			checkAfter: func(t *testing.T, players []*PlayerLocation) {
				assert.Equal(t, StatusReady, players[1].Player.Status)
			},
		},
		{
			name: "already caught runner stays caught with no new event",
			players: []*PlayerLocation{
				hunterAt("h1", 10.0, 10.0),
				{
					Player: &Player{ID: "r1", Role: RoleRunner, Status: StatusCaught},
					Loc:    &Location{Lat: 10.0, Lng: 10.0},
				},
			},
			catchMeters: 30,
			wantEvents:  0,
			checkAfter: func(t *testing.T, players []*PlayerLocation) {
				assert.Equal(t, StatusCaught, players[1].Player.Status)
			},
		},
		{
			name: "hunter with unknown location cannot catch",
			players: []*PlayerLocation{
				{Player: &Player{ID: "h1", Role: RoleHunter}},
				runnerAt("r1", 10.0, 10.0),
			},
			catchMeters: 30,
			wantEvents:  0,
			checkAfter: func(t *testing.T, players []*PlayerLocation) {
				assert.Equal(t, StatusReady, players[1].Player.Status)
			},
		},
		{
			name: "runner with unknown location cannot be caught",
			players: []*PlayerLocation{
				hunterAt("h1", 10.0, 10.0),
				{Player: &Player{ID: "r1", Role: RoleRunner}},
			},
			catchMeters: 30,
			wantEvents:  0,
			checkAfter:  func(t *testing.T, players []*PlayerLocation) {},
		},
		{
			name: "two hunters on one runner produce a single event",
			players: []*PlayerLocation{
				hunterAt("h1", 10.0, 10.0),
				hunterAt("h2", 10.0, 10.0),
				runnerAt("r1", 10.0, 10.0),
			},
			catchMeters: 30,
			wantEvents:  1,
			checkAfter: func(t *testing.T, players []*PlayerLocation) {
				assert.Equal(t, StatusCaught, players[2].Player.Status)
			},
		},
		{
			name: "one hunter can catch several runners in one pass",
			players: []*PlayerLocation{
				hunterAt("h1", 10.0, 10.0),
				runnerAt("r1", 10.0, 10.0),
				runnerAt("r2", 10.00001, 10.0),
			},
			catchMeters: 30,
			wantEvents:  2,
			checkAfter: func(t *testing.T, players []*PlayerLocation) {
				assert.Equal(t, StatusCaught, players[1].Player.Status)
				assert.Equal(t, StatusCaught, players[2].Player.Status)
			},
		},
		{
			name: "hunters never catch hunters",
			players: []*PlayerLocation{
				hunterAt("h1", 10.0, 10.0),
				hunterAt("h2", 10.0, 10.0),
			},
			catchMeters: 30,
			wantEvents:  0,
			checkAfter:  func(t *testing.T, players []*PlayerLocation) {},
		},
		{
			name:        "empty snapshot",
			players:     nil,
			catchMeters: 30,
			wantEvents:  0,
			checkAfter:  func(t *testing.T, players []*PlayerLocation) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := DetectCatches(tt.players, tt.catchMeters)
			assert.Len(t, events, tt.wantEvents)
			tt.checkAfter(t, tt.players)
		})
	}
}

func TestDetectCatches_EventContent(t *testing.T) {
	players := []*PlayerLocation{
		hunterAt("h1", 10.0, 10.0),
		runnerAt("r1", 10.0, 10.0),
	}

	events := DetectCatches(players, 30)
	assert.Len(t, events, 1)
	assert.Equal(t, "h1", events[0].HunterID)
	assert.Equal(t, "r1", events[0].RunnerID)
	assert.InDelta(t, 0, events[0].Distance, 0.001)
}

func TestDetectCatches_InfiniteThreshold(t *testing.T) {
	// Unknown distances are +Inf; an infinite threshold must not turn
	// them into catches. A pair of players who never reported a
	// location stays uncaught no matter how large the threshold is.
	players := []*PlayerLocation{
		{Player: &Player{ID: "h1", Role: RoleHunter}},
		{Player: &Player{ID: "r1", Role: RoleRunner}},
	}

	events := DetectCatches(players, math.Inf(1))
	assert.Len(t, events, 0, "unknown-location pair must never catch")
	assert.Equal(t, StatusReady, players[1].Player.Status)

	// Known locations do match an infinite threshold, however far apart.
	players = []*PlayerLocation{
		hunterAt("h1", 0, 0),
		runnerAt("r1", 45, 90),
	}
	events = DetectCatches(players, math.Inf(1))
	assert.Len(t, events, 1)
}

func TestDetectCatches_NaNThresholdNeverCatches(t *testing.T) {
	players := []*PlayerLocation{
		hunterAt("h1", 10.0, 10.0),
		runnerAt("r1", 10.0, 10.0),
	}

	events := DetectCatches(players, math.NaN())
	assert.Len(t, events, 0)
	assert.Equal(t, StatusReady, players[1].Player.Status)
}

func TestDetectCatches_Idempotent(t *testing.T) {
	players := []*PlayerLocation{
		hunterAt("h1", 10.0, 10.0),
		runnerAt("r1", 10.0, 10.0),
	}

	first := DetectCatches(players, 30)
	assert.Len(t, first, 1)
	assert.Equal(t, StatusCaught, players[1].Player.Status)

	// Repeated passes converge: caught stays caught, no new events.
	for i := 0; i < 5; i++ {
		events := DetectCatches(players, 30)
		assert.Len(t, events, 0)
		assert.Equal(t, StatusCaught, players[1].Player.Status)
	}
}

func TestNearestOpponentDistance(t *testing.T) {
	players := []*PlayerLocation{
		hunterAt("h1", 0, 0.001), // ~111 m from origin
		hunterAt("h2", 0, 0.01),  // ~1112 m
		runnerAt("r1", 0, 0),
		runnerAt("r2", 0, 0.0001), // another runner, never an opponent
	}

	nearest := NearestOpponentDistance(players, players[2])
	assert.InDelta(t, 111.2, nearest, 1)

	// Hunter's nearest opponent is the closest runner.
	nearest = NearestOpponentDistance(players, players[0])
	assert.InDelta(t, 100.1, nearest, 1)
}

func TestNearestOpponentDistance_NoOpponents(t *testing.T) {
	players := []*PlayerLocation{
		runnerAt("r1", 0, 0),
		runnerAt("r2", 0, 0.001),
	}
	assert.True(t, math.IsInf(NearestOpponentDistance(players, players[0]), 1))
}
