package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ugaemi/sullaejapgi-server/internal/game"
	"github.com/ugaemi/sullaejapgi-server/internal/store"
)

// RoomHandler handles room lifecycle requests.
type RoomHandler struct {
	store store.Store
}

// NewRoomHandler creates a new room handler.
func NewRoomHandler(st store.Store) *RoomHandler {
	return &RoomHandler{store: st}
}

type createRoomRequest struct {
	StartRadius   int `json:"start_radius"`
	ShrinkStepSec int `json:"shrink_step_sec"`
	ShrinkAmount  int `json:"shrink_amount"`
}

// CreateRoom creates a room. Config values are clamped server-side, so
// any numeric input is accepted.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid room config"})
		return
	}

	room, err := h.store.CreateRoom(c.Request.Context(), game.RoomConfig{
		StartRadius:   req.StartRadius,
		ShrinkStepSec: req.ShrinkStepSec,
		ShrinkAmount:  req.ShrinkAmount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("room created", "code", room.Code, "start_radius", room.Config.StartRadius)
	c.JSON(http.StatusCreated, room)
}

// ListRooms returns all rooms.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.store.ListRooms(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if rooms == nil {
		rooms = []*game.Room{}
	}
	c.JSON(http.StatusOK, rooms)
}

type roomInfoResponse struct {
	*game.Room
	ZoneRadius int       `json:"zone_radius"`
	Now        time.Time `json:"now"`
}

// GetRoom returns a room with its live zone radius.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	code := c.Param("code")
	room, err := h.store.GetRoom(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	c.JSON(http.StatusOK, roomInfoResponse{
		Room:       room,
		ZoneRadius: game.ZoneRadius(room, now),
		Now:        now,
	})
}

// StartRoom begins the shrink countdown. Starting twice is a no-op.
func (h *RoomHandler) StartRoom(c *gin.Context) {
	code := c.Param("code")
	if err := h.store.StartRoom(c.Request.Context(), code, time.Now()); err != nil {
		respondError(c, err)
		return
	}

	slog.Info("room started", "code", game.NormalizeCode(code))
	c.Status(http.StatusNoContent)
}
