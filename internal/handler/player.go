package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ugaemi/sullaejapgi-server/internal/game"
	"github.com/ugaemi/sullaejapgi-server/internal/store"
)

// PlayerHandler handles player lifecycle and location requests.
type PlayerHandler struct {
	store store.Store
}

// NewPlayerHandler creates a new player handler.
func NewPlayerHandler(st store.Store) *PlayerHandler {
	return &PlayerHandler{store: st}
}

type joinRequest struct {
	Name string `json:"name"`
	Role string `json:"role"` // "runner" or anything else for hunter
}

// Join adds a player to a room. Role defaults to hunter unless the
// request says "runner".
func (h *PlayerHandler) Join(c *gin.Context) {
	code := c.Param("code")

	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name is required"})
		return
	}

	player, err := h.store.JoinPlayer(c.Request.Context(), code, req.Name, game.ParseRole(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("player joined", "player", player.ID, "name", player.Name, "room", player.RoomCode, "role", player.Role.String())
	c.JSON(http.StatusCreated, player)
}

// Leave removes a player and their location record.
func (h *PlayerHandler) Leave(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.LeavePlayer(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	slog.Info("player left", "player", id)
	c.Status(http.StatusNoContent)
}

type locationRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// UpdateLocation upserts the player's single location record.
func (h *PlayerHandler) UpdateLocation(c *gin.Context) {
	id := c.Param("id")

	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Lat == nil || req.Lng == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "lat and lng are required"})
		return
	}
	if !game.ValidCoordinate(*req.Lat, *req.Lng) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid coordinates"})
		return
	}

	if err := h.store.UpsertLocation(c.Request.Context(), id, *req.Lat, *req.Lng, time.Now()); err != nil {
		respondError(c, err)
		return
	}

	slog.Debug("location updated", "player", id, "lat", *req.Lat, "lng", *req.Lng)
	c.Status(http.StatusNoContent)
}
