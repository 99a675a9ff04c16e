package handler

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ugaemi/sullaejapgi-server/internal/game"
)

// StateHandler serves the per-poll game state computation.
type StateHandler struct {
	engine *game.Engine
}

// NewStateHandler creates a new state handler.
func NewStateHandler(engine *game.Engine) *StateHandler {
	return &StateHandler{engine: engine}
}

// GetState runs one engine pass and returns the viewer-scoped state.
// Note that this is not a pure read: newly detected catches are
// persisted during the request.
func (h *StateHandler) GetState(c *gin.Context) {
	code := c.Param("code")
	viewerID := c.Query("viewer")
	catchMeters := parseCatchMeters(c.Query("catch_meters"))

	state, err := h.engine.ComputeState(c.Request.Context(), code, viewerID, catchMeters, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// parseCatchMeters returns the per-request catch threshold, falling back
// to the default when the parameter is absent, non-numeric, or not
// finite. ParseFloat accepts "Inf" and "NaN", which are meaningless as
// thresholds.
func parseCatchMeters(raw string) float64 {
	if raw == "" {
		return game.DefaultCatchMeters
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return game.DefaultCatchMeters
	}
	return v
}
