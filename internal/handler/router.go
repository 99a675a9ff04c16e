package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ugaemi/sullaejapgi-server/internal/game"
	"github.com/ugaemi/sullaejapgi-server/internal/store"
)

// NewRouter builds the HTTP API around the given store and engine.
func NewRouter(st store.Store, engine *game.Engine) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	roomH := NewRoomHandler(st)
	playerH := NewPlayerHandler(st)
	stateH := NewStateHandler(engine)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/rooms", roomH.CreateRoom)
		api.GET("/rooms", roomH.ListRooms)
		api.GET("/rooms/:code", roomH.GetRoom)
		api.POST("/rooms/:code/start", roomH.StartRoom)
		api.GET("/rooms/:code/state", stateH.GetState)

		api.POST("/rooms/:code/join", playerH.Join)
		api.DELETE("/players/:id", playerH.Leave)
		api.POST("/players/:id/location", playerH.UpdateLocation)
	}

	return r
}
