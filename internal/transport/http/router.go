package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"quiz-racer/internal/app"
)

// NewRouter mounts the health check, the leaderboard API and the game socket.
func NewRouter(service *app.GameService) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC()})
	})

	leaderboard := NewLeaderboardHandler(service)
	r.GET("/api/leaderboard", leaderboard.List)

	ws := NewWSHandler(service)
	r.GET("/ws", func(c *gin.Context) {
		ws.ServeWS(c.Writer, c.Request)
	})
	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.Request.URL.Path
		if path == "/healthz" {
			return
		}
		log.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("dur", time.Since(start)).
			Msg("http")
	}
}
