// Package httpapi wires the gin engine: middleware, routes, and handlers.
package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/scorestack/rankboard-server/internal/env"
	"github.com/scorestack/rankboard-server/internal/httpapi/handlers"
	"github.com/scorestack/rankboard-server/internal/httpapi/middleware"
	"github.com/scorestack/rankboard-server/internal/rankcell"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine serving the scoreboard's HTTP surface.
func NewRouter(cfg env.Config, cell *rankcell.Cell, log *zap.Logger) *gin.Engine {
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	_ = r.SetTrustedProxies(nil)

	r.Use(gin.Recovery())

	if cfg.IsDev() {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.ZapLogger(log))
	r.Use(middleware.CapConcurrentRequests(cfg.MaxConcurrentRequests))

	h := handlers.New(cell, log, cfg.RequestBodyLimitBytes)

	r.POST("/score", h.AddScore)
	r.GET("/score/:userId/position", h.GetPosition)
	r.GET("/highscorelist", h.HighScoreList)

	return r
}
