package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tuncanbit/txe/internal/application/replayservice"
	"github.com/tuncanbit/txe/internal/server/middleware"
	"github.com/tuncanbit/txe/pkg/config"
)

type Handlers struct {
	ReplaySvc replayservice.IReplayService
	Logger    zerolog.Logger
	Config    *config.Config
}

func New(replaySvc replayservice.IReplayService, logger zerolog.Logger, config *config.Config) *Handlers {
	return &Handlers{
		ReplaySvc: replaySvc,
		Logger:    logger,
		Config:    config,
	}
}

func (h *Handlers) SetupHandlers(router *gin.Engine) {
	mw := middleware.NewMiddleware(h.Config.Security.APIKey, h.Logger)
	mw.SetupMiddleware(router)

	replayHandler := NewReplayHandler(h.ReplaySvc, h.Logger)
	healthHandler := NewHealthHandler()

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	v1 := router.Group("/v1")
	v1.Use(mw.APIKeyMiddleware())
	{
		v1.POST("/replay", replayHandler.Replay)
	}
}
