package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/trails-backend-go/internal/config"
	"github.com/jengzang/trails-backend-go/internal/handler"
	"github.com/jengzang/trails-backend-go/internal/middleware"
)

// Dependencies are the collaborators the router wires together
type Dependencies struct {
	Service handler.TrailService
	Limiter *middleware.RateLimiter
	Metrics http.Handler // served at /metrics when set
	Logger  *slog.Logger
}

// SetupRouter builds the HTTP routes
func SetupRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(logger.With("component", "http")),
		middleware.CORS(cfg.CORSOrigins),
		middleware.BodyLimit(middleware.MaxBodyBytes),
	)

	h := handler.NewTrailHandler(deps.Service, logger)

	r.GET("/health", h.Health)
	r.GET("/api/health", h.Health)
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	v1 := r.Group("/api/v1")
	if deps.Limiter != nil {
		v1.Use(middleware.RateLimit(deps.Limiter))
	}
	{
		v1.POST("/chat", h.Chat)
		v1.POST("/search", h.Search)

		trails := v1.Group("/trails")
		{
			trails.GET("", h.Browse)
			trails.GET("/:id", h.GetTrail)
		}

		v1.POST("/debug/parse", h.Parse)
		v1.POST("/seed", h.Seed)
	}

	return r
}
