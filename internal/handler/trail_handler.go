package handler

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/trails-backend-go/internal/middleware"
	"github.com/jengzang/trails-backend-go/internal/models"
	"github.com/jengzang/trails-backend-go/internal/service"
	"github.com/jengzang/trails-backend-go/pkg/response"
)

// TrailService is the subset of service.TrailService the handler calls
type TrailService interface {
	Search(ctx context.Context, filters models.Filters) (*models.SearchResponse, error)
	Chat(ctx context.Context, message, requestID string) (*models.ChatResponse, error)
	Parse(ctx context.Context, message string) (*models.ParseResponse, error)
	Browse(ctx context.Context, filter models.BrowseFilter) (*models.TrailsResponse, error)
	GetTrail(ctx context.Context, id int64) (*models.TrailDetail, error)
	Seed(ctx context.Context) (*models.SeedResponse, error)
	Health(ctx context.Context) (*models.HealthResponse, error)
}

// TrailHandler handles HTTP requests for trail search
type TrailHandler struct {
	service TrailService
	logger  *slog.Logger
}

// NewTrailHandler creates a new trail handler
func NewTrailHandler(service TrailService, logger *slog.Logger) *TrailHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TrailHandler{service: service, logger: logger.With("component", "trail-handler")}
}

// Chat answers a natural-language trail request
// POST /api/v1/chat
func (h *TrailHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		response.BadRequest(c, "Message must not be empty")
		return
	}

	resp, err := h.service.Chat(c.Request.Context(), req.Message, middleware.GetRequestID(c))
	if err != nil {
		h.fail(c, "chat", err)
		return
	}

	response.Success(c, resp)
}

// Search runs a structured search
// POST /api/v1/search
func (h *TrailHandler) Search(c *gin.Context) {
	var filters models.Filters
	if err := c.ShouldBindJSON(&filters); err != nil {
		response.BadRequest(c, "Invalid filters")
		return
	}

	resp, err := h.service.Search(c.Request.Context(), filters)
	if err != nil {
		h.fail(c, "search", err)
		return
	}

	response.Success(c, resp)
}

// Browse lists trails, optionally within an area
// GET /api/v1/trails?area=&limit=
func (h *TrailHandler) Browse(c *gin.Context) {
	var filter models.BrowseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	resp, err := h.service.Browse(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, "browse", err)
		return
	}

	response.Success(c, resp)
}

// GetTrail retrieves a trail by ID
// GET /api/v1/trails/:id
func (h *TrailHandler) GetTrail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid trail ID")
		return
	}

	trail, err := h.service.GetTrail(c.Request.Context(), id)
	if errors.Is(err, service.ErrTrailNotFound) {
		response.NotFound(c, "Trail not found")
		return
	}
	if err != nil {
		h.fail(c, "get trail", err)
		return
	}

	response.Success(c, trail)
}

// Parse shows the filters a message would produce
// POST /api/v1/debug/parse
func (h *TrailHandler) Parse(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Parse(c.Request.Context(), req.Message)
	if err != nil {
		h.fail(c, "parse", err)
		return
	}

	response.Success(c, resp)
}

// Seed reloads the bundled trail dataset
// POST /api/v1/seed
func (h *TrailHandler) Seed(c *gin.Context) {
	resp, err := h.service.Seed(c.Request.Context())
	if err != nil {
		h.fail(c, "seed", err)
		return
	}

	response.Success(c, resp)
}

// Health reports liveness and catalog size
// GET /health
func (h *TrailHandler) Health(c *gin.Context) {
	resp, err := h.service.Health(c.Request.Context())
	if err != nil {
		h.logger.Error("health check failed", "err", err)
		response.ServiceUnavailable(c, "Trail catalog unavailable")
		return
	}

	response.Success(c, resp)
}

func (h *TrailHandler) fail(c *gin.Context, op string, err error) {
	_ = c.Error(err)
	h.logger.Error(op+" failed", "err", err, "request_id", middleware.GetRequestID(c))
	response.InternalError(c, "Failed to "+op)
}
