package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CurtisFaughnan/Lanyard-APP-WEB/internal/dto"
	"github.com/CurtisFaughnan/Lanyard-APP-WEB/internal/middleware"
	"github.com/CurtisFaughnan/Lanyard-APP-WEB/pkg/response"
)

// HomeMessage is the liveness text served at the root path.
const HomeMessage = "✅ Lanyard API is running and connected to Google Sheets."

type lookupService interface {
	Lookup(ctx context.Context, rawID string) (*dto.LookupResult, bool, error)
	InvalidateCache(ctx context.Context) error
	CacheEnabled() bool
	Ready() error
}

// LookupHandler exposes the student lookup endpoints.
type LookupHandler struct {
	service lookupService
}

// NewLookupHandler constructs LookupHandler.
func NewLookupHandler(service lookupService) *LookupHandler {
	return &LookupHandler{service: service}
}

// Home godoc
// @Summary Liveness banner
// @Tags Lookup
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *LookupHandler) Home(c *gin.Context) {
	response.Text(c, http.StatusOK, HomeMessage)
}

// Student godoc
// @Summary Look up a student's scan count and tier
// @Tags Lookup
// @Produce json
// @Param id query string true "Student ID"
// @Success 200 {object} dto.LookupResult
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/student [get]
func (h *LookupHandler) Student(c *gin.Context) {
	result, cacheHit, err := h.service.Lookup(c.Request.Context(), c.Query("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.service.CacheEnabled() {
		middleware.SetCacheHit(c, cacheHit)
	}
	response.JSON(c, http.StatusOK, result)
}

// InvalidateCache godoc
// @Summary Drop the cached roster
// @Tags Lookup
// @Success 204
// @Failure 500 {object} response.ErrorBody
// @Router /api/cache/invalidate [post]
func (h *LookupHandler) InvalidateCache(c *gin.Context) {
	if err := h.service.InvalidateCache(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Ready godoc
// @Summary Readiness check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} response.ErrorBody
// @Router /ready [get]
func (h *LookupHandler) Ready(c *gin.Context) {
	if err := h.service.Ready(); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
