package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"audioproxy/internal/handlers/render"
	"audioproxy/internal/resolution"
)

// ResolutionHandler serves the Genius resolution endpoints
type ResolutionHandler struct {
	service *resolution.TrackResolutionService
}

// NewResolutionHandler creates a new resolution handler
func NewResolutionHandler(service *resolution.TrackResolutionService) *ResolutionHandler {
	return &ResolutionHandler{service: service}
}

// RegisterRoutes mounts the handler under group
func (h *ResolutionHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/search", h.SearchByArtistAndTrack)
	group.GET("/search-by-filename", h.SearchByFilename)
	group.GET("/samples/:songId", h.GetSampleInfo)
	group.GET("/health", h.Health)
}

// SearchByArtistAndTrack handles GET /api/genius/search?artist=&trackName=
func (h *ResolutionHandler) SearchByArtistAndTrack(c *gin.Context) {
	artist := c.Query("artist")
	track := c.Query("trackName")

	match, err := h.service.SearchByArtistAndTrack(c.Request.Context(), artist, track)
	if err != nil {
		render.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, render.NewSearchResponse(match))
}

// SearchByFilename handles GET /api/genius/search-by-filename?filename=
func (h *ResolutionHandler) SearchByFilename(c *gin.Context) {
	filename := c.Query("filename")

	track, err := h.service.SearchByFilename(c.Request.Context(), filename)
	if err != nil {
		render.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, track)
}

// GetSampleInfo handles GET /api/genius/samples/:songId
func (h *ResolutionHandler) GetSampleInfo(c *gin.Context) {
	info, err := h.service.GetSampleInfo(c.Request.Context(), c.Param("songId"))
	if err != nil {
		render.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// Health handles GET /api/genius/health
func (h *ResolutionHandler) Health(c *gin.Context) {
	if err := h.service.Health(c.Request.Context()); err != nil {
		slog.Warn("Genius health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, render.HealthResponse{
			Status: "unhealthy",
			Error:  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, render.HealthResponse{Status: "ok"})
}
