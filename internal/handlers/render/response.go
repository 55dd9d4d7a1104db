package render

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"audioproxy/internal/models"
	"audioproxy/internal/resolution"
)

// SearchResponse is the body of a successful artist/track search
type SearchResponse struct {
	SongURL      string `json:"songUrl"`
	GeniusSongID string `json:"geniusSongId"`
}

// HealthResponse reports the status of the service and its upstream
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// NewSearchResponse keeps only the fields exposed by the search endpoint
func NewSearchResponse(match *models.MatchResult) SearchResponse {
	return SearchResponse{
		SongURL:      match.URL,
		GeniusSongID: match.SongID,
	}
}

// StatusFor maps a resolution error to an HTTP status code
func StatusFor(err error) int {
	switch {
	case errors.Is(err, resolution.ErrInvalidInput), errors.Is(err, resolution.ErrInvalidFormat):
		return http.StatusBadRequest
	case errors.Is(err, resolution.ErrSongNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as a JSON error body with the status from StatusFor.
// Server errors are logged; client errors are not.
func Error(c *gin.Context, err error) {
	status := StatusFor(err)

	switch status {
	case http.StatusBadRequest:
		c.JSON(status, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
	case http.StatusNotFound:
		c.JSON(status, gin.H{
			"error":   "Song not found",
			"details": err.Error(),
		})
	default:
		slog.Error("Request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err)
		c.JSON(status, gin.H{
			"error":   "Server error: " + err.Error(),
			"details": err.Error(),
		})
	}
}
