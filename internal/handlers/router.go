package handlers

import (
	"github.com/gin-gonic/gin"

	"audioproxy/internal/resolution"
)

// NewRouter builds the gin engine with middleware and all API routes
func NewRouter(service *resolution.TrackResolutionService, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger())
	router.Use(CORS(allowedOrigins))

	NewResolutionHandler(service).RegisterRoutes(router.Group("/api/genius"))

	return router
}
