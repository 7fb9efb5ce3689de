package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CacheStatus reports the health of the weekly score cache.
type CacheStatus interface {
	GetStatus(ctx context.Context) (map[string]interface{}, error)
}

// RegisterHealthRoutes serves the service banner on "/". The cache section
// is only present when a cache is configured.
func RegisterHealthRoutes(router *gin.Engine, version string, historyEnabled bool, cacheStatus CacheStatus) {
	router.GET("/", func(c *gin.Context) {
		response := gin.H{
			"message": "Snacc Score API is running",
			"version": version,
			"status":  "healthy",
			"history": historyEnabled,
		}

		if cacheStatus != nil {
			status, err := cacheStatus.GetStatus(c.Request.Context())
			if err != nil {
				response["status"] = "degraded"
				response["cache"] = gin.H{"connected": false, "error": err.Error()}
			} else {
				response["cache"] = status
			}
		}

		c.JSON(http.StatusOK, response)
	})
}
