package geocode

import (
	"county-portal-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, enricher *Enricher, jwtSecret string) {
	geocodeController := &GeocodeController{Service: enricher}

	group := r.Group("/api/geocode")
	group.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		group.POST("", geocodeController.Lookup)
	}
}
