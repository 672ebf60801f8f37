package geocode

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"county-portal-api/internal/selection"

	"github.com/gin-gonic/gin"
)

type LookupService interface {
	Lookup(ctx context.Context, location, county string) (Coordinates, bool, error)
}

type GeocodeController struct {
	Service LookupService
}

type lookupRequest struct {
	Location string `json:"location"`
	County   string `json:"county"`
}

func (gc *GeocodeController) Lookup(c *gin.Context) {
	var req lookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	county := strings.TrimSpace(req.County)
	if county == "" {
		county, _ = selection.Resolve(c)
	}

	coords, found, err := gc.Service.Lookup(c.Request.Context(), req.Location, county)
	if err != nil {
		if errors.Is(err, ErrEmptyLocation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error looking up coordinates. Please try again."})
		return
	}

	if !found {
		c.JSON(http.StatusOK, gin.H{
			"found":   false,
			"message": "Could not find coordinates for this location. Please check the address and try again.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found":     true,
		"latitude":  coords.Latitude,
		"longitude": coords.Longitude,
	})
}
