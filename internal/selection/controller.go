package selection

import (
	"context"
	"errors"
	"net/http"

	"county-portal-api/internal/county"
	"county-portal-api/internal/entity"

	"github.com/gin-gonic/gin"
)

type CountyLookup interface {
	Get(ctx context.Context, id uint) (*county.County, error)
}

type SelectionController struct {
	Counties CountyLookup
}

type selectRequest struct {
	CountyID uint `json:"county_id" binding:"required"`
}

func (sc *SelectionController) Select(c *gin.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	found, err := sc.Counties.Get(c.Request.Context(), req.CountyID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	snap := FromCounty(found)
	value, err := Encode(snap)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	write(c, value, cookieMaxAge)

	c.JSON(http.StatusOK, gin.H{
		"message":  "County selected successfully",
		"selected": snap,
	})
}

func (sc *SelectionController) Current(c *gin.Context) {
	s, ok := FromContext(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"selected": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": s})
}

func (sc *SelectionController) Clear(c *gin.Context) {
	write(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Selection cleared"})
}
