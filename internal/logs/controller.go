package logs

import (
	"errors"
	"net/http"

	"county-portal-api/internal/util"

	"github.com/gin-gonic/gin"
)

// LogServiceAPI is the read side of the audit trail.
type LogServiceAPI interface {
	GetLogs(input LogFilterInput) ([]LogRow, LogAggregates, int64, int, error)
}

type LogController struct {
	LogService LogServiceAPI
}

// GetLogs pages through the audit trail. An empty body lists the last 30 days.
func (lc *LogController) GetLogs(c *gin.Context) {
	var input LogFilterInput
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	rows, aggs, total, totalPages, err := lc.LogService.GetLogs(input)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, util.ErrInvalidDate) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	page := input.Page
	if page <= 0 {
		page = 1
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Logs fetched successfully",
		"logs":        rows,
		"page":        page,
		"total":       total,
		"total_pages": totalPages,
		"aggregates":  aggs,
	})
}
