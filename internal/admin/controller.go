package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"county-portal-api/internal/geocode"
	"county-portal-api/internal/logs"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminService AdminServiceAPI
	LogService   logs.AuditLogger
}

// Backfill geocodes every record of the requested kind that lacks coordinates.
// Clients sending Accept: text/event-stream receive one "progress" event per record
// and a final "done" event carrying the report.
func (ac *AdminController) Backfill(c *gin.Context) {
	var req BackfillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.Contains(c.GetHeader("Accept"), "text/event-stream") {
		ac.streamBackfill(c, req.Kind)
		return
	}

	report, err := ac.AdminService.Backfill(c.Request.Context(), req.Kind, nil)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ac.audit(c, req.Kind, report)

	c.JSON(http.StatusOK, gin.H{
		"message": "Backfill completed",
		"report":  report,
	})
}

func (ac *AdminController) streamBackfill(c *gin.Context, kind string) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")

	report, err := ac.AdminService.Backfill(c.Request.Context(), kind, func(p geocode.Progress) {
		c.SSEvent("progress", p)
		c.Writer.Flush()
	})
	if err != nil {
		c.SSEvent("error", gin.H{"error": err.Error()})
		return
	}
	ac.audit(c, kind, report)
	c.SSEvent("done", report)
	c.Writer.Flush()
}

func (ac *AdminController) audit(c *gin.Context, kind string, r geocode.Report) {
	logs.Audit(ac.LogService, c, logs.SystemLog{
		Service: "admin",
		Action:  "BACKFILL_COORDINATES",
		Message: fmt.Sprintf("Backfill %s: %d processed, %d updated, %d skipped, %d failed",
			kind, r.Total, r.Updated, r.Skipped, r.Failed),
	}, r)
}

func (ac *AdminController) ExportCouncils(c *gin.Context) {
	format := c.DefaultQuery("format", FormatXLSX)

	contentType, filename, data, err := ac.AdminService.ExportCouncils(c.Request.Context(), format)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	logs.Audit(ac.LogService, c, logs.SystemLog{
		Service: "admin",
		Action:  "EXPORT_COUNCILS",
		Message: "Exported council directory as " + format,
	}, nil)

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownKind), errors.Is(err, ErrUnknownFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
