package militia

import (
	"fmt"
	"net/http"

	"county-portal-api/internal/logs"
	"county-portal-api/internal/middlewares"
	"county-portal-api/internal/selection"

	"github.com/gin-gonic/gin"
)

type MilitiaController struct {
	Service    MilitiaServiceAPI
	LogService logs.AuditLogger
}

func (mc *MilitiaController) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	county, _ := selection.Resolve(c)
	if req.County == "" && county == "" {
		c.JSON(http.StatusConflict, gin.H{"error": selection.ErrNoCounty})
		return
	}

	app, err := mc.Service.Apply(c.Request.Context(), req, middlewares.CurrentIdentity(c), county)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logs.Audit(mc.LogService, c, logs.SystemLog{
		Service: "militia",
		Action:  "APPLY",
		Message: fmt.Sprintf("%s applied to the %s militia", app.ApplicantEmail, app.County),
		County:  app.County,
	}, nil)
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted successfully",
		"application": app,
	})
}

func (mc *MilitiaController) Mine(c *gin.Context) {
	apps, err := mc.Service.Mine(c.Request.Context(), middlewares.CurrentIdentity(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Applications fetched successfully",
		"applications": apps,
	})
}
