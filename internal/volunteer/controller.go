package volunteer

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"county-portal-api/internal/access"
	"county-portal-api/internal/entity"
	"county-portal-api/internal/logs"
	"county-portal-api/internal/middlewares"
	"county-portal-api/internal/selection"
	"county-portal-api/internal/util"

	"github.com/gin-gonic/gin"
)

type VolunteerController struct {
	Service    VolunteerServiceAPI
	LogService logs.AuditLogger
}

func (vc *VolunteerController) List(c *gin.Context) {
	county, ok := selection.Require(c)
	if !ok {
		return
	}

	services, err := vc.Service.List(c.Request.Context(), ListFilter{
		County:   county,
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Volunteer services fetched successfully",
		"county":   county,
		"services": services,
	})
}

func (vc *VolunteerController) Get(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := vc.Service.Detail(c.Request.Context(), id, middlewares.CurrentIdentity(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Volunteer service fetched successfully",
		"service": detail,
	})
}

func (vc *VolunteerController) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	county, _ := selection.Resolve(c)
	if req.County == "" && county == "" {
		c.JSON(http.StatusConflict, gin.H{"error": selection.ErrNoCounty})
		return
	}

	svc, err := vc.Service.Create(c.Request.Context(), req, middlewares.CurrentIdentity(c), county)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	vc.audit(c, "CREATE", fmt.Sprintf("Created volunteer service %q", svc.Name), svc.County)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Volunteer service created successfully",
		"service": svc,
	})
}

func (vc *VolunteerController) Update(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch, cols, err := entity.DecodePatch[Service](body, updatableColumns)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := vc.Service.Update(c.Request.Context(), id, patch, cols, middlewares.CurrentIdentity(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	vc.audit(c, "UPDATE", fmt.Sprintf("Updated volunteer service %q", svc.Name), svc.County)
	c.JSON(http.StatusOK, gin.H{
		"message": "Volunteer service updated successfully",
		"service": svc,
	})
}

func (vc *VolunteerController) Delete(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := vc.Service.Delete(c.Request.Context(), id, middlewares.CurrentIdentity(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	vc.audit(c, "DELETE", fmt.Sprintf("Deleted volunteer service %d", id), svc.County)
	c.JSON(http.StatusOK, gin.H{"message": "Volunteer service deleted successfully"})
}

func (vc *VolunteerController) Apply(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := vc.Service.Apply(c.Request.Context(), id, req, middlewares.CurrentIdentity(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	vc.audit(c, "APPLY", fmt.Sprintf("%s applied to %q", app.ApplicantEmail, app.ServiceName), app.County)
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted successfully",
		"application": app,
	})
}

func (vc *VolunteerController) audit(c *gin.Context, action, message, county string) {
	logs.Audit(vc.LogService, c, logs.SystemLog{
		Service: "volunteer",
		Action:  action,
		Message: message,
		County:  county,
	}, nil)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrDuplicate), errors.Is(err, ErrAlreadyApplied):
		return http.StatusConflict
	case errors.Is(err, entity.ErrInvalidField):
		return http.StatusBadRequest
	case errors.Is(err, access.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
