package government

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"county-portal-api/internal/entity"
	"county-portal-api/internal/logs"
	"county-portal-api/internal/middlewares"
	"county-portal-api/internal/selection"
	"county-portal-api/internal/util"

	"github.com/gin-gonic/gin"
)

type GovernmentController struct {
	Service    GovernmentServiceAPI
	LogService logs.AuditLogger
}

func (gc *GovernmentController) Overview(c *gin.Context) {
	county, ok := selection.Require(c)
	if !ok {
		return
	}

	ov, err := gc.Service.Overview(c.Request.Context(), county)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Government overview fetched successfully",
		"overview": ov,
	})
}

func (gc *GovernmentController) ListCouncils(c *gin.Context) {
	county, ok := selection.Require(c)
	if !ok {
		return
	}

	councils, err := gc.Service.ListCouncils(c.Request.Context(), Kind(c.Param("kind")), county)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Councils fetched successfully",
		"councils": councils,
	})
}

func (gc *GovernmentController) CreateCouncil(c *gin.Context) {
	kind := Kind(c.Param("kind"))
	rec, _, err := NewCouncil(kind)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if err := c.ShouldBindJSON(rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(rec.Base().Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "council name is required"})
		return
	}

	county, _ := selection.Resolve(c)
	if rec.Base().County == "" && county == "" {
		c.JSON(http.StatusConflict, gin.H{"error": selection.ErrNoCounty})
		return
	}

	if err := gc.Service.CreateCouncil(c.Request.Context(), rec, middlewares.CurrentIdentity(c), county); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	gc.audit(c, "CREATE", fmt.Sprintf("Created %s council %q", kind, rec.Base().Name), rec.Base().County)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Council created successfully",
		"council": rec,
	})
}

func (gc *GovernmentController) UpdateCouncil(c *gin.Context) {
	kind := Kind(c.Param("kind"))
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
	patch, cols, err := decodeCouncilPatch(kind, body)
	if errors.Is(err, ErrUnknownKind) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := gc.Service.UpdateCouncil(c.Request.Context(), kind, id, patch, cols)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	gc.audit(c, "UPDATE", fmt.Sprintf("Updated %s council %q", kind, rec.Base().Name), rec.Base().County)
	c.JSON(http.StatusOK, gin.H{
		"message": "Council updated successfully",
		"council": rec,
	})
}

func (gc *GovernmentController) DeleteCouncil(c *gin.Context) {
	kind := Kind(c.Param("kind"))
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := gc.Service.DeleteCouncil(c.Request.Context(), kind, id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	gc.audit(c, "DELETE", fmt.Sprintf("Deleted %s council %d", kind, id), "")
	c.JSON(http.StatusOK, gin.H{"message": "Council deleted successfully"})
}

func (gc *GovernmentController) Apply(c *gin.Context) {
	var req CommunityApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	county, _ := selection.Resolve(c)
	if req.County == "" && county == "" {
		c.JSON(http.StatusConflict, gin.H{"error": selection.ErrNoCounty})
		return
	}

	app, err := gc.Service.Apply(c.Request.Context(), req, middlewares.CurrentIdentity(c), county)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	gc.audit(c, "APPLY", fmt.Sprintf("%s applied for %s", app.ApplicantEmail, app.OrganisationLevel), app.County)
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted successfully",
		"application": app,
	})
}

func (gc *GovernmentController) audit(c *gin.Context, action, message, county string) {
	logs.Audit(gc.LogService, c, logs.SystemLog{
		Service: "government",
		Action:  action,
		Message: message,
		County:  county,
	}, nil)
}

func decodeCouncilPatch(kind Kind, body []byte) (Council, []string, error) {
	_, allowed, err := NewCouncil(kind)
	if err != nil {
		return nil, nil, err
	}
	switch kind {
	case KindCounty:
		return decodeAs[CountyCouncil](body, allowed)
	case KindDistrict:
		return decodeAs[DistrictCouncil](body, allowed)
	default:
		return decodeAs[ParishCouncil](body, allowed)
	}
}

func decodeAs[T any, PT interface {
	*T
	Council
}](body []byte, allowed map[string]bool) (Council, []string, error) {
	patch, cols, err := entity.DecodePatch[T](body, allowed)
	if err != nil {
		return nil, nil, err
	}
	return PT(patch), cols, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownKind), errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, entity.ErrInvalidField):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
