package heritage

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

type HeritageController struct {
	Service    HeritageServiceAPI
	LogService logs.AuditLogger
}

func (hc *HeritageController) List(c *gin.Context) {
	county, ok := selection.Require(c)
	if !ok {
		return
	}

	records, err := hc.Service.List(c.Request.Context(), ListFilter{
		County:   county,
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Heritage records fetched successfully",
		"county":  county,
		"records": records,
	})
}

func (hc *HeritageController) Get(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := hc.Service.Detail(c.Request.Context(), id, middlewares.CurrentIdentity(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Heritage record fetched successfully",
		"record":  rec,
	})
}

func (hc *HeritageController) Create(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	county, _ := selection.Resolve(c)
	if req.County == "" && county == "" {
		c.JSON(http.StatusConflict, gin.H{"error": selection.ErrNoCounty})
		return
	}

	rec, err := hc.Service.Create(c.Request.Context(), req, middlewares.CurrentIdentity(c), county)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	hc.audit(c, "CREATE", fmt.Sprintf("Submitted heritage record %q", rec.Title), rec.County)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Heritage record submitted for review",
		"record":  rec,
	})
}

func (hc *HeritageController) Update(c *gin.Context) {
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
	patch, cols, err := entity.DecodePatch[HeritageRecord](body, updatableColumns)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := hc.Service.Update(c.Request.Context(), id, patch, cols, middlewares.CurrentIdentity(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	hc.audit(c, "UPDATE", fmt.Sprintf("Updated heritage record %q", rec.Title), rec.County)
	c.JSON(http.StatusOK, gin.H{
		"message": "Heritage record updated successfully",
		"record":  rec,
	})
}

func (hc *HeritageController) Delete(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := hc.Service.Delete(c.Request.Context(), id, middlewares.CurrentIdentity(c))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	hc.audit(c, "DELETE", fmt.Sprintf("Deleted heritage record %d", id), rec.County)
	c.JSON(http.StatusOK, gin.H{"message": "Heritage record deleted successfully"})
}

func (hc *HeritageController) audit(c *gin.Context, action, message, county string) {
	logs.Audit(hc.LogService, c, logs.SystemLog{
		Service: "heritage",
		Action:  action,
		Message: message,
		County:  county,
	}, nil)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, entity.ErrInvalidField):
		return http.StatusBadRequest
	case errors.Is(err, access.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
