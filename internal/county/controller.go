package county

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"county-portal-api/internal/entity"
	"county-portal-api/internal/logs"
	"county-portal-api/internal/util"

	"github.com/gin-gonic/gin"
)

type CountyController struct {
	Service    CountyServiceAPI
	LogService logs.AuditLogger
}

func (cc *CountyController) List(c *gin.Context) {
	counties, err := cc.Service.List(c.Request.Context(), c.Query("search"), c.Query("country"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Counties fetched successfully",
		"counties": counties,
	})
}

func (cc *CountyController) Get(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	county, err := cc.Service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "County fetched successfully",
		"county":  county,
	})
}

func (cc *CountyController) Create(c *gin.Context) {
	var req CreateCountyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	county, err := cc.Service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	cc.audit(c, "CREATE", fmt.Sprintf("Created county %s", county.Name), county.Name)
	c.JSON(http.StatusCreated, gin.H{
		"message": "County created successfully",
		"county":  county,
	})
}

func (cc *CountyController) Update(c *gin.Context) {
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
	patch, cols, err := entity.DecodePatch[County](body, updatableColumns)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	county, err := cc.Service.Update(c.Request.Context(), id, patch, cols)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	cc.audit(c, "UPDATE", fmt.Sprintf("Updated county %s", county.Name), county.Name)
	c.JSON(http.StatusOK, gin.H{
		"message": "County updated successfully",
		"county":  county,
	})
}

func (cc *CountyController) Delete(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := cc.Service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	cc.audit(c, "DELETE", fmt.Sprintf("Deleted county %d", id), "")
	c.JSON(http.StatusOK, gin.H{"message": "County deleted successfully"})
}

func (cc *CountyController) audit(c *gin.Context, action, message, county string) {
	logs.Audit(cc.LogService, c, logs.SystemLog{
		Service: "county",
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
	default:
		return http.StatusInternalServerError
	}
}
