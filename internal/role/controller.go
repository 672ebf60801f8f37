package role

import (
	"errors"
	"fmt"
	"net/http"

	"county-portal-api/internal/entity"
	"county-portal-api/internal/logs"
	"county-portal-api/internal/util"

	"github.com/gin-gonic/gin"
)

type RoleController struct {
	RoleService RoleServiceAPI
	LogService  logs.AuditLogger
}

func (rc *RoleController) GetAllRoles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Roles fetched successfully",
		"roles":   rc.RoleService.GetAllRoles(),
	})
}

func (rc *RoleController) AssignRole(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := rc.RoleService.Assign(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	logs.Audit(rc.LogService, c, logs.SystemLog{
		Service: "role",
		Action:  "ASSIGN_ROLE",
		Message: fmt.Sprintf("Assigned role %s to %s", user.Role, user.Email),
		County:  user.County,
	}, req)

	c.JSON(http.StatusOK, gin.H{
		"message": "Role assigned successfully",
		"user":    user,
	})
}
