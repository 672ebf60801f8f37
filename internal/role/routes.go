package role

import (
	"county-portal-api/internal/auth"
	"county-portal-api/internal/logs"
	"county-portal-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, roleService *RoleService, logService *logs.LogService, jwtSecret string) {
	roleController := &RoleController{RoleService: roleService, LogService: logService}

	roleGroup := r.Group("/api/role")
	roleGroup.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		roleGroup.GET("", roleController.GetAllRoles)
		roleGroup.PUT("/users/:id", middlewares.RequireRole(auth.RoleAdmin), roleController.AssignRole)
	}
}
