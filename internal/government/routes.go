package government

import (
	"county-portal-api/internal/auth"
	"county-portal-api/internal/logs"
	"county-portal-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, governmentService *GovernmentService, logService *logs.LogService, jwtSecret string) {
	governmentController := &GovernmentController{Service: governmentService, LogService: logService}

	public := r.Group("/api/government")
	{
		public.GET("", governmentController.Overview)
		public.GET("/:kind", governmentController.ListCouncils)
	}

	group := r.Group("/api/government")
	group.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		group.POST("/applications", governmentController.Apply)
	}

	admin := r.Group("/api/government")
	admin.Use(middlewares.AuthMiddleware(jwtSecret), middlewares.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/:kind", governmentController.CreateCouncil)
		admin.PUT("/:kind/:id", governmentController.UpdateCouncil)
		admin.DELETE("/:kind/:id", governmentController.DeleteCouncil)
	}
}
