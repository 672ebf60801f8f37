package event

import (
	"county-portal-api/internal/logs"
	"county-portal-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, eventService *EventService, logService *logs.LogService, jwtSecret string) {
	eventController := &EventController{Service: eventService, LogService: logService}

	public := r.Group("/api/events")
	public.Use(middlewares.OptionalAuth(jwtSecret))
	{
		public.GET("", eventController.List)
		public.GET("/:id", eventController.Get)
		public.GET("/:id/calendar.ics", eventController.Calendar)
	}

	group := r.Group("/api/events")
	group.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		group.POST("", eventController.Create)
		group.PUT("/:id", eventController.Update)
		group.DELETE("/:id", eventController.Delete)
		group.POST("/:id/rsvp", eventController.RSVP)
	}
}
