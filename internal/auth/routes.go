package auth

import (
	"county-portal-api/internal/logs"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, authService *AuthService, logService *logs.LogService, jwtSecret string) {
	authController := &AuthController{AuthService: authService, LS: logService, JWTSecret: jwtSecret}

	user := r.Group("/api/user")
	{
		user.POST("/signup", authController.SignUp)
		user.POST("/login", authController.Login)
		user.POST("/logout", authController.Logout)
		user.POST("/refresh", authController.Refresh)
		user.GET("/me", authController.Me)
	}
}
