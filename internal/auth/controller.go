package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"county-portal-api/internal/logs"
	"county-portal-api/internal/util"

	"github.com/gin-gonic/gin"
)

const loginFailed = "Oops! We couldn’t log you in. Please check your email and password and try again."

type AuthController struct {
	AuthService AuthServicePort
	LS          logs.AuditLogger
	JWTSecret   string
}

func (ac *AuthController) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	password, err := util.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	newuser, err := ac.AuthService.CreateUser(User{
		FullName: req.FullName,
		Email:    req.Email,
		County:   req.County,
		Password: password,
		Role:     RoleCitizen,
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	uid := newuser.ID
	logs.Audit(ac.LS, c, logs.SystemLog{
		Service: "auth",
		Action:  "SIGNUP",
		Message: fmt.Sprintf("Account created with email %s", newuser.Email),
		UserID:  &uid,
		County:  newuser.County,
	}, nil)

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    newuser.Identity(),
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.AuthService.GetUser(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": loginFailed})
		return
	}
	if err := util.VerifyPassword(req.Password, user.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": loginFailed})
		return
	}

	id := user.Identity()
	accessToken, err := IssueToken(ac.JWTSecret, id, accessTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	refreshTTL := 24 * time.Hour
	if req.RememberMe {
		refreshTTL = 30 * 24 * time.Hour
	}
	refreshToken, err := IssueToken(ac.JWTSecret, id, refreshTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	setCookie(c, AccessCookie, accessToken, 0)
	setCookie(c, RefreshCookie, refreshToken, 0)

	uid := user.ID
	logs.Audit(ac.LS, c, logs.SystemLog{
		Service: "auth",
		Action:  "LOGIN",
		Message: fmt.Sprintf("User logged in with email: %s", user.Email),
		UserID:  &uid,
		County:  user.County,
	}, gin.H{"remember_me": req.RememberMe})

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    id,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	setCookie(c, AccessCookie, "", -1)
	setCookie(c, RefreshCookie, "", -1)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (ac *AuthController) Me(c *gin.Context) {
	accessToken, err := c.Cookie(AccessCookie)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
		return
	}

	claims, err := ParseToken(ac.JWTSecret, accessToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	user, err := ac.AuthService.GetUserByID(claims.ID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Identity()})
}

// Refresh swaps a valid refresh token for a new access token.
func (ac *AuthController) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshCookie)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing refresh token"})
		return
	}

	id, err := ParseToken(ac.JWTSecret, refreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	// role and county come from the stored user, not the refresh claims
	user, err := ac.AuthService.GetUserByID(id.ID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	accessToken, err := IssueToken(ac.JWTSecret, user.Identity(), accessTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	setCookie(c, AccessCookie, accessToken, 0)

	c.JSON(http.StatusOK, gin.H{"message": "Access token refreshed"})
}

func setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
