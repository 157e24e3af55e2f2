package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vikramKumar-01/Hotel-mangement/internal/helpers"
	"github.com/vikramKumar-01/Hotel-mangement/internal/models"
	"github.com/vikramKumar-01/Hotel-mangement/internal/services"
)

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func setSessionCookie(c *gin.Context, token string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(helpers.SessionCookieName, token, int(ttl.Seconds()), "/", "", secure, true)
}

func clearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(helpers.SessionCookieName, "", -1, "/", "", secure, true)
}

func Signup(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		if err := u.Signup(c.Request.Context(), services.SignupInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Role:     req.Role,
		}); err != nil {
			respondError(c, err)
			return
		}

		// No auto-login; the client logs in separately.
		c.JSON(http.StatusCreated, gin.H{"message": "user registered successfully"})
	}
}

func Login(u *services.UserService, tokens *helpers.TokenIssuer, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		user, err := u.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		token, err := tokens.Issue(user.ID.Hex(), user.Role)
		if err != nil {
			respondError(c, err)
			return
		}

		setSessionCookie(c, token, tokens.TTL, secure)
		c.JSON(http.StatusOK, gin.H{"message": "login successful"})
	}
}

// AdminLogin uses the same cookie mechanism as Login but rejects non-admin
// accounts after their credentials have been verified.
func AdminLogin(u *services.UserService, tokens *helpers.TokenIssuer, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		user, err := u.AdminLogin(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		token, err := tokens.Issue(user.ID.Hex(), user.Role)
		if err != nil {
			respondError(c, err)
			return
		}

		setSessionCookie(c, token, tokens.TTL, secure)
		c.JSON(http.StatusOK, gin.H{"message": "admin login successful"})
	}
}

// Logout clears the session cookie unconditionally; logging out twice is
// fine.
func Logout(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		clearSessionCookie(c, secure)
		c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
	}
}
