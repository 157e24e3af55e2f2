package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vikramKumar-01/Hotel-mangement/internal/config"
	"github.com/vikramKumar-01/Hotel-mangement/internal/helpers"
	"github.com/vikramKumar-01/Hotel-mangement/internal/middleware"
	"github.com/vikramKumar-01/Hotel-mangement/internal/models"
	"github.com/vikramKumar-01/Hotel-mangement/internal/services"
)

type profileUpdateRequest struct {
	Name     string `form:"name" json:"name"`
	Password string `form:"password" json:"password"`
	Phone    string `form:"phone" json:"phone"`
	Address  string `form:"address" json:"address"`
}

// GetProfile returns the caller's identity record. The password hash never
// serializes.
func GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("please login first"))
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateProfile updates name/password/phone/address independently and
// accepts an optional multipart image under "profileImage". Email and role
// are immutable here.
func UpdateProfile(u *services.UserService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("please login first"))
			return
		}

		var req profileUpdateRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		upd := services.ProfileUpdate{
			Name:     req.Name,
			Password: req.Password,
			Phone:    req.Phone,
			Address:  req.Address,
		}

		if file, err := c.FormFile("profileImage"); err == nil && file != nil {
			url, err := helpers.SaveUploadedImage(c, file, cfg.UploadDir, cfg.PublicBaseURL)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
				return
			}
			upd.ProfileImage = url
		}

		updated, err := u.UpdateProfile(c.Request.Context(), user.ID.Hex(), upd)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "profile updated successfully",
			"user":    updated,
		})
	}
}
