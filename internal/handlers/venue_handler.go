package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vikramKumar-01/Hotel-mangement/internal/helpers"
	"github.com/vikramKumar-01/Hotel-mangement/internal/models"
	"github.com/vikramKumar-01/Hotel-mangement/internal/services"
)

func ListVenues(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venues, err := v.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(venues, len(venues)))
	}
}

// FilterVenues composes the optional location/capacity/price filters.
// With no query parameters it behaves exactly like ListVenues.
func FilterVenues(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := models.VenueQuery{
			Location:  helpers.StringTrim(c.Query("location")),
			PriceSort: c.Query("price"),
		}

		if capacity := c.Query("capacity"); capacity != "" {
			n, err := strconv.Atoi(capacity)
			if err != nil || n < 0 {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid capacity parameter"))
				return
			}
			q.MinCapacity = n
		}

		venues, err := v.Filter(c.Request.Context(), q)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(venues, len(venues)))
	}
}

func GetVenue(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.StringTrim(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("venue ID is required"))
			return
		}

		venue, err := v.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(venue, ""))
	}
}

func CreateVenue(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var venue models.Venue
		if err := c.ShouldBindJSON(&venue); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := v.Create(c.Request.Context(), &venue)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "venue added successfully"))
	}
}

func UpdateVenue(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.StringTrim(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("venue ID is required"))
			return
		}

		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		updated, err := v.Update(c.Request.Context(), id, fields)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(updated, "venue updated successfully"))
	}
}

func DeleteVenue(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.StringTrim(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("venue ID is required"))
			return
		}

		if err := v.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "venue deleted successfully"))
	}
}
