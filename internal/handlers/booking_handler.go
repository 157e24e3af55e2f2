package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vikramKumar-01/Hotel-mangement/internal/helpers"
	"github.com/vikramKumar-01/Hotel-mangement/internal/middleware"
	"github.com/vikramKumar-01/Hotel-mangement/internal/models"
	"github.com/vikramKumar-01/Hotel-mangement/internal/services"
)

type bookRequest struct {
	Venue  string `json:"venue" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Guests int    `json:"guests"`
}

type statusRequest struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

func CreateBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("please login first"))
			return
		}

		var req bookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := b.Book(c.Request.Context(), user.ID.Hex(), services.BookInput{
			Venue:  req.Venue,
			Date:   req.Date,
			Guests: req.Guests,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(booking, "booking created successfully"))
	}
}

func MyBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("please login first"))
			return
		}

		bookings, err := b.ListMine(c.Request.Context(), user.ID.Hex())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(bookings, len(bookings)))
	}
}

func AllBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := b.ListAll(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(bookings, len(bookings)))
	}
}

func UpdateBookingStatus(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.StringTrim(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("booking ID is required"))
			return
		}

		var req statusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := b.SetStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, "booking status updated"))
	}
}

func CancelBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("please login first"))
			return
		}

		id := helpers.StringTrim(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("booking ID is required"))
			return
		}

		booking, err := b.CancelMine(c.Request.Context(), user.ID.Hex(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, "booking cancelled"))
	}
}
