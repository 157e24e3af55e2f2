package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vikramKumar-01/Hotel-mangement/internal/models"
)

// respondError maps a service error to its HTTP status. Unexpected errors
// are logged by the ErrorHandler middleware and answered generically.
func respondError(c *gin.Context, err error) {
	status := models.StatusForError(err)
	if status == http.StatusInternalServerError {
		c.Error(err)
		c.JSON(status, models.ErrorResponse("internal server error"))
		return
	}
	c.JSON(status, models.ErrorResponse(err.Error()))
}
