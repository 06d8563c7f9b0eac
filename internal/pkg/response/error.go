package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/venuehaven/venue-booking-backend/internal/pkg/apperror"
)

// ErrorResponse is the JSON structure for error responses. Payload carries
// structured details (such as conflict lists) when the error provides them.
type ErrorResponse struct {
	Error     string `json:"error"`
	Conflicts any    `json:"conflicts,omitempty"`
}

// Error renders err as JSON. AppErrors pick their own status code; anything
// else is treated as an internal fault and rendered as 500 without leaking
// details to the client.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// Conflict renders a 409 with the structured conflict payload attached.
func Conflict(c *gin.Context, message string, conflicts any) {
	c.JSON(http.StatusConflict, ErrorResponse{Error: message, Conflicts: conflicts})
}
