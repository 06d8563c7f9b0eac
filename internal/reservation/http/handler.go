package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/venuehaven/venue-booking-backend/internal/auth"
	"github.com/venuehaven/venue-booking-backend/internal/availability"
	"github.com/venuehaven/venue-booking-backend/internal/booking"
	"github.com/venuehaven/venue-booking-backend/internal/pkg/response"
	"github.com/venuehaven/venue-booking-backend/internal/reservation"
)

type Handler struct {
	service reservation.Service
}

func NewHandler(service reservation.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), reservation.CreateBookingRequest{
		VenueID:   body.VenueID,
		UserID:    userID,
		StartDate: body.StartDate,
		EndDate:   body.EndDate,
	})
	if err != nil {
		var conflictErr *availability.ConflictError
		if errors.As(err, &conflictErr) {
			response.Conflict(c, conflictErr.Message, NewConflictsResponse(conflictErr.Conflicts))
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

// ListMy returns the authenticated user's bookings, most recent start first.
func (h *Handler) ListMy(c *gin.Context) {
	userID := auth.GetUserID(c)

	bookings, err := h.service.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, items)
}

// UpdateStatus applies a status transition (cancel or complete) to a booking
// owned by the authenticated user.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID := auth.GetUserID(c)

	var (
		b   *booking.Booking
		err error
	)
	switch booking.Status(body.Status) {
	case booking.StatusCancelled:
		b, err = h.service.CancelBooking(c.Request.Context(), id, userID)
	case booking.StatusCompleted:
		b, err = h.service.CompleteBooking(c.Request.Context(), id, userID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": booking.ErrInvalidStatus.Message})
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}
