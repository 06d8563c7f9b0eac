package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/venuehaven/venue-booking-backend/internal/auth"
	"github.com/venuehaven/venue-booking-backend/internal/availability"
	"github.com/venuehaven/venue-booking-backend/internal/pkg/response"
	"github.com/venuehaven/venue-booking-backend/internal/reservation"
	resHttp "github.com/venuehaven/venue-booking-backend/internal/reservation/http"
	"github.com/venuehaven/venue-booking-backend/internal/venue"
)

type Handler struct {
	service     venue.Service
	reservation reservation.Service
}

func NewHandler(service venue.Service, reservationService reservation.Service) *Handler {
	return &Handler{service: service, reservation: reservationService}
}

func (h *Handler) List(c *gin.Context) {
	venues, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]VenueResponse, len(venues))
	for i, v := range venues {
		items[i] = NewVenueResponse(v)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateVenueBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	v, err := h.service.Create(c.Request.Context(), venue.CreateRequest{
		OwnerID:     auth.GetUserID(c),
		Name:        body.Name,
		Description: body.Description,
		Capacity:    body.Capacity,
		Location:    body.Location,
		PricePerDay: body.PricePerDay,
		Amenities:   body.Amenities,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewVenueResponse(v))
}

// Availability reports whether the venue is free for the requested range,
// including the conflicting records when it is not.
func (h *Handler) Availability(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var query AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	res, err := h.reservation.CheckAvailability(c.Request.Context(), id, query.Start, query.End)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resHttp.NewAvailabilityResponse(res))
}

// Block declares an owner block on the venue's dates. Existing bookings veto
// the block; overlapping prior blocks do not.
func (h *Handler) Block(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body BlockDatesBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.reservation.BlockDates(c.Request.Context(), reservation.BlockDatesRequest{
		VenueID:   id,
		StartDate: body.StartDate,
		EndDate:   body.EndDate,
		Reason:    body.Reason,
		CreatedBy: auth.GetUserID(c),
	})
	if err != nil {
		var conflictErr *availability.ConflictError
		if errors.As(err, &conflictErr) {
			response.Conflict(c, conflictErr.Message, resHttp.NewConflictsResponse(conflictErr.Conflicts))
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, resHttp.NewBlockedPeriodResponse(p))
}

// Bookings lists all bookings on the venue, earliest start first.
func (h *Handler) Bookings(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	bookings, err := h.reservation.ListVenueBookings(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]resHttp.BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = resHttp.NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, items)
}
