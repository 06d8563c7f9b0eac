package http

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/venuehaven/venue-booking-backend/internal/availability"
	"github.com/venuehaven/venue-booking-backend/internal/blockedperiod"
	"github.com/venuehaven/venue-booking-backend/internal/booking"
)

type CreateBookingBody struct {
	VenueID   string    `json:"venue_id" binding:"required,uuid"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

type UpdateBookingBody struct {
	Status string `json:"status" binding:"required,oneof=cancelled completed"`
}

type BookingResponse struct {
	ID         string          `json:"id"`
	VenueID    string          `json:"venue_id"`
	UserID     string          `json:"user_id"`
	StartDate  time.Time       `json:"start_date"`
	EndDate    time.Time       `json:"end_date"`
	Status     string          `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		VenueID:    b.VenueID,
		UserID:     b.UserID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Status:     string(b.Status),
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

type BlockedPeriodResponse struct {
	ID        string    `json:"id"`
	VenueID   string    `json:"venue_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Reason    string    `json:"reason"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func NewBlockedPeriodResponse(p *blockedperiod.BlockedPeriod) BlockedPeriodResponse {
	return BlockedPeriodResponse{
		ID:        p.ID,
		VenueID:   p.VenueID,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Reason:    p.Reason,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
	}
}

// ConflictsResponse mirrors availability.Conflicts for JSON rendering. Both
// lists are always present, possibly empty, never null.
type ConflictsResponse struct {
	Bookings       []BookingResponse       `json:"bookings"`
	BlockedPeriods []BlockedPeriodResponse `json:"blocked_periods"`
}

func NewConflictsResponse(c availability.Conflicts) ConflictsResponse {
	out := ConflictsResponse{
		Bookings:       make([]BookingResponse, len(c.Bookings)),
		BlockedPeriods: make([]BlockedPeriodResponse, len(c.BlockedPeriods)),
	}
	for i, b := range c.Bookings {
		out.Bookings[i] = NewBookingResponse(b)
	}
	for i, p := range c.BlockedPeriods {
		out.BlockedPeriods[i] = NewBlockedPeriodResponse(p)
	}
	return out
}

type AvailabilityResponse struct {
	IsAvailable bool              `json:"is_available"`
	Conflicts   ConflictsResponse `json:"conflicts"`
}

func NewAvailabilityResponse(r *availability.Result) AvailabilityResponse {
	return AvailabilityResponse{
		IsAvailable: r.IsAvailable,
		Conflicts:   NewConflictsResponse(r.Conflicts),
	}
}
