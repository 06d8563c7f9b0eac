package http

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/venuehaven/venue-booking-backend/internal/venue"
)

type CreateVenueBody struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Capacity    int             `json:"capacity" binding:"omitempty,min=1"`
	Location    string          `json:"location"`
	PricePerDay decimal.Decimal `json:"price_per_day" binding:"required"`
	Amenities   []string        `json:"amenities"`
}

type BlockDatesBody struct {
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	Reason    string    `json:"reason"`
}

// AvailabilityQuery carries the requested date range. RFC 3339 instants.
type AvailabilityQuery struct {
	Start time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End   time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type VenueResponse struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Capacity    int             `json:"capacity"`
	Location    string          `json:"location"`
	PricePerDay decimal.Decimal `json:"price_per_day"`
	Amenities   []string        `json:"amenities"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func NewVenueResponse(v *venue.Venue) VenueResponse {
	return VenueResponse{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		Name:        v.Name,
		Description: v.Description,
		Capacity:    v.Capacity,
		Location:    v.Location,
		PricePerDay: v.PricePerDay,
		Amenities:   v.Amenities,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
