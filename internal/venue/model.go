package venue

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/venuehaven/venue-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "venue not found")
	ErrInvalidPrice = apperror.New(http.StatusBadRequest, "price per day must be positive")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "venue name is required")
)

// Venue is a bookable space with a daily rate, owned by exactly one user.
type Venue struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Capacity    int
	Location    string
	PricePerDay decimal.Decimal
	Amenities   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
