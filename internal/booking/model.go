package booking

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/venuehaven/venue-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidDateRange  = apperror.New(http.StatusBadRequest, "start date must be before end date")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidTransition = apperror.New(http.StatusBadRequest, "booking status transition not allowed")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "permission denied")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the known booking statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Occupies reports whether a booking in this status holds its date range.
// Cancelled and completed bookings free their dates.
func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo reports whether the status machine allows moving from s to
// next. The only edges are pending -> confirmed and confirmed -> cancelled or
// completed.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed
	case StatusConfirmed:
		return next == StatusCancelled || next == StatusCompleted
	}
	return false
}

type Booking struct {
	ID        string
	VenueID   string
	UserID    string
	StartDate time.Time
	EndDate   time.Time
	Status    Status
	// TotalPrice is computed once at creation time and never recalculated.
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Overlaps reports whether the booking's date range intersects [start, end)
// treating ranges as half-open: a booking that ends exactly when the requested
// range starts (or vice versa) does not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartDate.Before(end) && b.EndDate.After(start)
}
