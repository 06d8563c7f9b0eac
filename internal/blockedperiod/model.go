package blockedperiod

import (
	"net/http"
	"time"

	"github.com/venuehaven/venue-booking-backend/internal/pkg/apperror"
)

var ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "start date must be before end date")

// BlockedPeriod is an owner-declared interval during which a venue cannot be
// booked, independent of actual bookings. Records are immutable once created;
// deletion is an extension point and intentionally not part of the repository
// surface yet.
type BlockedPeriod struct {
	ID        string
	VenueID   string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	CreatedBy string
	CreatedAt time.Time
}

// Overlaps reports whether the blocked period intersects [start, end] with
// inclusive boundaries: a block ending exactly when the requested range starts
// still overlaps. This differs deliberately from the booking predicate.
func (p *BlockedPeriod) Overlaps(start, end time.Time) bool {
	return !p.StartDate.After(end) && !p.EndDate.Before(start)
}
