// Package availability decides whether a date range on a venue is free.
//
// Occupancy comes from two independent sources with deliberately different
// overlap semantics: bookings use half-open ranges (touching boundaries do not
// conflict, so back-to-back stays are fine), while owner-declared blocked
// periods use inclusive ranges (touching boundaries do conflict).
package availability

import (
	"context"
	"time"

	"github.com/venuehaven/venue-booking-backend/internal/blockedperiod"
	"github.com/venuehaven/venue-booking-backend/internal/booking"
)

// Conflicts holds the records that make a date range unavailable.
type Conflicts struct {
	Bookings       []*booking.Booking
	BlockedPeriods []*blockedperiod.BlockedPeriod
}

// Result is the outcome of an availability check. IsAvailable is true iff
// both conflict lists are empty.
type Result struct {
	IsAvailable bool
	Conflicts   Conflicts
}

// Checker evaluates venue availability against the booking and blocked-period
// stores. It never writes; callers that need check-then-commit atomicity must
// serialize around it (see the reservation service).
type Checker struct {
	bookings booking.Repository
	blocked  blockedperiod.Repository
}

func NewChecker(bookings booking.Repository, blocked blockedperiod.Repository) *Checker {
	return &Checker{bookings: bookings, blocked: blocked}
}

// Check returns the availability of [start, end) on the venue. Callers must
// ensure start < end before calling; the checker does not re-validate.
func (c *Checker) Check(ctx context.Context, venueID string, start, end time.Time) (*Result, error) {
	conflictingBookings, err := c.bookings.ListOverlapping(ctx, venueID, start, end)
	if err != nil {
		return nil, err
	}

	blockedPeriods, err := c.blocked.ListOverlapping(ctx, venueID, start, end)
	if err != nil {
		return nil, err
	}

	return &Result{
		IsAvailable: len(conflictingBookings) == 0 && len(blockedPeriods) == 0,
		Conflicts: Conflicts{
			Bookings:       conflictingBookings,
			BlockedPeriods: blockedPeriods,
		},
	}, nil
}
