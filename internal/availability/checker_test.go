package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuehaven/venue-booking-backend/internal/blockedperiod"
	"github.com/venuehaven/venue-booking-backend/internal/booking"
)

func day(n int) time.Time {
	return time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func seedBooking(t *testing.T, repo booking.Repository, venueID string, start, end time.Time, status booking.Status) *booking.Booking {
	t.Helper()
	b := &booking.Booking{
		VenueID:   venueID,
		UserID:    "user-1",
		StartDate: start,
		EndDate:   end,
		Status:    status,
	}
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func seedBlock(t *testing.T, repo blockedperiod.Repository, venueID string, start, end time.Time) *blockedperiod.BlockedPeriod {
	t.Helper()
	p := &blockedperiod.BlockedPeriod{
		VenueID:   venueID,
		StartDate: start,
		EndDate:   end,
		Reason:    "maintenance",
		CreatedBy: "owner-1",
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestCheckNoOccupancy(t *testing.T) {
	checker := NewChecker(booking.NewMemoryRepository(), blockedperiod.NewMemoryRepository())

	res, err := checker.Check(context.Background(), "venue-1", day(0), day(3))
	require.NoError(t, err)

	assert.True(t, res.IsAvailable)
	assert.Empty(t, res.Conflicts.Bookings)
	assert.Empty(t, res.Conflicts.BlockedPeriods)
}

func TestCheckBookingOverlap(t *testing.T) {
	bookings := booking.NewMemoryRepository()
	checker := NewChecker(bookings, blockedperiod.NewMemoryRepository())
	ctx := context.Background()

	seeded := seedBooking(t, bookings, "venue-1", day(2), day(5), booking.StatusConfirmed)

	res, err := checker.Check(ctx, "venue-1", day(4), day(7))
	require.NoError(t, err)

	assert.False(t, res.IsAvailable)
	require.Len(t, res.Conflicts.Bookings, 1)
	assert.Equal(t, seeded.ID, res.Conflicts.Bookings[0].ID)
	assert.Empty(t, res.Conflicts.BlockedPeriods)
}

func TestCheckBookingTouchingBoundaryIsFree(t *testing.T) {
	bookings := booking.NewMemoryRepository()
	checker := NewChecker(bookings, blockedperiod.NewMemoryRepository())
	ctx := context.Background()

	// Existing booking ends at day 10; a request starting at day 10 must not
	// conflict (half-open ranges).
	seedBooking(t, bookings, "venue-1", day(7), day(10), booking.StatusConfirmed)

	res, err := checker.Check(ctx, "venue-1", day(10), day(12))
	require.NoError(t, err)
	assert.True(t, res.IsAvailable)

	// And symmetrically, a request ending where the booking starts.
	res, err = checker.Check(ctx, "venue-1", day(5), day(7))
	require.NoError(t, err)
	assert.True(t, res.IsAvailable)
}

func TestCheckBlockedTouchingBoundaryConflicts(t *testing.T) {
	blocked := blockedperiod.NewMemoryRepository()
	checker := NewChecker(booking.NewMemoryRepository(), blocked)
	ctx := context.Background()

	// Blocked period ends at day 10; a request starting at day 10 DOES
	// conflict (inclusive boundaries for blocks).
	seedBlock(t, blocked, "venue-1", day(7), day(10))

	res, err := checker.Check(ctx, "venue-1", day(10), day(12))
	require.NoError(t, err)

	assert.False(t, res.IsAvailable)
	assert.Empty(t, res.Conflicts.Bookings)
	require.Len(t, res.Conflicts.BlockedPeriods, 1)
}

func TestCheckIgnoresCancelledAndCompleted(t *testing.T) {
	bookings := booking.NewMemoryRepository()
	checker := NewChecker(bookings, blockedperiod.NewMemoryRepository())
	ctx := context.Background()

	seedBooking(t, bookings, "venue-1", day(0), day(5), booking.StatusCancelled)
	seedBooking(t, bookings, "venue-1", day(0), day(5), booking.StatusCompleted)

	res, err := checker.Check(ctx, "venue-1", day(1), day(4))
	require.NoError(t, err)
	assert.True(t, res.IsAvailable)
}

func TestCheckPendingOccupies(t *testing.T) {
	bookings := booking.NewMemoryRepository()
	checker := NewChecker(bookings, blockedperiod.NewMemoryRepository())
	ctx := context.Background()

	seedBooking(t, bookings, "venue-1", day(0), day(5), booking.StatusPending)

	res, err := checker.Check(ctx, "venue-1", day(1), day(4))
	require.NoError(t, err)
	assert.False(t, res.IsAvailable)
	require.Len(t, res.Conflicts.Bookings, 1)
}

func TestCheckScopedToVenue(t *testing.T) {
	bookings := booking.NewMemoryRepository()
	blocked := blockedperiod.NewMemoryRepository()
	checker := NewChecker(bookings, blocked)
	ctx := context.Background()

	seedBooking(t, bookings, "venue-1", day(0), day(5), booking.StatusConfirmed)
	seedBlock(t, blocked, "venue-1", day(0), day(5))

	res, err := checker.Check(ctx, "venue-2", day(1), day(4))
	require.NoError(t, err)
	assert.True(t, res.IsAvailable)
}

func TestCheckCollectsBothConflictSources(t *testing.T) {
	bookings := booking.NewMemoryRepository()
	blocked := blockedperiod.NewMemoryRepository()
	checker := NewChecker(bookings, blocked)
	ctx := context.Background()

	seedBooking(t, bookings, "venue-1", day(1), day(3), booking.StatusConfirmed)
	seedBooking(t, bookings, "venue-1", day(3), day(6), booking.StatusPending)
	seedBlock(t, blocked, "venue-1", day(4), day(8))

	res, err := checker.Check(ctx, "venue-1", day(2), day(5))
	require.NoError(t, err)

	assert.False(t, res.IsAvailable)
	assert.Len(t, res.Conflicts.Bookings, 2)
	assert.Len(t, res.Conflicts.BlockedPeriods, 1)
}
