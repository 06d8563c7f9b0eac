// Package reservation orchestrates the booking lifecycle: availability check,
// pricing, and atomic commit per venue.
package reservation

import (
	"context"
	"time"

	"github.com/venuehaven/venue-booking-backend/internal/availability"
	"github.com/venuehaven/venue-booking-backend/internal/blockedperiod"
	"github.com/venuehaven/venue-booking-backend/internal/booking"
	"github.com/venuehaven/venue-booking-backend/internal/pkg/keyedmutex"
	"github.com/venuehaven/venue-booking-backend/internal/pricing"
	"github.com/venuehaven/venue-booking-backend/internal/venue"
)

type CreateBookingRequest struct {
	VenueID   string
	UserID    string
	StartDate time.Time
	EndDate   time.Time
}

type BlockDatesRequest struct {
	VenueID   string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	CreatedBy string
}

// VenueGetter is the slice of the venue module the lifecycle consumes.
type VenueGetter interface {
	GetByID(ctx context.Context, id string) (*venue.Venue, error)
}

type Service interface {
	// CheckAvailability validates the range and evaluates both occupancy
	// sources for the venue.
	CheckAvailability(ctx context.Context, venueID string, start, end time.Time) (*availability.Result, error)

	// CreateBooking runs check -> price -> commit atomically per venue. On a
	// conflict it returns *availability.ConflictError with both conflict lists.
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*booking.Booking, error)

	// CancelBooking and CompleteBooking are the exposed status transitions.
	// Only the booking's user may transition it.
	CancelBooking(ctx context.Context, bookingID, requesterID string) (*booking.Booking, error)
	CompleteBooking(ctx context.Context, bookingID, requesterID string) (*booking.Booking, error)

	// BlockDates declares an owner block. Existing bookings veto the block;
	// overlapping prior blocked periods do not.
	BlockDates(ctx context.Context, req BlockDatesRequest) (*blockedperiod.BlockedPeriod, error)

	ListUserBookings(ctx context.Context, userID string) ([]*booking.Booking, error)
	ListVenueBookings(ctx context.Context, venueID string) ([]*booking.Booking, error)
}

type service struct {
	bookings booking.Repository
	blocked  blockedperiod.Repository
	venues   VenueGetter
	checker  *availability.Checker

	// venueLocks serializes check-then-commit per venue. Requests for
	// different venues proceed without contention; there is no global lock.
	venueLocks *keyedmutex.KeyedMutex
}

func NewService(bookings booking.Repository, blocked blockedperiod.Repository, venues VenueGetter) Service {
	return &service{
		bookings:   bookings,
		blocked:    blocked,
		venues:     venues,
		checker:    availability.NewChecker(bookings, blocked),
		venueLocks: keyedmutex.New(),
	}
}

func (s *service) CheckAvailability(ctx context.Context, venueID string, start, end time.Time) (*availability.Result, error) {
	if !end.After(start) {
		return nil, booking.ErrInvalidDateRange
	}
	return s.checker.Check(ctx, venueID, start, end)
}

func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*booking.Booking, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, booking.ErrInvalidDateRange
	}

	s.venueLocks.Lock(req.VenueID)
	defer s.venueLocks.Unlock(req.VenueID)

	res, err := s.checker.Check(ctx, req.VenueID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if !res.IsAvailable {
		return nil, &availability.ConflictError{
			Message:   "venue is not available for the selected dates",
			Conflicts: res.Conflicts,
		}
	}

	v, err := s.venues.GetByID(ctx, req.VenueID)
	if err != nil {
		return nil, err
	}

	b := &booking.Booking{
		VenueID:    req.VenueID,
		UserID:     req.UserID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Status:     booking.StatusConfirmed,
		TotalPrice: pricing.Total(req.StartDate, req.EndDate, v.PricePerDay),
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) CancelBooking(ctx context.Context, bookingID, requesterID string) (*booking.Booking, error) {
	return s.transition(ctx, bookingID, requesterID, booking.StatusCancelled)
}

func (s *service) CompleteBooking(ctx context.Context, bookingID, requesterID string) (*booking.Booking, error) {
	return s.transition(ctx, bookingID, requesterID, booking.StatusCompleted)
}

func (s *service) transition(ctx context.Context, bookingID, requesterID string, next booking.Status) (*booking.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != requesterID {
		return nil, booking.ErrPermissionDenied
	}
	if !b.Status.CanTransitionTo(next) {
		return nil, booking.ErrInvalidTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, next); err != nil {
		return nil, err
	}
	b.Status = next
	return b, nil
}

func (s *service) BlockDates(ctx context.Context, req BlockDatesRequest) (*blockedperiod.BlockedPeriod, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, blockedperiod.ErrInvalidDateRange
	}

	s.venueLocks.Lock(req.VenueID)
	defer s.venueLocks.Unlock(req.VenueID)

	res, err := s.checker.Check(ctx, req.VenueID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	// Only bookings veto a block. Owners may declare overlapping or redundant
	// blocked ranges freely, so blocked-period conflicts are tolerated here.
	if len(res.Conflicts.Bookings) > 0 {
		return nil, &availability.ConflictError{
			Message:   "cannot block dates with existing bookings",
			Conflicts: res.Conflicts,
		}
	}

	p := &blockedperiod.BlockedPeriod{
		VenueID:   req.VenueID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		CreatedBy: req.CreatedBy,
	}
	if err := s.blocked.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) ListUserBookings(ctx context.Context, userID string) ([]*booking.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *service) ListVenueBookings(ctx context.Context, venueID string) ([]*booking.Booking, error) {
	return s.bookings.ListByVenue(ctx, venueID)
}
