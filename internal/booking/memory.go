package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryRepository is an in-memory Repository used in tests and as the
// reference implementation of the overlap semantics.
type memoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]*Booking
}

func NewMemoryRepository() Repository {
	return &memoryRepository{bookings: make(map[string]*Booking)}
}

func (r *memoryRepository) Create(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now

	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *memoryRepository) ListOverlapping(_ context.Context, venueID string, start, end time.Time) ([]*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Booking
	for _, b := range r.bookings {
		if b.VenueID == venueID && b.Status.Occupies() && b.Overlaps(start, end) {
			copied := *b
			out = append(out, &copied)
		}
	}
	sortByStartDate(out, true)
	return out, nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			copied := *b
			out = append(out, &copied)
		}
	}
	sortByStartDate(out, false)
	return out, nil
}

func (r *memoryRepository) ListByVenue(_ context.Context, venueID string) ([]*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Booking
	for _, b := range r.bookings {
		if b.VenueID == venueID {
			copied := *b
			out = append(out, &copied)
		}
	}
	sortByStartDate(out, true)
	return out, nil
}

func (r *memoryRepository) UpdateStatus(_ context.Context, id string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	return nil
}

func sortByStartDate(bookings []*Booking, ascending bool) {
	sort.Slice(bookings, func(i, j int) bool {
		if ascending {
			return bookings[i].StartDate.Before(bookings[j].StartDate)
		}
		return bookings[i].StartDate.After(bookings[j].StartDate)
	})
}
