package blockedperiod

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu      sync.RWMutex
	periods map[string]*BlockedPeriod
}

// NewMemoryRepository returns an in-memory Repository for tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{periods: make(map[string]*BlockedPeriod)}
}

func (r *memoryRepository) Create(_ context.Context, p *BlockedPeriod) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()

	stored := *p
	r.periods[p.ID] = &stored
	return nil
}

func (r *memoryRepository) ListOverlapping(_ context.Context, venueID string, start, end time.Time) ([]*BlockedPeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*BlockedPeriod
	for _, p := range r.periods {
		if p.VenueID == venueID && p.Overlaps(start, end) {
			copied := *p
			out = append(out, &copied)
		}
	}
	sortByStartDate(out)
	return out, nil
}

func (r *memoryRepository) ListByVenue(_ context.Context, venueID string) ([]*BlockedPeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*BlockedPeriod
	for _, p := range r.periods {
		if p.VenueID == venueID {
			copied := *p
			out = append(out, &copied)
		}
	}
	sortByStartDate(out)
	return out, nil
}

func sortByStartDate(periods []*BlockedPeriod) {
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].StartDate.Before(periods[j].StartDate)
	})
}
