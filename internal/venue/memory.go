package venue

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu     sync.RWMutex
	venues map[string]*Venue
}

// NewMemoryRepository returns an in-memory Repository for tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{venues: make(map[string]*Venue)}
}

func (r *memoryRepository) Create(_ context.Context, v *Venue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	v.ID = uuid.NewString()
	v.CreatedAt = now
	v.UpdatedAt = now

	stored := *v
	r.venues[v.ID] = &stored
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.venues[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *v
	return &copied, nil
}

func (r *memoryRepository) List(_ context.Context) ([]*Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Venue
	for _, v := range r.venues {
		copied := *v
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
