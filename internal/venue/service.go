package venue

import (
	"context"

	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	OwnerID     string
	Name        string
	Description string
	Capacity    int
	Location    string
	PricePerDay decimal.Decimal
	Amenities   []string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Venue, error)
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context) ([]*Venue, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Venue, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if !req.PricePerDay.IsPositive() {
		return nil, ErrInvalidPrice
	}

	v := &Venue{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Location:    req.Location,
		PricePerDay: req.PricePerDay,
		Amenities:   req.Amenities,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Venue, error) {
	return s.repo.List(ctx)
}
