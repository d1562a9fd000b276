package location

import (
	"context"
	"fmt"

	"github.com/Harshalp4/scantrack-pro/internal/domain/location"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LocationService manages locations and their rate cards. All methods are
// super_admin only; the router enforces that before requests arrive here.
type LocationService interface {
	Create(ctx context.Context, req location.CreateLocationRequest) (location.LocationResponse, error)
	Get(ctx context.Context, id string) (location.LocationResponse, error)
	Update(ctx context.Context, req location.UpdateLocationRequest) (location.LocationResponse, error)
	List(ctx context.Context, activeOnly bool) ([]location.LocationResponse, error)
	Deactivate(ctx context.Context, id string) error
	Reactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type LocationServiceImpl struct {
	locationRepo location.LocationRepository
}

func NewLocationService(locationRepo location.LocationRepository) LocationService {
	return &LocationServiceImpl{locationRepo: locationRepo}
}

func parseClientRate(s *string) (*decimal.Decimal, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, fmt.Errorf("invalid client rate %q: %w", *s, err)
	}
	return &d, nil
}

// Create implements LocationService.
func (s *LocationServiceImpl) Create(ctx context.Context, req location.CreateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	clientRate, err := parseClientRate(req.ClientRate)
	if err != nil {
		return location.LocationResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return location.LocationResponse{}, fmt.Errorf("failed to generate location id: %w", err)
	}

	created, err := s.locationRepo.Create(ctx, location.Location{
		ID:         id.String(),
		Name:       req.Name,
		Address:    req.Address,
		ClientRate: clientRate,
		Active:     true,
	})
	if err != nil {
		return location.LocationResponse{}, err
	}

	return location.ToResponse(created), nil
}

// Get implements LocationService.
func (s *LocationServiceImpl) Get(ctx context.Context, id string) (location.LocationResponse, error) {
	loc, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return location.LocationResponse{}, err
	}
	return location.ToResponse(loc), nil
}

// Update implements LocationService.
func (s *LocationServiceImpl) Update(ctx context.Context, req location.UpdateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	loc, err := s.locationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return location.LocationResponse{}, err
	}

	if req.Name != nil {
		loc.Name = *req.Name
	}
	if req.Address != nil {
		loc.Address = req.Address
	}
	if req.ClientRate != nil {
		rate, err := parseClientRate(req.ClientRate)
		if err != nil {
			return location.LocationResponse{}, err
		}
		loc.ClientRate = rate
	}

	if err := s.locationRepo.Update(ctx, loc); err != nil {
		return location.LocationResponse{}, err
	}

	return location.ToResponse(loc), nil
}

// List implements LocationService.
func (s *LocationServiceImpl) List(ctx context.Context, activeOnly bool) ([]location.LocationResponse, error) {
	locations, err := s.locationRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]location.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		responses = append(responses, location.ToResponse(loc))
	}
	return responses, nil
}

func (s *LocationServiceImpl) setActive(ctx context.Context, id string, active bool) error {
	loc, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if loc.Active == active {
		if active {
			return location.ErrLocationAlreadyActive
		}
		return location.ErrLocationAlreadyInactive
	}
	return s.locationRepo.SetActive(ctx, id, active)
}

// Deactivate implements LocationService. Always safe and reversible.
func (s *LocationServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, false)
}

// Reactivate implements LocationService.
func (s *LocationServiceImpl) Reactivate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, true)
}

// Delete implements LocationService. Permanent deletion requires zero
// dependent employees, expenses and attendance records; a violation reports
// the blocking counts so the caller knows what to reassign first.
func (s *LocationServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.locationRepo.GetByID(ctx, id); err != nil {
		return err
	}

	counts, err := s.locationRepo.DependentCounts(ctx, id)
	if err != nil {
		return err
	}
	if !counts.Zero() {
		return &location.DeleteBlockedError{Counts: counts}
	}

	return s.locationRepo.Delete(ctx, id)
}
