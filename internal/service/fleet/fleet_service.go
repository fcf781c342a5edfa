package fleet

import (
	"context"
	"errors"

	"github.com/autohub/fleetrental/internal/domain"
	"github.com/autohub/fleetrental/internal/logger"
	"github.com/autohub/fleetrental/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound         = errors.New("vehicle not found")
	ErrVehicleHasActiveBooking = errors.New("cannot delete vehicle with active bookings")
)

const placeholderImage = "https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?auto=format&fit=crop&q=80&w=2070"

type FleetUseCase interface {
	List(ctx context.Context) ([]domain.Vehicle, error)
	Add(ctx context.Context, input AddVehicleInput) (*domain.Vehicle, error)
	Remove(ctx context.Context, id string) error
	EnsureDefaultFleet(ctx context.Context) error
}

type Cache interface {
	GetVehicles(ctx context.Context) ([]domain.Vehicle, error)
	SetVehicles(ctx context.Context, vehicles []domain.Vehicle) error
	InvalidateVehicles(ctx context.Context) error
}

type AddVehicleInput struct {
	Model       string
	Category    string
	PricePerDay int64
	Image       string
	Specs       map[string]any
}

type FleetService struct {
	repo  repository.VehicleRepository
	cache Cache
}

func NewFleetService(repo repository.VehicleRepository, cache Cache) *FleetService {
	return &FleetService{repo: repo, cache: cache}
}

func (s *FleetService) List(ctx context.Context) ([]domain.Vehicle, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetVehicles(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetVehicles(ctx, vehicles)
	}
	return vehicles, nil
}

func (s *FleetService) Add(ctx context.Context, input AddVehicleInput) (*domain.Vehicle, error) {
	if input.Model == "" {
		return nil, errors.New("vehicle model is required")
	}
	if input.PricePerDay <= 0 {
		return nil, errors.New("price per day must be positive")
	}

	v := &domain.Vehicle{
		ID:           uuid.NewString(),
		Model:        input.Model,
		Category:     input.Category,
		PricePerDay:  input.PricePerDay,
		Image:        input.Image,
		Specs:        input.Specs,
		Availability: domain.AvailabilityAvailable,
	}
	if v.Image == "" {
		v.Image = placeholderImage
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateVehicles(ctx)
	}
	return v, nil
}

func (s *FleetService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrActiveBooking):
			return ErrVehicleHasActiveBooking
		case errors.Is(err, repository.ErrNotFound):
			return ErrVehicleNotFound
		}
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateVehicles(ctx)
	}
	return nil
}

// EnsureDefaultFleet populates an empty catalog with the built-in fleet.
// It runs once at startup so reads stay free of mutation side effects;
// a non-empty catalog makes it a no-op.
func (s *FleetService) EnsureDefaultFleet(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, v := range defaultFleet() {
		if err := s.repo.Create(ctx, &v); err != nil {
			return err
		}
	}
	logger.Log.WithField("vehicles", len(defaultFleet())).Info("seeded default fleet")
	return nil
}

func defaultFleet() []domain.Vehicle {
	return []domain.Vehicle{
		{
			ID:          uuid.NewString(),
			Model:       "Tesla Model S Plaid",
			Category:    "Electric Sedan",
			PricePerDay: 15000,
			Image:       "https://images.unsplash.com/photo-1617788138017-80ad40651399?q=80&w=2070&auto=format&fit=crop",
			Specs: map[string]any{
				"range":        "396 mi",
				"acceleration": "1.99s 0-60",
				"seating":      5,
			},
			Availability: domain.AvailabilityAvailable,
		},
		{
			ID:          uuid.NewString(),
			Model:       "Range Rover Autobiography",
			Category:    "Luxury SUV",
			PricePerDay: 25000,
			Image:       "https://images.unsplash.com/photo-1606220838315-056192d5e927?q=80&w=1974&auto=format&fit=crop",
			Specs: map[string]any{
				"engine":  "V8 Supercharged",
				"terrain": "All-Terrain",
				"seating": 7,
			},
			Availability: domain.AvailabilityAvailable,
		},
		{
			ID:          uuid.NewString(),
			Model:       "Porsche 911 GT3",
			Category:    "Sports Car",
			PricePerDay: 45000,
			Image:       "https://images.unsplash.com/photo-1611821064430-0d41765a6109?q=80&w=2070&auto=format&fit=crop",
			Specs: map[string]any{
				"power":        "502 hp",
				"topSpeed":     "198 mph",
				"transmission": "PDK",
			},
			Availability: domain.AvailabilityAvailable,
		},
		{
			ID:          uuid.NewString(),
			Model:       "Mercedes-AMG G 63",
			Category:    "Luxury SUV",
			PricePerDay: 35000,
			Image:       "https://images.unsplash.com/photo-1520050206274-2c545c237690?q=80&w=2070&auto=format&fit=crop",
			Specs: map[string]any{
				"power":    "577 hp",
				"torque":   "627 lb-ft",
				"features": []string{"Massage Seats", "Night Package"},
			},
			Availability: domain.AvailabilityAvailable,
		},
	}
}

var _ FleetUseCase = (*FleetService)(nil)
