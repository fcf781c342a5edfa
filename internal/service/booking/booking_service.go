package booking

import (
	"context"
	"errors"
	"time"

	"github.com/autohub/fleetrental/internal/domain"
	"github.com/autohub/fleetrental/internal/kafka"
	"github.com/autohub/fleetrental/internal/logger"
	"github.com/autohub/fleetrental/internal/repository"
	"github.com/autohub/fleetrental/internal/service/customers"
	"github.com/google/uuid"
)

var (
	ErrInvalidDate        = errors.New("invalid date format")
	ErrDateNotInFuture    = errors.New("booking date must be after today")
	ErrDateOutOfWindow    = errors.New("booking date must be within 3 months from today")
	ErrDurationTooLong    = errors.New("booking duration cannot exceed 100 days")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrVehicleUnavailable = errors.New("vehicle is not available for booking")
	ErrCustomerNotFound   = errors.New("invalid customer id")
	ErrBookingNotFound    = errors.New("booking not found")
)

const (
	maxBookingDays      = 100
	bookingWindowMonths = 3
)

type BookingUseCase interface {
	Create(ctx context.Context, input CreateBookingInput) (*CreateBookingResult, error)
	Cancel(ctx context.Context, bookingID string) (*CancelBookingResult, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

// CustomerResolver is the explicit resolve-or-prepare step of the customer
// directory, implemented by customers.Directory.
type CustomerResolver interface {
	ResolveOrNew(ctx context.Context, id, name string) (*domain.Customer, bool, error)
}

type Cache interface {
	AcquireVehicleLock(ctx context.Context, vehicleID string, ttl time.Duration) (bool, error)
	ReleaseVehicleLock(ctx context.Context, vehicleID string) error
	InvalidateVehicles(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateBookingInput struct {
	VehicleID    string `json:"vehicle_id"`
	Date         string `json:"date"`
	Days         int    `json:"days"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	TotalPrice   int64  `json:"total_price"`
}

type CreateBookingResult struct {
	Booking *domain.Booking
	// NewCustomerID is set only when the booking implicitly created a
	// customer; "" signals an existing customer was used.
	NewCustomerID string
	RentalID      string
	Rental        *domain.Rental
}

type CancelBookingResult struct {
	Success bool
	// RentalID is "" when no ledger entry exists for the booking, an
	// anomaly that is tolerated rather than failing the cancellation.
	RentalID string
}

type BookingService struct {
	bookings           repository.BookingRepository
	vehicles           repository.VehicleRepository
	resolver           CustomerResolver
	cache              Cache
	producer           Producer
	bookingsTopic      string
	notificationsTopic string
	lockTTL            time.Duration
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	vehicles repository.VehicleRepository,
	resolver CustomerResolver,
	cache Cache,
	producer Producer,
	bookingsTopic string,
	lockTTL time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:      bookings,
		vehicles:      vehicles,
		resolver:      resolver,
		cache:         cache,
		producer:      producer,
		bookingsTopic: bookingsTopic,
		lockTTL:       lockTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*CreateBookingResult, error) {
	days := input.Days
	if days <= 0 {
		days = 1
	}

	startDate, err := domain.ParseDate(input.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	today := domain.Today()
	if !startDate.After(today) {
		return nil, ErrDateNotInFuture
	}
	if startDate.After(today.AddMonths(bookingWindowMonths)) {
		return nil, ErrDateOutOfWindow
	}
	if days > maxBookingDays {
		return nil, ErrDurationTooLong
	}

	vehicle, err := s.vehicles.GetByID(ctx, input.VehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	customer, isNew, err := s.resolver.ResolveOrNew(ctx, input.CustomerID, input.CustomerName)
	if err != nil {
		if errors.Is(err, customers.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	endDate := startDate.AddDays(days)
	totalPrice := input.TotalPrice
	if totalPrice <= 0 {
		totalPrice = vehicle.PricePerDay * int64(days)
	}

	if s.cache != nil {
		ok, err := s.cache.AcquireVehicleLock(ctx, vehicle.ID, s.lockTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrVehicleUnavailable
		}
		defer func() {
			_ = s.cache.ReleaseVehicleLock(ctx, vehicle.ID)
		}()
	}

	b := &domain.Booking{
		ID:           uuid.NewString(),
		VehicleID:    vehicle.ID,
		VehicleName:  vehicle.Model,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		StartDate:    startDate,
		Days:         days,
		EndDate:      endDate,
		TotalPrice:   totalPrice,
		Status:       domain.BookingStatusActive,
	}
	rental := &domain.Rental{
		ID:           uuid.NewString(),
		BookingID:    b.ID,
		VehicleID:    b.VehicleID,
		VehicleName:  b.VehicleName,
		CustomerID:   b.CustomerID,
		CustomerName: b.CustomerName,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalPrice:   totalPrice,
		Status:       domain.RentalStatusActive,
	}

	var newCustomer *domain.Customer
	if isNew {
		newCustomer = customer
	}

	if err := s.bookings.Create(ctx, b, rental, newCustomer); err != nil {
		switch {
		case errors.Is(err, repository.ErrVehicleUnavailable):
			return nil, ErrVehicleUnavailable
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateVehicles(ctx)
	}
	s.publish(ctx, "booking_created", b, rental.ID)

	result := &CreateBookingResult{
		Booking:  b,
		RentalID: rental.ID,
		Rental:   rental,
	}
	if isNew {
		result.NewCustomerID = customer.ID
	}
	return result, nil
}

func (s *BookingService) Cancel(ctx context.Context, bookingID string) (*CancelBookingResult, error) {
	b, rentalID, err := s.bookings.Cancel(ctx, bookingID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if rentalID == "" {
		logger.Log.WithField("booking", bookingID).Warn("no ledger entry found for cancelled booking")
	}

	if s.cache != nil {
		_ = s.cache.InvalidateVehicles(ctx)
	}
	s.publish(ctx, "booking_cancelled", b, rentalID)

	return &CancelBookingResult{Success: true, RentalID: rentalID}, nil
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListActive(ctx)
}

func (s *BookingService) publish(ctx context.Context, eventType string, b *domain.Booking, rentalID string) {
	if s.producer == nil || s.bookingsTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:         eventType,
		BookingID:    b.ID,
		RentalID:     rentalID,
		VehicleID:    b.VehicleID,
		VehicleName:  b.VehicleName,
		CustomerID:   b.CustomerID,
		CustomerName: b.CustomerName,
		StartDate:    b.StartDate.String(),
		EndDate:      b.EndDate.String(),
		TotalPrice:   b.TotalPrice,
		Status:       string(b.Status),
	}
	if err := s.producer.Publish(ctx, s.bookingsTopic, b.ID, event); err != nil {
		logger.Log.WithField("booking", b.ID).WithError(err).Warnf("failed to publish %s event", eventType)
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, b.ID, event); err != nil {
			logger.Log.WithField("booking", b.ID).WithError(err).Warnf("failed to publish %s notification", eventType)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
