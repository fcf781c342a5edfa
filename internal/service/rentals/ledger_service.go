package rentals

import (
	"context"

	"github.com/autohub/fleetrental/internal/domain"
	"github.com/autohub/fleetrental/internal/kafka"
	"github.com/autohub/fleetrental/internal/logger"
	"github.com/autohub/fleetrental/internal/repository"
)

type LedgerUseCase interface {
	List(ctx context.Context) ([]domain.Rental, error)
	CompleteFinished(ctx context.Context) ([]domain.Rental, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type LedgerService struct {
	repo     repository.RentalRepository
	producer Producer
	topic    string
}

func NewLedgerService(repo repository.RentalRepository, producer Producer, topic string) *LedgerService {
	return &LedgerService{repo: repo, producer: producer, topic: topic}
}

// List returns every ledger entry, newest created first.
func (s *LedgerService) List(ctx context.Context) ([]domain.Rental, error) {
	return s.repo.List(ctx)
}

// CompleteFinished flips active rentals whose period has ended to
// Completed. The worker runs it on a schedule.
func (s *LedgerService) CompleteFinished(ctx context.Context) ([]domain.Rental, error) {
	completed, err := s.repo.CompleteFinishedBefore(ctx, domain.Today())
	if err != nil {
		return nil, err
	}

	for _, r := range completed {
		if s.producer == nil || s.topic == "" {
			continue
		}
		event := kafka.BookingEvent{
			Type:         "rental_completed",
			BookingID:    r.BookingID,
			RentalID:     r.ID,
			VehicleID:    r.VehicleID,
			VehicleName:  r.VehicleName,
			CustomerID:   r.CustomerID,
			CustomerName: r.CustomerName,
			StartDate:    r.StartDate.String(),
			EndDate:      r.EndDate.String(),
			TotalPrice:   r.TotalPrice,
			Status:       string(r.Status),
		}
		if err := s.producer.Publish(ctx, s.topic, r.BookingID, event); err != nil {
			logger.Log.WithField("rental", r.ID).WithError(err).Warn("failed to publish rental_completed event")
		}
	}
	return completed, nil
}

var _ LedgerUseCase = (*LedgerService)(nil)
