package email

import (
	"context"

	"github.com/autohub/fleetrental/internal/kafka"
	"github.com/autohub/fleetrental/internal/logger"
)

// Sender delivers booking notifications. The delivery channel is a stub;
// TODO: wire a real provider once the fleet owner picks one.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	logger.Log.WithFields(map[string]interface{}{
		"type":     event.Type,
		"booking":  event.BookingID,
		"vehicle":  event.VehicleName,
		"customer": event.CustomerName,
		"start":    event.StartDate,
		"end":      event.EndDate,
	}).Info("notification sent")
	return nil
}
