package notification

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/email"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
	"github.com/abdullah-masud/Doctors-Portal-Server/pkg/messaging"
)

const bookingCreatedChannel = "booking.created"

// Service fans out booking confirmations over email and the message broker.
// Either collaborator may be nil (disabled in config); failures are logged
// and never returned as fatal when at least one channel succeeds.
type Service struct {
	sender email.Sender
	broker messaging.Broker
}

func NewService(sender email.Sender, broker messaging.Broker) *Service {
	return &Service{
		sender: sender,
		broker: broker,
	}
}

func (s *Service) BookingCreated(ctx context.Context, booking *model.Booking) error {
	var emailErr, publishErr error

	if s.sender != nil {
		emailErr = s.sender.SendBookingConfirmation(
			booking.PatientEmail,
			booking.PatientName,
			booking.TreatmentName,
			booking.Date,
			booking.Slot,
		)
		if emailErr != nil {
			log.Warn().
				Err(emailErr).
				Str("patient_email", booking.PatientEmail).
				Msg("failed to send confirmation email")
		}
	}

	if s.broker != nil {
		publishErr = s.broker.Publish(ctx, bookingCreatedChannel, booking)
		if publishErr != nil {
			log.Warn().
				Err(publishErr).
				Str("channel", bookingCreatedChannel).
				Msg("failed to publish booking event")
		}
	}

	if emailErr != nil && publishErr != nil {
		return fmt.Errorf("all notification channels failed: %w", emailErr)
	}
	return nil
}
