package booking

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/repository"
)

// Notifier dispatches booking confirmations. Dispatch is best-effort; a
// failure must never fail the booking.
type Notifier interface {
	BookingCreated(ctx context.Context, booking *model.Booking) error
}

// Service registers bookings, enforcing one booking per
// (treatment, date, patient) triple.
type Service struct {
	repo     repository.BookingRepository
	notifier Notifier
}

func NewService(repo repository.BookingRepository, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
	}
}

// CreateBooking attempts to register the booking. When the triple is already
// taken, the result carries the existing record and Created=false; the caller
// shows it to the client rather than treating it as an error. The insert is a
// single conditional write, so concurrent duplicates cannot both succeed.
func (s *Service) CreateBooking(ctx context.Context, req *model.CreateBookingRequest) (*model.BookingResult, error) {
	booking := &model.Booking{
		TreatmentName: req.TreatmentName,
		Date:          req.Date,
		Slot:          req.Slot,
		PatientName:   req.PatientName,
		PatientEmail:  req.PatientEmail,
		Phone:         req.Phone,
	}

	created, err := s.repo.CreateUnique(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if !created {
		existing, err := s.repo.GetByTriple(ctx, req.TreatmentName, req.Date, req.PatientName)
		if err != nil {
			return nil, fmt.Errorf("failed to load conflicting booking: %w", err)
		}
		return &model.BookingResult{Created: false, Booking: existing}, nil
	}

	if s.notifier != nil {
		// Fire and forget: the request does not wait on delivery and the
		// booking stands regardless of the outcome.
		go func(b model.Booking) {
			if err := s.notifier.BookingCreated(context.Background(), &b); err != nil {
				log.Warn().
					Err(err).
					Str("booking_id", b.ID.String()).
					Str("patient_email", b.PatientEmail).
					Msg("booking notification failed")
			}
		}(*booking)
	}

	return &model.BookingResult{Created: true, Booking: booking}, nil
}

// ListByPatient returns all bookings made under the given patient email.
func (s *Service) ListByPatient(ctx context.Context, email string) ([]*model.Booking, error) {
	bookings, err := s.repo.ListByPatientEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
