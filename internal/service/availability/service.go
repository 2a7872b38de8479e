package availability

import (
	"context"
	"fmt"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/repository"
)

// Service derives per-date slot availability: each treatment's open slots are
// its full slot list minus the slots already booked for it on that date.
type Service struct {
	serviceRepo repository.ServiceRepository
	bookingRepo repository.BookingRepository
}

func NewService(serviceRepo repository.ServiceRepository, bookingRepo repository.BookingRepository) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
	}
}

// ListAvailable returns every treatment with its slots field replaced by the
// subsequence still open on the given date, in the original order. The date
// is opaque: an empty or unknown date matches no bookings, so every treatment
// reports all slots open. Stored records are never mutated.
func (s *Service) ListAvailable(ctx context.Context, date string) ([]*model.Service, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	bookings, err := s.bookingRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	// Booked slot labels per treatment name.
	booked := make(map[string]map[string]struct{}, len(services))
	for _, b := range bookings {
		slots, ok := booked[b.TreatmentName]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.TreatmentName] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	available := make([]*model.Service, 0, len(services))
	for _, svc := range services {
		taken := booked[svc.Name]
		open := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, ok := taken[slot]; !ok {
				open = append(open, slot)
			}
		}
		available = append(available, svc.WithSlots(open))
	}

	return available, nil
}
