package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Service is a bookable treatment. Slots is the full list of time labels the
// treatment offers on any given day; availability responses replace it with
// the subset still open for the requested date.
type Service struct {
	ID    uuid.UUID      `db:"id" json:"id"`
	Name  string         `db:"name" json:"name"`
	Slots pq.StringArray `db:"slots" json:"slots"`
}

// WithSlots returns a copy of the service with its slot list replaced. The
// stored record is never mutated.
func (s *Service) WithSlots(slots []string) *Service {
	return &Service{
		ID:    s.ID,
		Name:  s.Name,
		Slots: slots,
	}
}
