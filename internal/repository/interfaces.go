package repository

import (
	"context"
	"errors"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
)

// ErrNotFound is returned when a lookup matches no record. Callers that treat
// absence as a normal state (admin checks, booking dedup reads) branch on it
// instead of failing.
var ErrNotFound = errors.New("record not found")

type ServiceRepository interface {
	List(ctx context.Context) ([]*model.Service, error)
}

type BookingRepository interface {
	// CreateUnique inserts the booking unless one already exists for the same
	// (treatment_name, date, patient_name) triple. It reports false without
	// error on conflict, so check-then-insert races resolve inside the store.
	CreateUnique(ctx context.Context, booking *model.Booking) (bool, error)
	GetByTriple(ctx context.Context, treatment, date, patient string) (*model.Booking, error)
	ListByDate(ctx context.Context, date string) ([]*model.Booking, error)
	ListByPatientEmail(ctx context.Context, email string) ([]*model.Booking, error)
}

type UserRepository interface {
	// Upsert inserts the user or, when the email is already registered,
	// updates the profile fields in place.
	Upsert(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	// SetRole updates the user's role. Returns ErrNotFound when no user has
	// the given email.
	SetRole(ctx context.Context, email, role string) error
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	List(ctx context.Context) ([]*model.Doctor, error)
	DeleteByEmail(ctx context.Context, email string) error
}
