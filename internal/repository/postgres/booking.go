package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/repository"
)

type bookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// CreateUnique relies on the unique index on (treatment_name, date,
// patient_name); ON CONFLICT makes the existence check and the insert a
// single statement, so two concurrent identical requests cannot both win.
func (r *bookingRepository) CreateUnique(ctx context.Context, booking *model.Booking) (bool, error) {
	query := `
		INSERT INTO bookings (
			id, treatment_name, date, slot,
			patient_name, patient_email, phone, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (treatment_name, date, patient_name) DO NOTHING
	`

	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.TreatmentName,
		booking.Date,
		booking.Slot,
		booking.PatientName,
		booking.PatientEmail,
		booking.Phone,
		booking.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *bookingRepository) GetByTriple(ctx context.Context, treatment, date, patient string) (*model.Booking, error) {
	query := `
		SELECT id, treatment_name, date, slot,
			   patient_name, patient_email, phone, created_at
		FROM bookings
		WHERE treatment_name = $1 AND date = $2 AND patient_name = $3
	`

	var booking model.Booking
	if err := r.db.GetContext(ctx, &booking, query, treatment, date, patient); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

func (r *bookingRepository) ListByDate(ctx context.Context, date string) ([]*model.Booking, error) {
	query := `
		SELECT id, treatment_name, date, slot,
			   patient_name, patient_email, phone, created_at
		FROM bookings
		WHERE date = $1
	`

	var bookings []*model.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, date); err != nil {
		return nil, fmt.Errorf("failed to list bookings by date: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) ListByPatientEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	query := `
		SELECT id, treatment_name, date, slot,
			   patient_name, patient_email, phone, created_at
		FROM bookings
		WHERE patient_email = $1
		ORDER BY created_at DESC
	`

	var bookings []*model.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, email); err != nil {
		return nil, fmt.Errorf("failed to list bookings by patient: %w", err)
	}

	return bookings, nil
}
