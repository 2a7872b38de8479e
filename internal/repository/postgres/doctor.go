package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/repository"
)

type doctorRepository struct {
	db *sqlx.DB
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (id, name, email, specialty, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	doctor.ID = uuid.New()
	doctor.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		doctor.ID,
		doctor.Name,
		doctor.Email,
		doctor.Specialty,
		doctor.ImageURL,
		doctor.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}

	return nil
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	query := `
		SELECT id, name, email, specialty, image_url, created_at
		FROM doctors
		ORDER BY name
	`

	var doctors []*model.Doctor
	if err := r.db.SelectContext(ctx, &doctors, query); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	return doctors, nil
}

func (r *doctorRepository) DeleteByEmail(ctx context.Context, email string) error {
	query := `
		DELETE FROM doctors
		WHERE email = $1
	`

	result, err := r.db.ExecContext(ctx, query, email)
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
