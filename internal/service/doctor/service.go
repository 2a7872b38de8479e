package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/repository"
)

var ErrDoctorNotFound = errors.New("doctor not found")

// Service manages doctor profiles. All operations are admin-gated at the
// transport layer.
type Service struct {
	repo repository.DoctorRepository
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	doctor := &model.Doctor{
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
		ImageURL:  req.ImageURL,
	}

	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	return doctor, nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, email string) error {
	if err := s.repo.DeleteByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDoctorNotFound
		}
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	return nil
}
