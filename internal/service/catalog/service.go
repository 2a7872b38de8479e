package catalog

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/repository"
)

const (
	cacheKey = "services"
	cacheTTL = 5 * time.Minute
)

// Service serves the treatment catalog. The catalog changes rarely, so reads
// go through a short-lived in-process cache.
type Service struct {
	repo  repository.ServiceRepository
	cache *gocache.Cache
}

func NewService(repo repository.ServiceRepository) *Service {
	return &Service{
		repo:  repo,
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

func (s *Service) ListServices(ctx context.Context) ([]*model.Service, error) {
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.([]*model.Service), nil
	}

	services, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	s.cache.Set(cacheKey, services, gocache.DefaultExpiration)
	return services, nil
}
