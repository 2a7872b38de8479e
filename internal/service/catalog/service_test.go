package catalog

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
)

type countingServiceRepo struct {
	services []*model.Service
	calls    int
}

func (c *countingServiceRepo) List(ctx context.Context) ([]*model.Service, error) {
	c.calls++
	return c.services, nil
}

func TestListServices(t *testing.T) {
	repo := &countingServiceRepo{services: []*model.Service{
		{Name: "Cleaning", Slots: pq.StringArray{"9am", "10am"}},
	}}
	svc := NewService(repo)

	services, err := svc.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Cleaning", services[0].Name)
}

func TestListServicesCachesResult(t *testing.T) {
	repo := &countingServiceRepo{services: []*model.Service{
		{Name: "Cleaning", Slots: pq.StringArray{"9am"}},
	}}
	svc := NewService(repo)

	_, err := svc.ListServices(context.Background())
	require.NoError(t, err)
	_, err = svc.ListServices(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
}
