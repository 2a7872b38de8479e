package availability

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/repository"
)

type fakeServiceRepo struct {
	services []*model.Service
}

func (f *fakeServiceRepo) List(ctx context.Context) ([]*model.Service, error) {
	return f.services, nil
}

type fakeBookingRepo struct {
	bookings []*model.Booking
}

func (f *fakeBookingRepo) CreateUnique(ctx context.Context, b *model.Booking) (bool, error) {
	return true, nil
}

func (f *fakeBookingRepo) GetByTriple(ctx context.Context, treatment, date, patient string) (*model.Booking, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeBookingRepo) ListByDate(ctx context.Context, date string) ([]*model.Booking, error) {
	var matched []*model.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (f *fakeBookingRepo) ListByPatientEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	return nil, nil
}

func newFixture(bookings ...*model.Booking) *Service {
	services := []*model.Service{
		{Name: "Cleaning", Slots: pq.StringArray{"9am", "10am", "11am"}},
		{Name: "Whitening", Slots: pq.StringArray{"9am", "10am"}},
	}
	return NewService(&fakeServiceRepo{services: services}, &fakeBookingRepo{bookings: bookings})
}

func TestListAvailableNoBookings(t *testing.T) {
	svc := newFixture()

	available, err := svc.ListAvailable(context.Background(), "2021-06-06")
	require.NoError(t, err)
	require.Len(t, available, 2)

	assert.Equal(t, []string{"9am", "10am", "11am"}, []string(available[0].Slots))
	assert.Equal(t, []string{"9am", "10am"}, []string(available[1].Slots))
}

func TestListAvailableRemovesBookedSlot(t *testing.T) {
	svc := newFixture(&model.Booking{
		TreatmentName: "Cleaning",
		Date:          "2021-06-06",
		PatientName:   "Alice",
		Slot:          "10am",
	})

	available, err := svc.ListAvailable(context.Background(), "2021-06-06")
	require.NoError(t, err)

	assert.Equal(t, "Cleaning", available[0].Name)
	assert.Equal(t, []string{"9am", "11am"}, []string(available[0].Slots))
	// Other treatments keep the slot: the booking only claims it for Cleaning.
	assert.Equal(t, []string{"9am", "10am"}, []string(available[1].Slots))
}

func TestListAvailableOtherDateUnaffected(t *testing.T) {
	svc := newFixture(&model.Booking{
		TreatmentName: "Cleaning",
		Date:          "2021-06-06",
		PatientName:   "Alice",
		Slot:          "10am",
	})

	available, err := svc.ListAvailable(context.Background(), "2021-06-07")
	require.NoError(t, err)
	assert.Equal(t, []string{"9am", "10am", "11am"}, []string(available[0].Slots))
}

func TestListAvailableEmptyDateShowsEverythingOpen(t *testing.T) {
	svc := newFixture(&model.Booking{
		TreatmentName: "Cleaning",
		Date:          "2021-06-06",
		PatientName:   "Alice",
		Slot:          "10am",
	})

	// An absent date matches no bookings, so every slot reports open.
	available, err := svc.ListAvailable(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"9am", "10am", "11am"}, []string(available[0].Slots))
}

func TestListAvailableDoesNotMutateStoredServices(t *testing.T) {
	repo := &fakeServiceRepo{services: []*model.Service{
		{Name: "Cleaning", Slots: pq.StringArray{"9am", "10am", "11am"}},
	}}
	bookings := &fakeBookingRepo{bookings: []*model.Booking{
		{TreatmentName: "Cleaning", Date: "2021-06-06", PatientName: "Alice", Slot: "9am"},
	}}
	svc := NewService(repo, bookings)

	_, err := svc.ListAvailable(context.Background(), "2021-06-06")
	require.NoError(t, err)

	assert.Equal(t, []string{"9am", "10am", "11am"}, []string(repo.services[0].Slots))
}

func TestListAvailableAllSlotsBooked(t *testing.T) {
	svc := newFixture(
		&model.Booking{TreatmentName: "Whitening", Date: "2021-06-06", PatientName: "Alice", Slot: "9am"},
		&model.Booking{TreatmentName: "Whitening", Date: "2021-06-06", PatientName: "Bob", Slot: "10am"},
	)

	available, err := svc.ListAvailable(context.Background(), "2021-06-06")
	require.NoError(t, err)

	assert.Equal(t, "Whitening", available[1].Name)
	assert.Empty(t, []string(available[1].Slots))
}
