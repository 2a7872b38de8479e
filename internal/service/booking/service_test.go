package booking

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/model"
	"github.com/abdullah-masud/Doctors-Portal-Server/internal/repository"
)

type tripleKey struct {
	treatment, date, patient string
}

// memoryBookingRepo mimics the conditional-insert semantics of the postgres
// repository: the first writer of a triple wins, later writers see a conflict.
type memoryBookingRepo struct {
	bookings map[tripleKey]*model.Booking
}

func newMemoryBookingRepo() *memoryBookingRepo {
	return &memoryBookingRepo{bookings: make(map[tripleKey]*model.Booking)}
}

func (m *memoryBookingRepo) CreateUnique(ctx context.Context, b *model.Booking) (bool, error) {
	key := tripleKey{b.TreatmentName, b.Date, b.PatientName}
	if _, exists := m.bookings[key]; exists {
		return false, nil
	}
	stored := *b
	m.bookings[key] = &stored
	return true, nil
}

func (m *memoryBookingRepo) GetByTriple(ctx context.Context, treatment, date, patient string) (*model.Booking, error) {
	if b, ok := m.bookings[tripleKey{treatment, date, patient}]; ok {
		return b, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memoryBookingRepo) ListByDate(ctx context.Context, date string) ([]*model.Booking, error) {
	return nil, nil
}

func (m *memoryBookingRepo) ListByPatientEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	var out []*model.Booking
	for _, b := range m.bookings {
		if b.PatientEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeNotifier struct {
	calls atomic.Int64
	err   error
}

func (f *fakeNotifier) BookingCreated(ctx context.Context, b *model.Booking) error {
	f.calls.Add(1)
	return f.err
}

func request() *model.CreateBookingRequest {
	return &model.CreateBookingRequest{
		TreatmentName: "Cleaning",
		Date:          "2021-06-06",
		Slot:          "10am",
		PatientName:   "Alice",
		PatientEmail:  "alice@example.com",
	}
}

func TestCreateBooking(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewService(newMemoryBookingRepo(), notifier)

	result, err := svc.CreateBooking(context.Background(), request())
	require.NoError(t, err)

	assert.True(t, result.Created)
	require.NotNil(t, result.Booking)
	assert.Equal(t, "Cleaning", result.Booking.TreatmentName)

	require.Eventually(t, func() bool {
		return notifier.calls.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestCreateBookingDuplicateTripleReturnsExisting(t *testing.T) {
	svc := NewService(newMemoryBookingRepo(), &fakeNotifier{})

	first, err := svc.CreateBooking(context.Background(), request())
	require.NoError(t, err)
	require.True(t, first.Created)

	// Same triple, different slot: still a conflict. One booking per patient
	// per treatment per day.
	dup := request()
	dup.Slot = "11am"
	second, err := svc.CreateBooking(context.Background(), dup)
	require.NoError(t, err)

	assert.False(t, second.Created)
	require.NotNil(t, second.Booking)
	assert.Equal(t, first.Booking.ID, second.Booking.ID)
	assert.Equal(t, "10am", second.Booking.Slot)
}

func TestCreateBookingNotificationFailureDoesNotFailBooking(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("smtp unreachable")}
	svc := NewService(newMemoryBookingRepo(), notifier)

	result, err := svc.CreateBooking(context.Background(), request())
	require.NoError(t, err)
	assert.True(t, result.Created)

	require.Eventually(t, func() bool {
		return notifier.calls.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestCreateBookingNoNotifierOnConflict(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewService(newMemoryBookingRepo(), notifier)

	_, err := svc.CreateBooking(context.Background(), request())
	require.NoError(t, err)
	_, err = svc.CreateBooking(context.Background(), request())
	require.NoError(t, err)

	// Only the successful attempt notifies.
	require.Eventually(t, func() bool {
		return notifier.calls.Load() == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(1), notifier.calls.Load())
}

func TestListByPatient(t *testing.T) {
	svc := NewService(newMemoryBookingRepo(), nil)

	_, err := svc.CreateBooking(context.Background(), request())
	require.NoError(t, err)

	bookings, err := svc.ListByPatient(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	none, err := svc.ListByPatient(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}
