package get_slot_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MEC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/MEC-VenueBookingService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error

	lastFilter domain.BookingsFilter
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}

	var out []*domain.Booking
	for _, b := range f.bookings {
		if filter.VenueKey != nil && b.VenueKey != *filter.VenueKey {
			continue
		}
		if filter.Date != nil && !b.BookingDate.Equal(*filter.Date) {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

func date(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func activeBooking(venue domain.VenueKey, day string, slot domain.SlotType) *domain.Booking {
	return &domain.Booking{
		VenueKey:    venue,
		BookingDate: date(day),
		SlotType:    slot,
		Status:      domain.StatusApproved,
	}
}

func TestExecute_EmptyDayAllSlotsAvailable(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, testLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		VenueKey: domain.VenueVOCArangam,
		Date:     date("2026-09-10"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)
	assert.True(t, resp.SlotAvailable(domain.SlotFullDay))
	assert.True(t, resp.SlotAvailable(domain.SlotForenoon))
	assert.True(t, resp.SlotAvailable(domain.SlotAfternoon))
	assert.Equal(t, "VOC Arangam", resp.VenueName)
}

func TestExecute_FullDayBlocksEverything(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			activeBooking(domain.VenueVOCArangam, "2026-09-10", domain.SlotFullDay),
		},
	}
	uc := NewUseCase(repo, testLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		VenueKey: domain.VenueVOCArangam,
		Date:     date("2026-09-10"),
	})

	require.NoError(t, err)
	assert.False(t, resp.SlotAvailable(domain.SlotFullDay))
	assert.False(t, resp.SlotAvailable(domain.SlotForenoon))
	assert.False(t, resp.SlotAvailable(domain.SlotAfternoon))
}

func TestExecute_ForenoonLeavesAfternoonOpen(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			activeBooking(domain.VenueMGAuditorium, "2026-09-10", domain.SlotForenoon),
		},
	}
	uc := NewUseCase(repo, testLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		VenueKey: domain.VenueMGAuditorium,
		Date:     date("2026-09-10"),
	})

	require.NoError(t, err)
	assert.False(t, resp.SlotAvailable(domain.SlotFullDay))
	assert.False(t, resp.SlotAvailable(domain.SlotForenoon))
	assert.True(t, resp.SlotAvailable(domain.SlotAfternoon))
}

func TestExecute_InactiveBookingsReleaseSlots(t *testing.T) {
	cancelled := activeBooking(domain.VenueVOCArangam, "2026-09-10", domain.SlotFullDay)
	cancelled.Status = domain.StatusCancelled
	rejected := activeBooking(domain.VenueVOCArangam, "2026-09-10", domain.SlotForenoon)
	rejected.Status = domain.StatusRejected

	repo := &fakeBookingRepo{bookings: []*domain.Booking{cancelled, rejected}}
	uc := NewUseCase(repo, testLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		VenueKey: domain.VenueVOCArangam,
		Date:     date("2026-09-10"),
	})

	require.NoError(t, err)
	assert.True(t, resp.SlotAvailable(domain.SlotFullDay))
	assert.True(t, resp.SlotAvailable(domain.SlotForenoon))
	assert.True(t, resp.SlotAvailable(domain.SlotAfternoon))
}

func TestExecute_VenueAndDateIsolation(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			activeBooking(domain.VenueVOCArangam, "2026-09-10", domain.SlotFullDay),
			activeBooking(domain.VenueThiruvalluvarArangam, "2026-09-11", domain.SlotFullDay),
		},
	}
	uc := NewUseCase(repo, testLogger{})

	// Другая площадка в тот же день свободна
	resp, err := uc.Execute(context.Background(), &Request{
		VenueKey: domain.VenueThiruvalluvarArangam,
		Date:     date("2026-09-10"),
	})
	require.NoError(t, err)
	assert.True(t, resp.SlotAvailable(domain.SlotFullDay))

	// Та же площадка в другой день свободна
	resp, err = uc.Execute(context.Background(), &Request{
		VenueKey: domain.VenueVOCArangam,
		Date:     date("2026-09-11"),
	})
	require.NoError(t, err)
	assert.True(t, resp.SlotAvailable(domain.SlotFullDay))
}

func TestExecute_MissingTableFailsOpen(t *testing.T) {
	repo := &fakeBookingRepo{err: bookingRepo.ErrTableNotFound}
	uc := NewUseCase(repo, testLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		VenueKey: domain.VenueVOCArangam,
		Date:     date("2026-09-10"),
	})

	require.NoError(t, err)
	assert.True(t, resp.SlotAvailable(domain.SlotFullDay))
	assert.True(t, resp.SlotAvailable(domain.SlotForenoon))
	assert.True(t, resp.SlotAvailable(domain.SlotAfternoon))
}

func TestExecute_RepositoryErrorWrapped(t *testing.T) {
	repo := &fakeBookingRepo{err: bookingRepo.ErrExecQuery}
	uc := NewUseCase(repo, testLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		VenueKey: domain.VenueVOCArangam,
		Date:     date("2026-09-10"),
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_UnknownVenue(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, testLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		VenueKey: domain.VenueKey("arangam-6"),
		Date:     date("2026-09-10"),
	})

	assert.ErrorIs(t, err, ErrInvalidVenue)
}

func TestExecute_ReadsAreIdempotent(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			activeBooking(domain.VenueVOCArangam, "2026-09-10", domain.SlotForenoon),
		},
	}
	uc := NewUseCase(repo, testLogger{})

	req := &Request{VenueKey: domain.VenueVOCArangam, Date: date("2026-09-10")}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
