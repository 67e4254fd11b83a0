package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MEC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/MEC-VenueBookingService/internal/infra/storage/booking"
	"github.com/m04kA/MEC-VenueBookingService/internal/service/bookings/models"
	"github.com/m04kA/MEC-VenueBookingService/pkg/ptr"
)

const testBookingID = "7f2b6a1c-0d3e-4f5a-9b8c-1d2e3f4a5b6c"

type fakeBookingRepo struct {
	booking  *domain.Booking
	bookings []*domain.Booking

	getErr    error
	listErr   error
	updateErr error
	cancelErr error
	deleteErr error

	cancelledID      string
	cancelledRemarks string
	updatedStatus    domain.BookingStatus
	deletedID        string
	lastFilter       domain.BookingsFilter
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.bookings, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedStatus = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id string, remarks string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelledID = id
	f.cancelledRemarks = remarks
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

func testBooking(status domain.BookingStatus, remarks string) *domain.Booking {
	day, _ := time.Parse(domain.DateFormat, "2026-09-10")
	return &domain.Booking{
		ID:               testBookingID,
		VenueKey:         domain.VenueVOCArangam,
		BookingDate:      day,
		SlotType:         domain.SlotForenoon,
		Status:           status,
		EventName:        "Annual Tech Symposium",
		EventType:        "Symposium",
		Department:       "CSE",
		Year:             "III",
		CoordinatorName:  "Priya Raman",
		CoordinatorEmail: "priya.raman@mahendra.info",
		ContactNumber:    "9876543210",
		Remarks:          remarks,
	}
}

func TestGetByID(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusApproved, "")}
	svc := NewService(repo, testLogger{})

	resp, err := svc.GetByID(context.Background(), testBookingID)

	require.NoError(t, err)
	assert.Equal(t, testBookingID, resp.ID)
	assert.Equal(t, "VOC Arangam", resp.VenueName)
	assert.Equal(t, "9:00 AM - 1:00 PM", resp.TimeRange)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, testLogger{})

	_, err := svc.GetByID(context.Background(), testBookingID)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_AppendsReasonToRemarks(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusApproved, "Projector needed")}
	svc := NewService(repo, testLogger{})

	err := svc.Cancel(context.Background(), testBookingID, &models.CancelBookingRequest{
		Reason: "Event postponed",
	})

	require.NoError(t, err)
	assert.Equal(t, testBookingID, repo.cancelledID)
	assert.Equal(t, "Projector needed | CANCELLED: Event postponed", repo.cancelledRemarks)
}

func TestCancel_EmptyRemarksGetOnlyTheMark(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending, "")}
	svc := NewService(repo, testLogger{})

	err := svc.Cancel(context.Background(), testBookingID, &models.CancelBookingRequest{
		Reason: "Duplicate entry",
	})

	require.NoError(t, err)
	assert.Equal(t, "CANCELLED: Duplicate entry", repo.cancelledRemarks)
}

func TestCancel_ReasonRequired(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusApproved, "")}
	svc := NewService(repo, testLogger{})

	err := svc.Cancel(context.Background(), testBookingID, &models.CancelBookingRequest{
		Reason: "   ",
	})

	assert.ErrorIs(t, err, ErrReasonRequired)
	assert.Empty(t, repo.cancelledID)
}

func TestCancel_InactiveBookingRefused(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusRejected, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			repo := &fakeBookingRepo{booking: testBooking(status, "")}
			svc := NewService(repo, testLogger{})

			err := svc.Cancel(context.Background(), testBookingID, &models.CancelBookingRequest{
				Reason: "Event postponed",
			})

			assert.ErrorIs(t, err, ErrCannotCancel)
		})
	}
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, testLogger{})

	err := svc.Cancel(context.Background(), testBookingID, &models.CancelBookingRequest{
		Reason: "Event postponed",
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending, "")}
	svc := NewService(repo, testLogger{})

	err := svc.UpdateStatus(context.Background(), testBookingID, &models.UpdateStatusRequest{
		Status: "rejected",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, repo.updatedStatus)
}

func TestUpdateStatus_CancellationRefused(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusApproved, "")}
	svc := NewService(repo, testLogger{})

	err := svc.UpdateStatus(context.Background(), testBookingID, &models.UpdateStatusRequest{
		Status: "cancelled",
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending, "")}
	svc := NewService(repo, testLogger{})

	err := svc.UpdateStatus(context.Background(), testBookingID, &models.UpdateStatusRequest{
		Status: "confirmed",
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_CancelledBookingRefused(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusCancelled, "")}
	svc := NewService(repo, testLogger{})

	err := svc.UpdateStatus(context.Background(), testBookingID, &models.UpdateStatusRequest{
		Status: "approved",
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetBookings_FilterConversion(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{testBooking(domain.StatusApproved, "")}}
	svc := NewService(repo, testLogger{})

	resp, err := svc.GetBookings(context.Background(), &models.GetBookingsRequest{
		VenueKey:         ptr.Ptr("arangam-1"),
		Date:             ptr.Ptr("2026-09-10"),
		CoordinatorEmail: ptr.Ptr("priya.raman@mahendra.info"),
		Status:           ptr.Ptr("approved"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	require.NotNil(t, repo.lastFilter.VenueKey)
	assert.Equal(t, domain.VenueVOCArangam, *repo.lastFilter.VenueKey)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusApproved, *repo.lastFilter.Status)
}

func TestGetBookings_InvalidFilter(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, testLogger{})

	tests := []struct {
		name string
		req  *models.GetBookingsRequest
	}{
		{"unknown venue", &models.GetBookingsRequest{VenueKey: ptr.Ptr("arangam-6")}},
		{"bad date", &models.GetBookingsRequest{Date: ptr.Ptr("10-09-2026")}},
		{"unknown status", &models.GetBookingsRequest{Status: ptr.Ptr("confirmed")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetBookings(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetBookings_MissingTableReturnsEmptyList(t *testing.T) {
	repo := &fakeBookingRepo{listErr: bookingRepo.ErrTableNotFound}
	svc := NewService(repo, testLogger{})

	resp, err := svc.GetBookings(context.Background(), &models.GetBookingsRequest{})

	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
}

func TestDelete(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewService(repo, testLogger{})

	err := svc.Delete(context.Background(), testBookingID)

	require.NoError(t, err)
	assert.Equal(t, testBookingID, repo.deletedID)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{deleteErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, testLogger{})

	err := svc.Delete(context.Background(), testBookingID)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
