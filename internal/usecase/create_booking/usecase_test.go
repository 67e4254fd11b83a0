package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MEC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/MEC-VenueBookingService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	getErr    error
	createErr error

	createCalls int
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
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

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}

	created := *booking
	created.ID = fmt.Sprintf("7f2b6a1c-0d3e-4f5a-9b8c-1d2e3f4a5b%02d", f.createCalls)
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.bookings = append(f.bookings, &created)
	return &created, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
// commitErr имитирует ошибку, возникшую уже на commit.
type fakeTxManager struct {
	calls     int
	commitErr error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return f.commitErr
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
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

func newTestUseCase(repo *fakeBookingRepo, tx *fakeTxManager) *UseCase {
	uc := NewUseCase(repo, tx, testLogger{})
	uc.timeProvider = &fixedTimeProvider{now: date("2026-09-01")}
	return uc
}

func validRequest() *Request {
	return &Request{
		VenueKey:         domain.VenueVOCArangam,
		Date:             date("2026-09-10"),
		SlotType:         domain.SlotForenoon,
		EventName:        "Annual Tech Symposium",
		EventType:        "Symposium",
		Department:       "CSE",
		Year:             "III",
		CoordinatorName:  "Priya Raman",
		CoordinatorEmail: "priya.raman@mahendra.info",
		ContactNumber:    "9876543210",
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	tx := &fakeTxManager{}
	uc := newTestUseCase(repo, tx)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, domain.StatusApproved, resp.Status)
	assert.Equal(t, domain.VenueVOCArangam, resp.VenueKey)
	assert.Equal(t, "VOC Arangam", resp.VenueName)
	assert.Equal(t, domain.SlotForenoon, resp.SlotType)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, repo.createCalls)
}

func TestExecute_SlotConflictNoInsert(t *testing.T) {
	existing := &domain.Booking{
		VenueKey:    domain.VenueVOCArangam,
		BookingDate: date("2026-09-10"),
		SlotType:    domain.SlotFullDay,
		Status:      domain.StatusApproved,
	}
	repo := &fakeBookingRepo{bookings: []*domain.Booking{existing}}
	uc := newTestUseCase(repo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, repo.createCalls, "insert must not run when the re-check fails")
}

func TestExecute_HalvesCoexist(t *testing.T) {
	existing := &domain.Booking{
		VenueKey:    domain.VenueVOCArangam,
		BookingDate: date("2026-09-10"),
		SlotType:    domain.SlotAfternoon,
		Status:      domain.StatusPending,
	}
	repo := &fakeBookingRepo{bookings: []*domain.Booking{existing}}
	uc := newTestUseCase(repo, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.SlotForenoon, resp.SlotType)
}

func TestExecute_CancelledBookingReleasesSlot(t *testing.T) {
	existing := &domain.Booking{
		VenueKey:    domain.VenueVOCArangam,
		BookingDate: date("2026-09-10"),
		SlotType:    domain.SlotForenoon,
		Status:      domain.StatusCancelled,
	}
	repo := &fakeBookingRepo{bookings: []*domain.Booking{existing}}
	uc := newTestUseCase(repo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
}

func TestExecute_UniqueIndexViolationMapsToConflict(t *testing.T) {
	repo := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_SerializationFailureAtCommitMapsToConflict(t *testing.T) {
	// Под SERIALIZABLE конкурентная вставка может сорвать транзакцию
	// кодом 40001 уже на commit, минуя репозиторий
	repo := &fakeBookingRepo{}
	tx := &fakeTxManager{
		commitErr: fmt.Errorf("txmanager: commit transaction: %w", &pq.Error{Code: "40001"}),
	}
	uc := newTestUseCase(repo, tx)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, resp)
}

func TestExecute_MissingTableFailsOpenOnRead(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrTableNotFound}
	uc := newTestUseCase(repo, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, domain.StatusApproved, resp.Status)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "unknown venue",
			mutate:  func(req *Request) { req.VenueKey = "arangam-6" },
			wantErr: ErrInvalidVenue,
		},
		{
			name:    "unknown slot",
			mutate:  func(req *Request) { req.SlotType = "evening" },
			wantErr: ErrInvalidSlot,
		},
		{
			name:    "date in the past",
			mutate:  func(req *Request) { req.Date = date("2026-08-31") },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "missing event name",
			mutate:  func(req *Request) { req.EventName = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "email outside college domain",
			mutate:  func(req *Request) { req.CoordinatorEmail = "priya.raman@gmail.com" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed email",
			mutate:  func(req *Request) { req.CoordinatorEmail = "not-an-email" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "contact number too short",
			mutate:  func(req *Request) { req.ContactNumber = "987654321" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "contact number with letters",
			mutate:  func(req *Request) { req.ContactNumber = "987654321x" },
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{}
			uc := newTestUseCase(repo, &fakeTxManager{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.createCalls)
		})
	}
}

func TestExecute_DateTodayIsAllowed(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeTxManager{})

	req := validRequest()
	req.Date = date("2026-09-01")

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
}

// Сценарий одной площадки на одну дату: forenoon, затем full-day
// отклоняется, afternoon проходит, после отмены forenoon слот
// снова бронируется.
func TestExecute_VenueDayScenario(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeTxManager{})

	forenoon := validRequest()
	resp, err := uc.Execute(context.Background(), forenoon)
	require.NoError(t, err)

	fullDay := validRequest()
	fullDay.SlotType = domain.SlotFullDay
	_, err = uc.Execute(context.Background(), fullDay)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	afternoon := validRequest()
	afternoon.SlotType = domain.SlotAfternoon
	_, err = uc.Execute(context.Background(), afternoon)
	require.NoError(t, err)

	// Отменяем первое бронирование и пробуем forenoon снова
	for _, b := range repo.bookings {
		if b.ID == resp.ID {
			b.Status = domain.StatusCancelled
		}
	}

	again := validRequest()
	_, err = uc.Execute(context.Background(), again)
	require.NoError(t, err)
}
