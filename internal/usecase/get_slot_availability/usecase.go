package get_slot_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/MEC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/MEC-VenueBookingService/internal/infra/storage/booking"
)

// UseCase use case для проверки доступности слотов площадки на дату
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute возвращает вердикт доступности каждого из трех слотов
//
// Читает ВСЕ активные бронирования площадки на дату одним запросом -
// перекрестное правило full-day требует знать занятость всех слотов,
// а не только запрошенного. Кэширования нет: каждый вызов перечитывает
// текущее состояние хранилища.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSlotAvailability: venue=%s, date=%s",
		req.VenueKey, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSlotAvailability: validation failed: %v", err)
		return nil, err
	}

	active, err := uc.activeBookings(ctx, req.VenueKey, req.Date)
	if err != nil {
		return nil, err
	}

	activeSlots := make([]domain.SlotType, 0, len(active))
	for _, b := range active {
		activeSlots = append(activeSlots, b.SlotType)
	}

	slots := make([]SlotAvailability, 0, len(domain.AllSlots))
	for _, slot := range domain.AllSlots {
		slots = append(slots, SlotAvailability{
			SlotType:  slot,
			TimeRange: slot.TimeRange(),
			Available: !domain.Conflicts(slot, activeSlots),
		})
	}

	uc.logger.Info("GetSlotAvailability: venue=%s, date=%s, active_bookings=%d",
		req.VenueKey, req.Date.Format(domain.DateFormat), len(active))

	return &Response{
		VenueKey:  req.VenueKey,
		VenueName: req.VenueKey.DisplayName(),
		Date:      req.Date,
		Slots:     slots,
	}, nil
}

// activeBookings читает активные бронирования площадки на дату
//
// Отсутствие таблицы трактуется как "бронирований пока нет" - проверка
// отвечает fail open, чтобы непроинициализированное хранилище не
// блокировало все бронирования.
func (uc *UseCase) activeBookings(ctx context.Context, venue domain.VenueKey, date time.Time) ([]*domain.Booking, error) {
	filter := domain.BookingsFilter{
		VenueKey:        &venue,
		Date:            &date,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrTableNotFound) {
			uc.logger.Warn("GetSlotAvailability: bookings table missing, failing open for venue=%s, date=%s",
				venue, date.Format(domain.DateFormat))
			return nil, nil
		}
		uc.logger.Error("GetSlotAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	return bookings, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.VenueKey.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidVenue, req.VenueKey)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
