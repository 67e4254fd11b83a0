package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/MEC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/MEC-VenueBookingService/internal/infra/storage/booking"
)

// UseCase use case для создания бронирования площадки
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции с блокировкой строк на дату (FOR UPDATE). Это авторитетная
// повторная проверка: предварительная проверка на стороне клиента могла
// устареть между обновлением экрана и отправкой формы. Уникальный
// индекс активных бронирований страхует на уровне хранилища - его
// нарушение тоже трактуется как занятый слот, а не как сбой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: venue=%s, date=%s, slot=%s, coordinator=%s",
		req.VenueKey, req.Date.Format(domain.DateFormat), req.SlotType, req.CoordinatorEmail)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: venue=%s, date=%s",
			req.VenueKey, req.Date.Format(domain.DateFormat))
		return nil, err
	}

	var result *domain.Booking

	// 3. Проверка доступности + вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		activeSlots, err := uc.activeSlots(txCtx, req.VenueKey, req.Date)
		if err != nil {
			return err
		}

		if domain.Conflicts(req.SlotType, activeSlots) {
			uc.logger.Warn("CreateBooking: slot not available: venue=%s, date=%s, slot=%s",
				req.VenueKey, req.Date.Format(domain.DateFormat), req.SlotType)
			return ErrSlotNotAvailable
		}

		booking := &domain.Booking{
			VenueKey:    req.VenueKey,
			BookingDate: req.Date,
			SlotType:    req.SlotType,
			// Workflow согласования в системе не используется:
			// бронирование подтверждается сразу при создании
			Status:           domain.StatusApproved,
			EventName:        req.EventName,
			EventType:        req.EventType,
			Department:       req.Department,
			Year:             req.Year,
			CoordinatorName:  req.CoordinatorName,
			CoordinatorEmail: req.CoordinatorEmail,
			ContactNumber:    req.ContactNumber,
			Remarks:          req.Remarks,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: unique index rejected insert: venue=%s, date=%s, slot=%s",
					req.VenueKey, req.Date.Format(domain.DateFormat), req.SlotType)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Срыв сериализации на commit приходит из менеджера транзакций,
		// минуя репозиторий. Для клиента это тот же занятый слот.
		if bookingRepo.IsSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: serializable transaction aborted by concurrent booking: venue=%s, date=%s, slot=%s",
				req.VenueKey, req.Date.Format(domain.DateFormat), req.SlotType)
			return nil, ErrSlotNotAvailable
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, venue=%s, date=%s, slot=%s",
		result.ID, result.VenueKey, result.BookingDate.Format(domain.DateFormat), result.SlotType)

	return &Response{
		ID:               result.ID,
		VenueKey:         result.VenueKey,
		VenueName:        result.VenueKey.DisplayName(),
		Date:             result.BookingDate,
		SlotType:         result.SlotType,
		Status:           result.Status,
		EventName:        result.EventName,
		EventType:        result.EventType,
		Department:       result.Department,
		Year:             result.Year,
		CoordinatorName:  result.CoordinatorName,
		CoordinatorEmail: result.CoordinatorEmail,
		ContactNumber:    result.ContactNumber,
		Remarks:          result.Remarks,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}

// activeSlots возвращает занятые слоты площадки на дату
// Отсутствие таблицы при чтении трактуется как пустой список: сама
// вставка в этом случае всё равно завершится ошибкой хранилища.
func (uc *UseCase) activeSlots(ctx context.Context, venue domain.VenueKey, date time.Time) ([]domain.SlotType, error) {
	filter := domain.BookingsFilter{
		VenueKey:        &venue,
		Date:            &date,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrTableNotFound) {
			uc.logger.Warn("CreateBooking: bookings table missing, treating as empty for venue=%s", venue)
			return nil, nil
		}
		uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	slots := make([]domain.SlotType, 0, len(bookings))
	for _, b := range bookings {
		slots = append(slots, b.SlotType)
	}

	return slots, nil
}
