package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/MEC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/MEC-VenueBookingService/internal/infra/storage/booking"
	"github.com/m04kA/MEC-VenueBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetBookings получает список бронирований с гибкой фильтрацией
// Поддерживает фильтрацию по площадке, дате, координатору и статусу
//
// Примеры использования:
// - Все активные бронирования: GetBookings(ctx, &GetBookingsRequest{})
// - Бронирования площадки: указать VenueKey
// - Бронирования координатора: указать CoordinatorEmail
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetBookings(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := "GetBookings: fetching bookings"
	if req.VenueKey != nil {
		logMsg += fmt.Sprintf(", venue=%s", *req.VenueKey)
	}
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", *req.Date)
	}
	if req.CoordinatorEmail != nil {
		logMsg += fmt.Sprintf(", coordinator=%s", *req.CoordinatorEmail)
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		// Отсутствие таблицы трактуем как пустую историю бронирований
		if errors.Is(err, bookingRepo.ErrTableNotFound) {
			s.logger.Warn("GetBookings: bookings table not found, returning empty list")
			return models.FromDomainBookingList(nil), nil
		}
		s.logger.Error("GetBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Требует непустую причину отмены, которая дописывается в remarks
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s", bookingID)

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		s.logger.Warn("Cancel: empty cancellation reason for booking id=%s", bookingID)
		return ErrReasonRequired
	}

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Дописываем причину отмены к существующим примечаниям
	remarks := composeCancellationRemarks(booking.Remarks, reason)

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, remarks); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Отмена выполняется только через Cancel, здесь она запрещена
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", bookingID, req.Status)

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}
	if newStatus == domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: cancellation requested via status update for booking id=%s", bookingID)
		return fmt.Errorf("%w: use cancel endpoint to cancel a booking", ErrInvalidStatus)
	}

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Отменённые бронирования не возвращаются в оборот
	if booking.IsCancelled() {
		s.logger.Warn("UpdateStatus: booking id=%s is cancelled, status change refused", bookingID)
		return fmt.Errorf("%w: booking is cancelled", ErrInvalidStatus)
	}

	// Обновляем статус
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", bookingID, newStatus)
	return nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, bookingID string) error {
	s.logger.Info("Delete: deleting booking id=%s", bookingID)

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", bookingID)
	return nil
}

// composeCancellationRemarks дописывает отметку об отмене к примечаниям
func composeCancellationRemarks(existing, reason string) string {
	mark := domain.CancellationRemarkPrefix + reason
	if strings.TrimSpace(existing) == "" {
		return mark
	}
	return existing + domain.RemarksSeparator + mark
}
