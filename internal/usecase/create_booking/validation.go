package create_booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/MEC-VenueBookingService/internal/domain"
)

// validate валидатор запросов с кастомным правилом для почты колледжа
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// college_email: почта координатора принадлежит домену колледжа
	err := v.RegisterValidation("college_email", func(fl validator.FieldLevel) bool {
		return strings.HasSuffix(strings.ToLower(fl.Field().String()), domain.CoordinatorEmailDomain)
	})
	if err != nil {
		panic(err)
	}

	return v
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.VenueKey.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidVenue, req.VenueKey)
	}

	if !req.SlotType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, req.SlotType)
	}

	if err := validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			first := validationErrors[0]
			return fmt.Errorf("%w: field %s failed %s validation", ErrInvalidInput, first.Field(), first.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
