package create_booking

import "errors"

var (
	// ErrInvalidVenue возвращается при неизвестном ключе площадки
	ErrInvalidVenue = errors.New("create_booking: unknown venue")

	// ErrInvalidSlot возвращается при неизвестном типе слота
	ErrInvalidSlot = errors.New("create_booking: unknown slot type")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrSlotNotAvailable возвращается, когда запрошенный слот занят
	// (напрямую или через перекрестное правило full-day)
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
