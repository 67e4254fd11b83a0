package get_slot_availability

import "errors"

var (
	// ErrInvalidVenue возвращается при неизвестном ключе площадки
	ErrInvalidVenue = errors.New("get_slot_availability: unknown venue")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_slot_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_slot_availability: internal error")
)
