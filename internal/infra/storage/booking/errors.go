package booking

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда вставка нарушила уникальный индекс
	// активных бронирований (venue_key, booking_date, slot_type)
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrTableNotFound возвращается, когда таблица bookings еще не создана
	// Читающие операции трактуют это как "данных пока нет", а не как сбой.
	ErrTableNotFound = errors.New("booking.repository: bookings table does not exist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

// Коды ошибок PostgreSQL, которые репозиторий различает
const (
	pgCodeUndefinedTable       = "42P01"
	pgCodeUniqueViolation      = "23505"
	pgCodeSerializationFailure = "40001"
)

// isUndefinedTable распознает "relation does not exist"
func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgCodeUndefinedTable
}

// isUniqueViolation распознает нарушение уникального индекса
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgCodeUniqueViolation
}

// IsSerializationFailure распознает serialization_failure (40001).
// Под уровнем SERIALIZABLE конкурентная вставка может завершиться этим
// кодом вместо нарушения уникального индекса, в том числе на commit,
// когда ошибка приходит уже из менеджера транзакций.
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgCodeSerializationFailure
}
