package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a venue booking in the system
type Booking struct {
	ID          string
	VenueKey    VenueKey
	BookingDate time.Time
	SlotType    SlotType
	Status      BookingStatus

	// Descriptive payload, mandatory on creation
	EventName        string
	EventType        string
	Department       string
	Year             string
	CoordinatorName  string
	CoordinatorEmail string
	ContactNumber    string
	Remarks          string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot for conflict purposes
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	VenueKey         *VenueKey      // Фильтр по площадке (nil - все площадки)
	Date             *time.Time     // Фильтр по дате (nil - без ограничения)
	SlotType         *SlotType      // Фильтр по слоту (nil - все слоты)
	CoordinatorEmail *string        // Фильтр по email координатора (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive  bool           // Включать ли отменённые и отклонённые бронирования
}
