package create_booking

import (
	"time"

	"github.com/m04kA/MEC-VenueBookingService/internal/domain"
)

// Request модель запроса на создание бронирования
// Описательные поля обязательны; email координатора должен принадлежать
// домену колледжа, контактный номер - ровно 10 цифр.
type Request struct {
	VenueKey domain.VenueKey `validate:"required"`
	Date     time.Time       `validate:"required"`
	SlotType domain.SlotType `validate:"required"`

	EventName        string `validate:"required,max=200"`
	EventType        string `validate:"required,max=100"`
	Department       string `validate:"required,max=100"`
	Year             string `validate:"required,max=50"`
	CoordinatorName  string `validate:"required,max=100"`
	CoordinatorEmail string `validate:"required,email,college_email"`
	ContactNumber    string `validate:"required,len=10,numeric"`
	Remarks          string `validate:"max=1000"`
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string
	VenueKey  domain.VenueKey
	VenueName string
	Date      time.Time
	SlotType  domain.SlotType
	Status    domain.BookingStatus

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
