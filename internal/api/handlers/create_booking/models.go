package create_booking

import (
	"time"

	"github.com/m04kA/MEC-VenueBookingService/internal/auth"
	"github.com/m04kA/MEC-VenueBookingService/internal/domain"
	createBooking "github.com/m04kA/MEC-VenueBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VenueKey         string `json:"venueKey,omitempty"` // пустой ключ - MG Auditorium
	BookingDate      string `json:"bookingDate"`        // "2025-03-10"
	SlotType         string `json:"slotType"`
	EventName        string `json:"eventName"`
	EventType        string `json:"eventType"`
	Department       string `json:"department"`
	Year             string `json:"year"`
	CoordinatorName  string `json:"coordinatorName,omitempty"`
	CoordinatorEmail string `json:"coordinatorEmail,omitempty"`
	ContactNumber    string `json:"contactNumber"`
	Remarks          string `json:"remarks,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               string `json:"id"`
	VenueKey         string `json:"venueKey"`
	VenueName        string `json:"venueName"`
	BookingDate      string `json:"bookingDate"`
	SlotType         string `json:"slotType"`
	TimeRange        string `json:"timeRange"`
	Status           string `json:"status"`
	EventName        string `json:"eventName"`
	EventType        string `json:"eventType"`
	Department       string `json:"department"`
	Year             string `json:"year"`
	CoordinatorName  string `json:"coordinatorName"`
	CoordinatorEmail string `json:"coordinatorEmail"`
	ContactNumber    string `json:"contactNumber"`
	Remarks          string `json:"remarks,omitempty"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Поля координатора, не указанные явно, берутся из сессии
func (r *CreateBookingRequest) ToUseCaseRequest(session *auth.Session) (*createBooking.Request, error) {
	venueKey := r.VenueKey
	if venueKey == "" {
		venueKey = string(domain.VenueMGAuditorium)
	}

	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	coordinatorName := r.CoordinatorName
	coordinatorEmail := r.CoordinatorEmail
	if session != nil {
		if coordinatorName == "" {
			coordinatorName = session.Name
		}
		if coordinatorEmail == "" {
			coordinatorEmail = session.Email
		}
	}

	return &createBooking.Request{
		VenueKey:         domain.VenueKey(venueKey),
		Date:             bookingDate,
		SlotType:         domain.SlotType(r.SlotType),
		EventName:        r.EventName,
		EventType:        r.EventType,
		Department:       r.Department,
		Year:             r.Year,
		CoordinatorName:  coordinatorName,
		CoordinatorEmail: coordinatorEmail,
		ContactNumber:    r.ContactNumber,
		Remarks:          r.Remarks,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		VenueKey:         string(resp.VenueKey),
		VenueName:        resp.VenueName,
		BookingDate:      resp.Date.Format(domain.DateFormat),
		SlotType:         string(resp.SlotType),
		TimeRange:        resp.SlotType.TimeRange(),
		Status:           string(resp.Status),
		EventName:        resp.EventName,
		EventType:        resp.EventType,
		Department:       resp.Department,
		Year:             resp.Year,
		CoordinatorName:  resp.CoordinatorName,
		CoordinatorEmail: resp.CoordinatorEmail,
		ContactNumber:    resp.ContactNumber,
		Remarks:          resp.Remarks,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
