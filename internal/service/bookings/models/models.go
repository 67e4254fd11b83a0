package models

import (
	"errors"
	"time"

	"github.com/m04kA/MEC-VenueBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetBookingsRequest запрос на получение списка бронирований
type GetBookingsRequest struct {
	VenueKey         *string `json:"venueKey,omitempty"`         // Фильтр по площадке (опционально)
	Date             *string `json:"date,omitempty"`             // Фильтр по дате (опционально)
	CoordinatorEmail *string `json:"coordinatorEmail,omitempty"` // Фильтр по координатору (опционально)
	Status           *string `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeInactive  bool    `json:"includeInactive,omitempty"`  // Включить отклонённые и отменённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		CoordinatorEmail: r.CoordinatorEmail,
		IncludeInactive:  r.IncludeInactive,
	}

	if r.VenueKey != nil {
		key := domain.VenueKey(*r.VenueKey)
		if !key.IsValid() {
			return filter, errors.New("invalid venue key")
		}
		filter.VenueKey = &key
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, err
		}
		filter.Date = &date
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID               string `json:"id"`
	VenueKey         string `json:"venueKey"`
	VenueName        string `json:"venueName"`
	BookingDate      string `json:"bookingDate"` // "2025-03-10"
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

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:               b.ID,
		VenueKey:         string(b.VenueKey),
		VenueName:        b.VenueKey.DisplayName(),
		BookingDate:      b.BookingDate.Format(domain.DateFormat),
		SlotType:         string(b.SlotType),
		TimeRange:        b.SlotType.TimeRange(),
		Status:           string(b.Status),
		EventName:        b.EventName,
		EventType:        b.EventType,
		Department:       b.Department,
		Year:             b.Year,
		CoordinatorName:  b.CoordinatorName,
		CoordinatorEmail: b.CoordinatorEmail,
		ContactNumber:    b.ContactNumber,
		Remarks:          b.Remarks,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusPending:
		return domain.StatusPending, nil
	case domain.StatusApproved:
		return domain.StatusApproved, nil
	case domain.StatusRejected:
		return domain.StatusRejected, nil
	case domain.StatusCancelled:
		return domain.StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}
