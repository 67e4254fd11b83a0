package get_slot_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/MEC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/MEC-VenueBookingService/internal/domain"
	getSlotAvailability "github.com/m04kA/MEC-VenueBookingService/internal/usecase/get_slot_availability"
)

const (
	msgMissingDate   = "дата обязательна"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSlot   = "некорректный тип слота"
	msgVenueNotFound = "площадка не найдена"
)

type Handler struct {
	useCase GetSlotAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/slots
// Query params: date (required, YYYY-MM-DD), slot (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueID := vars["venueId"]

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /venues/{id}/slots - Missing date: venue=%s", venueID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Опциональный фильтр по одному слоту
	var slotFilter *domain.SlotType
	if slotStr := r.URL.Query().Get("slot"); slotStr != "" {
		slot := domain.SlotType(slotStr)
		if !slot.IsValid() {
			h.logger.Warn("GET /venues/{id}/slots - Invalid slot type: venue=%s, slot=%s", venueID, slotStr)
			handlers.RespondBadRequest(w, msgInvalidSlot)
			return
		}
		slotFilter = &slot
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(venueID, dateStr)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/slots - Invalid date format: venue=%s, date=%s", venueID, dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSlotAvailability.ErrInvalidVenue):
			h.logger.Warn("GET /venues/{id}/slots - Venue not found: venue=%s", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getSlotAvailability.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/slots - Invalid input: venue=%s, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /venues/{id}/slots - Failed to get availability: venue=%s, date=%s, error=%v",
				venueID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result, slotFilter)

	h.logger.Info("GET /venues/{id}/slots - Availability retrieved: venue=%s, date=%s, slots_count=%d",
		venueID, dateStr, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
