package get_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/MEC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/MEC-VenueBookingService/internal/service/bookings"
	"github.com/m04kA/MEC-VenueBookingService/internal/service/bookings/models"
)

const msgInvalidFilter = "некорректные параметры фильтрации"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: venueKey, date, coordinatorEmail, status, includeInactive (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.GetBookingsRequest{
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if v := query.Get("venueKey"); v != "" {
		req.VenueKey = &v
	}
	if v := query.Get("date"); v != "" {
		req.Date = &v
	}
	if v := query.Get("coordinatorEmail"); v != "" {
		req.CoordinatorEmail = &v
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	result, err := h.service.GetBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
