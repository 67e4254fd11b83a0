package get_slot_availability

import (
	"time"

	"github.com/m04kA/MEC-VenueBookingService/internal/domain"
	getSlotAvailability "github.com/m04kA/MEC-VenueBookingService/internal/usecase/get_slot_availability"
)

// SlotAvailabilityResponse HTTP response model
type SlotAvailabilityResponse struct {
	VenueKey  string         `json:"venueKey"`
	VenueName string         `json:"venueName"`
	Date      string         `json:"date"`
	Slots     []SlotResponse `json:"slots"`
}

// SlotResponse вердикт доступности одного слота
type SlotResponse struct {
	SlotType  string `json:"slotType"`
	TimeRange string `json:"timeRange"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest конвертирует параметры HTTP запроса в модель use case
// Пустой ключ площадки трактуется как MG Auditorium
func ToUseCaseRequest(venueID, dateStr string) (*getSlotAvailability.Request, error) {
	if venueID == "" {
		venueID = string(domain.VenueMGAuditorium)
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getSlotAvailability.Request{
		VenueKey: domain.VenueKey(venueID),
		Date:     date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Если указан slot, ответ сужается до одного слота
func FromUseCaseResponse(resp *getSlotAvailability.Response, slot *domain.SlotType) *SlotAvailabilityResponse {
	out := &SlotAvailabilityResponse{
		VenueKey:  string(resp.VenueKey),
		VenueName: resp.VenueName,
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, s := range resp.Slots {
		if slot != nil && s.SlotType != *slot {
			continue
		}
		out.Slots = append(out.Slots, SlotResponse{
			SlotType:  string(s.SlotType),
			TimeRange: s.TimeRange,
			Available: s.Available,
		})
	}

	return out
}
