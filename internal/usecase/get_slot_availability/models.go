package get_slot_availability

import (
	"time"

	"github.com/m04kA/MEC-VenueBookingService/internal/domain"
)

// Request модель запроса на проверку доступности слотов
type Request struct {
	VenueKey domain.VenueKey // Ключ площадки (mg-auditorium для MG Auditorium)
	Date     time.Time       // Дата без времени
}

// Response модель ответа с вердиктом по каждому слоту
type Response struct {
	VenueKey  domain.VenueKey
	VenueName string
	Date      time.Time
	Slots     []SlotAvailability
}

// SlotAvailability вердикт доступности одного слота
type SlotAvailability struct {
	SlotType  domain.SlotType
	TimeRange string
	Available bool
}

// SlotAvailable возвращает вердикт для конкретного слота
func (r *Response) SlotAvailable(slot domain.SlotType) bool {
	for _, s := range r.Slots {
		if s.SlotType == slot {
			return s.Available
		}
	}
	return false
}
