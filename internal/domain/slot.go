package domain

// SlotType represents the contended time unit within a venue-day
type SlotType string

const (
	SlotFullDay   SlotType = "full-day"
	SlotForenoon  SlotType = "forenoon"
	SlotAfternoon SlotType = "afternoon"
)

// AllSlots перечисляет все слоты в порядке отображения
var AllSlots = []SlotType{SlotFullDay, SlotForenoon, SlotAfternoon}

// IsValid returns true if the slot is one of the three known values
func (s SlotType) IsValid() bool {
	return s == SlotFullDay || s == SlotForenoon || s == SlotAfternoon
}

// IsHalfDay returns true for the forenoon and afternoon slots
func (s SlotType) IsHalfDay() bool {
	return s == SlotForenoon || s == SlotAfternoon
}

// TimeRange returns the human-readable time range of the slot
func (s SlotType) TimeRange() string {
	switch s {
	case SlotFullDay:
		return "9:00 AM - 5:00 PM"
	case SlotForenoon:
		return "9:00 AM - 1:00 PM"
	case SlotAfternoon:
		return "2:00 PM - 5:00 PM"
	default:
		return ""
	}
}

// ConflictsWith reports whether an active booking of slot other blocks a
// request for slot s on the same venue and date.
//
// Правило асимметричное:
// - full-day конфликтует с любым занятым слотом;
// - forenoon/afternoon конфликтуют с full-day и с таким же полуслотом,
//   но НЕ друг с другом (forenoon и afternoon сосуществуют).
func (s SlotType) ConflictsWith(other SlotType) bool {
	if s == SlotFullDay || other == SlotFullDay {
		return true
	}
	return s == other
}

// Conflicts reports whether a request for slot s is blocked by any of the
// active slots already booked on the same venue and date.
func Conflicts(s SlotType, active []SlotType) bool {
	for _, a := range active {
		if s.ConflictsWith(a) {
			return true
		}
	}
	return false
}
