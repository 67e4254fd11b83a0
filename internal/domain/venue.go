package domain

// VenueKey identifies a bookable venue
//
// Пространство ключей объединяет два непересекающихся пула:
// пять арангамов и отдельный MG Auditorium. Бронирования разных
// площадок никогда не конфликтуют между собой.
type VenueKey string

const (
	VenueVOCArangam           VenueKey = "arangam-1"
	VenueThiruvalluvarArangam VenueKey = "arangam-2"
	VenueBharathiyarArangam   VenueKey = "arangam-3"
	VenueVivekanandaArangam   VenueKey = "arangam-4"
	VenueRamakrishnaArangam   VenueKey = "arangam-5"
	VenueMGAuditorium         VenueKey = "mg-auditorium"
)

// AllVenues перечисляет все площадки в порядке отображения
var AllVenues = []VenueKey{
	VenueVOCArangam,
	VenueThiruvalluvarArangam,
	VenueBharathiyarArangam,
	VenueVivekanandaArangam,
	VenueRamakrishnaArangam,
	VenueMGAuditorium,
}

var venueNames = map[VenueKey]string{
	VenueVOCArangam:           "VOC Arangam",
	VenueThiruvalluvarArangam: "Thiruvalluvar Arangam",
	VenueBharathiyarArangam:   "Bharathiyar Arangam",
	VenueVivekanandaArangam:   "Vivekananda Arangam",
	VenueRamakrishnaArangam:   "Ramakrishna Arangam",
	VenueMGAuditorium:         "MG Auditorium",
}

// IsValid returns true if the key names a known venue
func (v VenueKey) IsValid() bool {
	_, ok := venueNames[v]
	return ok
}

// IsArangam returns true for venues of the Arangam pool
func (v VenueKey) IsArangam() bool {
	return v.IsValid() && v != VenueMGAuditorium
}

// DisplayName returns the human-readable venue name
func (v VenueKey) DisplayName() string {
	return venueNames[v]
}
