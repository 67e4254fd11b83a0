package domain

// Business validation constants
const (
	// CoordinatorEmailDomain допустимый домен почты координатора
	CoordinatorEmailDomain = "@mahendra.info"

	ContactNumberLength = 10

	MaxEventNameLength          = 200
	MaxRemarksLength            = 1000
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CancellationRemarkPrefix префикс, добавляемый к remarks при отмене
const CancellationRemarkPrefix = "CANCELLED: "

// RemarksSeparator разделитель при дописывании причины отмены к remarks
const RemarksSeparator = " | "

// ActiveStatuses список статусов, занимающих слот
// Используется при проверке доступности слотов
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}

// InactiveStatuses список статусов, освобождающих слот
var InactiveStatuses = []BookingStatus{
	StatusRejected,
	StatusCancelled,
}
