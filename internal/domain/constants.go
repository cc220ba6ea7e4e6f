package domain

// Значения по умолчанию
const (
	// DefaultDurationMinutes длительность бронирования, если у услуги она не указана
	DefaultDurationMinutes = 60

	DefaultPage      = 1
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Ограничения входных данных
const (
	MaxNotesLength = 1000
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, в которых бронирование занимает время сотрудника
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusInProgress,
}

// AllStatuses все допустимые статусы бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}
