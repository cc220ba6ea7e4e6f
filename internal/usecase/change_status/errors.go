package change_status

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено у компании
	ErrBookingNotFound = errors.New("change_status: booking not found")

	// ErrInvalidStatus возвращается для неизвестного значения статуса
	ErrInvalidStatus = errors.New("change_status: invalid status")

	// ErrInvalidTransition возвращается, когда переход не разрешён графом статусов
	ErrInvalidTransition = errors.New("change_status: invalid status transition")

	// ErrScheduleConflict возвращается, когда подтверждение пересекается с другим активным бронированием сотрудника
	ErrScheduleConflict = errors.New("change_status: employee has a conflicting booking at this time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("change_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("change_status: internal error")
)
