package assign_employee

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено у компании
	ErrBookingNotFound = errors.New("assign_employee: booking not found")

	// ErrInvalidEmployee возвращается, когда сотрудник не найден, из другой компании или неактивен
	ErrInvalidEmployee = errors.New("assign_employee: invalid employee or employee not active")

	// ErrScheduleConflict возвращается, когда у сотрудника есть пересекающееся активное бронирование
	ErrScheduleConflict = errors.New("assign_employee: employee has a conflicting booking at this time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assign_employee: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_employee: internal error")
)
