package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено или принадлежит другой компании
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
