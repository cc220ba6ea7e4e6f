package create_booking

import "errors"

var (
	// ErrPetNotFound возвращается, когда питомец не найден или принадлежит другому владельцу
	ErrPetNotFound = errors.New("create_booking: pet not found or does not belong to you")

	// ErrServiceNotFound возвращается, когда услуга не найдена у компании или неактивна
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
