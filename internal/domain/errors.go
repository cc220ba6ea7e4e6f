package domain

import "errors"

var (
	// ErrInvalidStatus возвращается для неизвестного значения статуса
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition возвращается, когда переход отсутствует в графе статусов
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInterval возвращается, когда время или длительность бронирования некорректны
	ErrInvalidInterval = errors.New("invalid booking interval")
)
