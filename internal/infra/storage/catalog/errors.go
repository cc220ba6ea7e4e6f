package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена у компании
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден у компании
	ErrEmployeeNotFound = errors.New("catalog.repository: employee not found")

	// ErrPetNotFound возвращается, когда питомец не найден у владельца
	ErrPetNotFound = errors.New("catalog.repository: pet not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
