package middleware

import (
	"github.com/m04kA/PetCare-BookingService/internal/auth"
)

// Authenticator проверяет bearer-токен
type Authenticator = auth.Authenticator

// Metrics метрики HTTP запросов
type Metrics interface {
	ObserveHTTPRequest(method, path, status string, seconds float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
