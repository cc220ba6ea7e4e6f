package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/PetCare-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования владельцем питомца
type Request struct {
	PetOwnerID string  // ID владельца питомца (из токена)
	CompanyID  string  // ID компании
	ServiceID  string  // ID услуги
	PetID      string  // ID питомца
	Date       string  // Дата "YYYY-MM-DD"
	Time       string  // Время начала "HH:MM"
	Notes      *string // Заметки (опционально)
}

// parsedRequest провалидированный запрос
type parsedRequest struct {
	*Request
	date      time.Time
	startTime types.TimeString
	notes     string
}

// UUIDGenerator генерирует UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый UUID
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
