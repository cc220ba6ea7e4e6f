package create_owner_booking

import (
	createBooking "github.com/m04kA/PetCare-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest тело запроса на создание бронирования
type CreateBookingRequest struct {
	CompanyID string  `json:"companyId"`
	ServiceID string  `json:"serviceId"`
	PetID     string  `json:"petId"`
	Date      string  `json:"date"` // "2024-01-15"
	Time      string  `json:"time"` // "10:00"
	Notes     *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(petOwnerID string) *createBooking.Request {
	return &createBooking.Request{
		PetOwnerID: petOwnerID,
		CompanyID:  r.CompanyID,
		ServiceID:  r.ServiceID,
		PetID:      r.PetID,
		Date:       r.Date,
		Time:       r.Time,
		Notes:      r.Notes,
	}
}
