package update_booking_status

import (
	changeStatus "github.com/m04kA/PetCare-BookingService/internal/usecase/change_status"
)

// UpdateStatusRequest тело запроса смены статуса
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateStatusRequest) ToUseCaseRequest(companyID, bookingID string) *changeStatus.Request {
	return &changeStatus.Request{
		CompanyID: companyID,
		BookingID: bookingID,
		Status:    r.Status,
		Notes:     r.Notes,
	}
}
