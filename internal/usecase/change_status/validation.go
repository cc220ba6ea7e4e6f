package change_status

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
)

// validateRequest валидирует входные данные и возвращает целевой статус
func validateRequest(req *Request) (domain.BookingStatus, error) {
	if req.CompanyID == "" || req.BookingID == "" {
		return "", fmt.Errorf("%w: companyID and bookingID are required", ErrInvalidInput)
	}

	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		return "", fmt.Errorf("%w: must be one of %v", ErrInvalidStatus, domain.AllStatuses)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return "", fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return status, nil
}
