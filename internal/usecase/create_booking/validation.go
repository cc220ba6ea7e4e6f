package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	"github.com/m04kA/PetCare-BookingService/pkg/ptr"
	"github.com/m04kA/PetCare-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (*parsedRequest, error) {
	if req.PetOwnerID == "" {
		return nil, fmt.Errorf("%w: petOwnerID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CompanyID) == "" ||
		strings.TrimSpace(req.ServiceID) == "" ||
		strings.TrimSpace(req.PetID) == "" ||
		strings.TrimSpace(req.Date) == "" ||
		strings.TrimSpace(req.Time) == "" {
		return nil, fmt.Errorf("%w: company, service, pet, date, and time are required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(req.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
	}

	parsed := &parsedRequest{
		Request:   req,
		date:      date,
		startTime: startTime,
	}

	parsed.notes = ptr.Value(req.Notes)
	if utf8.RuneCountInString(parsed.notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return parsed, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня по UTC)
// date хранит календарную дату, now приводится к UTC
func isDateInPast(date, now time.Time) bool {
	now = now.UTC()
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
