package create_owner_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/PetCare-BookingService/internal/api/handlers"
	"github.com/m04kA/PetCare-BookingService/internal/auth"
	"github.com/m04kA/PetCare-BookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/PetCare-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgRequiredFields     = "Company, service, pet, date (YYYY-MM-DD), and time (HH:MM) are required"
	msgInvalidDate        = "Booking date cannot be in the past"
	msgPetNotFound        = "Pet not found or does not belong to you"
	msgServiceNotFound    = "Service not found"
	msgInternal           = "Failed to create booking"
	msgCreated            = "Booking created successfully"
)

type Handler struct {
	useCase    CreateBookingUseCase
	authorizer *auth.Authorizer
	logger     Logger
}

func NewHandler(useCase CreateBookingUseCase, authorizer *auth.Authorizer, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		authorizer: authorizer,
		logger:     logger,
	}
}

// Handle POST /api/v1/pet-owners/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := handlers.Authorize(w, r, h.authorizer, auth.OwnerRoles...)
	if !ok {
		h.logger.Warn("POST /pet-owners/bookings - Access denied")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pet-owners/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(principal.ID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /pet-owners/bookings - Invalid input: owner_id=%s, error=%v", principal.ID, err)
			handlers.RespondBadRequest(w, msgRequiredFields)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /pet-owners/bookings - Invalid date: owner_id=%s, date=%s", principal.ID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrPetNotFound):
			h.logger.Warn("POST /pet-owners/bookings - Pet not found: owner_id=%s, pet_id=%s", principal.ID, req.PetID)
			handlers.RespondBadRequest(w, msgPetNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /pet-owners/bookings - Service not found: company_id=%s, service_id=%s", req.CompanyID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /pet-owners/bookings - Failed to create booking: owner_id=%s, error=%v", principal.ID, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("POST /pet-owners/bookings - Booking created successfully: id=%s, owner_id=%s", result.ID, principal.ID)
	handlers.RespondSuccess(w, http.StatusCreated, models.FromDomainBookingDetails(result), nil, msgCreated)
}
