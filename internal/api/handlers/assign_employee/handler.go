package assign_employee

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PetCare-BookingService/internal/api/handlers"
	"github.com/m04kA/PetCare-BookingService/internal/auth"
	"github.com/m04kA/PetCare-BookingService/internal/service/bookings/models"
	assignEmployee "github.com/m04kA/PetCare-BookingService/internal/usecase/assign_employee"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgBookingNotFound    = "Booking not found"
	msgInvalidEmployee    = "Invalid employee or employee not active"
	msgScheduleConflict   = "Employee has a conflicting booking at this time"
	msgInternal           = "Failed to assign employee to booking"
	msgAssigned           = "Employee assigned successfully"
	msgUnassigned         = "Employee unassigned successfully"
)

type Handler struct {
	useCase    AssignEmployeeUseCase
	authorizer *auth.Authorizer
	logger     Logger
}

func NewHandler(useCase AssignEmployeeUseCase, authorizer *auth.Authorizer, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		authorizer: authorizer,
		logger:     logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}/assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := handlers.Authorize(w, r, h.authorizer, auth.CompanyRoles...)
	if !ok {
		h.logger.Warn("PUT /bookings/{id}/assign - Access denied")
		return
	}

	bookingID := mux.Vars(r)["bookingId"]

	var req AssignEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/assign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq := &assignEmployee.Request{
		CompanyID:  principal.ID,
		BookingID:  bookingID,
		EmployeeID: req.EmployeeID,
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, assignEmployee.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/assign - Booking not found: id=%s, company_id=%s", bookingID, principal.ID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, assignEmployee.ErrInvalidEmployee):
			h.logger.Warn("PUT /bookings/{id}/assign - Invalid employee: id=%s, employee=%v", bookingID, req.EmployeeID)
			handlers.RespondBadRequest(w, msgInvalidEmployee)

		case errors.Is(err, assignEmployee.ErrScheduleConflict):
			h.logger.Warn("PUT /bookings/{id}/assign - Schedule conflict: id=%s, employee=%v", bookingID, req.EmployeeID)
			handlers.RespondScheduleConflict(w, msgScheduleConflict)

		case errors.Is(err, assignEmployee.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id}/assign - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /bookings/{id}/assign - Failed to assign employee: id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	message := msgAssigned
	if useCaseReq.Unassign() {
		message = msgUnassigned
	}

	h.logger.Info("PUT /bookings/{id}/assign - %s: id=%s", message, bookingID)
	handlers.RespondSuccess(w, http.StatusOK, models.FromDomainBookingDetails(result), nil, message)
}
