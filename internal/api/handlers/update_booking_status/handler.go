package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PetCare-BookingService/internal/api/handlers"
	"github.com/m04kA/PetCare-BookingService/internal/auth"
	"github.com/m04kA/PetCare-BookingService/internal/service/bookings/models"
	changeStatus "github.com/m04kA/PetCare-BookingService/internal/usecase/change_status"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidStatus      = "Invalid status. Must be one of: pending, confirmed, in_progress, completed, cancelled"
	msgInvalidTransition  = "Status transition is not allowed"
	msgBookingNotFound    = "Booking not found"
	msgScheduleConflict   = "Employee has a conflicting booking at this time"
	msgInternal           = "Failed to update booking status"
	msgUpdated            = "Booking status updated successfully"
)

type Handler struct {
	useCase    ChangeStatusUseCase
	authorizer *auth.Authorizer
	logger     Logger
}

func NewHandler(useCase ChangeStatusUseCase, authorizer *auth.Authorizer, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		authorizer: authorizer,
		logger:     logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := handlers.Authorize(w, r, h.authorizer, auth.CompanyRoles...)
	if !ok {
		h.logger.Warn("PUT /bookings/{id}/status - Access denied")
		return
	}

	bookingID := mux.Vars(r)["bookingId"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(principal.ID, bookingID))
	if err != nil {
		switch {
		case errors.Is(err, changeStatus.ErrInvalidStatus):
			h.logger.Warn("PUT /bookings/{id}/status - Invalid status: id=%s, status=%q", bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, changeStatus.ErrInvalidTransition):
			h.logger.Warn("PUT /bookings/{id}/status - Invalid transition: id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, changeStatus.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/status - Booking not found: id=%s, company_id=%s", bookingID, principal.ID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, changeStatus.ErrScheduleConflict):
			h.logger.Warn("PUT /bookings/{id}/status - Schedule conflict: id=%s", bookingID)
			handlers.RespondScheduleConflict(w, msgScheduleConflict)

		case errors.Is(err, changeStatus.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /bookings/{id}/status - Failed to update status: id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/status - Status updated successfully: id=%s, status=%s", bookingID, result.Status)
	handlers.RespondSuccess(w, http.StatusOK, models.FromDomainBookingDetails(result), nil, msgUpdated)
}
