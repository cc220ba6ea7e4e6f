package get_company_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PetCare-BookingService/internal/api/handlers"
	"github.com/m04kA/PetCare-BookingService/internal/auth"
	"github.com/m04kA/PetCare-BookingService/internal/service/bookings"
)

const (
	msgBookingNotFound = "Booking not found"
	msgInternal        = "Failed to get booking"
)

type Handler struct {
	service    BookingService
	authorizer *auth.Authorizer
	logger     Logger
}

func NewHandler(service BookingService, authorizer *auth.Authorizer, logger Logger) *Handler {
	return &Handler{
		service:    service,
		authorizer: authorizer,
		logger:     logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := handlers.Authorize(w, r, h.authorizer, auth.CompanyRoles...)
	if !ok {
		h.logger.Warn("GET /bookings/{id} - Access denied")
		return
	}

	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.service.GetByID(r.Context(), principal.ID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: id=%s, company_id=%s", bookingID, principal.ID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved successfully: id=%s", bookingID)
	handlers.RespondSuccess(w, http.StatusOK, result, nil, "")
}
