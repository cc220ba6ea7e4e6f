package get_booking_stats

import (
	"net/http"

	"github.com/m04kA/PetCare-BookingService/internal/api/handlers"
	"github.com/m04kA/PetCare-BookingService/internal/auth"
)

const msgInternal = "Failed to get booking statistics"

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

// Handle GET /api/v1/bookings/stats/overview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := handlers.Authorize(w, r, h.authorizer, auth.CompanyRoles...)
	if !ok {
		h.logger.Warn("GET /bookings/stats/overview - Access denied")
		return
	}

	stats, err := h.service.GetStats(r.Context(), principal.ID)
	if err != nil {
		h.logger.Error("GET /bookings/stats/overview - Failed to get stats: company_id=%s, error=%v", principal.ID, err)
		handlers.RespondInternalError(w, msgInternal)
		return
	}

	h.logger.Info("GET /bookings/stats/overview - Stats retrieved successfully: company_id=%s", principal.ID)
	handlers.RespondSuccess(w, http.StatusOK, stats, nil, "")
}
