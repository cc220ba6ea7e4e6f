package list_company_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/PetCare-BookingService/internal/api/handlers"
	"github.com/m04kA/PetCare-BookingService/internal/auth"
	"github.com/m04kA/PetCare-BookingService/internal/service/bookings"
	"github.com/m04kA/PetCare-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidPagination = "Invalid page or limit"
	msgInvalidFilter     = "Invalid status or date filter"
	msgInternal          = "Failed to get bookings"
)

type Handler struct {
	service      BookingService
	authorizer   *auth.Authorizer
	defaultLimit int
	maxLimit     int
	logger       Logger
}

func NewHandler(service BookingService, authorizer *auth.Authorizer, defaultLimit, maxLimit int, logger Logger) *Handler {
	return &Handler{
		service:      service,
		authorizer:   authorizer,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: status, date (YYYY-MM-DD), page, limit (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := handlers.Authorize(w, r, h.authorizer, auth.CompanyRoles...)
	if !ok {
		h.logger.Warn("GET /bookings - Access denied")
		return
	}

	page, err := handlers.ParsePage(r, h.defaultLimit, h.maxLimit)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}

	result, err := h.service.ListCompanyBookings(r.Context(), &models.ListCompanyBookingsRequest{
		CompanyID: principal.ID,
		Status:    handlers.QueryParam(r, "status"),
		Date:      handlers.QueryParam(r, "date"),
		Page:      page,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: company_id=%s, error=%v", principal.ID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: company_id=%s, error=%v", principal.ID, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: company_id=%s, count=%d", principal.ID, len(result.Bookings))
	handlers.RespondSuccess(w, http.StatusOK, result.Bookings, result.Pagination, "")
}
