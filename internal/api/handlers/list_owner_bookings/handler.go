package list_owner_bookings

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
	msgInvalidStatus     = "Invalid status filter"
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

// Handle GET /api/v1/pet-owners/bookings
// Query params: status, page, limit (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := handlers.Authorize(w, r, h.authorizer, auth.OwnerRoles...)
	if !ok {
		h.logger.Warn("GET /pet-owners/bookings - Access denied")
		return
	}

	page, err := handlers.ParsePage(r, h.defaultLimit, h.maxLimit)
	if err != nil {
		h.logger.Warn("GET /pet-owners/bookings - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}

	result, err := h.service.ListOwnerBookings(r.Context(), &models.ListOwnerBookingsRequest{
		PetOwnerID: principal.ID,
		Status:     handlers.QueryParam(r, "status"),
		Page:       page,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /pet-owners/bookings - Invalid status: owner_id=%s, error=%v", principal.ID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /pet-owners/bookings - Failed to get bookings: owner_id=%s, error=%v", principal.ID, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("GET /pet-owners/bookings - Bookings retrieved successfully: owner_id=%s, count=%d", principal.ID, len(result.Bookings))
	handlers.RespondSuccess(w, http.StatusOK, result.Bookings, result.Pagination, "")
}
