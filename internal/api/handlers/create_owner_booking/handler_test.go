package create_owner_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetCare-BookingService/internal/auth"
	"github.com/m04kA/PetCare-BookingService/internal/domain"
	createBooking "github.com/m04kA/PetCare-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/PetCare-BookingService/pkg/logger"
	"github.com/m04kA/PetCare-BookingService/pkg/types"
)

type fakeUseCase struct {
	got *createBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*domain.BookingDetails, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &domain.BookingDetails{
		Booking: domain.Booking{
			ID:          "b-1",
			CompanyID:   req.CompanyID,
			PetOwnerID:  req.PetOwnerID,
			BookingDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			StartTime:   types.TimeString(req.Time),
			Status:      domain.StatusPending,
			TotalAmount: decimal.RequireFromString("45.5"),
		},
	}, nil
}

func request(role auth.Role, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/pet-owners/bookings", strings.NewReader(body))
	return r.WithContext(auth.WithPrincipal(r.Context(), &auth.Principal{ID: "o1", Role: role}))
}

const validBody = `{"companyId":"c1","serviceId":"s1","petId":"p1","date":"2024-01-15","time":"10:00"}`

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, auth.NewAuthorizer(), logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, request(auth.RolePetOwner, validBody))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "o1", uc.got.PetOwnerID)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			ID          string      `json:"id"`
			Status      string      `json:"status"`
			TotalAmount json.Number `json:"totalAmount"`
			Date        string      `json:"date"`
			Time        string      `json:"time"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Booking created successfully", resp.Message)
	assert.Equal(t, "pending", resp.Data.Status)
	assert.Equal(t, "45.50", resp.Data.TotalAmount.String())
	assert.Equal(t, "2024-01-15", resp.Data.Date)
	assert.Equal(t, "10:00", resp.Data.Time)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		role   auth.Role
		body   string
		ucErr  error
		status int
		title  string
	}{
		{name: "company role", role: auth.RolePetCompany, body: validBody, status: http.StatusForbidden, title: "Forbidden"},
		{name: "malformed body", role: auth.RolePetOwner, body: `{`, status: http.StatusBadRequest, title: "Bad Request"},
		{name: "missing pet", role: auth.RolePetOwner, body: validBody, ucErr: createBooking.ErrInvalidInput, status: http.StatusBadRequest, title: "Bad Request"},
		{name: "foreign pet", role: auth.RolePetOwner, body: validBody, ucErr: createBooking.ErrPetNotFound, status: http.StatusBadRequest, title: "Bad Request"},
		{name: "unknown service", role: auth.RolePetOwner, body: validBody, ucErr: createBooking.ErrServiceNotFound, status: http.StatusBadRequest, title: "Bad Request"},
		{name: "internal", role: auth.RolePetOwner, body: validBody, ucErr: createBooking.ErrInternal, status: http.StatusInternalServerError, title: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.ucErr}, auth.NewAuthorizer(), logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, request(tt.role, tt.body))

			assert.Equal(t, tt.status, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.title, resp["error"])
			assert.NotContains(t, resp["message"], "create_booking:")
		})
	}
}
