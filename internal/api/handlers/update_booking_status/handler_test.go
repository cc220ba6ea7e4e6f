package update_booking_status

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetCare-BookingService/internal/auth"
	"github.com/m04kA/PetCare-BookingService/internal/domain"
	changeStatus "github.com/m04kA/PetCare-BookingService/internal/usecase/change_status"
	"github.com/m04kA/PetCare-BookingService/pkg/logger"
)

type fakeUseCase struct {
	got *changeStatus.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *changeStatus.Request) (*domain.BookingDetails, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &domain.BookingDetails{Booking: domain.Booking{ID: req.BookingID, Status: domain.BookingStatus(req.Status)}}, nil
}

func serve(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}/status", NewHandler(uc, auth.NewAuthorizer(), logger.NewNop()).Handle).Methods(http.MethodPut)

	r := httptest.NewRequest(http.MethodPut, "/api/v1/bookings/b-1/status", strings.NewReader(body))
	r = r.WithContext(auth.WithPrincipal(r.Context(), &auth.Principal{ID: "c1", Role: auth.RolePetCompany}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(t, uc, `{"status":"confirmed","notes":"ok"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &changeStatus.Request{CompanyID: "c1", BookingID: "b-1", Status: "confirmed", Notes: uc.got.Notes}, uc.got)
	require.NotNil(t, uc.got.Notes)
	assert.Equal(t, "ok", *uc.got.Notes)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Booking status updated successfully", resp.Message)
	assert.Equal(t, "confirmed", resp.Data.Status)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		title  string
	}{
		{err: changeStatus.ErrInvalidStatus, status: http.StatusBadRequest, title: "Bad Request"},
		{err: fmt.Errorf("%w: completed -> pending", changeStatus.ErrInvalidTransition), status: http.StatusBadRequest, title: "Bad Request"},
		{err: changeStatus.ErrBookingNotFound, status: http.StatusNotFound, title: "Not Found"},
		{err: changeStatus.ErrScheduleConflict, status: http.StatusBadRequest, title: "Schedule Conflict"},
		{err: changeStatus.ErrInternal, status: http.StatusInternalServerError, title: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tt.err}, `{"status":"pending"}`)

			assert.Equal(t, tt.status, rec.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.title, resp["error"])
		})
	}
}

func TestHandle_InvalidStatusWithRealUseCase(t *testing.T) {
	// Неизвестный статус отклоняется до обращения к хранилищу
	uc := changeStatus.NewUseCase(nil, nil, nil, nil, nil, nil, logger.NewNop())

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}/status", NewHandler(uc, auth.NewAuthorizer(), logger.NewNop()).Handle)

	r := httptest.NewRequest(http.MethodPut, "/api/v1/bookings/b-1/status", strings.NewReader(`{"status":"finished"}`))
	r = r.WithContext(auth.WithPrincipal(r.Context(), &auth.Principal{ID: "c1", Role: auth.RolePetCompany}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid status")
}
