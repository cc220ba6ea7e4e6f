package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/m04kA/PetCare-BookingService/internal/api/middleware"
	"github.com/m04kA/PetCare-BookingService/internal/auth"
	"github.com/m04kA/PetCare-BookingService/internal/domain"
)

// Заголовки ошибок в поле error
const (
	TitleBadRequest       = "Bad Request"
	TitleNotFound         = "Not Found"
	TitleScheduleConflict = "Schedule Conflict"
	TitleForbidden        = "Forbidden"
	TitleUnauthorized     = "Unauthorized"
	TitleInternal         = "Internal Server Error"
)

const maxBodyBytes = 1 << 20

// SuccessResponse конверт успешного ответа
type SuccessResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data"`
	Pagination interface{} `json:"pagination,omitempty"`
}

// ErrorResponse конверт ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// DecodeJSON читает тело запроса в v; неизвестные поля игнорируются
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return err
	}
	return nil
}

// RespondJSON пишет v как JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondSuccess пишет {success: true, data, pagination?, message?}
func RespondSuccess(w http.ResponseWriter, status int, data interface{}, pagination interface{}, message string) {
	RespondJSON(w, status, SuccessResponse{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

// RespondError пишет {error, message}
func RespondError(w http.ResponseWriter, status int, title, message string) {
	RespondJSON(w, status, ErrorResponse{Error: title, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, TitleBadRequest, message)
}

func RespondScheduleConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, TitleScheduleConflict, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, TitleNotFound, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, TitleForbidden, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, TitleUnauthorized, message)
}

// RespondInternalError никогда не раскрывает детали ошибки клиенту
func RespondInternalError(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusInternalServerError, TitleInternal, message)
}

// Authorize достаёт пользователя из контекста и проверяет роль
// При отказе сам пишет 401/403 и возвращает false
func Authorize(w http.ResponseWriter, r *http.Request, authorizer *auth.Authorizer, roles ...auth.Role) (*auth.Principal, bool) {
	principal, _ := middleware.GetPrincipal(r.Context())

	if err := authorizer.Require(principal, roles...); err != nil {
		if errors.Is(err, auth.ErrForbidden) {
			RespondForbidden(w, "Insufficient permissions")
			return nil, false
		}
		RespondUnauthorized(w, "Authentication required")
		return nil, false
	}

	return principal, true
}

// ParsePage читает page и limit из query; пустые значения заменяются значениями по умолчанию
func ParsePage(r *http.Request, defaultLimit, maxLimit int) (domain.Page, error) {
	number, err := parsePositiveInt(r.URL.Query().Get("page"))
	if err != nil {
		return domain.Page{}, fmt.Errorf("invalid page: %w", err)
	}

	limit, err := parsePositiveInt(r.URL.Query().Get("limit"))
	if err != nil {
		return domain.Page{}, fmt.Errorf("invalid limit: %w", err)
	}

	return domain.NewPage(number, limit, defaultLimit, maxLimit), nil
}

// QueryParam возвращает указатель на значение query параметра или nil, если он пуст
func QueryParam(r *http.Request, name string) *string {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil
	}
	return &value
}

func parsePositiveInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}
