package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/m04kA/PetCare-BookingService/internal/auth"
)

const bearerPrefix = "Bearer "

// Auth проверяет заголовок Authorization и кладёт пользователя в контекст
// Без заголовка или с недействительным токеном отвечает 401
func Auth(authenticator Authenticator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				respondUnauthorized(w, "Access token required")
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
			principal, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				respondUnauthorized(w, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		})
	}
}

// GetPrincipal возвращает пользователя, положенного в контекст middleware Auth
func GetPrincipal(ctx context.Context) (*auth.Principal, bool) {
	return auth.PrincipalFromContext(ctx)
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   "Unauthorized",
		"message": message,
	})
}
