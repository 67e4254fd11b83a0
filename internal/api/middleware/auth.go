package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/MEC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/MEC-VenueBookingService/internal/auth"
)

const (
	msgMissingToken = "отсутствует токен сессии"
	msgInvalidToken = "некорректный токен сессии"
	msgExpiredToken = "токен сессии истёк"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет Bearer токен и кладет сессию в контекст запроса
func Auth(manager *auth.Manager, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				logger.Warn("Auth middleware - Missing bearer token: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			session, err := manager.ParseToken(token)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrExpiredToken):
					logger.Warn("Auth middleware - Expired token: %s %s", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgExpiredToken)
				default:
					logger.Warn("Auth middleware - Invalid token: %s %s: %v", r.Method, r.URL.Path, err)
					handlers.RespondUnauthorized(w, msgInvalidToken)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), session)))
		})
	}
}
