package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// IdentityData данные пользователя из заголовков запроса
// Анонимный доступ разрешен: бронирование поддерживает гостевой сценарий
type IdentityData struct {
	UserID        *domain.ID
	Authenticated bool
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Identity извлекает пользователя из заголовка X-User-ID
// Заголовок проставляет вышестоящий шлюз; его отсутствие означает
// анонимного пользователя, запрос не отклоняется
func Identity(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := IdentityData{}

			if raw := r.Header.Get("X-User-ID"); raw != "" {
				id, err := strconv.ParseInt(raw, 10, 64)
				if err != nil || id <= 0 {
					log.Warn("middleware: invalid X-User-ID header %q, treating as anonymous", raw)
				} else {
					userID := domain.ID(id)
					identity.UserID = &userID
					identity.Authenticated = true
				}
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext возвращает пользователя запроса
func IdentityFromContext(ctx context.Context) IdentityData {
	if identity, ok := ctx.Value(identityKey).(IdentityData); ok {
		return identity
	}
	return IdentityData{}
}
