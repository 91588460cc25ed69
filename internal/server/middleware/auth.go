// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"net/http"

	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/models"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/session"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// userKey — ключ контекста, под которым хранится аутентифицированный пользователь.
const userKey ctxKey = "session_user"

// UserFromContext извлекает аутентифицированного пользователя из контекста.
//
// Возвращает:
//   - пользователя сессии ({name, email})
//   - false, если пользователь не аутентифицирован
func UserFromContext(ctx context.Context) (models.SessionUser, bool) {
	v := ctx.Value(userKey)
	u, ok := v.(models.SessionUser)
	return u, ok
}

// SessionAuth возвращает HTTP middleware для защищённых маршрутов.
//
// Middleware:
//   - читает подписанную сессионную cookie (gorilla/sessions)
//   - при живой сессии кладёт пользователя в context.Context
//   - анонимный запрос перенаправляет на /login (302, не 401): для
//     браузерного приложения это осознанный UX-выбор исходного дизайна
func SessionAuth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := sessions.Current(r)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
