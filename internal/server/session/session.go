// Package session — cookie-сессия аутентифицированного пользователя.
//
// Обёртка над gorilla/sessions (подписанная cookie, аналог
// hapi-auth-cookie из исходного приложения). В cookie лежат только
// безопасные поля {name, email}; на сервере сессия не хранится.
package session

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/models"
)

// ключи значений внутри cookie
const (
	nameKey  = "name"
	emailKey = "email"
)

// Manager выдаёт, читает и гасит сессионную cookie.
type Manager struct {
	store      *sessions.CookieStore
	cookieName string
}

// NewManager создаёт менеджер сессий.
//
// secret — ключ подписи cookie (из окружения, >= 32 символов — это
// проверяет config.Validate). ttlSeconds — время жизни cookie.
func NewManager(secret, cookieName string, ttlSeconds int, secure bool) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   ttlSeconds,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store, cookieName: cookieName}
}

// Current возвращает пользователя из cookie текущего запроса.
//
// Вторым значением сообщает, аутентифицирован ли запрос.
// Битая или чужая подпись cookie трактуется как анонимный запрос.
func (m *Manager) Current(r *http.Request) (models.SessionUser, bool) {
	sess, err := m.store.Get(r, m.cookieName)
	if err != nil {
		return models.SessionUser{}, false
	}

	email, ok := sess.Values[emailKey].(string)
	if !ok || email == "" {
		return models.SessionUser{}, false
	}
	name, _ := sess.Values[nameKey].(string)

	return models.SessionUser{Name: name, Email: email}, true
}

// Set устанавливает сессию: переход Anonymous -> Authenticated(user).
func (m *Manager) Set(w http.ResponseWriter, r *http.Request, user models.SessionUser) error {
	sess, _ := m.store.Get(r, m.cookieName) // ошибку игнорируем: Get всегда вернёт новую сессию
	sess.Values[nameKey] = user.Name
	sess.Values[emailKey] = user.Email
	return sess.Save(r, w)
}

// Clear гасит сессию: переход Authenticated -> Anonymous (logout).
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.cookieName)
	sess.Options.MaxAge = -1
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	return sess.Save(r, w)
}
