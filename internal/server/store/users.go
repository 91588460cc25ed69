// Package store — авторитетное хранилище пользователей и открыток.
//
// Сторы потокобезопасны (RWMutex): net/http обслуживает запросы
// конкурентно, в отличие от однопоточного рантайма исходного приложения,
// поэтому карта без блокировки здесь — гонка, а не упрощение.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-hapi-greetings/internal/shared/errors"
)

// UsersStore — in-memory хранилище пользователей.
//
// Пользователи живут только в памяти процесса: исходное приложение их
// тоже никуда не писало, и спорную половину этого поведения мы оставили
// как есть (решение задокументировано в DESIGN.md).
type UsersStore struct {
	mu    sync.RWMutex
	users map[string]models.User // ключ — email
}

// NewUsers создаёт пустое хранилище пользователей.
func NewUsers() *UsersStore {
	return &UsersStore{
		users: make(map[string]models.User),
	}
}

// Create регистрирует нового пользователя.
//
// Если email уже занят — возвращает serr.ErrAlreadyExists,
// существующая запись при этом не трогается.
func (s *UsersStore) Create(name, email, passwordHash string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[email]; ok {
		return models.User{}, serr.ErrAlreadyExists
	}

	u := models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.users[email] = u
	return u, nil
}

// GetByEmail возвращает пользователя по email.
//
// Если пользователь отсутствует — возвращает serr.ErrNotFound.
func (s *UsersStore) GetByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return models.User{}, serr.ErrNotFound
	}
	return u, nil
}
