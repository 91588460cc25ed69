package service

import (
	"errors"

	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/config"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-hapi-greetings/internal/shared/errors"
)

// AuthService реализует бизнес-логику регистрации и входа.
//
// Ответственность:
//   - регистрация пользователей (хэширование пароля)
//   - аутентификация (логин)
//
// Схемную валидацию полей делает хендлер (пакет validation),
// сюда приходят уже проверенные значения.
type AuthService struct {
	users UsersRepo
	pass  crypto.Argon2Params
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,
		pass: crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		},
	}
}

// Register регистрирует нового пользователя.
//
// Возвращает:
//   - безопасные для сессии поля пользователя
//   - ErrAlreadyExists, если email уже зарегистрирован
func (s *AuthService) Register(name, email, password string) (models.SessionUser, error) {
	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return models.SessionUser{}, serr.ErrInternal
	}

	u, err := s.users.Create(name, email, hash)
	if err != nil {
		return models.SessionUser{}, err
	}
	return models.SessionUser{Name: u.Name, Email: u.Email}, nil
}

// Login аутентифицирует пользователя.
//
// Поведение:
//   - не раскрывает факт существования email (неизвестный email и
//     неверный пароль выглядят одинаково)
//
// Ошибки:
//   - ErrInvalidCredentials
func (s *AuthService) Login(email, password string) (models.SessionUser, error) {
	u, err := s.users.GetByEmail(email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return models.SessionUser{}, serr.ErrInvalidCredentials
		}
		return models.SessionUser{}, err
	}

	ok, err := crypto.VerifyPassword(password, u.PasswordHash)
	if err != nil {
		return models.SessionUser{}, serr.ErrInternal
	}
	if !ok {
		return models.SessionUser{}, serr.ErrInvalidCredentials
	}

	return models.SessionUser{Name: u.Name, Email: u.Email}, nil
}
