// Package service содержит бизнес-логику приложения (greetings).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (store).
package service

import (
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/config"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/mail"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя store.
type Repositories struct {
	Users UsersRepo
	Cards CardsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth  *AuthService
	Cards *CardsService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля) и CardsService
// (директория картинок, тема письма).
func NewServices(repos Repositories, sender mail.Sender, emails EmailRenderer, cfg *config.Config) *Services {
	return &Services{
		Auth:  NewAuthService(repos.Users, cfg),
		Cards: NewCardsService(repos.Cards, sender, emails, cfg),
	}
}

// UsersRepo — хранилище пользователей (нужно для register/login).
type UsersRepo interface {
	Create(name, email, passwordHash string) (models.User, error)
	GetByEmail(email string) (models.User, error)
}

// CardsRepo — хранилище открыток.
type CardsRepo interface {
	Save(card models.Card) (string, error)
	Get(id string) (models.Card, error)
	Delete(id string) error
	ListBySender(email string) []models.Card
}

// EmailRenderer — рендер HTML-тела письма из открытки.
// Реализуется пакетом view; интерфейс объявлен здесь, у потребителя.
type EmailRenderer interface {
	RenderEmail(card models.Card) (string, error)
}
