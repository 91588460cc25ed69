// Модели предметной области: пользователь и открытка.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — зарегистрированный пользователь.
//
// Email уникален в пределах стора. Пароль хранится только в виде
// argon2id-хэша (plaintext из исходного приложения — это дефект, не контракт).
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// SessionUser — безопасная для сессии проекция пользователя.
//
// Именно эти поля кладутся в подписанную cookie после логина.
type SessionUser struct {
	Name  string
	Email string
}

// Card — открытка: кому, от кого и какая картинка.
//
// ID — единственный внешний идентификатор открытки (используется в путях
// /cards/{id}). CardImage — имя файла в публичной директории картинок.
// CreatedAt нужен, чтобы порядок вставки переживал перезапуск
// (снапшот на диске восстанавливает список в этом порядке).
type Card struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	RecipientEmail string    `json:"recipient_email"`
	SenderName     string    `json:"sender_name"`
	SenderEmail    string    `json:"sender_email"`
	CardImage      string    `json:"card_image"`
	CreatedAt      time.Time `json:"created_at"`
}
