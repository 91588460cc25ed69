// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и store слоях
// и маппятся на HTTP-статусы (и вьюху ошибки) в api слое.
package errors

import "errors"

var (
	// Входные данные не прошли валидацию схемы (пустые поля, неправильный формат и т.п.)
	ErrValidation = errors.New("validation failed")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Неавторизован (нет живой сессии)
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
)

// только для отправки открыток
var (
	// провайдер почты отклонил сообщение (reject_reason)
	ErrMailRejected = errors.New("mail rejected")
	// транспортная ошибка при обращении к провайдеру почты
	ErrMailTransport = errors.New("mail transport error")
	// ошибка файловой системы (загрузка/линковка картинки)
	ErrFileSystem = errors.New("filesystem error")
)
