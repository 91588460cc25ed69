// Package validation — схемы проверок входящих форм.
//
// Три независимые схемы (открытка, логин, регистрация) — чистые функции:
// payload на входе, типизированное значение или ошибка первого нарушенного
// правила на выходе. Хендлер превращает ошибку в ответ клиенту сам,
// здесь ничего не «бросается».
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	serr "github.com/IvanChernomyrdin/go-hapi-greetings/internal/shared/errors"
)

// Правила то же, что были в Joi-схемах исходного приложения.
var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// расширение картинки: .jpg/.bmp/.png/.gif без учёта регистра,
	// после расширения — граница слова (cat.png, cat.PNG?x=1 проходят, cat.txt — нет)
	imageRe = regexp.MustCompile(`(?i).+\.(jpg|bmp|png|gif)\b`)
)

// CardInput — проверенный payload создания открытки.
type CardInput struct {
	Name           string
	RecipientEmail string
	SenderName     string
	SenderEmail    string
	CardImage      string
}

// LoginInput — проверенный payload логина.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput — проверенный payload регистрации.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// fail оборачивает ErrValidation сообщением первого нарушенного правила.
func fail(msg string) error {
	return fmt.Errorf("%w: %s", serr.ErrValidation, msg)
}

// runeLen — длина в символах, не в байтах: «Жозефина» — 8, не 16.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// ValidateCard проверяет payload создания открытки.
//
// Правила:
//   - name: 3–50 символов, обязателен
//   - recipient_email / sender_email: валидный email, обязательны
//   - sender_name: 3–50 символов, обязателен
//   - card_image: строка с расширением картинки, обязательна
func ValidateCard(name, recipientEmail, senderName, senderEmail, cardImage string) (CardInput, error) {
	name = strings.TrimSpace(name)
	senderName = strings.TrimSpace(senderName)
	recipientEmail = strings.TrimSpace(recipientEmail)
	senderEmail = strings.TrimSpace(senderEmail)
	cardImage = strings.TrimSpace(cardImage)

	switch {
	case runeLen(name) < 3 || runeLen(name) > 50:
		return CardInput{}, fail("name must be between 3 and 50 characters")
	case !emailRe.MatchString(recipientEmail):
		return CardInput{}, fail("recipient_email must be a valid email")
	case runeLen(senderName) < 3 || runeLen(senderName) > 50:
		return CardInput{}, fail("sender_name must be between 3 and 50 characters")
	case !emailRe.MatchString(senderEmail):
		return CardInput{}, fail("sender_email must be a valid email")
	case !ValidCardImage(cardImage):
		return CardInput{}, fail("card_image must be a jpg, bmp, png or gif file")
	}

	return CardInput{
		Name:           name,
		RecipientEmail: recipientEmail,
		SenderName:     senderName,
		SenderEmail:    senderEmail,
		CardImage:      cardImage,
	}, nil
}

// ValidateLogin проверяет payload логина.
//
// Правила: email валидный, пароль непустой и не длиннее 32 символов.
func ValidateLogin(email, password string) (LoginInput, error) {
	email = strings.TrimSpace(email)

	switch {
	case !emailRe.MatchString(email):
		return LoginInput{}, fail("email must be a valid email")
	case password == "":
		return LoginInput{}, fail("password is required")
	case runeLen(password) > 32:
		return LoginInput{}, fail("password must be at most 32 characters")
	}

	return LoginInput{Email: email, Password: password}, nil
}

// ValidateRegister проверяет payload регистрации.
//
// Правила: имя непустое и не длиннее 50, email валидный,
// пароль непустой и не длиннее 32.
func ValidateRegister(name, email, password string) (RegisterInput, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	switch {
	case name == "":
		return RegisterInput{}, fail("name is required")
	case runeLen(name) > 50:
		return RegisterInput{}, fail("name must be at most 50 characters")
	case !emailRe.MatchString(email):
		return RegisterInput{}, fail("email must be a valid email")
	case password == "":
		return RegisterInput{}, fail("password is required")
	case runeLen(password) > 32:
		return RegisterInput{}, fail("password must be at most 32 characters")
	}

	return RegisterInput{Name: name, Email: email, Password: password}, nil
}

// ValidCardImage сообщает, похоже ли имя файла на картинку открытки.
// Используется и схемой открытки, и загрузкой файлов.
func ValidCardImage(filename string) bool {
	return imageRe.MatchString(filename)
}
