package service

import (
	"context"
	"os"
	"sort"

	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/config"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/mail"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/models"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/validation"
	serr "github.com/IvanChernomyrdin/go-hapi-greetings/internal/shared/errors"
)

// CardsService реализует бизнес-логику открыток.
//
// Ответственность:
//   - создание/получение/удаление открыток и список по отправителю
//   - список доступных картинок из публичной директории
//   - отправка открытки письмом через почтовый шлюз
type CardsService struct {
	cards     CardsRepo
	sender    mail.Sender
	emails    EmailRenderer
	imagesDir string
	subject   string
}

// NewCardsService создаёт CardsService с зависимостями и настройками из конфига.
func NewCardsService(cards CardsRepo, sender mail.Sender, emails EmailRenderer, cfg *config.Config) *CardsService {
	return &CardsService{
		cards:     cards,
		sender:    sender,
		emails:    emails,
		imagesDir: cfg.Store.ImagesDir,
		subject:   cfg.Mail.Subject,
	}
}

// Create сохраняет новую открытку и возвращает её id.
func (s *CardsService) Create(in validation.CardInput) (string, error) {
	return s.cards.Save(models.Card{
		Name:           in.Name,
		RecipientEmail: in.RecipientEmail,
		SenderName:     in.SenderName,
		SenderEmail:    in.SenderEmail,
		CardImage:      in.CardImage,
	})
}

// Get возвращает открытку по id (ErrNotFound, если её нет).
func (s *CardsService) Get(id string) (models.Card, error) {
	return s.cards.Get(id)
}

// Delete удаляет открытку по id; отсутствующий id — no-op.
func (s *CardsService) Delete(id string) error {
	return s.cards.Delete(id)
}

// ListBySender возвращает открытки отправителя в порядке вставки.
func (s *CardsService) ListBySender(email string) []models.Card {
	return s.cards.ListBySender(email)
}

// ListImages возвращает имена файлов картинок из публичной директории.
//
// Порядок — алфавитный, поддиректории пропускаются.
func (s *CardsService) ListImages() ([]string, error) {
	entries, err := os.ReadDir(s.imagesDir)
	if err != nil {
		return nil, serr.ErrFileSystem
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !validation.ValidCardImage(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Send отправляет открытку письмом.
//
// Шаги: найти открытку, отрендерить тело письма, собрать сообщение
// (to/from из полей открытки, фиксированная тема, idempotency key = id
// открытки) и отдать провайдеру. Ретраев нет.
//
// Ошибки:
//   - ErrNotFound — неизвестный id
//   - ErrMailRejected / ErrMailTransport — от шлюза, без трансформации
func (s *CardsService) Send(ctx context.Context, id string) error {
	card, err := s.cards.Get(id)
	if err != nil {
		return err
	}

	html, err := s.emails.RenderEmail(card)
	if err != nil {
		return serr.ErrInternal
	}

	return s.sender.Send(ctx, mail.Message{
		Subject:        s.subject,
		HTML:           html,
		FromEmail:      card.SenderEmail,
		FromName:       card.SenderName,
		ToEmail:        card.RecipientEmail,
		ToName:         card.Name,
		IdempotencyKey: card.ID,
	})
}
