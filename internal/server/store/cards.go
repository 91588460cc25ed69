package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-hapi-greetings/internal/shared/errors"
)

// CardsStore — хранилище открыток: карта по id плюс порядок вставки.
//
// Персистентность — сквозная запись JSON-снапшота: каждый Save/Delete
// переписывает файл целиком под блокировкой. В исходном репозитории жили
// два расходящихся варианта (чистая память и load-once без записи);
// здесь выбрана одна целостная политика.
type CardsStore struct {
	mu    sync.RWMutex
	cards map[string]models.Card
	order []string // id в порядке вставки
	path  string   // путь к JSON-снапшоту; пустой — без персистентности
}

// NewCards создаёт хранилище открыток и загружает снапшот с диска.
//
// Поведение:
//   - path == "" — чисто in-memory стор (удобно в тестах);
//   - файла нет — стартуем пустыми, это нормальная ситуация;
//   - файл есть, но не парсится — возвращаем ошибку, старт сервера
//     обязан прерваться (лучше упасть, чем молча потерять открытки).
func NewCards(path string) (*CardsStore, error) {
	s := &CardsStore{
		cards: make(map[string]models.Card),
		path:  path,
	}
	if path == "" {
		return s, nil
	}
	if err := s.loadSnapshot(); err != nil {
		return nil, fmt.Errorf("load cards snapshot: %w", err)
	}
	return s, nil
}

// Save сохраняет открытку под свежим уникальным id и возвращает его.
//
// Для корректного входа не падает; ошибка возможна только от записи
// снапшота на диск.
func (s *CardsStore) Save(card models.Card) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card.ID = uuid.NewString()
	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now()
	}

	s.cards[card.ID] = card
	s.order = append(s.order, card.ID)

	if err := s.writeSnapshot(); err != nil {
		// память и снапшот не должны расходиться: не записали — откатываем
		delete(s.cards, card.ID)
		s.order = s.order[:len(s.order)-1]
		return "", err
	}
	return card.ID, nil
}

// Get возвращает открытку по id.
//
// Если открытка отсутствует — возвращает serr.ErrNotFound.
func (s *CardsStore) Get(id string) (models.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cards[id]
	if !ok {
		return models.Card{}, serr.ErrNotFound
	}
	return c, nil
}

// Delete удаляет открытку по id.
//
// Удаление отсутствующего id — no-op, не ошибка.
func (s *CardsStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.cards[id]
	if !ok {
		return nil
	}
	pos := -1
	for i, oid := range s.order {
		if oid == id {
			pos = i
			break
		}
	}
	delete(s.cards, id)
	if pos >= 0 {
		s.order = append(s.order[:pos], s.order[pos+1:]...)
	}

	if err := s.writeSnapshot(); err != nil {
		// откат: открытка остаётся, раз снапшот её всё ещё содержит
		s.cards[id] = card
		if pos >= 0 {
			s.order = append(s.order, "")
			copy(s.order[pos+1:], s.order[pos:])
			s.order[pos] = id
		}
		return err
	}
	return nil
}

// ListBySender возвращает все открытки с данным sender_email
// в порядке вставки.
//
// Результат — снимок на момент вызова, не живое представление.
// Принадлежность определяется совпадением email, без внешнего ключа —
// осознанное упрощение исходного дизайна.
func (s *CardsStore) ListBySender(email string) []models.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Card, 0)
	for _, id := range s.order {
		if c, ok := s.cards[id]; ok && c.SenderEmail == email {
			result = append(result, c)
		}
	}
	return result
}

// Len возвращает количество открыток в сторе.
func (s *CardsStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cards)
}
