package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/models"
)

// cardsDump — формат файла-снапшота открыток.
//
// Файл содержит объект вида:
//
//	{ "cards": [ ... ] }
//
// Порядок в массиве — порядок вставки; на загрузке он дополнительно
// восстанавливается по CreatedAt на случай, если файл правили руками.
type cardsDump struct {
	Cards []models.Card `json:"cards"`
}

// writeSnapshot сериализует текущее состояние в JSON и пишет файл.
//
// Вызывается только под уже взятым Lock.
// Директория создаётся с правами 0700, файл — 0600.
func (s *CardsStore) writeSnapshot() error {
	if s.path == "" {
		return nil
	}

	out := cardsDump{Cards: make([]models.Card, 0, len(s.order))}
	for _, id := range s.order {
		out.Cards = append(out.Cards, s.cards[id])
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o600)
}

// loadSnapshot загружает открытки из JSON-файла в стор.
//
// Если файл не существует — возвращает nil (первый запуск).
// Если JSON некорректный — возвращает ошибку Unmarshal, и NewCards
// прерывает старт: лучше упасть явно, чем молча затереть снапшот.
func (s *CardsStore) loadSnapshot() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var dump cardsDump
	if err := json.Unmarshal(b, &dump); err != nil {
		return err
	}

	// восстанавливаем порядок вставки
	sort.SliceStable(dump.Cards, func(i, j int) bool {
		return dump.Cards[i].CreatedAt.Before(dump.Cards[j].CreatedAt)
	})

	s.cards = make(map[string]models.Card, len(dump.Cards))
	s.order = make([]string, 0, len(dump.Cards))
	for _, c := range dump.Cards {
		if _, ok := s.cards[c.ID]; ok {
			continue // дубликат id в файле — оставляем первую запись
		}
		s.cards[c.ID] = c
		s.order = append(s.order, c.ID)
	}
	return nil
}
