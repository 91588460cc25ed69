package mail

import (
	"context"

	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/shared/logger"
)

// LogSender — dev-заглушка вместо реального провайдера.
//
// Письмо не уходит, а пишется в лог. Позволяет гонять весь флоу
// отправки открыток локально без API-ключа.
type LogSender struct {
	log *logger.HTTPLogger
}

// NewLogSender создаёт dev-отправитель.
func NewLogSender(log *logger.HTTPLogger) *LogSender {
	return &LogSender{log: log}
}

// Send логирует письмо и всегда сообщает успех.
func (s *LogSender) Send(_ context.Context, m Message) error {
	s.log.Info("mail (dev, not sent)",
		zap.String("to", m.ToEmail),
		zap.String("to_name", m.ToName),
		zap.String("from", m.FromEmail),
		zap.String("subject", m.Subject),
		zap.String("idempotency_key", m.IdempotencyKey),
		zap.Int("html_bytes", len(m.HTML)),
	)
	return nil
}
