// Package mail — шлюз к внешнему транзакционному почтовому провайдеру.
//
// Шлюз тонкий: собрать сообщение из полей открытки и отдать провайдеру.
// Ретраев нет; отказ провайдера и транспортная ошибка различаются
// доменными ошибками, но хендлер схлопывает обе в «could not send card».
package mail

import "context"

// Message — письмо-открытка, готовое к отправке.
//
// IdempotencyKey передаётся провайдеру в метаданных, чтобы повторная
// отправка одной открытки была опознаваема на его стороне (в исходном
// приложении ключа не было — повтор слал дубликат).
type Message struct {
	Subject        string
	HTML           string
	FromEmail      string
	FromName       string
	ToEmail        string
	ToName         string
	IdempotencyKey string
}

// Sender отправляет письмо через внешнего провайдера.
//
// Ошибки:
//   - serr.ErrMailRejected — провайдер отклонил сообщение
//   - serr.ErrMailTransport — сетевая/HTTP ошибка при обращении к провайдеру
type Sender interface {
	Send(ctx context.Context, m Message) error
}
