package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	serr "github.com/IvanChernomyrdin/go-hapi-greetings/internal/shared/errors"
)

// Mandrill — клиент к messages/send.json API Mandrill.
//
// Ключ приходит из конфига (переменная окружения MANDRILL_API_KEY);
// захардкоженный ключ исходного приложения — дефект, не контракт.
type Mandrill struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewMandrill создаёт клиент провайдера.
//
// baseURL без завершающего слэша (https://mandrillapp.com/api/1.0),
// timeout — потолок на весь вызов: зависший провайдер не должен
// вешать запрос клиента навсегда.
func NewMandrill(baseURL, apiKey string, timeout time.Duration) *Mandrill {
	return &Mandrill{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// формат запроса messages/send.json
type sendRequest struct {
	Key     string      `json:"key"`
	Message sendMessage `json:"message"`
}

type sendMessage struct {
	HTML      string       `json:"html"`
	Subject   string       `json:"subject"`
	FromEmail string       `json:"from_email"`
	FromName  string       `json:"from_name"`
	To        []sendTo     `json:"to"`
	Metadata  sendMetadata `json:"metadata"`
}

type sendTo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Type  string `json:"type"` // всегда "to"
}

type sendMetadata struct {
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// формат ответа: массив результатов по получателям
type sendResult struct {
	Email        string `json:"email"`
	Status       string `json:"status"` // sent|queued|rejected|invalid
	RejectReason string `json:"reject_reason"`
}

// Send отправляет письмо через Mandrill.
//
// Возвращает:
//   - ErrMailRejected с reject_reason, если провайдер отклонил письмо
//   - ErrMailTransport при сетевой ошибке или не-2xx ответе
func (c *Mandrill) Send(ctx context.Context, m Message) error {
	body, err := json.Marshal(sendRequest{
		Key: c.apiKey,
		Message: sendMessage{
			HTML:      m.HTML,
			Subject:   m.Subject,
			FromEmail: m.FromEmail,
			FromName:  m.FromName,
			To: []sendTo{
				{Email: m.ToEmail, Name: m.ToName, Type: "to"},
			},
			Metadata: sendMetadata{IdempotencyKey: m.IdempotencyKey},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: marshal request: %v", serr.ErrMailTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/messages/send.json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", serr.ErrMailTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", serr.ErrMailTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: provider returned status %d", serr.ErrMailTransport, resp.StatusCode)
	}

	var results []sendResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return fmt.Errorf("%w: decode response: %v", serr.ErrMailTransport, err)
	}

	for _, res := range results {
		if res.Status == "rejected" || res.Status == "invalid" || res.RejectReason != "" {
			reason := res.RejectReason
			if reason == "" {
				reason = res.Status
			}
			return fmt.Errorf("%w: %s", serr.ErrMailRejected, reason)
		}
	}
	return nil
}
