package tests

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/api"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/config"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/mail"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/models"
	serverhttp "github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/service"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/session"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/store"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/view"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/shared/logger"
)

// funcSender — почтовый провайдер из функции, для подмены в тестах.
type funcSender func(ctx context.Context, m mail.Message) error

func (f funcSender) Send(ctx context.Context, m mail.Message) error { return f(ctx, m) }

// env — поднятый целиком HTTP-стек поверх httptest.Server.
type env struct {
	srv    *httptest.Server
	client *http.Client
	users  *store.UsersStore
	cards  *store.CardsStore
	cfg    *config.Config
}

// newEnv собирает сервер так же, как main: конфиг с дефолтами,
// сторы в памяти, картинки в t.TempDir. sender == nil означает
// «провайдер всегда согласен».
func newEnv(t *testing.T, sender mail.Sender) *env {
	t.Helper()

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Session.Secret = "0123456789abcdef0123456789abcdef"
	cfg.Store.ImagesDir = t.TempDir()
	cfg.Password.Argon2 = config.Argon2Config{
		Time: 1, MemoryKiB: 1024, Threads: 1, KeyLen: 32, SaltLen: 16,
	}

	if sender == nil {
		sender = funcSender(func(context.Context, mail.Message) error { return nil })
	}

	users := store.NewUsers()
	cards, err := store.NewCards("")
	if err != nil {
		t.Fatalf("NewCards error: %v", err)
	}

	views, err := view.New()
	if err != nil {
		t.Fatalf("view.New error: %v", err)
	}

	log := &logger.HTTPLogger{Logger: zap.NewNop()}

	svc := service.NewServices(
		service.Repositories{Users: users, Cards: cards},
		sender, views, cfg,
	)
	sessions := session.NewManager(
		cfg.Session.Secret, cfg.Session.CookieName,
		int(cfg.Session.TTL.Seconds()), cfg.Session.Secure,
	)
	handler := api.NewHandler(svc, log, sessions, views, cfg.Store.ImagesDir, cfg.Server.MaxUploadBytes)

	srv := httptest.NewServer(serverhttp.NewRouter(handler, t.TempDir(), cfg.Store.ImagesDir))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar error: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		// редиректы проверяем руками
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &env{srv: srv, client: client, users: users, cards: cards, cfg: cfg}
}

// postForm отправляет форму и возвращает ответ (тело закрывает вызывающий).
func (e *env) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	resp, err := e.client.Post(e.srv.URL+path, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("POST %s error: %v", path, err)
	}
	return resp
}

func (e *env) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := e.client.Get(e.srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s error: %v", path, err)
	}
	return resp
}

func (e *env) do(t *testing.T, method, path string, body io.Reader) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, e.srv.URL+path, body)
	if err != nil {
		t.Fatalf("build %s %s: %v", method, path, err)
	}
	resp, err := e.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s error: %v", method, path, err)
	}
	return resp
}

// register регистрирует пользователя и оставляет сессию в cookie jar.
func (e *env) register(t *testing.T, name, email, password string) {
	t.Helper()
	resp := e.postForm(t, "/register", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("register: expected 302, got %d", resp.StatusCode)
	}
}

// createCard создаёт открытку через форму и возвращает её id из стора.
func (e *env) createCard(t *testing.T, form url.Values) string {
	t.Helper()

	before := e.cards.Len()
	resp := e.postForm(t, "/cards/new", form)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("create card: expected 302, got %d", resp.StatusCode)
	}
	if e.cards.Len() != before+1 {
		t.Fatalf("create card: store size %d, want %d", e.cards.Len(), before+1)
	}

	list := e.cards.ListBySender(form.Get("sender_email"))
	return list[len(list)-1].ID
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

// formToCard превращает значения формы в модель для прямой записи в стор.
func formToCard(form url.Values) models.Card {
	return models.Card{
		Name:           form.Get("name"),
		RecipientEmail: form.Get("recipient_email"),
		SenderName:     form.Get("sender_name"),
		SenderEmail:    form.Get("sender_email"),
		CardImage:      form.Get("card_image"),
	}
}

func cardForm() url.Values {
	return url.Values{
		"name":            {"Bob"},
		"recipient_email": {"b@x.com"},
		"sender_name":     {"Alice"},
		"sender_email":    {"a@x.com"},
		"card_image":      {"cat.png"},
	}
}
