// Package view — рендеринг HTML-страниц и тела письма.
//
// Сами шаблоны — внешний для дизайна слой (в исходном приложении это
// handlebars-шаблоны hapi): здесь они минимальны и вшиты в бинарь через
// embed, чтобы сервер не зависел от рабочей директории.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer исполняет вшитые шаблоны.
type Renderer struct {
	t *template.Template
}

// New парсит все вшитые шаблоны.
func New() (*Renderer, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{t: t}, nil
}

// Render пишет страницу name с данными data и статусом status.
//
// Ошибка исполнения шаблона после начала записи уже не исправима,
// поэтому рендерим сперва в буфер.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// ErrorData — данные для вьюхи ошибки.
type ErrorData struct {
	Status  int
	Message string
}

// RenderError — общий экран ошибки.
//
// Любая клиентская ошибка уходит через него (аналог onPreResponse-хука
// исходного сервера): наружу — человекочитаемое сообщение, без внутренностей.
func (r *Renderer) RenderError(w http.ResponseWriter, status int, message string) {
	r.Render(w, status, "error.html", ErrorData{Status: status, Message: message})
}

// RenderEmail рендерит HTML-тело письма-открытки.
func (r *Renderer) RenderEmail(card models.Card) (string, error) {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, "email.html", card); err != nil {
		return "", err
	}
	return buf.String(), nil
}
