// Package api реализует HTTP-слой сервера greetings.
//
// Пакет отвечает за:
//   - обработку входящих форм и формирование ответов (редиректы, вьюхи);
//   - маппинг доменных ошибок (service/store) в HTTP-коды и экран ошибки;
//   - подключение middleware (логирование, cookie-сессия).
package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/service"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/session"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/view"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/shared/logger"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Sessions: менеджер cookie-сессий;
//   - Views: рендер HTML-страниц;
//   - ImagesDir / MaxUploadBytes: параметры загрузки картинок.
type Handler struct {
	Svc            *service.Services
	Log            *logger.HTTPLogger
	Sessions       *session.Manager
	Views          *view.Renderer
	ImagesDir      string
	MaxUploadBytes int64
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, sessions *session.Manager, views *view.Renderer, imagesDir string, maxUploadBytes int64) *Handler {
	return &Handler{
		Svc:            svc,
		Log:            log,
		Sessions:       sessions,
		Views:          views,
		ImagesDir:      imagesDir,
		MaxUploadBytes: maxUploadBytes,
	}
}

// Home — GET /: публичная стартовая страница.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.Views.Render(w, http.StatusOK, "home.html", nil)
}

// NotFound — catch-all 404 через общий экран ошибки.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Views.RenderError(w, http.StatusNotFound, "page not found")
}
