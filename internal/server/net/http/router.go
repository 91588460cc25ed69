// Package http реализует маршрутизацию HTTP-слоя сервера greetings.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - защиту маршрутов открыток cookie-сессией.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/api"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные маршруты: главная, статика, login/register;
//   - группу защищённых сессией маршрутов открыток и загрузки;
//   - catch-all 404 через общий экран ошибки.
//
// assetsDir/imagesDir — директории публичной статики и картинок открыток.
func NewRouter(h *api.Handler, assetsDir, imagesDir string) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))

	// Публичные пути
	r.Get("/", h.Home)
	r.Get("/login", h.LoginForm)
	r.Post("/login", h.Login)
	r.Post("/register", h.Register)

	// статика: стили и картинки открыток
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(assetsDir))))
	r.Handle("/images/cards/*", http.StripPrefix("/images/cards/", http.FileServer(http.Dir(imagesDir))))

	// защищённые пути: аноним уезжает на /login
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(h.Sessions))

		r.Get("/logout", h.Logout)

		r.Route("/cards", func(r chi.Router) {
			r.Get("/", h.ListCards)
			r.Get("/new", h.NewCardForm)
			r.Post("/new", h.CreateCard)
			r.Get("/{id}", h.ShowCard)
			r.Delete("/{id}", h.DeleteCard)
			r.Post("/{id}/send", h.SendCard)
		})

		r.Post("/upload", h.UploadImage)
	})

	r.NotFound(h.NotFound)

	return r
}
