// HTTP-хендлеры открыток: создание, список, просмотр, удаление, отправка
package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/models"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/validation"
	serr "github.com/IvanChernomyrdin/go-hapi-greetings/internal/shared/errors"
)

// CardsPage — данные вьюхи списка открыток.
type CardsPage struct {
	User  models.SessionUser
	Cards []models.Card
}

// NewCardPage — данные вьюхи формы создания.
type NewCardPage struct {
	User       models.SessionUser
	CardImages []string
}

// ListCards — GET /cards: открытки текущего пользователя.
//
// Принадлежность — по совпадению sender_email с email из сессии.
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.Views.RenderError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	h.Views.Render(w, http.StatusOK, "cards.html", CardsPage{
		User:  user,
		Cards: h.Svc.Cards.ListBySender(user.Email),
	})
}

// NewCardForm — GET /cards/new: форма создания со списком картинок.
func (h *Handler) NewCardForm(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	images, err := h.Svc.Cards.ListImages()
	if err != nil {
		h.Log.Sugar().Errorw("list images failed", "error", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.Views.Render(w, http.StatusOK, "new.html", NewCardPage{User: user, CardImages: images})
}

// CreateCard — POST /cards/new.
//
// Ответы:
//   - 302 -> /cards: открытка сохранена;
//   - 400 (экран ошибки): сообщение первого нарушенного правила схемы.
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Views.RenderError(w, http.StatusBadRequest, "bad form")
		return
	}

	in, err := validation.ValidateCard(
		r.PostFormValue("name"),
		r.PostFormValue("recipient_email"),
		r.PostFormValue("sender_name"),
		r.PostFormValue("sender_email"),
		r.PostFormValue("card_image"),
	)
	if err != nil {
		h.Views.RenderError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Svc.Cards.Create(in); err != nil {
		h.Log.Sugar().Errorw("create card failed", "error", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "internal error")
		return
	}
	http.Redirect(w, r, "/cards", http.StatusFound)
}

// ShowCard — GET /cards/{id}: просмотр открытки.
//
// Неизвестный id — 404 через общий экран ошибки.
func (h *Handler) ShowCard(w http.ResponseWriter, r *http.Request) {
	card, err := h.Svc.Cards.Get(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			h.Views.RenderError(w, http.StatusNotFound, "card not found")
			return
		}
		h.Log.Sugar().Errorw("get card failed", "error", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.Views.Render(w, http.StatusOK, "card.html", card)
}

// DeleteCard — DELETE /cards/{id}: пустой 200.
//
// Удаление отсутствующего id — no-op, тоже 200.
func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Cards.Delete(chi.URLParam(r, "id")); err != nil {
		h.Log.Sugar().Errorw("delete card failed", "error", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// SendCard — POST /cards/{id}/send: отправка открытки письмом.
//
// Ответы:
//   - 302 -> /cards: провайдер принял письмо;
//   - 404: неизвестный id;
//   - 400 «Could not send card»: отказ провайдера или транспортная
//     ошибка — причина только в логах, наружу не уходит.
func (h *Handler) SendCard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Svc.Cards.Send(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			h.Views.RenderError(w, http.StatusNotFound, "card not found")
		case errors.Is(err, serr.ErrMailRejected), errors.Is(err, serr.ErrMailTransport):
			h.Log.Sugar().Errorw("send card failed", "card_id", id, "error", err)
			h.Views.RenderError(w, http.StatusBadRequest, "Could not send card")
		default:
			h.Log.Sugar().Errorw("send card failed", "card_id", id, "error", err)
			h.Views.RenderError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	http.Redirect(w, r, "/cards", http.StatusFound)
}
