// HTTP-хендлеры регистрации, логина и логаута
package api

import (
	"errors"
	"net/http"

	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/validation"
	serr "github.com/IvanChernomyrdin/go-hapi-greetings/internal/shared/errors"
)

// LoginForm — GET /login: форма входа/регистрации.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	// уже залогинен — сразу к открыткам
	if _, ok := h.Sessions.Current(r); ok {
		http.Redirect(w, r, "/cards", http.StatusFound)
		return
	}
	h.Views.Render(w, http.StatusOK, "login.html", nil)
}

// Login обрабатывает вход пользователя.
//
// Ответы:
//   - 302 -> /cards: вход успешен, сессия установлена;
//   - 401 (экран ошибки): невалидная форма или неверные учётные данные.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Views.RenderError(w, http.StatusBadRequest, "bad form")
		return
	}

	in, err := validation.ValidateLogin(r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		// как и в исходнике: валидация логина отвечает 401, не 400
		h.Views.RenderError(w, http.StatusUnauthorized, "Credentials did not validate")
		return
	}

	user, err := h.Svc.Auth.Login(in.Email, in.Password)
	if err != nil {
		if errors.Is(err, serr.ErrInvalidCredentials) {
			h.Views.RenderError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.Log.Sugar().Errorw("login failed", "error", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := h.Sessions.Set(w, r, user); err != nil {
		h.Log.Sugar().Errorw("set session failed", "error", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "internal error")
		return
	}
	http.Redirect(w, r, "/cards", http.StatusFound)
}

// Register обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 302 -> /cards: пользователь создан, сессия установлена (иначе
//     редирект привёл бы анонима обратно на /login);
//   - 401 (экран ошибки): невалидная форма или email уже занят —
//     коды зафиксированы контрактом исходного приложения.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Views.RenderError(w, http.StatusBadRequest, "bad form")
		return
	}

	in, err := validation.ValidateRegister(
		r.PostFormValue("name"),
		r.PostFormValue("email"),
		r.PostFormValue("password"),
	)
	if err != nil {
		h.Views.RenderError(w, http.StatusUnauthorized, "Credentials did not validate")
		return
	}

	user, err := h.Svc.Auth.Register(in.Name, in.Email, in.Password)
	if err != nil {
		if errors.Is(err, serr.ErrAlreadyExists) {
			h.Views.RenderError(w, http.StatusUnauthorized, "Email already registered")
			return
		}
		h.Log.Sugar().Errorw("register failed", "error", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := h.Sessions.Set(w, r, user); err != nil {
		h.Log.Sugar().Errorw("set session failed", "error", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "internal error")
		return
	}
	http.Redirect(w, r, "/cards", http.StatusFound)
}

// Logout гасит сессию и уводит на главную.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Clear(w, r); err != nil {
		h.Log.Sugar().Errorw("clear session failed", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
