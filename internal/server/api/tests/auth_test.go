package tests

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestRegister_SetsSessionAndRedirects(t *testing.T) {
	e := newEnv(t, nil)

	resp := e.postForm(t, "/register", url.Values{
		"name":     {"Alice"},
		"email":    {"a@x.com"},
		"password": {"password-1"},
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/cards" {
		t.Fatalf("expected redirect to /cards, got %q", loc)
	}

	// сессия установлена: защищённая страница открывается без редиректа
	cards := e.get(t, "/cards")
	defer cards.Body.Close()
	if cards.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on /cards after register, got %d", cards.StatusCode)
	}
}

func TestRegister_InvalidFormIs401(t *testing.T) {
	e := newEnv(t, nil)

	// email не похож на email
	resp := e.postForm(t, "/register", url.Values{
		"name":     {"Alice"},
		"email":    {"not-an-email"},
		"password": {"password-1"},
	})

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "Credentials did not validate") {
		t.Fatalf("expected validation message in body, got %q", body)
	}
}

func TestRegister_DuplicateEmailIs401(t *testing.T) {
	e := newEnv(t, nil)
	e.register(t, "Alice", "a@x.com", "password-1")

	resp := e.postForm(t, "/register", url.Values{
		"name":     {"Mallory"},
		"email":    {"a@x.com"},
		"password": {"password-2"},
	})

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "Email already registered") {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestLogin_OK(t *testing.T) {
	e := newEnv(t, nil)
	e.register(t, "Alice", "a@x.com", "password-1")

	// разлогиниваемся и входим заново
	logout := e.get(t, "/logout")
	logout.Body.Close()

	resp := e.postForm(t, "/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"password-1"},
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/cards" {
		t.Fatalf("expected redirect to /cards, got %q", loc)
	}
}

func TestLogin_WrongPasswordIs401(t *testing.T) {
	e := newEnv(t, nil)
	e.register(t, "Alice", "a@x.com", "password-1")
	e.get(t, "/logout").Body.Close()

	resp := e.postForm(t, "/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"wrong"},
	})

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "Invalid email or password") {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestLogin_InvalidFormIs401(t *testing.T) {
	e := newEnv(t, nil)

	resp := e.postForm(t, "/login", url.Values{
		"email":    {"not-an-email"},
		"password": {"password-1"},
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestLoginForm_RedirectsAuthenticated(t *testing.T) {
	e := newEnv(t, nil)
	e.register(t, "Alice", "a@x.com", "password-1")

	resp := e.get(t, "/login")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302 for authenticated /login, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/cards" {
		t.Fatalf("expected redirect to /cards, got %q", loc)
	}
}

func TestLogout_KillsSession(t *testing.T) {
	e := newEnv(t, nil)
	e.register(t, "Alice", "a@x.com", "password-1")

	resp := e.get(t, "/logout")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}

	// защищённая страница снова отправляет на /login
	cards := e.get(t, "/cards")
	defer cards.Body.Close()
	if cards.StatusCode != http.StatusFound {
		t.Fatalf("expected 302 after logout, got %d", cards.StatusCode)
	}
	if loc := cards.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestProtectedRoutes_AnonymousRedirects(t *testing.T) {
	e := newEnv(t, nil)

	for _, path := range []string{"/cards", "/cards/new", "/logout"} {
		resp := e.get(t, path)
		resp.Body.Close()
		if resp.StatusCode != http.StatusFound {
			t.Fatalf("%s: expected 302 for anonymous, got %d", path, resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/login" {
			t.Fatalf("%s: expected redirect to /login, got %q", path, loc)
		}
	}
}
