package tests

import (
	"errors"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/validation"
	serr "github.com/IvanChernomyrdin/go-hapi-greetings/internal/shared/errors"
)

func TestValidateCard_Success(t *testing.T) {
	in, err := validation.ValidateCard("Bob", "b@x.com", "Alice", "a@x.com", "cat.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Name != "Bob" || in.RecipientEmail != "b@x.com" || in.CardImage != "cat.png" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestValidateCard_ImageExtensions(t *testing.T) {
	cases := []struct {
		image string
		ok    bool
	}{
		{"cat.png", true},
		{"cat.jpg", true},
		{"cat.bmp", true},
		{"cat.gif", true},
		{"CAT.PNG", true}, // регистр не важен
		{"cat.png?x=1", true},
		{"cat.txt", false},
		{"cat.pngg", false}, // нет границы слова после расширения
		{"cat", false},
		{".png", false}, // перед расширением должно быть имя
		{"", false},
	}

	for _, tc := range cases {
		_, err := validation.ValidateCard("Bob", "b@x.com", "Alice", "a@x.com", tc.image)
		if tc.ok && err != nil {
			t.Fatalf("image %q: unexpected error: %v", tc.image, err)
		}
		if !tc.ok {
			if err == nil {
				t.Fatalf("image %q: expected error, got nil", tc.image)
			}
			if !errors.Is(err, serr.ErrValidation) {
				t.Fatalf("image %q: expected ErrValidation, got %v", tc.image, err)
			}
		}
	}
}

func TestValidateCard_FirstViolationWins(t *testing.T) {
	// и name, и card_image невалидны — в ошибке должно быть про name
	_, err := validation.ValidateCard("ab", "b@x.com", "Alice", "a@x.com", "cat.txt")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "name") || strings.Contains(err.Error(), "card_image") {
		t.Fatalf("expected first violated rule (name) in message, got %q", err.Error())
	}
}

func TestValidateCard_NameBounds(t *testing.T) {
	long := strings.Repeat("x", 51)
	if _, err := validation.ValidateCard(long, "b@x.com", "Alice", "a@x.com", "cat.png"); err == nil {
		t.Fatalf("expected error for 51-char name")
	}
	ok50 := strings.Repeat("x", 50)
	if _, err := validation.ValidateCard(ok50, "b@x.com", "Alice", "a@x.com", "cat.png"); err != nil {
		t.Fatalf("50-char name must pass, got %v", err)
	}
	if _, err := validation.ValidateCard("abc", "b@x.com", "ab", "a@x.com", "cat.png"); err == nil {
		t.Fatalf("expected error for 2-char sender_name")
	}
}

func TestValidateCard_LengthsCountRunes(t *testing.T) {
	// границы длины считаются в символах, не в байтах:
	// 30 кириллических букв — это 60 байт, но всё ещё валидное имя
	cyr30 := strings.Repeat("Ж", 30)
	if _, err := validation.ValidateCard(cyr30, "b@x.com", "Алиса", "a@x.com", "cat.png"); err != nil {
		t.Fatalf("30-rune cyrillic name must pass, got %v", err)
	}

	cyr50 := strings.Repeat("Ж", 50)
	if _, err := validation.ValidateCard(cyr50, "b@x.com", "Алиса", "a@x.com", "cat.png"); err != nil {
		t.Fatalf("50-rune cyrillic name must pass, got %v", err)
	}
	cyr51 := strings.Repeat("Ж", 51)
	if _, err := validation.ValidateCard(cyr51, "b@x.com", "Алиса", "a@x.com", "cat.png"); err == nil {
		t.Fatalf("expected error for 51-rune name")
	}

	// два символа — меньше минимума, даже если байтов четыре
	if _, err := validation.ValidateCard("Жо", "b@x.com", "Алиса", "a@x.com", "cat.png"); err == nil {
		t.Fatalf("expected error for 2-rune name")
	}
	if _, err := validation.ValidateCard("Боб", "b@x.com", "Жо", "a@x.com", "cat.png"); err == nil {
		t.Fatalf("expected error for 2-rune sender_name")
	}
}

func TestValidateCard_Emails(t *testing.T) {
	if _, err := validation.ValidateCard("Bob", "not-an-email", "Alice", "a@x.com", "cat.png"); err == nil {
		t.Fatalf("expected error for bad recipient_email")
	}
	if _, err := validation.ValidateCard("Bob", "b@x.com", "Alice", "a@x", "cat.png"); err == nil {
		t.Fatalf("expected error for bad sender_email")
	}
}

func TestValidateLogin(t *testing.T) {
	if _, err := validation.ValidateLogin("a@x.com", "pw1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := validation.ValidateLogin("nope", "pw1"); err == nil {
		t.Fatalf("expected error for bad email")
	}
	if _, err := validation.ValidateLogin("a@x.com", ""); err == nil {
		t.Fatalf("expected error for empty password")
	}
	if _, err := validation.ValidateLogin("a@x.com", strings.Repeat("p", 33)); err == nil {
		t.Fatalf("expected error for 33-char password")
	}
	if _, err := validation.ValidateLogin("a@x.com", strings.Repeat("p", 32)); err != nil {
		t.Fatalf("32-char password must pass, got %v", err)
	}
	// пароль в 32 кириллических символа (64 байта) тоже в пределах лимита
	if _, err := validation.ValidateLogin("a@x.com", strings.Repeat("п", 32)); err != nil {
		t.Fatalf("32-rune cyrillic password must pass, got %v", err)
	}
	if _, err := validation.ValidateLogin("a@x.com", strings.Repeat("п", 33)); err == nil {
		t.Fatalf("expected error for 33-rune password")
	}
}

func TestValidateRegister(t *testing.T) {
	if _, err := validation.ValidateRegister("Alice", "a@x.com", "pw1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := validation.ValidateRegister("", "a@x.com", "pw1"); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := validation.ValidateRegister(strings.Repeat("x", 51), "a@x.com", "pw1"); err == nil {
		t.Fatalf("expected error for 51-char name")
	}
	if _, err := validation.ValidateRegister("Alice", "a@", "pw1"); err == nil {
		t.Fatalf("expected error for bad email")
	}
	if _, err := validation.ValidateRegister("Alice", "a@x.com", ""); err == nil {
		t.Fatalf("expected error for empty password")
	}
	// длины считаются в символах
	if _, err := validation.ValidateRegister(strings.Repeat("Ж", 50), "a@x.com", strings.Repeat("п", 32)); err != nil {
		t.Fatalf("50-rune name and 32-rune password must pass, got %v", err)
	}
	if _, err := validation.ValidateRegister("Алиса", "a@x.com", strings.Repeat("п", 33)); err == nil {
		t.Fatalf("expected error for 33-rune password")
	}
}

func TestValidCardImage(t *testing.T) {
	if !validation.ValidCardImage("dog.GIF") {
		t.Fatalf("expected dog.GIF to be a valid card image")
	}
	if validation.ValidCardImage("dog.exe") {
		t.Fatalf("expected dog.exe to be rejected")
	}
}
