// Package config отвечает за:
// - чтение server.yaml
// - подстановку переменных окружения вида ${SESSION_SECRET}
// - проставление дефолтов
// - валидацию (чтобы сервер не стартовал с дырявыми настройками)
//
// Секреты (ключ cookie-сессии, ключ почтового провайдера) в yaml не пишутся —
// только через ${...}. Захардкоженные секреты исходного приложения — дефект.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/stretchr/testify/assert/yaml"
)

// Config — корневая структура всего конфига сервера.
type Config struct {
	Env      string         `yaml:"env"` // dev|stage|prod
	Server   ServerConfig   `yaml:"server"`
	TLS      TLSConfig      `yaml:"tls"`
	Session  SessionConfig  `yaml:"session"`
	Store    StoreConfig    `yaml:"store"`
	Password PasswordConfig `yaml:"password"`
	Mail     MailConfig     `yaml:"mail"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig — настройки HTTP-сервера.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // время на graceful shutdown
	MaxUploadBytes  int64         `yaml:"max_upload_bytes"` // лимит размера multipart-загрузки
}

// TLSConfig — настройки HTTPS (для открыток опционально, в отличие от gophkeeper).
type TLSConfig struct {
	Enabled  bool   `yaml:"enabled"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// SessionConfig — настройки cookie-сессии.
type SessionConfig struct {
	CookieName string        `yaml:"cookie_name"`
	Secret     string        `yaml:"secret"` // может содержать ${SESSION_SECRET}
	TTL        time.Duration `yaml:"ttl"`
	Secure     bool          `yaml:"secure"` // Secure-флаг cookie (включать за TLS)
}

// StoreConfig — где лежат данные: снапшот открыток и публичные картинки.
type StoreConfig struct {
	CardsFile string `yaml:"cards_file"`
	ImagesDir string `yaml:"images_dir"`
}

// PasswordConfig — настройки хэширования паролей пользователей.
type PasswordConfig struct {
	Argon2 Argon2Config `yaml:"argon2"`
}

// Argon2Config — параметры argon2id.
type Argon2Config struct {
	Time      uint32 `yaml:"time"`
	MemoryKiB uint32 `yaml:"memory_kib"`
	Threads   uint8  `yaml:"threads"`
	KeyLen    uint32 `yaml:"key_len"`
	SaltLen   uint32 `yaml:"salt_len"`
}

// MailConfig — настройки почтового шлюза.
type MailConfig struct {
	Provider string        `yaml:"provider"` // mandrill|log
	BaseURL  string        `yaml:"base_url"`
	APIKey   string        `yaml:"api_key"` // может содержать ${MANDRILL_API_KEY}
	Subject  string        `yaml:"subject"`
	Timeout  time.Duration `yaml:"timeout"` // таймаут на вызов провайдера
}

// LogConfig — настройки логирования (zap).
type LogConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // json|console
}

// Load читает YAML, подставляет переменные окружения вида ${VAR},
// затем парсит в структуру, проставляет дефолты и валидирует.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать конфиг: %w", err)
	}

	// Подставляем переменные окружения в текст YAML:
	// secret: "${SESSION_SECRET}" -> secret: "реальное_значение"
	expanded := ExpandEnvStrict(string(raw))
	raw = []byte(expanded)

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("не удалось распарсить yaml: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ExpandEnvStrict заменяет ${VAR} на значение из окружения.
// Если переменная не задана — оставляем ${VAR} как есть,
// а потом Validate() упадёт с понятной ошибкой.
func ExpandEnvStrict(s string) string {
	re := regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`)
	return re.ReplaceAllStringFunc(s, func(m string) string {
		sub := re.FindStringSubmatch(m)
		if len(sub) != 2 {
			return m
		}
		if val, ok := os.LookupEnv(sub[1]); ok {
			return val
		}
		return m
	})
}

// ApplyDefaults — дефолтные значения, если в yaml поле не задано.
func ApplyDefaults(cfg *Config) {
	if cfg.Env == "" {
		cfg.Env = "dev"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000 // порт исходного приложения
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = 10 << 20
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30 * time.Second
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "greetings-session"
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = 24 * time.Hour
	}
	if cfg.Store.CardsFile == "" {
		cfg.Store.CardsFile = "runtime/cards.json"
	}
	if cfg.Store.ImagesDir == "" {
		cfg.Store.ImagesDir = "public/images/cards"
	}
	if cfg.Mail.Provider == "" {
		cfg.Mail.Provider = "log"
	}
	if cfg.Mail.BaseURL == "" {
		cfg.Mail.BaseURL = "https://mandrillapp.com/api/1.0"
	}
	if cfg.Mail.Subject == "" {
		cfg.Mail.Subject = "A greeting from hapi Greetings"
	}
	if cfg.Mail.Timeout == 0 {
		cfg.Mail.Timeout = 10 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
}

// Validate проверяет, что конфиг заполнен корректно и безопасно.
// Если что-то не так — возвращаем ошибку и сервер НЕ стартует.
func (c *Config) Validate() error {
	// Базовая проверка сервера
	if c.Server.Host == "" {
		return errors.New("server.host обязателен")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port некорректен: %d", c.Server.Port)
	}

	// TLS/HTTPS
	if c.TLS.Enabled {
		if c.TLS.CertFile == "" || c.TLS.KeyFile == "" {
			return errors.New("tls.cert_file и tls.key_file обязательны при tls.enabled=true")
		}
	}

	// Cookie-сессия
	secret := strings.TrimSpace(c.Session.Secret)
	if secret == "" {
		return errors.New("session.secret обязателен (через ${SESSION_SECRET} или прямо строкой)")
	}
	// Если ${SESSION_SECRET} не подставился — значит переменная окружения не задана
	if strings.Contains(secret, "${") && strings.Contains(secret, "}") {
		return fmt.Errorf("session.secret содержит неподставленную переменную: %q (нужно задать SESSION_SECRET)", secret)
	}
	// Ключ подписи cookie должен быть длинным и случайным
	if len(secret) < 32 {
		return fmt.Errorf("session.secret слишком короткий (%d символов); нужно >= 32", len(secret))
	}

	// Стор
	if c.Store.CardsFile == "" {
		return errors.New("store.cards_file обязателен")
	}
	if c.Store.ImagesDir == "" {
		return errors.New("store.images_dir обязателен")
	}

	// Хэширование паролей
	if c.Password.Argon2.Time == 0 || c.Password.Argon2.MemoryKiB == 0 || c.Password.Argon2.Threads == 0 {
		return errors.New("password.argon2 должен быть настроен (time/memory_kib/threads > 0)")
	}

	// Почта
	switch strings.ToLower(c.Mail.Provider) {
	case "mandrill":
		key := strings.TrimSpace(c.Mail.APIKey)
		if key == "" {
			return errors.New("mail.api_key обязателен при mail.provider=mandrill")
		}
		if strings.Contains(key, "${") && strings.Contains(key, "}") {
			return fmt.Errorf("mail.api_key содержит неподставленную переменную: %q (нужно задать MANDRILL_API_KEY)", key)
		}
	case "log":
		// dev-режим: письма только в лог, ключ не нужен
	default:
		return fmt.Errorf("mail.provider должен быть mandrill|log (сейчас %q)", c.Mail.Provider)
	}

	return nil
}
