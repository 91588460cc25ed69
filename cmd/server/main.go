// Package main содержит точку входа сервера greetings.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - инициализацию сторов (пользователи в памяти, открытки + JSON-снапшот);
//   - создание сервисов, почтового шлюза, cookie-сессий и HTTP-обработчиков;
//   - настройку и запуск сервера с заданными таймаутами (TLS опционален);
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/api"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/config"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/mail"
	h "github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/service"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/session"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/store"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/server/view"
	"github.com/IvanChernomyrdin/go-hapi-greetings/internal/shared/logger"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load("./configs/server.yaml")
	if err != nil {
		// конфиг не прочитан — уровень и формат логов взять неоткуда
		logger.NewHTTPLogger("info", "json").Sugar().Fatal(err)
	}

	httpLogger := logger.NewHTTPLogger(cfg.Log.Level, cfg.Log.Format)
	sugar := httpLogger.Sugar()

	if envErr != nil {
		sugar.Warnf("no .env file loaded, error: %v", envErr)
	}

	// сторы: пользователи в памяти, открытки со сквозным JSON-снапшотом.
	// битый снапшот — фатально: лучше не стартовать, чем затереть данные
	users := store.NewUsers()
	cards, err := store.NewCards(cfg.Store.CardsFile)
	if err != nil {
		sugar.Fatal(err)
	}

	// почтовый шлюз: боевой mandrill или dev-режим в лог
	var sender mail.Sender
	if strings.EqualFold(cfg.Mail.Provider, "mandrill") {
		sender = mail.NewMandrill(cfg.Mail.BaseURL, cfg.Mail.APIKey, cfg.Mail.Timeout)
	} else {
		sender = mail.NewLogSender(httpLogger)
	}

	// рендер страниц и писем
	views, err := view.New()
	if err != nil {
		sugar.Fatal(err)
	}

	// собираем сервисы
	svc := service.NewServices(service.Repositories{
		Users: users,
		Cards: cards,
	}, sender, views, cfg)

	// cookie-сессии (ключ подписи — из окружения)
	sessions := session.NewManager(
		cfg.Session.Secret,
		cfg.Session.CookieName,
		int(cfg.Session.TTL.Seconds()),
		cfg.Session.Secure,
	)

	// создаём хандлер и роутер
	handler := api.NewHandler(svc, httpLogger, sessions, views, cfg.Store.ImagesDir, cfg.Server.MaxUploadBytes)
	router := h.NewRouter(handler, "public/assets", cfg.Store.ImagesDir)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		sugar.Infof("server started on %s", addr)

		var err error
		if cfg.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единая обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}
