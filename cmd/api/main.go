package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/gasixone/crmpro-backend/internal/api"
	"github.com/gasixone/crmpro-backend/internal/infrastructure/config"
	"github.com/gasixone/crmpro-backend/internal/infrastructure/mail"
	"github.com/gasixone/crmpro-backend/internal/infrastructure/store/filestore"
	"github.com/gasixone/crmpro-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Local development convenience; missing .env is not an error.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store := filestore.New(cfg.DataFile)
	mailer := mail.NewConsoleMailer(log)

	e := api.NewRouter(cfg, store, mailer, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Str("data_file", cfg.DataFile).
		Msg("crmpro api listening")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
