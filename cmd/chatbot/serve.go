package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/hinglish-techbot-go/internal/handlers"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP chat API (and the Telegram bot when enabled)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return serve(ctx, a)
	},
}

func serve(ctx context.Context, a *app) error {
	log := a.log
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var wg sync.WaitGroup

	if a.cfg.Telegram.Enabled {
		bot, err := tgbotapi.NewBotAPI(a.cfg.Telegram.Token)
		if err != nil {
			return fmt.Errorf("failed to create bot: %w", err)
		}
		bot.Debug = a.cfg.Logging.Level == "debug"
		log.WithField("username", bot.Self.UserName).Info("Bot authorized")

		u := tgbotapi.NewUpdate(0)
		u.Timeout = a.cfg.Telegram.UpdateTimeout
		updates := bot.GetUpdatesChan(u)

		telegram := handlers.NewTelegramHandler(a.cfg, bot, a.responder, a.localizer, a.metrics, log)
		wg.Add(1)
		go func() {
			defer wg.Done()
			telegram.Run(ctx, updates)
		}()
		defer bot.StopReceivingUpdates()
	}

	api := handlers.NewAPI(a.cfg, a.responder, a.localizer, a.metrics, log)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.Server.Port),
		Handler:      api.Router(),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":    server.Addr,
			"version": a.cfg.Server.Version,
		}).Info("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			cancel()
			wg.Wait()
			return fmt.Errorf("http server failed: %w", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("HTTP server shutdown failed")
	}

	cancel()
	wg.Wait()
	log.Info("Chatbot stopped")
	return nil
}
