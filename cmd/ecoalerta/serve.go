package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ecoalerta/internal/api"
	"ecoalerta/internal/bot"
	"ecoalerta/internal/core"
	"ecoalerta/internal/reminder"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Start the HTTP API server and, when enabled, the eve reminder loop",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := loadConfig(true); err != nil {
		return err
	}

	logger.Info("EcoAlerta starting",
		"storage", cfg.Storage.Backend,
		"language", cfg.Locale.Language,
		"timezone", cfg.Locale.Timezone)

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	var sched *reminder.Scheduler
	if cfg.Reminder.Enabled {
		notifiers := reminder.MultiNotifier{reminder.NewLogNotifier(logger)}
		if cfg.Reminder.TelegramToken != "" {
			tg, err := bot.NewNotifier(cfg.Reminder.TelegramToken, cfg.Reminder.TelegramChatID, logger)
			if err != nil {
				return fmt.Errorf("initialize telegram notifier: %w", err)
			}
			notifiers = append(notifiers, tg)
		}

		sched = reminder.NewScheduler(a.profiles, a.calendar, notifiers, core.RealClock{}, reminder.Options{
			Interval: cfg.ReminderInterval(),
			Language: cfg.Language(),
			Location: cfg.Location(),
		}, logger)
		go sched.Start()
	}

	router := api.NewRouter(api.RouterConfig{
		Profiles:   a.profiles,
		Ledger:     a.ledger,
		Calendar:   a.calendar,
		Clock:      core.RealClock{},
		Language:   cfg.Language(),
		Location:   cfg.Location(),
		APIKeyHash: cfg.Security.APIKeyHash,
		Logger:     logger,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", addr, "auth", cfg.Security.APIKeyHash != "")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-shutdown:
		logger.Info("Starting graceful shutdown", "signal", sig.String())

		if sched != nil {
			sched.Stop()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}

		logger.Info("Graceful shutdown complete")
	}

	return nil
}
