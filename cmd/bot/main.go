package main

import (
	"context"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/notification"
	"homework_status_bot/internal/infra/config"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// the configured logger does not exist yet
		logrus.WithError(err).Fatal("Could not load application configuration")
	}

	baseLogger, logCloser, err := logger.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Could not initialize logger")
	}
	defer logCloser.Close()

	mainLogger := logger.Component(baseLogger, "main")
	mainLogger.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"chat_id":     cfg.TelegramChatID,
		"schedule":    cfg.PollSchedule,
	}).Info("Homework status bot starting")

	schedule, err := scheduler.ParseSchedule(cfg.PollSchedule)
	if err != nil {
		mainLogger.WithError(err).Fatal("Invalid poll schedule")
	}

	// Optional notification journal
	var notifRepo notification.Repository
	if cfg.DatabaseURL != "" {
		db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			mainLogger.WithError(err).Fatal("Could not connect to database")
		}
		defer db.Close()

		repo := idb.NewPostgresNotificationRepository(db)
		if err := repo.Migrate(context.Background()); err != nil {
			mainLogger.WithError(err).Fatal("Could not prepare notification journal")
		}
		notifRepo = repo
		mainLogger.Info("Notification journal enabled")
	}

	statusClient, err := practicum.NewClient(cfg.PracticumEndpoint, cfg.PracticumToken, cfg.RequestTimeout, logger.Component(baseLogger, "practicum"))
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create homework API client")
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, "", cfg.RequestTimeout)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}

	homeworkService := app.NewHomeworkService(
		statusClient,
		telegram.NewTelebotAdapter(bot),
		notifRepo,
		cfg.TelegramChatID,
		cfg.InitialFromDate,
		logger.Component(baseLogger, "homework_service"),
	)
	pollScheduler := scheduler.NewPollScheduler(homeworkService, schedule, logger.Component(baseLogger, "scheduler"))

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pollScheduler.Run(ctx) // Blocks until a signal is received

	mainLogger.Info("Application shut down gracefully.")
}
