package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mygriya/internal/config"
	"mygriya/internal/handler"
	"mygriya/internal/repository"
	"mygriya/internal/repository/memory"
	"mygriya/internal/repository/postgres"
	"mygriya/internal/scheduler"
	"mygriya/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
}

func serve(cfg *config.Config) error {
	// Initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("Starting MyGriya bot", zap.String("catalog_source", cfg.CatalogSource))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the catalog source
	var roomRepo repository.RoomRepository
	switch cfg.CatalogSource {
	case config.CatalogPostgres:
		db, err := connectDatabase(cfg.Database.DSN(), 30, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		logger.Info("Database connection established")

		if err := runMigrations(db, logger); err != nil {
			return err
		}
		roomRepo = postgres.NewRoomRepo(db)
	default:
		repo, err := memory.NewRoomRepo()
		if err != nil {
			return fmt.Errorf("failed to build static catalog: %w", err)
		}
		roomRepo = repo
	}

	// Initialize services
	catalogService := service.NewCatalogService(roomRepo, logger)
	if err := catalogService.Load(ctx); err != nil {
		return err
	}

	sched := scheduler.New(logger)
	defer sched.Stop()

	sessionService := service.NewSessionService(catalogService, logger)
	dashService := service.NewDashboardService(catalogService)
	contactService := service.NewContactService(sched, cfg.AdminReplyDelay, logger)
	feedbackService := service.NewFeedbackService(logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: cfg.PollTimeout},
		OnError: func(err error, c tele.Context) {
			logger.Error("Unhandled bot error", zap.Error(err))
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	logger.Info("Telegram bot initialized")

	// Initialize handler
	h := handler.NewHandler(bot, catalogService, sessionService, dashService, contactService, feedbackService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown, pending admin replies are dropped by the deferred sched.Stop
	bot.Stop()

	logger.Info("Bot stopped gracefully")
	return nil
}
