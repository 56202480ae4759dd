package cli

import (
	"os"
	"os/signal"
	"syscall"

	"portfolio/internal/app"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/logger"
	"portfolio/internal/mailer"
	"portfolio/internal/storage"
	"portfolio/pkg/rabbitmq"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeDB(db)

	deps := app.Dependencies{
		Config: cfg,
		DB:     db,
		Cache:  cache.New(cfg.CacheTTL),
	}

	// --- Rate limiter storage ---
	if cfg.RedisAddr != "" {
		store, err := storage.NewRedis(storage.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Warn("redis unavailable, rate limiting in memory", "error", err)
		} else {
			defer store.Close()
			deps.LimiterStorage = store
			logger.Info("rate limiter backed by redis", "addr", cfg.RedisAddr)
		}
	}

	// --- Contact events ---
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			logger.Warn("rabbitmq unavailable, contact events disabled", "error", err)
		} else {
			defer mqClient.Close()
			deps.Publisher = mqClient
			startNotifier(cfg, mqClient)
		}
	}

	server, err := app.New(deps)
	if err != nil {
		return err
	}

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "port", cfg.AppPort, "env", cfg.Env)
		listenErr <- server.Listen(cfg.AppPort)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-quit:
	}

	logger.Info("shutting down server")
	if err := server.Shutdown(); err != nil {
		logger.Error("error during shutdown", "error", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}

// startNotifier consumes contact events and mails the owner, or only logs
// them when SMTP is not configured.
func startNotifier(cfg *config.Config, mqClient *rabbitmq.Client) {
	handler := mailer.LogMessageEvent
	if cfg.MailerEnabled() {
		handler = mailer.New(mailer.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.MailFrom,
			To:       cfg.ContactNotifyTo,
		}).HandleMessageEvent
	}

	if err := mqClient.ConsumeMessageEvents(handler); err != nil {
		logger.Error("failed to start contact event consumer", "error", err)
		return
	}
	logger.Info("contact event consumer started", "queue", rabbitmq.ContactQueue, "mailer", cfg.MailerEnabled())
}
