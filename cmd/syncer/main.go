package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"newsdesk/internal/automation"
	"newsdesk/internal/config"
	"newsdesk/internal/connector"
	"newsdesk/internal/connector/gmail"
	"newsdesk/internal/connector/linkedin"
	"newsdesk/internal/connector/twitter"
	"newsdesk/internal/crypto"
	"newsdesk/internal/domain"
	"newsdesk/internal/publisher"
	"newsdesk/internal/scheduler"
	"newsdesk/internal/scraper"
	"newsdesk/internal/service"
	"newsdesk/internal/storage/postgres"
	"newsdesk/internal/textgen"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	runOnce := flag.Bool("once", false, "run a single sync pass, stream progress to stdout and exit")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	codec, err := crypto.NewCodec(cfg.EncryptionKey)
	if err != nil {
		logger.Error("invalid encryption key", "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	sourceStore := postgres.NewSourceStore(db)
	articleStore := postgres.NewArticleStore(db)
	editionStore := postgres.NewEditionStore(db)
	txManager := postgres.NewTransactionManager(db)

	scraperClient := scraper.New(scraper.Config{
		BaseURL:       cfg.Scraper.BaseURL,
		Timeout:       cfg.Scraper.Timeout,
		HealthTimeout: cfg.Scraper.HealthTimeout,
	}, logger)

	automationClient := automation.New(automation.Config{
		BaseURL:    cfg.Automation.BaseURL,
		Timeout:    cfg.Automation.Timeout,
		MaxRetries: cfg.Automation.MaxRetries,
		RetryDelay: cfg.Automation.RetryDelay,
	}, logger)

	registry := connector.NewRegistry()
	registry.Register(domain.KindGmail, func() connector.Connector {
		return gmail.New(gmail.Config{
			ClientID:     cfg.Gmail.ClientID,
			ClientSecret: cfg.Gmail.ClientSecret,
			RedirectURL:  cfg.Gmail.RedirectURL,
		}, codec, logger)
	})
	registry.Register(domain.KindLinkedIn, func() connector.Connector {
		return linkedin.New(automationClient, codec, logger)
	})
	registry.Register(domain.KindTwitter, func() connector.Connector {
		return twitter.New(automationClient, codec, logger)
	})

	var intro service.IntroGenerator
	if c := textgen.New(textgen.Config{
		Endpoint: cfg.TextGen.Endpoint,
		Model:    cfg.TextGen.Model,
		APIKey:   cfg.TextGen.APIKey,
		Timeout:  cfg.TextGen.Timeout,
	}); c != nil {
		intro = c
	}

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	syncService := service.NewSyncService(
		sourceStore,
		articleStore,
		editionStore,
		registry,
		scraperClient,
		intro,
		txManager,
		pub,
		logger,
		cfg.Sync,
	)
	bulkService := service.NewBulkSyncService(sourceStore, syncService, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *runOnce {
		enc := json.NewEncoder(os.Stdout)
		sink := func(event domain.ProgressEvent) {
			if err := enc.Encode(event); err != nil {
				logger.Warn("failed to write progress event", "error", err)
			}
		}
		if _, err := bulkService.SyncAllUsers(ctx, sink); err != nil && err != context.Canceled {
			logger.Error("sync failed", "error", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("starting syncer",
		"interval", cfg.Sync.Interval,
		"max_articles", cfg.Sync.MaxArticlesPerSync,
	)

	sched := scheduler.NewScheduler(bulkService, cfg.Sync.Interval, logger)
	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
