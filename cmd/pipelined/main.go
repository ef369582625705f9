package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"newsreel/internal/ai"
	"newsreel/internal/api"
	"newsreel/internal/config"
	"newsreel/internal/events"
	"newsreel/internal/media"
	"newsreel/internal/publish"
	"newsreel/internal/scheduler"
	"newsreel/internal/service"
	"newsreel/internal/source/gsearch"
	"newsreel/internal/source/rss"
	"newsreel/internal/storage/gcs"
	"newsreel/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	store := postgres.NewNewsStore(db)

	// Transition events are optional; stages run without a publisher.
	var eventPub service.EventPublisher
	if cfg.RabbitMQ.Enabled {
		rabbit, err := events.NewRabbitMQ(events.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbit.Close()
		eventPub = rabbit
	}

	// Capabilities
	gemini := ai.NewGemini(cfg.Gemini, logger)
	assets := media.NewAssetLibrary(cfg.Media.VideoDir, cfg.Media.MusicDir)
	composer := media.NewComposer(cfg.Media.FontPath, cfg.Media.Resolution, logger)
	instagram := publish.NewInstagram(cfg.Instagram, logger)

	uploader, err := gcs.NewUploader(ctx, cfg.GCS.Bucket, cfg.GCS.CredentialsFile, logger)
	if err != nil {
		logger.Error("failed to init gcs uploader", "error", err)
		os.Exit(1)
	}
	defer uploader.Close()

	// Sources for the fetch stage
	var sources []service.Source
	if len(cfg.Fetch.RSSFeeds) > 0 {
		sources = append(sources, rss.New(rss.Config{
			Feeds:      cfg.Fetch.RSSFeeds,
			MaxPerFeed: cfg.Fetch.MaxPerQuery,
		}, logger))
	}
	if len(cfg.Fetch.Queries) > 0 {
		sources = append(sources, gsearch.New(gsearch.Config{
			Queries:    cfg.Fetch.Queries,
			APIKey:     cfg.Fetch.SearchKey,
			CX:         cfg.Fetch.SearchCX,
			MaxResults: cfg.Fetch.MaxPerQuery,
		}, logger))
	}

	owner := workerID()
	logger.Info("worker identity", "owner", owner)

	// Stages
	fetchStage := service.NewFetchService(sources, store, logger)
	validateStage := service.NewValidateStage(store, gemini, eventPub, cfg.Stages.Validate, owner, logger)
	scriptStage := service.NewScriptStage(store, gemini, eventPub, cfg.Stages.Script, owner, logger)
	renderStage := service.NewRenderStage(store, assets, composer, uploader, eventPub, cfg.Stages.Render, cfg.Media, owner, logger)
	publishStage := service.NewPublishStage(store, instagram, eventPub, cfg.Stages.Publish, owner, logger)

	sched := scheduler.NewScheduler(logger)
	sched.Add(fetchStage, cfg.Stages.Fetch.Interval)
	sched.Add(validateStage, cfg.Stages.Validate.Interval)
	sched.Add(scriptStage, cfg.Stages.Script.Interval)
	sched.Add(renderStage, cfg.Stages.Render.Interval)
	sched.Add(publishStage, cfg.Stages.Publish.Interval)

	if cfg.API.Enabled {
		srv := &http.Server{
			Addr:              cfg.API.BindAddr,
			Handler:           api.NewServer(store, logger).Router(),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      15 * time.Second,
		}

		go func() {
			logger.Info("api server starting", "addr", cfg.API.BindAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("api server stopped", "error", err)
				cancel()
			}
		}()

		go func() {
			<-ctx.Done()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("api server shutdown", "error", err)
			}
		}()
	}

	logger.Info("starting news pipeline",
		"sources", len(sources),
		"fetch_interval", cfg.Stages.Fetch.Interval,
		"validate_interval", cfg.Stages.Validate.Interval,
		"script_interval", cfg.Stages.Script.Interval,
		"render_interval", cfg.Stages.Render.Interval,
		"publish_interval", cfg.Stages.Publish.Interval,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func workerID() string {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return fmt.Sprintf("%s-%s", hostname, uuid.NewString()[:8])
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
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
