package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sushihentaime/bloglist/internal/blogservice"
	"github.com/sushihentaime/bloglist/internal/common"
	"github.com/sushihentaime/bloglist/internal/userservice"
)

const version = "1.0.0"

type application struct {
	config      *Config
	logger      *slog.Logger
	blogService blogService
	userService userService
	metrics     *common.HTTPMetrics
}

func main() {
	cfg, err := loadConfig(".env")
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := common.NewLogger(os.Stdout, cfg.Environment, cfg.LogLevel)

	URI := common.PostgresURI(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)

	m, err := common.MigrateUp(cfg.MigrationsPath, URI)
	if err != nil {
		logger.Error("failed to migrate the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	m.Close()

	db, err := common.NewDB(URI, 25, 25, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	// events are optional; producer stays a nil interface when disabled
	var producer common.MessageProducer
	if cfg.EventsEnabled() {
		broker, err := common.NewMessageBroker(common.AMQPURI(cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port))
		if err != nil {
			logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer broker.Close()

		if err := common.SetupExchanges(broker); err != nil {
			logger.Error("failed to setup the exchanges", slog.String("error", err.Error()))
			os.Exit(1)
		}
		producer = broker
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		blogService: blogservice.NewBlogService(db, producer, logger),
		userService: userservice.NewUserService(db, producer, logger),
		metrics:     common.NewHTTPMetrics(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = app.serve(ctx)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
