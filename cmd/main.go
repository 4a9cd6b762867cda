package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/shinebright/schedule/internal/api"
	"github.com/shinebright/schedule/internal/api/events"
	"github.com/shinebright/schedule/internal/clients/clients"
	"github.com/shinebright/schedule/internal/repository"
	"github.com/shinebright/schedule/internal/service"
	"github.com/shinebright/schedule/pkg/broker"
	"github.com/shinebright/schedule/pkg/config"
	"github.com/shinebright/schedule/pkg/job"
	"github.com/shinebright/schedule/pkg/logger"
	"github.com/shinebright/schedule/pkg/postgres"
)

const (
	readTimeout  = 3 * time.Second
	writeTimeout = 2 * time.Second

	windowAdvanceInterval = 24 * time.Hour
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	clientsService := clients.NewClient(cfg.ClientsServiceURL)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.ScheduleSyncedTopic)
	defer producer.Close()

	s := service.New(repo, clientsService, producer)

	// Kafka consumers
	{
		consumer := broker.NewConsumer(l, cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, []string{cfg.Kafka.ClientUpdatedTopic})
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.ClientUpdatedTopic, eventHandler.ClientUpdated)
		consumer.Consume(ctx)
	}

	{
		job.NewRunner().
			Register("advance schedule windows", windowAdvanceInterval, s.AdvanceWindows).
			Start(ctx)
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
