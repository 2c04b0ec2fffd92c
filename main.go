package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-notifier/internal/cache"
	"github.com/umalmyha/customer-notifier/internal/config"
	"github.com/umalmyha/customer-notifier/internal/infra"
	"github.com/umalmyha/customer-notifier/internal/mailer"
	"github.com/umalmyha/customer-notifier/internal/repository"
)

const DefaultPort = 3000
const DefaultShutdownTimeout = 10 * time.Second
const DefaultConnectTimeout = 5 * time.Second

func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	recordRepo, closeStore, err := buildStore(ctx, cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer closeStore()

	recordCache, err := buildCache(ctx, cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	app, err := infra.Router(recordRepo, recordCache, buildDispatcher(cfg.SendGridCfg), cfg.NotifyCfg)
	if err != nil {
		logrus.Fatal(err)
	}

	start(app)
}

func buildStore(ctx context.Context, cfg config.Config) (repository.CustomerRecordRepository, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		pool, err := infra.Postgresql(ctx, cfg.PostgresCfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresCustomerRecordRepository(pool), pool.Close, nil
	case config.StoreDriverMongo:
		client, err := infra.Mongodb(ctx, cfg.MongoCfg)
		if err != nil {
			return nil, nil, err
		}
		disconnect := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				logrus.Errorf("failed to disconnect from mongodb - %v", err)
			}
		}
		return repository.NewMongoCustomerRecordRepository(client), disconnect, nil
	case config.StoreDriverMemory:
		return repository.NewInMemoryCustomerRecordRepository(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func buildCache(ctx context.Context, cfg config.Config) (cache.RecordCache, error) {
	client, err := infra.Redis(ctx, cfg.RedisCfg)
	if err != nil {
		return nil, err
	}

	codec := cache.NewMsgpackCodec()

	sealKey, err := cfg.NotifyCfg.SealKey()
	if err != nil {
		return nil, err
	}
	if sealKey != nil {
		if codec, err = cache.NewSealedCodec(sealKey, codec); err != nil {
			return nil, err
		}
	}

	return cache.NewRedisRecordCache(client, codec), nil
}

func buildDispatcher(cfg config.SendGridCfg) mailer.Dispatcher {
	if cfg.APIKey == "" {
		logrus.Warn("no sendgrid api key configured, notifications will only be logged")
		return mailer.NewLogDispatcher()
	}
	return mailer.NewSendGridDispatcher(cfg.APIKey, cfg.FromName, cfg.FromEmail)
}

func start(app *echo.Echo) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- app.Start(fmt.Sprintf(":%d", DefaultPort))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()

		app.Logger.Infof("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			app.Logger.Fatalf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Fatalf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}
