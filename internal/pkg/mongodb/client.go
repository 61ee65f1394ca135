package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"shipease/internal/pkg/config"
	"shipease/pkg/logger"
	retrierconfig "shipease/pkg/retrier"
	"shipease/pkg/retrier/backoff_adapter"
)

const (
	CollectionUsers    = "users"
	CollectionBookings = "bookings"

	maxPoolSize    = 50
	connectTimeout = 10 * time.Second

	initialInterval = 5 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// NewClient подключается к MongoDB и дожидается успешного ping.
// Клиент закрывает вызывающая сторона через Disconnect.
func NewClient(ctx context.Context, log logger.Logger, cfg *config.Mongo) (*mongo.Client, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(maxPoolSize).
		SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	dbLog := log.With(
		logger.NewField("db", cfg.Database),
	)

	err = ping(ctx, dbLog, client)
	if err != nil {
		if disconnectErr := client.Disconnect(context.Background()); disconnectErr != nil {
			dbLog.With(logger.NewField("error", disconnectErr)).Warn("mongo disconnect")
		}
		return nil, fmt.Errorf("mongo connection: %w", err)
	}

	return client, nil
}

func ping(ctx context.Context, log logger.Logger, client *mongo.Client) error {
	var attempt uint64

	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		Notify: func(err error, wait time.Duration) {
			log.With(
				logger.NewField("error", err),
				logger.NewField("attempt", attempt),
				logger.NewField("retry_in", wait.String()),
			).Warn("mongo ping failed")
		},
	})

	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return client.Ping(ctx, readpref.Primary())
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("mongo connection failed after retries")
		return fmt.Errorf("failed to ping mongo: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("mongo connection established")
	return nil
}
