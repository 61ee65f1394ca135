package storage

import (
	"context"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"shipease/internal/pkg/config"
	"shipease/internal/pkg/mongodb"
	"shipease/internal/pkg/postgres"
	mongobooking "shipease/internal/repository/mongo/booking"
	mongouser "shipease/internal/repository/mongo/user"
	pgbooking "shipease/internal/repository/postgres/booking"
	pguser "shipease/internal/repository/postgres/user"
	"shipease/internal/service/booking"
	"shipease/internal/service/user"
	"shipease/pkg/logger"
	"shipease/pkg/querier"
)

// Storage репозитории выбранного драйвера и функция закрытия клиента.
type Storage struct {
	Bookings booking.Repository
	Users    user.Repository

	driver string
	ping   func(ctx context.Context) error
	close  func(ctx context.Context) error
}

// Driver имя драйвера из STORAGE_DRIVER, пустое для nil.
func (s *Storage) Driver() string {
	if s == nil {
		return ""
	}
	return s.driver
}

// Ping проверяет доступность хранилища для healthcheck.
func (s *Storage) Ping(ctx context.Context) error {
	if s == nil || s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

func (s *Storage) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open подключается к хранилищу из cfg.Storage.Driver.
func Open(ctx context.Context, log logger.Logger, cfg *config.Config) (*Storage, error) {
	log = log.With(logger.NewField("storage_driver", cfg.Storage.Driver))

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, log, cfg)
	case config.DriverMongo:
		return openMongo(ctx, log, cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func openPostgres(ctx context.Context, log logger.Logger, cfg *config.Config) (*Storage, error) {
	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}

	q := querier.New(pool, pgxv5.DefaultCtxGetter)

	return &Storage{
		Bookings: pgbooking.New(q),
		Users:    pguser.New(q),
		driver:   config.DriverPostgres,
		ping:     q.Ping,
		close: func(context.Context) error {
			pool.Close()
			return nil
		},
	}, nil
}

func openMongo(ctx context.Context, log logger.Logger, cfg *config.Config) (*Storage, error) {
	client, err := mongodb.NewClient(ctx, log, &cfg.Mongo)
	if err != nil {
		return nil, err
	}

	db := client.Database(cfg.Mongo.Database)

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		if disconnectErr := client.Disconnect(ctx); disconnectErr != nil {
			log.With(logger.NewField("error", disconnectErr)).Warn("mongo disconnect")
		}
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	return &Storage{
		Bookings: mongobooking.New(db.Collection(mongodb.CollectionBookings)),
		Users:    mongouser.New(db.Collection(mongodb.CollectionUsers)),
		driver:   config.DriverMongo,
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		close: client.Disconnect,
	}, nil
}
