package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"shipease/internal/pkg/config"
	"shipease/internal/pkg/mongodb"
	"shipease/internal/pkg/postgres"
	"shipease/pkg/logger/zap_adapter"
	"shipease/pkg/querier"
)

const defaultMongoTestDB = "ShipEaseDB_test"

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once

	mongoInstance *mongo.Database
	mongoOnce     sync.Once
)

func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		if err := postgres.Migrate(ctx, zapLogger, connPool); err != nil {
			panic(err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

func GetMongoDatabase() *mongo.Database {
	mongoOnce.Do(func() {
		cfg := &config.Mongo{
			URI:      os.Getenv("MONGO_URI"),
			Database: os.Getenv("MONGO_DB"),
		}
		if cfg.Database == "" {
			cfg.Database = defaultMongoTestDB
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}

		client, err := mongodb.NewClient(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		mongoInstance = client.Database(cfg.Database)
		if err := mongodb.EnsureIndexes(ctx, mongoInstance); err != nil {
			panic(err)
		}
	})

	return mongoInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE bookings, users CASCADE;
	`)
	require.NoError(t, err)
}

// SetupMongo вставляет документы в коллекцию и возвращает их ObjectID.
func SetupMongo(t *testing.T, collection string, docs ...interface{}) []interface{} {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if len(docs) == 0 {
		return nil
	}

	res, err := GetMongoDatabase().Collection(collection).InsertMany(ctx, docs)
	require.NoError(t, err)

	return res.InsertedIDs
}

func TeardownMongo(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	db := GetMongoDatabase()
	for _, name := range []string{mongodb.CollectionBookings, mongodb.CollectionUsers} {
		_, err := db.Collection(name).DeleteMany(ctx, bson.M{})
		require.NoError(t, err)
	}
}
