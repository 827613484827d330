package database

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/mockview/config"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Storage holds the handle of the configured backend. Exactly one of SQL and Mongo is set.
type Storage struct {
	SQL   *gorm.DB
	Mongo *mongo.Database
}

// NewStorage opens the backend selected by STORAGE_DRIVER and closes it when the app stops.
func NewStorage(lc fx.Lifecycle, cfg *config.Config) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMongo:
		db, err := newMongoDatabase(lc, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return &Storage{Mongo: db}, nil
	case config.StorageDriverPostgres, "":
		db, err := newPostgresDatabase(lc, cfg.Database)
		if err != nil {
			return nil, err
		}
		return &Storage{SQL: db}, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

func newPostgresDatabase(lc fx.Lifecycle, cfg config.Database) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Closing postgres connection pool")
			return sqlDB.Close()
		},
	})

	log.Info().Str("host", cfg.Host).Str("database", cfg.Name).Msg("Connected to postgres")
	return db, nil
}

func newMongoDatabase(lc fx.Lifecycle, cfg config.Mongo) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Disconnecting from mongodb")
			return client.Disconnect(ctx)
		},
	})

	log.Info().Str("database", cfg.Database).Msg("Connected to mongodb")
	return client.Database(cfg.Database), nil
}
