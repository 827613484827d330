package repository

import (
	"context"
	"fmt"

	"github.com/lshigami/mockview/database"
	"github.com/lshigami/mockview/internal/model"
	"github.com/rs/zerolog/log"
)

// Migrate brings the configured backend's schema up to date.
func Migrate(ctx context.Context, store *database.Storage) error {
	if store.Mongo != nil {
		log.Info().Msg("Ensuring mongodb indexes...")
		return EnsureMongoIndexes(ctx, store.Mongo)
	}

	log.Info().Msg("Running database auto migrations...")
	if err := store.SQL.WithContext(ctx).AutoMigrate(
		&model.MockInterview{},
		&model.InterviewSubmission{},
	); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	log.Info().Msg("Database auto migrations completed.")
	return nil
}
