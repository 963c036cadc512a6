package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating event_ratings table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS event_ratings (
				id BIGSERIAL PRIMARY KEY,
				event_id BIGINT NOT NULL REFERENCES events(id),
				rater_id VARCHAR(64) NOT NULL,
				rater_email VARCHAR(255) NOT NULL,
				rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
				comment TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (event_id, rater_id)
			);
			CREATE INDEX IF NOT EXISTS idx_event_ratings_event_id ON event_ratings(event_id);
		`)
		if err != nil {
			return fmt.Errorf("failed to create event_ratings table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping event_ratings table...")
		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS event_ratings;`)
		if err != nil {
			return fmt.Errorf("failed to drop event_ratings table: %w", err)
		}
		return nil
	})
}
