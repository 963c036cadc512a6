package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating events and participants tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS events (
					id BIGSERIAL PRIMARY KEY,
					organizer_id VARCHAR(64) NOT NULL,
					title VARCHAR(200) NOT NULL,
					description TEXT,
					event_date TIMESTAMPTZ NOT NULL,
					duration INTEGER NOT NULL,
					max_participants INTEGER NOT NULL CHECK (max_participants >= 1),
					min_participants INTEGER NOT NULL CHECK (min_participants >= 1),
					sport_type VARCHAR(50) NOT NULL,
					field_id BIGINT,
					status VARCHAR(20) NOT NULL DEFAULT 'PLANNED',
					location VARCHAR(200) NOT NULL,
					requirements TEXT,
					is_public BOOLEAN NOT NULL DEFAULT TRUE,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CHECK (max_participants >= min_participants)
				);
				CREATE INDEX IF NOT EXISTS idx_events_organizer_id ON events(organizer_id);
				CREATE INDEX IF NOT EXISTS idx_events_status_public_date ON events(status, is_public, event_date);
			`); err != nil {
				return fmt.Errorf("failed to create events table: %w", err)
			}

			// REMOVED rows are kept for audit but must not block a fresh
			// invite or join, hence the partial unique indexes.
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS participants (
					id BIGSERIAL PRIMARY KEY,
					event_id BIGINT NOT NULL REFERENCES events(id),
					player_id VARCHAR(64),
					player_email VARCHAR(255) NOT NULL,
					status VARCHAR(20) NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE UNIQUE INDEX IF NOT EXISTS uq_participants_event_player
					ON participants(event_id, player_id)
					WHERE player_id IS NOT NULL AND status <> 'REMOVED';
				CREATE UNIQUE INDEX IF NOT EXISTS uq_participants_event_email
					ON participants(event_id, LOWER(player_email))
					WHERE status <> 'REMOVED';
				CREATE INDEX IF NOT EXISTS idx_participants_event_status ON participants(event_id, status);
				CREATE INDEX IF NOT EXISTS idx_participants_player_id ON participants(player_id);
			`); err != nil {
				return fmt.Errorf("failed to create participants table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping events and participants tables...")
		_, err := db.ExecContext(ctx, `
			DROP TABLE IF EXISTS participants;
			DROP TABLE IF EXISTS events;
		`)
		if err != nil {
			return fmt.Errorf("failed to drop events tables: %w", err)
		}
		return nil
	})
}
