package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// La colección de sightings guarda el bird como documento JSONB:
// es un snapshot, no una FK, para que borrar o editar un bird no toque
// los sightings ya registrados.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS birds (
		name       TEXT PRIMARY KEY,
		color      TEXT NOT NULL DEFAULT '',
		weight     TEXT NOT NULL DEFAULT '',
		height     TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS birds_color_idx ON birds (color)`,
	`CREATE TABLE IF NOT EXISTS sightings (
		id         TEXT PRIMARY KEY,
		bird       JSONB NOT NULL,
		location   TEXT NOT NULL,
		date       DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS sightings_location_idx ON sightings (location)`,
	`CREATE INDEX IF NOT EXISTS sightings_date_idx ON sightings (date)`,
	`CREATE INDEX IF NOT EXISTS sightings_bird_idx ON sightings USING GIN (bird)`,
}

// EnsureSchema crea tablas e índices si no existen. Es idempotente.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
