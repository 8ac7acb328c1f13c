// Package storage elige e inicializa el backend de persistencia según config.
package storage

import (
	"context"
	"fmt"

	"bird-sightings/internal/adapters/storage/dynamo"
	mem "bird-sightings/internal/adapters/storage/memory"
	pg "bird-sightings/internal/adapters/storage/postgres"
	"bird-sightings/internal/config"
	"bird-sightings/internal/domain/birds"
	"bird-sightings/internal/domain/sightings"
	"bird-sightings/internal/platform/logger"
)

// Stores agrupa los repos de ambas colecciones y el cierre del backend.
type Stores struct {
	Birds     birds.Repository
	Sightings sightings.Repository

	Close func() error
}

func Open(ctx context.Context, cfg config.Store, log logger.Logger) (Stores, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.DSN)
		if err != nil {
			return Stores{}, err
		}
		if cfg.AutoCreate {
			if err := pg.EnsureSchema(ctx, db); err != nil {
				_ = db.Close()
				return Stores{}, err
			}
		}
		log.Info("store ready", map[string]any{"driver": cfg.Driver, "autocreate": cfg.AutoCreate})
		return Stores{
			Birds:     pg.NewBirdsRepo(db),
			Sightings: pg.NewSightingsRepo(db),
			Close:     db.Close,
		}, nil

	case config.DriverDynamoDB:
		dc := dynamo.Config{
			Region:         cfg.DynamoRegion,
			Endpoint:       cfg.DynamoEndpoint,
			BirdsTable:     cfg.DynamoBirdsTable,
			SightingsTable: cfg.DynamoSightingsTable,
		}
		client, err := dynamo.NewClient(ctx, dc)
		if err != nil {
			return Stores{}, err
		}
		if cfg.AutoCreate {
			if err := dynamo.EnsureTables(ctx, client, dc); err != nil {
				return Stores{}, err
			}
		}
		log.Info("store ready", map[string]any{
			"driver":          cfg.Driver,
			"region":          cfg.DynamoRegion,
			"endpoint":        cfg.DynamoEndpoint,
			"birds_table":     cfg.DynamoBirdsTable,
			"sightings_table": cfg.DynamoSightingsTable,
		})
		return Stores{
			Birds:     dynamo.NewBirdsRepo(client, dc.BirdsTable),
			Sightings: dynamo.NewSightingsRepo(client, dc.SightingsTable),
			Close:     func() error { return nil },
		}, nil

	case config.DriverMemory, "":
		log.Warn("using in-memory store; data is lost on restart", map[string]any{"driver": config.DriverMemory})
		return Memory(), nil

	default:
		return Stores{}, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// Memory arma stores en memoria (dev y tests).
func Memory() Stores {
	return Stores{
		Birds:     mem.NewBirdRepo(),
		Sightings: mem.NewSightingRepo(),
		Close:     func() error { return nil },
	}
}
