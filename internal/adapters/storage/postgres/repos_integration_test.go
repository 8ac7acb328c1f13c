//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"bird-sightings/internal/domain/birds"
	"bird-sightings/internal/domain/sightings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("birdsightings"),
		tcpostgres.WithUsername("birds"),
		tcpostgres.WithPassword("birds"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("failed to open postgres: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, EnsureSchema(ctx, db))
	// Dos veces: debe ser idempotente.
	require.NoError(t, EnsureSchema(ctx, db))

	return db
}

func TestPostgres_Repos(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	birdRepo := NewBirdsRepo(db)
	sightingRepo := NewSightingsRepo(db)

	sparrow := birds.Bird{Name: "Sparrow", Color: "Brown", Weight: "3.5", Height: "0.5"}

	t.Run("birds upsert and lookups", func(t *testing.T) {
		_, err := birdRepo.Save(ctx, birds.Bird{Name: "Sparrow", Color: "Grey"})
		require.NoError(t, err)
		_, err = birdRepo.Save(ctx, sparrow)
		require.NoError(t, err)
		_, err = birdRepo.Save(ctx, birds.Bird{Name: "Owl", Color: "Brown"})
		require.NoError(t, err)

		got, ok, err := birdRepo.FindByName(ctx, "Sparrow")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, sparrow, got)

		_, ok, err = birdRepo.FindByName(ctx, "Dodo")
		require.NoError(t, err)
		assert.False(t, ok)

		brown, err := birdRepo.FindByColor(ctx, "Brown")
		require.NoError(t, err)
		assert.Len(t, brown, 2)

		require.NoError(t, birdRepo.DeleteByName(ctx, "Owl"))
		require.NoError(t, birdRepo.DeleteByName(ctx, "Owl"))

		all, err := birdRepo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []birds.Bird{sparrow}, all)
	})

	t.Run("sightings queries", func(t *testing.T) {
		july := sightings.Date{Year: 2021, Month: time.July, Day: 1}

		saved, err := sightingRepo.Save(ctx, sightings.Sighting{Bird: sparrow, Location: "Central Park", Date: july})
		require.NoError(t, err)
		require.NotEmpty(t, saved.ID)

		byBird, err := sightingRepo.FindByBird(ctx, sparrow)
		require.NoError(t, err)
		require.Len(t, byBird, 1)
		assert.Equal(t, saved, byBird[0])

		partial, err := sightingRepo.FindByBird(ctx, birds.Bird{Name: "Sparrow"})
		require.NoError(t, err)
		assert.Empty(t, partial)

		byLoc, err := sightingRepo.FindByLocation(ctx, "Central Park")
		require.NoError(t, err)
		assert.Len(t, byLoc, 1)

		in, err := sightingRepo.FindByDateBetween(ctx,
			sightings.Date{Year: 2021, Month: time.June, Day: 1},
			sightings.Date{Year: 2021, Month: time.September, Day: 1})
		require.NoError(t, err)
		assert.Len(t, in, 1)

		edge, err := sightingRepo.FindByDateBetween(ctx, july, july)
		require.NoError(t, err)
		assert.Len(t, edge, 1)

		out, err := sightingRepo.FindByDateBetween(ctx,
			sightings.Date{Year: 2021, Month: time.June, Day: 1},
			sightings.Date{Year: 2021, Month: time.June, Day: 30})
		require.NoError(t, err)
		assert.Empty(t, out)

		require.NoError(t, sightingRepo.DeleteByID(ctx, saved.ID))
		require.NoError(t, sightingRepo.DeleteByID(ctx, saved.ID))

		all, err := sightingRepo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
