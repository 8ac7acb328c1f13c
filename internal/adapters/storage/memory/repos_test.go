package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"bird-sightings/internal/domain/birds"
	"bird-sightings/internal/domain/sightings"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBirdRepo_SaveOverwriteKeepsFirstPosition(t *testing.T) {
	repo := NewBirdRepo()
	ctx := context.Background()

	for _, b := range []birds.Bird{
		{Name: "Sparrow", Color: "Brown"},
		{Name: "Jay", Color: "Blue"},
		{Name: "Sparrow", Color: "Grey"},
	} {
		_, err := repo.Save(ctx, b)
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []birds.Bird{
		{Name: "Sparrow", Color: "Grey"},
		{Name: "Jay", Color: "Blue"},
	}, all)

	got, ok, err := repo.FindByName(ctx, "Sparrow")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Grey", got.Color)

	_, ok, err = repo.FindByName(ctx, "Dodo")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBirdRepo_FindByColorAndDelete(t *testing.T) {
	repo := NewBirdRepo()
	ctx := context.Background()

	_, _ = repo.Save(ctx, birds.Bird{Name: "Sparrow", Color: "Brown"})
	_, _ = repo.Save(ctx, birds.Bird{Name: "Owl", Color: "Brown"})
	_, _ = repo.Save(ctx, birds.Bird{Name: "Jay", Color: "Blue"})

	brown, err := repo.FindByColor(ctx, "Brown")
	require.NoError(t, err)
	assert.Len(t, brown, 2)

	none, err := repo.FindByColor(ctx, "brown")
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, repo.DeleteByName(ctx, "Owl"))
	require.NoError(t, repo.DeleteByName(ctx, "Owl"))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSightingRepo_Queries(t *testing.T) {
	repo := NewSightingRepo()
	ctx := context.Background()

	sparrow := birds.Bird{Name: "Sparrow", Color: "Brown", Weight: "3.5", Height: "0.5"}
	jay := birds.Bird{Name: "Jay", Color: "Blue"}

	s1, err := repo.Save(ctx, sightings.Sighting{Bird: sparrow, Location: "Central Park", Date: sightings.Date{Year: 2021, Month: time.July, Day: 1}})
	require.NoError(t, err)
	_, err = uuid.Parse(s1.ID)
	require.NoError(t, err, "generated id must be a uuid")

	_, err = repo.Save(ctx, sightings.Sighting{Bird: jay, Location: "Central Park", Date: sightings.Date{Year: 2021, Month: time.September, Day: 2}})
	require.NoError(t, err)

	byBird, err := repo.FindByBird(ctx, sparrow)
	require.NoError(t, err)
	require.Len(t, byBird, 1)
	assert.Equal(t, s1, byBird[0])

	partial, err := repo.FindByBird(ctx, birds.Bird{Name: "Sparrow"})
	require.NoError(t, err)
	assert.Empty(t, partial)

	byLoc, err := repo.FindByLocation(ctx, "Central Park")
	require.NoError(t, err)
	assert.Len(t, byLoc, 2)

	inRange, err := repo.FindByDateBetween(ctx,
		sightings.Date{Year: 2021, Month: time.June, Day: 1},
		sightings.Date{Year: 2021, Month: time.September, Day: 1})
	require.NoError(t, err)
	require.Len(t, inRange, 1)
	assert.Equal(t, s1.ID, inRange[0].ID)

	require.NoError(t, repo.DeleteByID(ctx, s1.ID))
	require.NoError(t, repo.DeleteByID(ctx, s1.ID))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSightingRepo_ConcurrentSaves(t *testing.T) {
	repo := NewSightingRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Save(ctx, sightings.Sighting{Bird: birds.Bird{Name: "Sparrow"}, Location: "x", Date: sightings.Date{Year: 2021, Month: 1, Day: 1}})
		}()
	}
	wg.Wait()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
