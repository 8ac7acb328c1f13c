package birds

import (
	"context"
	"errors"
	"testing"

	"bird-sightings/internal/domain/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byName map[string]Bird
	order  []string

	failWith error
}

func newTestRepo() *testRepo {
	return &testRepo{byName: map[string]Bird{}}
}

func (r *testRepo) Save(ctx context.Context, b Bird) (Bird, error) {
	if r.failWith != nil {
		return Bird{}, r.failWith
	}
	if _, ok := r.byName[b.Name]; !ok {
		r.order = append(r.order, b.Name)
	}
	r.byName[b.Name] = b
	return b, nil
}

func (r *testRepo) FindAll(ctx context.Context) ([]Bird, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []Bird
	for _, n := range r.order {
		out = append(out, r.byName[n])
	}
	return out, nil
}

func (r *testRepo) FindByName(ctx context.Context, name string) (Bird, bool, error) {
	if r.failWith != nil {
		return Bird{}, false, r.failWith
	}
	b, ok := r.byName[name]
	return b, ok, nil
}

func (r *testRepo) FindByColor(ctx context.Context, color string) ([]Bird, error) {
	var out []Bird
	for _, n := range r.order {
		if b := r.byName[n]; b.Color == color {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *testRepo) DeleteByName(ctx context.Context, name string) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.byName[name]; !ok {
		return nil
	}
	delete(r.byName, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestAddBird_ThenFindByName(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	in := Bird{Name: "Sparrow", Color: "Brown", Weight: "3.5", Height: "0.5"}
	saved, err := svc.AddBird(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, in, saved)

	got, err := svc.FindBirdByName(ctx, "Sparrow")
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestAddBird_OverwritesSameName(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	_, err := svc.AddBird(ctx, Bird{Name: "Robin", Color: "Red"})
	require.NoError(t, err)
	_, err = svc.AddBird(ctx, Bird{Name: "Robin", Color: "Orange"})
	require.NoError(t, err)

	all, err := svc.GetAllBirds(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Orange", all[0].Color)
}

func TestAddBird_RequiresName(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	_, err := svc.AddBird(context.Background(), Bird{Color: "Blue"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, repo.byName)
}

func TestGetAllBirds_EmptyIsNotNil(t *testing.T) {
	svc := NewService(newTestRepo())

	all, err := svc.GetAllBirds(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestFindBirdByName_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.FindBirdByName(context.Background(), "Dodo")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.EqualError(t, err, "Bird not found. Bird with name Dodo does not exist.")
}

func TestFindBirdByColor(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	for _, b := range []Bird{
		{Name: "Sparrow", Color: "Brown"},
		{Name: "Owl", Color: "Brown"},
		{Name: "Jay", Color: "Blue"},
	} {
		_, err := svc.AddBird(ctx, b)
		require.NoError(t, err)
	}

	got, err := svc.FindBirdByColor(ctx, "Brown")
	require.NoError(t, err)
	assert.ElementsMatch(t, []Bird{
		{Name: "Sparrow", Color: "Brown"},
		{Name: "Owl", Color: "Brown"},
	}, got)

	_, err = svc.FindBirdByColor(ctx, "Green")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.EqualError(t, err, "Bird not found. Bird with color Green does not exist.")
}

func TestDeleteBird_MissingIsNoError(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	require.NoError(t, svc.DeleteBird(ctx, "Nobody"))

	_, err := svc.AddBird(ctx, Bird{Name: "Kiwi"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteBird(ctx, "Kiwi"))

	_, err = svc.FindBirdByName(ctx, "Kiwi")
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_WrapsStoreErrors(t *testing.T) {
	boom := errors.New("connection reset")
	repo := newTestRepo()
	repo.failWith = boom
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.AddBird(ctx, Bird{Name: "Kiwi"})
	assert.ErrorIs(t, err, boom)

	_, err = svc.GetAllBirds(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = svc.FindBirdByName(ctx, "Kiwi")
	assert.ErrorIs(t, err, boom)
	assert.False(t, apperr.IsNotFound(err))

	assert.ErrorIs(t, svc.DeleteBird(ctx, "Kiwi"), boom)
}
