package storage

import (
	"context"
	"testing"

	"bird-sightings/internal/config"
	"bird-sightings/internal/domain/birds"
	"bird-sightings/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	st, err := Open(context.Background(), config.Store{Driver: config.DriverMemory}, logger.Nop())
	require.NoError(t, err)
	defer st.Close()

	_, err = st.Birds.Save(context.Background(), birds.Bird{Name: "Sparrow"})
	require.NoError(t, err)

	all, err := st.Birds.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.Store{Driver: "mongo"}, logger.Nop())
	assert.EqualError(t, err, `unknown store driver "mongo"`)
}
