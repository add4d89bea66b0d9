package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ubiquity/permit2-rpc-manager/config"
)

func TestBboltConnectorRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")

	connector, err := NewBboltConnector(config.BboltConfig{Path: dbPath})
	require.NoError(t, err)
	defer connector.Close()

	_, err = connector.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, connector.Set(context.Background(), "k", []byte("v")))
	value, err := connector.Get(context.Background(), "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), value)
}

func TestBboltConnectorSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")

	connector, err := NewBboltConnector(config.BboltConfig{Path: dbPath})
	require.NoError(t, err)
	require.NoError(t, connector.Set(context.Background(), "k", []byte("v")))
	require.NoError(t, connector.Close())

	reopened, err := NewBboltConnector(config.BboltConfig{Path: dbPath})
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(context.Background(), "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), value)
}
