// Tests for the settings singleton.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-tools/shelf/pkg/types"
)

func TestSettingsSeededEmpty(t *testing.T) {
	b := setupBackend(t)

	ss, err := b.Settings()
	require.NoError(t, err)
	value, err := ss.Get()
	require.NoError(t, err)
	assert.Equal(t, "{}", value, "a fresh index starts with an empty settings object")
}

func TestSettingsRoundTrip(t *testing.T) {
	b := setupBackend(t)

	ss, err := b.Settings()
	require.NoError(t, err)

	doc := `{"recursive_search":true,"theme":"dark"}`
	require.NoError(t, ss.Set(doc))
	got, err := ss.Get()
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	require.NoError(t, ss.Set(`{"theme":"light"}`))
	got, err = ss.Get()
	require.NoError(t, err)
	assert.Equal(t, `{"theme":"light"}`, got, "set replaces the whole document")
}

func TestSettingsSurviveReattach(t *testing.T) {
	dataDir := t.TempDir()
	config := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}

	b := NewBackend()
	require.NoError(t, b.Attach(config))
	ss, err := b.Settings()
	require.NoError(t, err)
	require.NoError(t, ss.Set(`{"theme":"dark"}`))
	require.NoError(t, b.Detach())

	require.NoError(t, b.Attach(config))
	t.Cleanup(func() { b.Detach() })
	ss, err = b.Settings()
	require.NoError(t, err)
	got, err := ss.Get()
	require.NoError(t, err)
	assert.Equal(t, `{"theme":"dark"}`, got, "the seed must not clobber a stored document")
}
