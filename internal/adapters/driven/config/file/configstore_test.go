package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garyj/real-estate-mcp/internal/core/ports/driven"
)

func TestConfigStoreReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	content := `
data_dir = "/srv/realestate/data"
source = "jsondir"
load_timeout_seconds = 15
watch = true

[server]
port = 8080
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/realestate/data", store.GetString(driven.ConfigDataDir))
	assert.Equal(t, "jsondir", store.GetString(driven.ConfigSourceKind))
	assert.Equal(t, 15, store.GetInt(driven.ConfigLoadTimeoutSeconds))
	assert.True(t, store.GetBool(driven.ConfigWatch))

	// Nested tables flatten to dot-notation keys.
	assert.Equal(t, 8080, store.GetInt("server.port"))
}

func TestConfigStoreMissingKeysYieldZeroValues(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString(driven.ConfigDataDir))
	assert.Equal(t, 0, store.GetInt(driven.ConfigLoadTimeoutSeconds))
	assert.False(t, store.GetBool(driven.ConfigWatch))
}

func TestConfigStoreSetPersists(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(driven.ConfigDataDir, "/tmp/data"))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/data", reloaded.GetString(driven.ConfigDataDir))
}

func TestConfigStorePath(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
