package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"catalog": "data/catalog.csv", "max_outfits": 3, "verbose": true}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "data/catalog.csv", cfg.Catalog)
	assert.Equal(t, 3, cfg.MaxOutfits)
	assert.True(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_NegativeMaxOutfits(t *testing.T) {
	cfg := &Config{MaxOutfits: -1}
	assert.Error(t, cfg.Validate())
}

func TestFromEnv_CatalogFallback(t *testing.T) {
	t.Setenv("OUTFIT_AGENT_CATALOG", "env/catalog.csv")

	cfg := &Config{}
	cfg.FromEnv()
	assert.Equal(t, "env/catalog.csv", cfg.Catalog)

	explicit := &Config{Catalog: "explicit.csv"}
	explicit.FromEnv()
	assert.Equal(t, "explicit.csv", explicit.Catalog)
}
