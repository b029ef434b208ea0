package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "pip3", cfg.Install.Command)
	assert.Equal(t, []string{"install", "-r", "requirements.txt"}, cfg.Install.Args)
	assert.Equal(t, []string{"static"}, cfg.Static.Sources)
	assert.Equal(t, "staticfiles", cfg.Static.Root)
	assert.Equal(t, "migrations", cfg.Migrations.Dir)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ramp.yaml")
	err := os.WriteFile(path, []byte(`
install:
  command: pip
  args: ["install", "--no-cache-dir", "-r", "requirements/production.txt"]
static:
  sources: ["static", "docs/assets"]
  root: /srv/static
migrations:
  dir: db/migrations
`), 0644)
	assert.Nil(t, err)

	cfg, err := LoadConfig(path)

	assert.Nil(t, err)
	assert.Equal(t, "pip", cfg.Install.Command)
	assert.Equal(t, []string{"install", "--no-cache-dir", "-r", "requirements/production.txt"}, cfg.Install.Args)
	assert.Equal(t, []string{"static", "docs/assets"}, cfg.Static.Sources)
	assert.Equal(t, "/srv/static", cfg.Static.Root)
	assert.Equal(t, "db/migrations", cfg.Migrations.Dir)
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ramp.yaml")
	err := os.WriteFile(path, []byte("migrations:\n  dir: db/migrations\n"), 0644)
	assert.Nil(t, err)

	cfg, err := LoadConfig(path)

	assert.Nil(t, err)
	assert.Equal(t, "pip3", cfg.Install.Command)
	assert.Equal(t, "db/migrations", cfg.Migrations.Dir)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.NotNil(t, err)
}
