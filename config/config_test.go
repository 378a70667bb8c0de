package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, "Supa Site", c.Title)
	assert.Equal(t, "main.css", c.Stylesheet)
	assert.Equal(t, "#app", c.MountSelector)
	assert.NoError(t, c.Validate())
}

func TestParse_YAMLKeepsDefaults(t *testing.T) {
	c, err := Parse([]byte("title: Other\n"), YAML)
	require.NoError(t, err)

	assert.Equal(t, "Other", c.Title)
	assert.Equal(t, "main.css", c.Stylesheet)
}

func TestParse_TOML(t *testing.T) {
	c, err := Parse([]byte("origin = \"https://example.com/\"\nstylesheet = \"theme.css\"\n"), TOML)
	require.NoError(t, err)

	assert.Equal(t, "theme.css", c.Stylesheet)
	assert.Equal(t, "https://example.com/blog1", c.URL("/blog1"))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("stylesheet: \"\"\n"), YAML)
	assert.ErrorContains(t, err, "stylesheet")

	_, err = Parse([]byte("origin: supa.fish\n"), YAML)
	assert.ErrorContains(t, err, "absolute URL")

	_, err = Parse([]byte("title: [\n"), YAML)
	assert.Error(t, err)

	_, err = Parse(nil, Format("ini"))
	assert.Error(t, err)
}

func TestLoad_ByExtension(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "site.yml")
	require.NoError(t, os.WriteFile(yml, []byte("mount_selector: \"#root\"\n"), 0o644))
	tml := filepath.Join(dir, "site.toml")
	require.NoError(t, os.WriteFile(tml, []byte("title = \"T\"\n"), 0o644))

	c, err := Load(yml)
	require.NoError(t, err)
	assert.Equal(t, "#root", c.MountSelector)

	c, err = Load(tml)
	require.NoError(t, err)
	assert.Equal(t, "T", c.Title)

	_, err = Load(filepath.Join(dir, "site.json"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
