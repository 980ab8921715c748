package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/resconf/pkg/config"
	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/paths"
)

// setupPaths returns paths with isolated config and project directories
func setupPaths(t *testing.T) paths.Paths {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	p, err := paths.New(t.TempDir())
	require.NoError(t, err)
	return p
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "auto", cfg.Output.Format)
	assert.Empty(t, cfg.Devices.Paths)
	assert.Empty(t, cfg.Devices.Default)
	assert.Empty(t, cfg.Product.AaptConfig)
	assert.Empty(t, cfg.Product.PreferredDensity)
	assert.True(t, cfg.Match.Normalize)
	assert.Contains(t, config.DefaultContent(), "[product]")
}

func TestLoadConfigurationLayers(t *testing.T) {
	p := setupPaths(t)

	writeFile(t, p.UserConfigFile(), `
[output]
format = "json"

[devices]
default = "pixel_7"
`)
	writeFile(t, p.ProjectConfigFile(), `
[devices]
default = "tv_1080p"

[product]
aapt_config = ["normal", "xhdpi"]
`)

	cfg, err := config.LoadConfiguration(config.Options{Paths: p})
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output.Format, "user config applies")
	assert.Equal(t, "tv_1080p", cfg.Devices.Default, "project config overrides user config")
	assert.Equal(t, []string{"normal", "xhdpi"}, cfg.Product.AaptConfig)
	assert.True(t, cfg.Match.Normalize, "defaults survive")
}

func TestLoadConfigurationEnv(t *testing.T) {
	p := setupPaths(t)
	t.Setenv("RESCONF_OUTPUT_FORMAT", "TABLE")
	t.Setenv("RESCONF_PRODUCT_AAPT_CONFIG", "large, hdpi,")
	t.Setenv("RESCONF_PRODUCT_PREFERRED_DENSITY", "xxhdpi")
	t.Setenv("RESCONF_MATCH_NORMALIZE", "false")

	cfg, err := config.LoadConfiguration(config.Options{Paths: p})
	require.NoError(t, err)

	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, []string{"large", "hdpi"}, cfg.Product.AaptConfig)
	assert.Equal(t, "xxhdpi", cfg.Product.PreferredDensity)
	assert.False(t, cfg.Match.Normalize)
}

func TestLoadConfigurationExplicitFile(t *testing.T) {
	p := setupPaths(t)
	writeFile(t, p.ProjectConfigFile(), "[devices]\ndefault = \"ignored\"\n")

	explicit := filepath.Join(t.TempDir(), "ci.yaml")
	writeFile(t, explicit, `
devices:
  default: automotive
  paths:
    - ./devices.xml
`)

	cfg, err := config.LoadConfiguration(config.Options{Paths: p, File: explicit})
	require.NoError(t, err)
	assert.Equal(t, "automotive", cfg.Devices.Default)
	assert.Equal(t, []string{"./devices.xml"}, cfg.Devices.Paths)
}

func TestLoadConfigurationOverrides(t *testing.T) {
	p := setupPaths(t)
	t.Setenv("RESCONF_OUTPUT_FORMAT", "json")

	cfg, err := config.LoadConfiguration(config.Options{
		Paths:     p,
		Overrides: map[string]interface{}{"output.format": "text"},
	})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoadConfigurationErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := config.LoadConfiguration(config.Options{File: "/nonexistent/resconf.toml"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
		assert.Equal(t, "/nonexistent/resconf.toml", errors.GetErrorDetails(err)["path"])
	})

	t.Run("malformed toml", func(t *testing.T) {
		p := setupPaths(t)
		writeFile(t, p.ProjectConfigFile(), "[output\nformat = ")
		_, err := config.LoadConfiguration(config.Options{Paths: p})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("unknown format", func(t *testing.T) {
		p := setupPaths(t)
		writeFile(t, p.ProjectConfigFile(), "[output]\nformat = \"html\"\n")
		_, err := config.LoadConfiguration(config.Options{Paths: p})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		assert.Equal(t, "output.format", errors.GetErrorDetails(err)["key"])
		assert.NotEmpty(t, errors.GetErrorDetails(err)["allowed"])
	})

	t.Run("unknown preferred density", func(t *testing.T) {
		p := setupPaths(t)
		writeFile(t, p.ProjectConfigFile(), "[product]\npreferred_density = \"superhdpi\"\n")
		_, err := config.LoadConfiguration(config.Options{Paths: p})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}
