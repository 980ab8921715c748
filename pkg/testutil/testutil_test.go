package testutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/resconf/pkg/testutil"
)

func TestNewEnvironment(t *testing.T) {
	t.Setenv("RESCONF_OUTPUT_FORMAT", "json")

	env := testutil.NewEnvironment(t)
	assert.Equal(t, env.ConfigDir, os.Getenv("RESCONF_CONFIG_DIR"))
	assert.Equal(t, env.StateDir, os.Getenv("RESCONF_STATE_DIR"))
	assert.DirExists(t, env.ProjectDir)

	_, set := os.LookupEnv("RESCONF_OUTPUT_FORMAT")
	assert.False(t, set)
}

func TestEnvironmentWriters(t *testing.T) {
	env := testutil.NewEnvironment(t)

	assert.FileExists(t, env.WriteUserConfig(t, "[output]\n"))
	assert.Equal(t, filepath.Join(env.ProjectDir, ".resconf.toml"), env.WriteProjectConfig(t, ""))
	assert.Equal(t, filepath.Join(env.ConfigDir, "devices", "a.yaml"), env.WriteDevices(t, "a.yaml", "devices: []\n"))
}

func TestFixtures(t *testing.T) {
	assert.Equal(t, "en-rUS", testutil.Config(t, "en-rUS").QualifierString())
	assert.True(t, testutil.Config(t, "").IsDefault())
	assert.Equal(t, "hdpi", testutil.FolderConfig(t, "drawable-hdpi").QualifierString())

	folders := testutil.Folders(t, "values", "values-fr")
	require.Len(t, folders, 2)
	assert.Equal(t, []string{"values", "values-fr"}, testutil.Names(folders))

	assert.Equal(t, "pixel_7", testutil.Device(t, "pixel_7").ID)
}
