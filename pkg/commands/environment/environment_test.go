package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/resconf/pkg/commands/environment"
	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/testutil"
)

const labDevices = `devices:
  - id: lab_phone
    name: Lab Phone
    screen: {size: normal, density: xhdpi, width: 720, height: 1280}
    api_level: 30
`

func TestLoad_Defaults(t *testing.T) {
	env := testutil.NewEnvironment(t)

	loaded, err := environment.Load(environment.Options{ProjectDir: env.ProjectDir})
	require.NoError(t, err)

	assert.Equal(t, env.ProjectDir, loaded.Paths.ProjectDir())
	assert.Equal(t, "auto", loaded.Config.Output.Format)
	assert.Equal(t, 7, loaded.Catalog.Len())

	_, err = loaded.Catalog.Get("pixel_7")
	assert.NoError(t, err)
}

func TestLoad_UserDevicesAndPaths(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteDevices(t, "lab.yaml", labDevices)
	testutil.CreateFile(t, env.ProjectDir, "devices/extra.yaml", `devices:
  - id: bench_tablet
    name: Bench Tablet
    screen: {size: xlarge, density: mdpi, width: 1280, height: 800}
    api_level: 28
`)
	env.WriteProjectConfig(t, `[devices]
paths = ["devices/extra.yaml"]
`)

	loaded, err := environment.Load(environment.Options{ProjectDir: env.ProjectDir})
	require.NoError(t, err)
	assert.Equal(t, 9, loaded.Catalog.Len())

	d, err := loaded.Catalog.Get("lab_phone")
	require.NoError(t, err)
	assert.Equal(t, "Lab Phone", d.Name)

	_, err = loaded.Catalog.Get("bench_tablet")
	assert.NoError(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	env := testutil.NewEnvironment(t)

	loaded, err := environment.Load(environment.Options{
		ProjectDir: env.ProjectDir,
		Overrides:  map[string]interface{}{"devices.default": "pixel_7"},
	})
	require.NoError(t, err)
	assert.Equal(t, "pixel_7", loaded.Config.Devices.Default)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing device file", func(t *testing.T) {
		env := testutil.NewEnvironment(t)
		env.WriteProjectConfig(t, `[devices]
paths = ["nowhere.yaml"]
`)

		_, err := environment.Load(environment.Options{ProjectDir: env.ProjectDir})
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	})

	t.Run("broken device file", func(t *testing.T) {
		env := testutil.NewEnvironment(t)
		env.WriteDevices(t, "broken.yaml", "devices: [")

		_, err := environment.Load(environment.Options{ProjectDir: env.ProjectDir})
		assert.True(t, errors.IsErrorCode(err, errors.ErrDeviceParse))
	})

	t.Run("invalid config", func(t *testing.T) {
		env := testutil.NewEnvironment(t)

		_, err := environment.Load(environment.Options{
			ProjectDir: env.ProjectDir,
			Overrides:  map[string]interface{}{"output.format": "yaml"},
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}
