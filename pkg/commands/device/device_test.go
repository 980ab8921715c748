// pkg/commands/device/device_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Built-in device catalog
// PURPOSE: Test device listing and per-state reference configurations

package device_test

import (
	"testing"

	"github.com/arthur-debert/resconf/pkg/commands/device"
	"github.com/arthur-debert/resconf/pkg/devices"
	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog(t *testing.T) *devices.Catalog {
	t.Helper()
	c, err := devices.BuiltinCatalog()
	require.NoError(t, err)
	return c
}

func TestList(t *testing.T) {
	result, err := device.List(catalog(t))
	require.NoError(t, err)
	require.Len(t, result.Devices, 7)

	var pixel *device.Summary
	for i := range result.Devices {
		if result.Devices[i].ID == "pixel_7" {
			pixel = &result.Devices[i]
		}
	}
	require.NotNil(t, pixel)
	assert.Equal(t, "Pixel 7", pixel.Name)
	assert.Equal(t, 34, pixel.APILevel)
	assert.Equal(t, "420dpi", pixel.Density)
	assert.Equal(t, []string{"Portrait", "Landscape"}, pixel.States)
}

func TestShow(t *testing.T) {
	result, err := device.Show(catalog(t), "PIXEL_7")
	require.NoError(t, err)

	assert.Equal(t, "pixel_7", result.ID)
	assert.Equal(t, "normal", result.Size)
	assert.Equal(t, 1080, result.XPixels)
	require.Len(t, result.Details, 2)

	portrait := result.Details[0]
	assert.True(t, portrait.Default)
	assert.Equal(t, 411, portrait.WidthDp)
	assert.Equal(t, 914, portrait.HeightDp)
	assert.Equal(t,
		"sw411dp-w411dp-h914dp-normal-long-port-notnight-420dpi-finger-keyssoft-nokeys-navhidden-nonav-2400x1080-v34",
		portrait.Configuration)

	landscape := result.Details[1]
	assert.False(t, landscape.Default)
	assert.Equal(t, 914, landscape.WidthDp)
}

func TestShow_WithOptions(t *testing.T) {
	result, err := device.Show(catalog(t), "pixel_7", devices.WithLocale("de", "DE"))
	require.NoError(t, err)
	for _, s := range result.Details {
		assert.Contains(t, s.Configuration, "de-rDE-")
	}
}

func TestShow_UnknownDevice(t *testing.T) {
	_, err := device.Show(catalog(t), "nope")
	assert.Equal(t, errors.ErrDeviceNotFound, errors.GetErrorCode(err))
}

func TestNilCatalog(t *testing.T) {
	_, err := device.List(nil)
	assert.Equal(t, errors.ErrInternal, errors.GetErrorCode(err))
}
