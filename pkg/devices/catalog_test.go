package devices_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/resconf/pkg/devices"
	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/resources"
)

func TestBuiltinCatalog(t *testing.T) {
	catalog, err := devices.BuiltinCatalog()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"automotive_1024p",
		"nexus_one",
		"pixel_7",
		"pixel_tablet",
		"qvga_phone",
		"tv_1080p",
		"wear_round",
	}, catalog.IDs())
	assert.Equal(t, 7, catalog.Len())

	for _, d := range catalog.Devices() {
		_, err := d.Configuration("")
		assert.NoError(t, err, d.ID)
	}

	_, err = catalog.Get("galaxy_fold")
	assert.True(t, errors.IsErrorCode(err, errors.ErrDeviceNotFound))
}

func TestParseXML(t *testing.T) {
	f, err := os.Open("testdata/devices.xml")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	list, err := devices.ParseXML(f)
	require.NoError(t, err)
	require.Len(t, list, 2)

	n7 := list[0]
	assert.Equal(t, "Nexus 7 2013", n7.ID)
	assert.Equal(t, "Nexus 7", n7.Name)
	assert.Equal(t, resources.ScreenSizeLarge, n7.Screen.Size)
	assert.Equal(t, resources.DensityXHigh, n7.Screen.Density)
	assert.Equal(t, resources.TouchScreenFinger, n7.Hardware.Touch)
	assert.Equal(t, 18, n7.APILevel)
	assert.Equal(t, []string{"Portrait", "Landscape"}, n7.StateNames())

	c, err := n7.Configuration("")
	require.NoError(t, err)
	assert.Equal(t,
		"sw600dp-w600dp-h960dp-large-notlong-port-notnight-xhdpi-finger-keyssoft-nokeys-nonav-1920x1200-v18",
		c.QualifierString())

	wear := list[1]
	assert.Equal(t, resources.UiModeWatch, wear.Hardware.UiMode)
	assert.Equal(t, 22, wear.APILevel)
	c, err = wear.Configuration("")
	require.NoError(t, err)
	assert.Equal(t,
		"sw186dp-w186dp-h186dp-small-notlong-square-watch-notnight-hdpi-keyssoft-nokeys-nonav-280x280-v22",
		c.QualifierString())
}

func TestParseXMLErrors(t *testing.T) {
	_, err := devices.ParseXML(strings.NewReader("<devices broken=></devices>"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrDeviceParse))

	_, err = devices.ParseXML(strings.NewReader(
		`<devices><device><id>bad</id><hardware><screen><pixel-density>superhdpi</pixel-density></screen></hardware></device></devices>`))
	assert.True(t, errors.IsErrorCode(err, errors.ErrDeviceParse))
	assert.Equal(t, "density", errors.GetErrorDetails(err)["field"])
}

func TestParseTOML(t *testing.T) {
	f, err := os.Open("testdata/profiles.toml")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	list, err := devices.ParseTOML(f)
	require.NoError(t, err)
	require.Len(t, list, 1)

	d := list[0]
	assert.Equal(t, "foldable_inner", d.ID)
	assert.Equal(t, 31, d.APILevel)

	c, err := d.Configuration("landscape")
	require.NoError(t, err)
	assert.Equal(t,
		"sw673dp-w841dp-h673dp-large-notlong-land-notnight-420dpi-finger-keyssoft-nokeys-navhidden-nonav-2208x1768-v31",
		c.QualifierString())
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "devices:\n  - id: x\n    colour: red\n"},
		{"missing id and name", "devices:\n  - screen: {size: normal}\n"},
		{"bad orientation", "devices:\n  - id: x\n    states:\n      - {name: A, orientation: sideways}\n"},
		{"bad api level", "devices:\n  - id: x\n    api_level: tiramisu\n"},
		{"unnamed state", "devices:\n  - id: x\n    states:\n      - {orientation: port}\n"},
		{"negative width", "devices:\n  - id: x\n    screen: {width: -1, height: 10}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := devices.ParseYAML(strings.NewReader(tt.doc))
			assert.True(t, errors.IsErrorCode(err, errors.ErrDeviceParse), "got %v", err)
		})
	}
}

func TestParseYAMLDefaults(t *testing.T) {
	list, err := devices.ParseYAML(strings.NewReader("devices:\n  - name: Bare\n"))
	require.NoError(t, err)
	require.Len(t, list, 1)

	d := list[0]
	assert.Equal(t, "Bare", d.ID)
	assert.Equal(t, []string{"Default"}, d.StateNames())

	c, err := d.Configuration("")
	require.NoError(t, err)
	assert.Equal(t, "notnight", c.QualifierString())

	list, err = devices.ParseYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCatalogLoading(t *testing.T) {
	catalog, err := devices.BuiltinCatalog()
	require.NoError(t, err)

	require.NoError(t, catalog.LoadFile("testdata/override.yaml"))
	d, err := catalog.Get("pixel_7")
	require.NoError(t, err)
	assert.Equal(t, 35, d.APILevel, "later definitions replace earlier ones")
	assert.Equal(t, 7, catalog.Len())

	require.NoError(t, catalog.LoadDir("testdata"))
	assert.Equal(t, 10, catalog.Len())
	_, err = catalog.Get("nexus 7 2013")
	assert.NoError(t, err)

	require.NoError(t, catalog.LoadDir(filepath.Join(t.TempDir(), "missing")))

	err = catalog.LoadFile("testdata/missing.xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))

	err = catalog.LoadFile("devices.json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrDeviceParse))

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[[devices]]\nid = 3\n"), 0644))
	err = catalog.LoadFile(bad)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDeviceParse))
	assert.Equal(t, bad, errors.GetErrorDetails(err)["path"])

	assert.Error(t, catalog.Add(nil))
}
