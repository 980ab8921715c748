package resources_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/resconf/pkg/resources"
)

func TestEnumLookup(t *testing.T) {
	size, ok := resources.ScreenSizeFromValue("xlarge")
	assert.True(t, ok)
	assert.Equal(t, resources.ScreenSizeXLarge, size)
	assert.Equal(t, 9, size.Since())
	assert.Equal(t, "Extra Large Screen", size.LongDisplayValue())

	night, ok := resources.NightModeFromValue("NIGHT")
	assert.True(t, ok)
	assert.Equal(t, resources.NightModeNight, night)

	keys, ok := resources.KeyboardStateFromValue("keyssoft")
	assert.True(t, ok)
	assert.Equal(t, resources.KeyboardStateSoft, keys)
	assert.Equal(t, 3, keys.Since())

	_, ok = resources.ScreenSizeFromValue("huge")
	assert.False(t, ok)
	_, ok = resources.NightModeFromValue("")
	assert.False(t, ok)
}

func TestFakeUiModeIsNeverParsed(t *testing.T) {
	_, ok := resources.UiModeFromValue("normal")
	assert.False(t, ok)

	assert.True(t, resources.UiModeNormal.IsValid())
	assert.True(t, resources.UiModeNormal.IsFakeValue())
	assert.False(t, resources.UiModeWatch.IsFakeValue())

	watch, ok := resources.UiModeFromValue("watch")
	assert.True(t, ok)
	assert.Equal(t, 20, watch.Since())

	assert.Len(t, resources.UiModeValues(), 7)
	assert.Equal(t, resources.UiModeNormal, resources.UiModeValues()[0])
}

func TestZeroValueIsUnset(t *testing.T) {
	var size resources.ScreenSize
	assert.False(t, size.IsValid())
	assert.Equal(t, "", size.String())

	var density resources.Density
	assert.False(t, density.IsValid())
	assert.False(t, density.IsRealDensity())
	assert.Equal(t, "", density.ResourceValue())

	assert.False(t, resources.NightMode(42).IsValid())
	assert.Equal(t, "", resources.NightMode(42).LongDisplayValue())
}

func TestDensities(t *testing.T) {
	tests := []struct {
		value string
		want  resources.Density
		dpi   int
		since int
		real  bool
	}{
		{"xxxhdpi", resources.DensityXXXHigh, 640, 18, true},
		{"420dpi", resources.Density420, 420, 23, true},
		{"xhdpi", resources.DensityXHigh, 320, 8, true},
		{"tvdpi", resources.DensityTV, 213, 13, true},
		{"mdpi", resources.DensityMedium, resources.DefaultDPI, 4, true},
		{"anydpi", resources.DensityAny, resources.DPIAny, 21, false},
		{"nodpi", resources.DensityNone, resources.DPINone, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			d, ok := resources.DensityFromValue(tt.value)
			assert.True(t, ok)
			assert.Equal(t, tt.want, d)
			assert.Equal(t, tt.dpi, d.DPIValue())
			assert.Equal(t, tt.since, d.Since())
			assert.Equal(t, tt.real, d.IsRealDensity())
			assert.Equal(t, tt.value, d.String())
		})
	}

	_, ok := resources.DensityFromValue("320dpi")
	assert.False(t, ok)
}

func TestDensityFromDPI(t *testing.T) {
	d, ok := resources.DensityFromDPI(480)
	assert.True(t, ok)
	assert.Equal(t, resources.DensityXXHigh, d)

	_, ok = resources.DensityFromDPI(500)
	assert.False(t, ok)
}

func TestDensityValuesAreOrderedByDPI(t *testing.T) {
	values := resources.DensityValues()
	assert.Len(t, values, 14)

	last := 1 << 30
	for _, d := range values {
		if !d.IsRealDensity() {
			continue
		}
		assert.Less(t, d.DPIValue(), last, d.String())
		last = d.DPIValue()
	}
}

func TestFolderTypeFromName(t *testing.T) {
	tests := []struct {
		name string
		want resources.FolderType
		ok   bool
	}{
		{"values", resources.FolderValues, true},
		{"values-fr", resources.FolderValues, true},
		{"drawable-hdpi-v21", resources.FolderDrawable, true},
		{"mipmap-anydpi-v26", resources.FolderMipmap, true},
		{"assets", "", false},
		{"", "", false},
		{"Values-fr", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resources.FolderTypeFromName(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFolderTypesReturnsCopy(t *testing.T) {
	types := resources.FolderTypes()
	assert.Contains(t, types, resources.FolderLayout)
	types[0] = "broken"
	assert.Equal(t, resources.FolderAnim, resources.FolderTypes()[0])
}
