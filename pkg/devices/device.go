package devices

import (
	"strings"

	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/folderconfig"
	"github.com/arthur-debert/resconf/pkg/qualifiers"
	"github.com/arthur-debert/resconf/pkg/resources"
)

// Device is a device profile.
type Device struct {
	ID           string
	Name         string
	Manufacturer string
	Screen       Screen
	Hardware     Hardware
	// APILevel is the platform version the device runs; 0 leaves the
	// version axis unset.
	APILevel int
	States   []State
}

// Screen describes the physical display.
type Screen struct {
	Size    resources.ScreenSize
	Ratio   resources.ScreenRatio
	Density resources.Density
	// XPixels and YPixels are the panel dimensions in its natural orientation.
	XPixels int
	YPixels int
}

// Hardware describes the input hardware and the kind of device.
type Hardware struct {
	Touch    resources.TouchScreen
	Keyboard resources.TextInputMethod
	Nav      resources.Navigation
	UiMode   resources.UiMode
}

// State is one physical state of a device.
type State struct {
	Name        string
	Description string
	Default     bool
	Orientation resources.ScreenOrientation
	KeyState    resources.KeyboardState
	NavState    resources.NavigationState
}

// DefaultState returns the state flagged as default, or the first state.
func (d *Device) DefaultState() (State, bool) {
	for _, s := range d.States {
		if s.Default {
			return s, true
		}
	}
	if len(d.States) > 0 {
		return d.States[0], true
	}
	return State{}, false
}

// State returns the state with the given name, compared case-insensitively.
// An empty name selects the default state.
func (d *Device) State(name string) (State, error) {
	if name == "" {
		if s, ok := d.DefaultState(); ok {
			return s, nil
		}
		return State{}, errors.Newf(errors.ErrDeviceState, "device %s has no states", d.ID).
			WithDetail("device", d.ID)
	}
	for _, s := range d.States {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return State{}, errors.Newf(errors.ErrDeviceState, "device %s has no state %q", d.ID, name).
		WithDetails(map[string]interface{}{
			"device": d.ID,
			"states": d.StateNames(),
		})
}

// StateNames lists the state names in definition order.
func (d *Device) StateNames() []string {
	names := make([]string, 0, len(d.States))
	for _, s := range d.States {
		names = append(names, s.Name)
	}
	return names
}

// ScreenDp returns the screen width and height in dp for the orientation.
func (d *Device) ScreenDp(orientation resources.ScreenOrientation) (width, height int) {
	x, y := d.Screen.XPixels, d.Screen.YPixels
	short, long := min(x, y), max(x, y)
	switch orientation {
	case resources.ScreenOrientationPortrait:
		x, y = short, long
	case resources.ScreenOrientationLandscape:
		x, y = long, short
	}
	return pxToDp(x, d.Screen.Density), pxToDp(y, d.Screen.Density)
}

func pxToDp(px int, density resources.Density) int {
	dpi := resources.DefaultDPI
	if density.IsRealDensity() {
		dpi = density.DPIValue()
	}
	return px * resources.DefaultDPI / dpi
}

// Option adjusts a reference configuration beyond what the device defines.
type Option func(*folderconfig.FolderConfiguration)

// WithLocale sets the language and, if not empty, the region.
func WithLocale(language, region string) Option {
	return func(c *folderconfig.FolderConfiguration) {
		c.SetQualifier(qualifiers.NewLanguageQualifier(language))
		if region != "" {
			c.SetQualifier(qualifiers.NewRegionQualifier(region))
		}
	}
}

// WithNightMode overrides the default notnight mode.
func WithNightMode(mode resources.NightMode) Option {
	return func(c *folderconfig.FolderConfiguration) {
		c.SetQualifier(qualifiers.NewNightModeQualifier(mode))
	}
}

// WithLayoutDirection sets the layout direction.
func WithLayoutDirection(dir resources.LayoutDirection) Option {
	return func(c *folderconfig.FolderConfiguration) {
		c.SetQualifier(qualifiers.NewLayoutDirectionQualifier(dir))
	}
}

// WithNetwork sets the mobile country and network codes. A negative mnc
// leaves the network axis unset.
func WithNetwork(mcc, mnc int) Option {
	return func(c *folderconfig.FolderConfiguration) {
		c.SetQualifier(qualifiers.NewCountryCodeQualifier(mcc))
		if mnc >= 0 {
			c.SetQualifier(qualifiers.NewNetworkCodeQualifier(mnc))
		}
	}
}

// Configuration builds the reference configuration the device presents in
// the named state. An empty state selects the default state.
func (d *Device) Configuration(stateName string, opts ...Option) (*folderconfig.FolderConfiguration, error) {
	state, err := d.State(stateName)
	if err != nil {
		return nil, err
	}

	c := folderconfig.New()
	screen := d.Screen

	width, height := d.ScreenDp(state.Orientation)
	if width > 0 && height > 0 {
		c.SetQualifier(qualifiers.NewSmallestScreenWidthQualifier(min(width, height)))
		c.SetQualifier(qualifiers.NewScreenWidthQualifier(width))
		c.SetQualifier(qualifiers.NewScreenHeightQualifier(height))
		c.SetQualifier(qualifiers.NewScreenDimensionQualifier(screen.XPixels, screen.YPixels))
	}
	if screen.Size.IsValid() {
		c.SetQualifier(qualifiers.NewScreenSizeQualifier(screen.Size))
	}
	if screen.Ratio.IsValid() {
		c.SetQualifier(qualifiers.NewScreenRatioQualifier(screen.Ratio))
	}
	if state.Orientation.IsValid() {
		c.SetQualifier(qualifiers.NewScreenOrientationQualifier(state.Orientation))
	}

	uiMode := d.Hardware.UiMode
	if !uiMode.IsValid() {
		uiMode = resources.UiModeNormal
	}
	c.SetQualifier(qualifiers.NewUiModeQualifier(uiMode))
	c.SetQualifier(qualifiers.NewNightModeQualifier(resources.NightModeNotNight))

	if screen.Density.IsValid() {
		c.SetQualifier(qualifiers.NewDensityQualifier(screen.Density))
	}
	if d.Hardware.Touch.IsValid() {
		c.SetQualifier(qualifiers.NewTouchScreenQualifier(d.Hardware.Touch))
	}
	if state.KeyState.IsValid() {
		c.SetQualifier(qualifiers.NewKeyboardStateQualifier(state.KeyState))
	}
	if d.Hardware.Keyboard.IsValid() {
		c.SetQualifier(qualifiers.NewTextInputMethodQualifier(d.Hardware.Keyboard))
	}
	if state.NavState.IsValid() {
		c.SetQualifier(qualifiers.NewNavigationStateQualifier(state.NavState))
	}
	if d.Hardware.Nav.IsValid() {
		c.SetQualifier(qualifiers.NewNavigationMethodQualifier(d.Hardware.Nav))
	}
	if d.APILevel > 0 {
		c.SetQualifier(qualifiers.NewVersionQualifier(d.APILevel))
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (d *Device) String() string { return d.ID }
