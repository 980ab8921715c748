package qualifiers

import (
	"fmt"
	"sync"
)

// Axis identifies a slot of a folder configuration. The numeric order is the
// order qualifiers must appear in a folder name and the order they are
// considered when resolving the best match.
type Axis int

const (
	AxisCountryCode Axis = iota
	AxisNetworkCode
	AxisLanguage
	AxisRegion
	AxisLayoutDirection
	AxisSmallestScreenWidth
	AxisScreenWidth
	AxisScreenHeight
	AxisScreenSize
	AxisScreenRatio
	AxisScreenOrientation
	AxisUiMode
	AxisNightMode
	AxisDensity
	AxisTouchScreen
	AxisKeyboardState
	AxisTextInputMethod
	AxisNavigationState
	AxisNavigationMethod
	AxisScreenDimension
	AxisVersion

	// AxisCount is the number of axes.
	AxisCount
)

type descriptor struct {
	name      string
	shortName string
	since     int
	parse     func(segment string) (Qualifier, bool)
	zero      Qualifier
}

var descriptors = [AxisCount]descriptor{
	AxisCountryCode:         {"Mobile Country Code", "Country Code", 1, parseCountryCode, CountryCodeQualifier{}},
	AxisNetworkCode:         {"Mobile Network Code", "Network Code", 1, parseNetworkCode, NetworkCodeQualifier{}},
	AxisLanguage:            {"Language", "Language", 1, parseLanguage, LanguageQualifier{}},
	AxisRegion:              {"Region", "Region", 1, parseRegion, RegionQualifier{}},
	AxisLayoutDirection:     {"Layout Direction", "Layout Dir", 17, parseLayoutDirection, LayoutDirectionQualifier{}},
	AxisSmallestScreenWidth: {"Smallest Screen Width", "Smallest Width", 13, parseSmallestScreenWidth, SmallestScreenWidthQualifier{}},
	AxisScreenWidth:         {"Screen Width", "Screen Width", 13, parseScreenWidth, ScreenWidthQualifier{}},
	AxisScreenHeight:        {"Screen Height", "Screen Height", 13, parseScreenHeight, ScreenHeightQualifier{}},
	AxisScreenSize:          {"Size", "Size", 4, parseScreenSize, ScreenSizeQualifier{}},
	AxisScreenRatio:         {"Ratio", "Ratio", 4, parseScreenRatio, ScreenRatioQualifier{}},
	AxisScreenOrientation:   {"Orientation", "Orientation", 1, parseScreenOrientation, ScreenOrientationQualifier{}},
	AxisUiMode:              {"UI Mode", "UI Mode", 8, parseUiMode, UiModeQualifier{}},
	AxisNightMode:           {"Night Mode", "Night Mode", 8, parseNightMode, NightModeQualifier{}},
	AxisDensity:             {"Density", "Density", 4, parseDensity, DensityQualifier{}},
	AxisTouchScreen:         {"Touch Screen", "Touch Screen", 1, parseTouchScreen, TouchScreenQualifier{}},
	AxisKeyboardState:       {"Keyboard", "Keyboard", 1, parseKeyboardState, KeyboardStateQualifier{}},
	AxisTextInputMethod:     {"Text Input", "Text Input", 1, parseTextInputMethod, TextInputMethodQualifier{}},
	AxisNavigationState:     {"Navigation State", "Nav State", 5, parseNavigationState, NavigationStateQualifier{}},
	AxisNavigationMethod:    {"Navigation", "Navigation", 1, parseNavigationMethod, NavigationMethodQualifier{}},
	AxisScreenDimension:     {"Dimension", "Dimension", 1, parseScreenDimension, ScreenDimensionQualifier{}},
	AxisVersion:             {"Version", "Version", 1, parseVersion, VersionQualifier{}},
}

// Axes returns every axis in canonical order.
func Axes() []Axis {
	out := make([]Axis, AxisCount)
	for i := range out {
		out[i] = Axis(i)
	}
	return out
}

// IsValid reports whether a is a known axis.
func (a Axis) IsValid() bool {
	return a >= 0 && a < AxisCount
}

func (a Axis) Name() string {
	if !a.IsValid() {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return descriptors[a].name
}

func (a Axis) ShortName() string {
	if !a.IsValid() {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return descriptors[a].shortName
}

func (a Axis) String() string { return a.Name() }

// Since returns the API level the axis was introduced in.
func (a Axis) Since() int {
	if !a.IsValid() {
		return 1
	}
	return descriptors[a].since
}

// Parse parses a single folder segment as a qualifier of this axis. The
// segment is matched as given; callers lowercase folder names beforehand.
func (a Axis) Parse(segment string) (Qualifier, bool) {
	if !a.IsValid() || segment == "" {
		return nil, false
	}
	return descriptors[a].parse(segment)
}

// CheckAndSet parses segment as a qualifier of this axis and, on success,
// installs it into config. A malformed segment returns false; a nil config
// is a programming error.
func (a Axis) CheckAndSet(segment string, config Setter) bool {
	if config == nil {
		panic("qualifiers: CheckAndSet called with nil config")
	}
	q, ok := a.Parse(segment)
	if !ok {
		return false
	}
	config.SetQualifier(q)
	return true
}

// Default returns the unset qualifier of this axis.
func (a Axis) Default() Qualifier {
	return DefaultQualifiers()[a]
}

// DefaultQualifiers returns one unset qualifier per axis, indexed by Axis.
var DefaultQualifiers = sync.OnceValue(func() [AxisCount]Qualifier {
	var out [AxisCount]Qualifier
	for i, d := range descriptors {
		out[i] = d.zero
	}
	return out
})
