package resources

import "strings"

// Density is a screen pixel density bucket.
type Density int

const (
	DensityXXXHigh Density = iota + 1
	Density560
	DensityXXHigh
	Density420
	Density400
	Density360
	DensityXHigh
	Density280
	DensityHigh
	DensityTV
	DensityMedium
	DensityLow
	DensityAny
	DensityNone
)

// Special DPI values used by densities that do not describe a real screen.
const (
	DPINone = -1
	DPIAny  = -2

	// DefaultDPI is the baseline density dp values are expressed in.
	DefaultDPI = 160
)

type densityInfo struct {
	enumInfo
	dpi int
}

var densityTable = []densityInfo{
	{},
	{enumInfo{value: "xxxhdpi", short: "XXXHigh Density", long: "XXXHigh Density", since: 18}, 640},
	{enumInfo{value: "560dpi", short: "560 DPI Density", long: "560 DPI Density", since: 1}, 560},
	{enumInfo{value: "xxhdpi", short: "XXHigh Density", long: "XXHigh Density", since: 16}, 480},
	{enumInfo{value: "420dpi", short: "420 DPI Density", long: "420 DPI Density", since: 23}, 420},
	{enumInfo{value: "400dpi", short: "400 DPI Density", long: "400 DPI Density", since: 1}, 400},
	{enumInfo{value: "360dpi", short: "360 DPI Density", long: "360 DPI Density", since: 23}, 360},
	{enumInfo{value: "xhdpi", short: "X-High Density", long: "X-High Density", since: 8}, 320},
	{enumInfo{value: "280dpi", short: "280 DPI Density", long: "280 DPI Density", since: 22}, 280},
	{enumInfo{value: "hdpi", short: "High Density", long: "High Density", since: 4}, 240},
	{enumInfo{value: "tvdpi", short: "TV Density", long: "TV Density", since: 13}, 213},
	{enumInfo{value: "mdpi", short: "Medium Density", long: "Medium Density", since: 4}, DefaultDPI},
	{enumInfo{value: "ldpi", short: "Low Density", long: "Low Density", since: 4}, 120},
	{enumInfo{value: "anydpi", short: "Any Density", long: "Any Density", since: 21}, DPIAny},
	{enumInfo{value: "nodpi", short: "No Density", long: "No Density", since: 4}, DPINone},
}

// DensityFromValue returns the Density for a folder segment.
func DensityFromValue(value string) (Density, bool) {
	value = strings.ToLower(value)
	for i := 1; i < len(densityTable); i++ {
		if densityTable[i].value == value {
			return Density(i), true
		}
	}
	return 0, false
}

// DensityFromDPI returns the density with exactly the given DPI value.
func DensityFromDPI(dpi int) (Density, bool) {
	for i := 1; i < len(densityTable); i++ {
		if densityTable[i].dpi == dpi {
			return Density(i), true
		}
	}
	return 0, false
}

// DensityValues returns every density, highest DPI first.
func DensityValues() []Density {
	out := make([]Density, 0, len(densityTable)-1)
	for i := 1; i < len(densityTable); i++ {
		out = append(out, Density(i))
	}
	return out
}

func (d Density) info() densityInfo {
	if d <= 0 || int(d) >= len(densityTable) {
		return densityInfo{}
	}
	return densityTable[d]
}

func (d Density) ResourceValue() string     { return d.info().value }
func (d Density) ShortDisplayValue() string { return d.info().short }
func (d Density) LongDisplayValue() string  { return d.info().long }
func (d Density) Since() int                { return d.info().since }
func (d Density) IsFakeValue() bool         { return false }
func (d Density) String() string            { return d.info().value }

// DPIValue returns the dots-per-inch of the density. Non-screen densities
// (nodpi, anydpi) return negative values.
func (d Density) DPIValue() int { return d.info().dpi }

// IsRealDensity reports whether the density describes an actual screen.
func (d Density) IsRealDensity() bool {
	return d.IsValid() && d.info().dpi > 0
}

func (d Density) IsValid() bool {
	return d > 0 && int(d) < len(densityTable)
}
