// Package axes implements the axes command: describe the configuration axes
// in the order they appear in folder names.
package axes

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/resconf/pkg/qualifiers"
)

// Axis describes one configuration axis.
type Axis struct {
	Index     int      `json:"index"`
	Name      string   `json:"name"`
	ShortName string   `json:"shortName"`
	Since     int      `json:"since"`
	Examples  []string `json:"examples"`
}

// Result of the Axes command.
type Result struct {
	Axes []Axis `json:"axes"`
}

var examples = [qualifiers.AxisCount][]string{
	qualifiers.AxisCountryCode:         {"mcc310", "mcc208"},
	qualifiers.AxisNetworkCode:         {"mnc004", "mnc260"},
	qualifiers.AxisLanguage:            {"en", "fr", "zh"},
	qualifiers.AxisRegion:              {"rUS", "rFR"},
	qualifiers.AxisLayoutDirection:     {"ldltr", "ldrtl"},
	qualifiers.AxisSmallestScreenWidth: {"sw320dp", "sw600dp"},
	qualifiers.AxisScreenWidth:         {"w720dp", "w1024dp"},
	qualifiers.AxisScreenHeight:        {"h720dp"},
	qualifiers.AxisScreenSize:          {"small", "normal", "large", "xlarge"},
	qualifiers.AxisScreenRatio:         {"long", "notlong"},
	qualifiers.AxisScreenOrientation:   {"port", "land"},
	qualifiers.AxisUiMode:              {"car", "desk", "television", "appliance", "watch", "vrheadset"},
	qualifiers.AxisNightMode:           {"night", "notnight"},
	qualifiers.AxisDensity:             {"ldpi", "mdpi", "hdpi", "xhdpi", "nodpi", "anydpi"},
	qualifiers.AxisTouchScreen:         {"notouch", "finger"},
	qualifiers.AxisKeyboardState:       {"keysexposed", "keyshidden", "keyssoft"},
	qualifiers.AxisTextInputMethod:     {"nokeys", "qwerty", "12key"},
	qualifiers.AxisNavigationState:     {"navexposed", "navhidden"},
	qualifiers.AxisNavigationMethod:    {"nonav", "dpad", "trackball", "wheel"},
	qualifiers.AxisScreenDimension:     {"480x320"},
	qualifiers.AxisVersion:             {"v21", "v34"},
}

// Axes lists every axis in canonical order.
func Axes() *Result {
	result := &Result{Axes: make([]Axis, 0, qualifiers.AxisCount)}
	for _, a := range qualifiers.Axes() {
		result.Axes = append(result.Axes, Axis{
			Index:     int(a),
			Name:      a.Name(),
			ShortName: a.ShortName(),
			Since:     a.Since(),
			Examples:  examples[a],
		})
	}
	return result
}

// Markdown renders the axes as a markdown document.
func (r *Result) Markdown() string {
	var b strings.Builder
	b.WriteString("# Configuration axes\n\n")
	b.WriteString("Qualifiers must appear in a folder name in this order. ")
	b.WriteString("The resolver also breaks ties in this order.\n\n")
	b.WriteString("| # | Axis | Since | Examples |\n")
	b.WriteString("|---|------|-------|----------|\n")
	for _, a := range r.Axes {
		quoted := make([]string, len(a.Examples))
		for i, e := range a.Examples {
			quoted[i] = "`" + e + "`"
		}
		fmt.Fprintf(&b, "| %d | %s | %d | %s |\n", a.Index+1, a.Name, a.Since, strings.Join(quoted, ", "))
	}
	return b.String()
}
