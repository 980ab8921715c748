package devices

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/resources"
)

// deviceFile is the document layout of YAML and TOML device profiles.
type deviceFile struct {
	Devices []deviceSpec `yaml:"devices" toml:"devices"`
}

// deviceSpec is a device as written in a profile, every enum still in its
// folder segment form ("normal", "xhdpi", "port", ...).
type deviceSpec struct {
	ID           string      `yaml:"id" toml:"id"`
	Name         string      `yaml:"name" toml:"name"`
	Manufacturer string      `yaml:"manufacturer" toml:"manufacturer"`
	Screen       screenSpec  `yaml:"screen" toml:"screen"`
	Touch        string      `yaml:"touch" toml:"touch"`
	Keyboard     string      `yaml:"keyboard" toml:"keyboard"`
	Nav          string      `yaml:"nav" toml:"nav"`
	UiMode       string      `yaml:"ui_mode" toml:"ui_mode"`
	APILevel     any         `yaml:"api_level" toml:"api_level"`
	States       []stateSpec `yaml:"states" toml:"states"`
}

type screenSpec struct {
	Size    string `yaml:"size" toml:"size"`
	Ratio   string `yaml:"ratio" toml:"ratio"`
	Density string `yaml:"density" toml:"density"`
	Width   int    `yaml:"width" toml:"width"`
	Height  int    `yaml:"height" toml:"height"`
}

type stateSpec struct {
	Name        string `yaml:"name" toml:"name"`
	Description string `yaml:"description" toml:"description"`
	Default     bool   `yaml:"default" toml:"default"`
	Orientation string `yaml:"orientation" toml:"orientation"`
	Keyboard    string `yaml:"keyboard" toml:"keyboard"`
	Nav         string `yaml:"nav" toml:"nav"`
}

// fieldParser collects the first conversion error while a spec is built.
type fieldParser struct {
	device string
	err    error
}

func parseField[T any](p *fieldParser, field, value string, fromValue func(string) (T, bool)) T {
	var zero T
	value = strings.TrimSpace(value)
	if value == "" || p.err != nil {
		return zero
	}
	v, ok := fromValue(value)
	if !ok {
		p.err = errors.Newf(errors.ErrDeviceParse, "device %s: invalid %s %q", p.device, field, value).
			WithDetails(map[string]interface{}{
				"device": p.device,
				"field":  field,
			})
		return zero
	}
	return v
}

// build converts a deviceSpec into a Device.
func (s deviceSpec) build() (*Device, error) {
	id := strings.TrimSpace(s.ID)
	if id == "" {
		id = strings.TrimSpace(s.Name)
	}
	if id == "" {
		return nil, errors.New(errors.ErrDeviceParse, "device has neither id nor name")
	}
	p := &fieldParser{device: id}

	d := &Device{
		ID:           id,
		Name:         strings.TrimSpace(s.Name),
		Manufacturer: strings.TrimSpace(s.Manufacturer),
		Screen: Screen{
			Size:    parseField(p, "screen size", s.Screen.Size, resources.ScreenSizeFromValue),
			Ratio:   parseField(p, "screen ratio", s.Screen.Ratio, resources.ScreenRatioFromValue),
			Density: parseField(p, "density", s.Screen.Density, resources.DensityFromValue),
			XPixels: s.Screen.Width,
			YPixels: s.Screen.Height,
		},
		Hardware: Hardware{
			Touch:    parseField(p, "touch", s.Touch, resources.TouchScreenFromValue),
			Keyboard: parseField(p, "keyboard", s.Keyboard, resources.TextInputMethodFromValue),
			Nav:      parseField(p, "nav", s.Nav, resources.NavigationFromValue),
			UiMode:   parseField(p, "ui mode", s.UiMode, resources.UiModeFromValue),
		},
	}
	if d.Name == "" {
		d.Name = id
	}

	for _, st := range s.States {
		d.States = append(d.States, State{
			Name:        strings.TrimSpace(st.Name),
			Description: strings.TrimSpace(st.Description),
			Default:     st.Default,
			Orientation: parseField(p, "orientation", st.Orientation, resources.ScreenOrientationFromValue),
			KeyState:    parseField(p, "keyboard state", st.Keyboard, resources.KeyboardStateFromValue),
			NavState:    parseField(p, "nav state", st.Nav, resources.NavigationStateFromValue),
		})
	}
	if p.err != nil {
		return nil, p.err
	}

	level, err := parseAPILevel(apiLevelString(s.APILevel))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDeviceParse, "device %s: invalid api level %v", id, s.APILevel).
			WithDetail("device", id)
	}
	d.APILevel = level

	if d.Screen.XPixels < 0 || d.Screen.YPixels < 0 {
		return nil, errors.Newf(errors.ErrDeviceParse, "device %s: negative screen dimension", id).
			WithDetail("device", id)
	}
	if len(d.States) == 0 {
		d.States = []State{{Name: "Default", Default: true}}
	}
	for i, st := range d.States {
		if st.Name == "" {
			return nil, errors.Newf(errors.ErrDeviceParse, "device %s: state %d has no name", id, i+1).
				WithDetail("device", id)
		}
	}
	return d, nil
}

// apiLevelString accepts api levels written as numbers or strings.
func apiLevelString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// parseAPILevel reads an api level as written in devices.xml: "23", "7-",
// "15-18" or "-". Ranges resolve to their highest bound, open ranges to
// their lower bound, and "-" or "" to 0.
func parseAPILevel(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0, nil
	}
	lo, hi, isRange := strings.Cut(s, "-")
	bound := lo
	if isRange && strings.TrimSpace(hi) != "" {
		bound = hi
	}
	level, err := strconv.Atoi(strings.TrimSpace(bound))
	if err != nil {
		return 0, err
	}
	if level < 0 {
		return 0, fmt.Errorf("negative api level %d", level)
	}
	return level, nil
}
