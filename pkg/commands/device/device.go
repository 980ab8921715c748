// Package device implements the devices commands: list the catalog and
// show the reference configurations of one device.
package device

import (
	"github.com/arthur-debert/resconf/pkg/devices"
	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/logging"
)

// Summary is one catalog entry.
type Summary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	APILevel     int      `json:"apiLevel,omitempty"`
	Density      string   `json:"density,omitempty"`
	States       []string `json:"states"`
}

// ListResult of the device list command.
type ListResult struct {
	Devices []Summary `json:"devices"`
}

// List summarizes every device of the catalog, ordered by id.
func List(catalog *devices.Catalog) (*ListResult, error) {
	log := logging.GetLogger("commands.device")
	if catalog == nil {
		return nil, errors.New(errors.ErrInternal, "no device catalog loaded")
	}

	result := &ListResult{Devices: make([]Summary, 0, catalog.Len())}
	for _, d := range catalog.Devices() {
		result.Devices = append(result.Devices, summarize(d))
	}

	log.Debug().Int("devices", len(result.Devices)).Msg("Listed devices")
	return result, nil
}

func summarize(d *devices.Device) Summary {
	return Summary{
		ID:           d.ID,
		Name:         d.Name,
		Manufacturer: d.Manufacturer,
		APILevel:     d.APILevel,
		Density:      d.Screen.Density.String(),
		States:       d.StateNames(),
	}
}

// State is one device state with the reference configuration it presents.
type State struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Default       bool   `json:"default"`
	WidthDp       int    `json:"widthDp"`
	HeightDp      int    `json:"heightDp"`
	Configuration string `json:"configuration"`
	Display       string `json:"display"`
}

// ShowResult of the device show command.
type ShowResult struct {
	Summary
	Size       string  `json:"size,omitempty"`
	Ratio      string  `json:"ratio,omitempty"`
	XPixels    int     `json:"xPixels,omitempty"`
	YPixels    int     `json:"yPixels,omitempty"`
	Touch      string  `json:"touch,omitempty"`
	Keyboard   string  `json:"keyboard,omitempty"`
	Navigation string  `json:"navigation,omitempty"`
	UiMode     string  `json:"uiMode,omitempty"`
	Details    []State `json:"stateDetails"`
}

// Show describes one device and the reference configuration of each of its
// states. opts are applied to every state configuration.
func Show(catalog *devices.Catalog, id string, opts ...devices.Option) (*ShowResult, error) {
	log := logging.GetLogger("commands.device")
	if catalog == nil {
		return nil, errors.New(errors.ErrInternal, "no device catalog loaded")
	}

	d, err := catalog.Get(id)
	if err != nil {
		return nil, err
	}

	result := &ShowResult{
		Summary:    summarize(d),
		Size:       d.Screen.Size.String(),
		Ratio:      d.Screen.Ratio.String(),
		XPixels:    d.Screen.XPixels,
		YPixels:    d.Screen.YPixels,
		Touch:      d.Hardware.Touch.String(),
		Keyboard:   d.Hardware.Keyboard.String(),
		Navigation: d.Hardware.Nav.String(),
		UiMode:     d.Hardware.UiMode.String(),
	}

	defaultState, _ := d.DefaultState()
	for _, s := range d.States {
		config, err := d.Configuration(s.Name, opts...)
		if err != nil {
			return nil, err
		}
		width, height := d.ScreenDp(s.Orientation)
		result.Details = append(result.Details, State{
			Name:          s.Name,
			Description:   s.Description,
			Default:       s.Name == defaultState.Name,
			WidthDp:       width,
			HeightDp:      height,
			Configuration: config.QualifierString(),
			Display:       config.DisplayString(),
		})
	}

	log.Debug().Str("device", d.ID).Int("states", len(result.Details)).Msg("Described device")
	return result, nil
}
