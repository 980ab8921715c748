package devices

import (
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/resconf/pkg/errors"
)

// uiModeByTag maps devices.xml tag ids to the ui mode of the device.
var uiModeByTag = map[string]string{
	"android-wear":       "watch",
	"android-tv":         "television",
	"android-automotive": "car",
	"android-desktop":    "desk",
}

// ParseXML reads devices in the Android SDK devices.xml format. Elements are
// matched by local name, so any namespace prefix is accepted.
func ParseXML(r io.Reader) ([]*Device, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, errors.ErrDeviceParse, "malformed devices xml")
	}

	elements := doc.FindElements("//device")
	devices := make([]*Device, 0, len(elements))
	for _, el := range elements {
		d, err := xmlDeviceSpec(el).build()
		if err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}
	return devices, nil
}

func xmlDeviceSpec(el *etree.Element) deviceSpec {
	s := deviceSpec{
		ID:           childText(el, "id"),
		Name:         childText(el, "name"),
		Manufacturer: childText(el, "manufacturer"),
		APILevel:     pathText(el, "software/api-level"),
		UiMode:       uiModeByTag[childText(el, "tag-id")],
	}

	if hw := el.SelectElement("hardware"); hw != nil {
		s.Keyboard = childText(hw, "keyboard")
		s.Nav = childText(hw, "nav")
		if screen := hw.SelectElement("screen"); screen != nil {
			s.Screen = screenSpec{
				Size:    childText(screen, "screen-size"),
				Ratio:   childText(screen, "screen-ratio"),
				Density: childText(screen, "pixel-density"),
				Width:   atoi(pathText(screen, "dimensions/x-dimension")),
				Height:  atoi(pathText(screen, "dimensions/y-dimension")),
			}
			s.Touch = childText(screen, "mechanism")
		}
	}

	for _, st := range el.SelectElements("state") {
		s.States = append(s.States, stateSpec{
			Name:        st.SelectAttrValue("name", ""),
			Description: childText(st, "description"),
			Default:     strings.EqualFold(st.SelectAttrValue("default", "false"), "true"),
			Orientation: childText(st, "screen-orientation"),
			Keyboard:    childText(st, "keyboard-state"),
			Nav:         navState(childText(st, "nav-state")),
		})
	}
	return s
}

// navState drops "nonav", which devices.xml uses for devices without
// navigation hardware.
func navState(s string) string {
	if strings.EqualFold(s, "nonav") {
		return ""
	}
	return s
}

func childText(el *etree.Element, tag string) string {
	if c := el.SelectElement(tag); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}

func pathText(el *etree.Element, path string) string {
	if c := el.FindElement(path); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}
