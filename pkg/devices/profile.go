package devices

import (
	"io"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/resconf/pkg/errors"
)

// ParseYAML reads a YAML device profile with a top-level "devices" list.
func ParseYAML(r io.Reader) ([]*Device, error) {
	var f deviceFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, errors.ErrDeviceParse, "malformed device yaml")
	}
	return f.build()
}

// ParseTOML reads a TOML device profile made of [[devices]] tables.
func ParseTOML(r io.Reader) ([]*Device, error) {
	var f deviceFile
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, errors.ErrDeviceParse, "malformed device toml")
	}
	return f.build()
}

func (f deviceFile) build() ([]*Device, error) {
	devices := make([]*Device, 0, len(f.Devices))
	for _, spec := range f.Devices {
		d, err := spec.build()
		if err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}
	return devices, nil
}

// atoi reads a pixel dimension; anything unparsable reads as 0.
func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
