package devices

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/logging"
	"github.com/arthur-debert/resconf/pkg/registry"
)

//go:embed embedded/builtin.yaml
var builtinDevices []byte

// Parser reads device definitions from a stream
type Parser func(io.Reader) ([]*Device, error)

// parsers maps file extensions to device parsers
var parsers = map[string]Parser{
	".xml":  ParseXML,
	".yaml": ParseYAML,
	".yml":  ParseYAML,
	".toml": ParseTOML,
}

// Catalog holds devices by id. Ids are case-insensitive.
type Catalog struct {
	devices registry.Registry[*Device]
}

// NewCatalog returns an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{devices: registry.New[*Device]()}
}

// BuiltinCatalog returns a catalog holding the embedded device profiles
func BuiltinCatalog() (*Catalog, error) {
	c := NewCatalog()
	devices, err := ParseYAML(bytes.NewReader(builtinDevices))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "embedded device catalog is invalid")
	}
	for _, d := range devices {
		if err := c.devices.Register(d.ID, d); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "embedded device catalog has duplicate ids")
		}
	}
	return c, nil
}

// Add stores d, replacing any device with the same id
func (c *Catalog) Add(d *Device) error {
	if d == nil {
		return errors.New(errors.ErrInvalidInput, "nil device")
	}
	return c.devices.Put(d.ID, d)
}

// LoadFile adds every device defined in path. The format follows the file
// extension: .xml for devices.xml, .yaml/.yml and .toml for profiles.
func (c *Catalog) LoadFile(path string) error {
	parse, ok := parsers[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return errors.Newf(errors.ErrDeviceParse, "unsupported device file %s", path).
			WithDetail("path", path)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrFileNotFound, "device file %s not found", path).
				WithDetail("path", path)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to open device file %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	devices, err := parse(f)
	if err != nil {
		return errors.Wrapf(err, errors.GetErrorCode(err), "failed to load devices from %s", path).
			WithDetail("path", path)
	}
	for _, d := range devices {
		if err := c.Add(d); err != nil {
			return err
		}
	}

	logger := logging.GetLogger("devices")
	logger.Debug().
		Str("path", path).
		Int("devices", len(devices)).
		Msg("Loaded device file")
	return nil
}

// LoadDir loads every supported file directly inside dir, in name order.
// A missing directory is not an error.
func (c *Catalog) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read device directory %s", dir).
			WithDetail("path", dir)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := parsers[strings.ToLower(filepath.Ext(e.Name()))]; ok {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if err := c.LoadFile(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the device with the given id
func (c *Catalog) Get(id string) (*Device, error) {
	d, err := c.devices.Get(id)
	if err != nil {
		return nil, errors.Newf(errors.ErrDeviceNotFound, "unknown device %q", id).
			WithDetail("device", id)
	}
	return d, nil
}

// Devices returns every device ordered by id
func (c *Catalog) Devices() []*Device {
	return c.devices.Values()
}

// IDs returns every device id in order
func (c *Catalog) IDs() []string {
	return c.devices.List()
}

// Len returns the number of devices
func (c *Catalog) Len() int {
	return c.devices.Count()
}
