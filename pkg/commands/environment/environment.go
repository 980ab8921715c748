// Package environment assembles what every command needs: the resolved
// paths, the layered configuration and the device catalog.
package environment

import (
	"github.com/arthur-debert/resconf/pkg/config"
	"github.com/arthur-debert/resconf/pkg/devices"
	"github.com/arthur-debert/resconf/pkg/logging"
	"github.com/arthur-debert/resconf/pkg/paths"
)

// Options selects the project directory and config sources
type Options struct {
	// ProjectDir defaults to the working directory
	ProjectDir string
	// ConfigFile replaces the project config file when set
	ConfigFile string
	// Overrides are config keys set from the command line
	Overrides map[string]interface{}
}

// Environment is the loaded state shared by commands
type Environment struct {
	Paths   paths.Paths
	Config  *config.Config
	Catalog *devices.Catalog
}

// Load resolves paths, loads the configuration and builds the device
// catalog: the built-in devices, then the user devices directory, then
// every file listed in devices.paths.
func Load(opts Options) (*Environment, error) {
	logger := logging.GetLogger("environment")

	p, err := paths.New(opts.ProjectDir)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfiguration(config.Options{
		Paths:     p,
		File:      opts.ConfigFile,
		Overrides: opts.Overrides,
	})
	if err != nil {
		return nil, err
	}

	catalog, err := devices.BuiltinCatalog()
	if err != nil {
		return nil, err
	}
	if err := catalog.LoadDir(p.DevicesDir()); err != nil {
		return nil, err
	}
	for _, file := range cfg.Devices.Paths {
		path, err := p.NormalizePath(file)
		if err != nil {
			return nil, err
		}
		if err := catalog.LoadFile(path); err != nil {
			return nil, err
		}
	}

	logger.Debug().
		Str("project", p.ProjectDir()).
		Int("devices", catalog.Len()).
		Msg("Environment loaded")

	return &Environment{Paths: p, Config: cfg, Catalog: catalog}, nil
}
