// Package commands provides the command implementations behind the resconf
// CLI.
//
// Each command is implemented in its own subdirectory:
//   - parse/       - Parse folder names and qualifier strings
//   - match/       - Match folders against a reference configuration
//   - order/       - Sort folders by specificity
//   - filter/      - Apply a product configuration filter
//   - device/      - List and describe catalog devices
//   - axes/        - Describe the configuration axes
//   - environment/ - Shared paths, config and device catalog loading
//
// This file re-exports the command functions so callers need a single
// import.
package commands

import (
	"github.com/arthur-debert/resconf/pkg/commands/axes"
	"github.com/arthur-debert/resconf/pkg/commands/device"
	"github.com/arthur-debert/resconf/pkg/commands/environment"
	"github.com/arthur-debert/resconf/pkg/commands/filter"
	"github.com/arthur-debert/resconf/pkg/commands/match"
	"github.com/arthur-debert/resconf/pkg/commands/order"
	"github.com/arthur-debert/resconf/pkg/commands/parse"
	"github.com/arthur-debert/resconf/pkg/devices"
)

// LoadEnvironment resolves paths, configuration and the device catalog.
type EnvironmentOptions = environment.Options

func LoadEnvironment(opts EnvironmentOptions) (*environment.Environment, error) {
	return environment.Load(opts)
}

// Parse decodes folder names and qualifier strings.
type ParseOptions = parse.Options

func Parse(opts ParseOptions) (*parse.Result, error) {
	return parse.Parse(opts)
}

// Match selects the candidates that best serve a reference configuration.
type MatchOptions = match.Options

func Match(opts MatchOptions) (*match.Result, error) {
	return match.Match(opts)
}

// Sort orders folders from least to most specific.
type SortOptions = order.Options

func Sort(opts SortOptions) (*order.Result, error) {
	return order.Sort(opts)
}

// Filter keeps the folders a product configuration ships.
type FilterOptions = filter.Options

func Filter(opts FilterOptions) (*filter.Result, error) {
	return filter.Filter(opts)
}

// ListDevices summarizes the device catalog.
func ListDevices(catalog *devices.Catalog) (*device.ListResult, error) {
	return device.List(catalog)
}

// ShowDevice describes a device and its state configurations.
func ShowDevice(catalog *devices.Catalog, id string, opts ...devices.Option) (*device.ShowResult, error) {
	return device.Show(catalog, id, opts...)
}

// Axes describes the configuration axes.
func Axes() *axes.Result {
	return axes.Axes()
}
