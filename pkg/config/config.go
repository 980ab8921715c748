package config

import (
	"strings"

	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/resources"
)

// Output format names accepted in output.format
var outputFormats = []string{"auto", "term", "text", "json", "table"}

// Config is the complete resconf configuration
type Config struct {
	Output  Output  `koanf:"output" toml:"output"`
	Devices Devices `koanf:"devices" toml:"devices"`
	Product Product `koanf:"product" toml:"product"`
	Match   Match   `koanf:"match" toml:"match"`
}

// Output controls how commands render their results
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// Devices configures the device catalog
type Devices struct {
	// Paths lists extra device definition files loaded after the built-ins
	Paths []string `koanf:"paths" toml:"paths"`
	// Default is the device id used when no reference is given
	Default string `koanf:"default" toml:"default"`
}

// Product holds the aapt-style product filter
type Product struct {
	AaptConfig       []string `koanf:"aapt_config" toml:"aapt_config"`
	PreferredDensity string   `koanf:"preferred_density" toml:"preferred_density"`
}

// Match tunes candidate configurations before matching
type Match struct {
	Normalize bool `koanf:"normalize" toml:"normalize"`
}

// Validate checks values that cannot be caught by decoding alone
func (c *Config) Validate() error {
	format := strings.ToLower(c.Output.Format)
	valid := false
	for _, f := range outputFormats {
		if f == format {
			valid = true
			break
		}
	}
	if !valid {
		return errors.Newf(errors.ErrConfigValid, "unknown output format %q", c.Output.Format).
			WithDetails(map[string]interface{}{
				"key":     "output.format",
				"allowed": outputFormats,
			})
	}
	c.Output.Format = format

	if c.Product.PreferredDensity != "" {
		if _, ok := resources.DensityFromValue(c.Product.PreferredDensity); !ok {
			return errors.Newf(errors.ErrConfigValid, "unknown density %q", c.Product.PreferredDensity).
				WithDetail("key", "product.preferred_density")
		}
	}

	return nil
}
