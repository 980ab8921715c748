package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/logging"
	"github.com/arthur-debert/resconf/pkg/paths"
)

// EnvPrefix is the prefix of environment variables that override config keys.
// RESCONF_PRODUCT_AAPT_CONFIG sets product.aapt_config.
const EnvPrefix = "RESCONF_"

// Options selects which files LoadConfiguration reads
type Options struct {
	// Paths locates the user and project config files; nil skips both
	Paths paths.Paths
	// File replaces the project config file and must exist when set
	File string
	// Overrides are applied last, keyed by dotted path
	Overrides map[string]interface{}
}

// LoadConfiguration layers the embedded defaults, the user config, the
// project config (or opts.File), RESCONF_* environment variables and
// opts.Overrides, then decodes and validates the result.
func LoadConfiguration(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	// 2. User config, then project config
	if opts.Paths != nil {
		if err := loadOptionalFile(k, opts.Paths.UserConfigFile()); err != nil {
			return nil, err
		}
	}
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", opts.File).
				WithDetail("path", opts.File)
		}
		if err := loadFile(k, opts.File); err != nil {
			return nil, err
		}
	} else if opts.Paths != nil {
		if err := loadOptionalFile(k, opts.Paths.ProjectConfigFile()); err != nil {
			return nil, err
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Explicit overrides, typically from command-line flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("format", cfg.Output.Format).
		Int("devicePaths", len(cfg.Devices.Paths)).
		Strs("aaptConfig", cfg.Product.AaptConfig).
		Msg("Configuration loaded")
	return cfg, nil
}

// Default returns the embedded default configuration alone
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic("config: embedded defaults are invalid: " + err.Error())
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic("config: embedded defaults are invalid: " + err.Error())
	}
	return cfg
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				trimStringSliceHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// envKey maps RESCONF_SECTION_SOME_KEY to section.some_key
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func loadFile(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Loaded config file")
	return nil
}

func loadOptionalFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return loadFile(k, path)
}

// trimStringSliceHookFunc trims entries of decoded string slices and drops
// empty ones, so "normal, xhdpi," reads as [normal xhdpi].
func trimStringSliceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf([]string{}) {
			return data, nil
		}
		var raw []interface{}
		switch v := data.(type) {
		case []string:
			for _, s := range v {
				raw = append(raw, s)
			}
		case []interface{}:
			raw = v
		default:
			return data, nil
		}
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			s, ok := item.(string)
			if !ok {
				return data, nil
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out, nil
	}
}
