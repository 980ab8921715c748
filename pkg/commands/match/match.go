// Package match implements the match command: pick the resource folders
// that best serve a reference configuration.
package match

import (
	"strings"

	"github.com/arthur-debert/resconf/pkg/commands/parse"
	"github.com/arthur-debert/resconf/pkg/devices"
	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/folderconfig"
	"github.com/arthur-debert/resconf/pkg/logging"
	"github.com/arthur-debert/resconf/pkg/qualifiers"
	"github.com/arthur-debert/resconf/pkg/resolver"
	"github.com/arthur-debert/resconf/pkg/resources"
)

// Options defines the options for the Match command.
type Options struct {
	// Reference is a folder name or qualifier string. Mutually exclusive
	// with Device.
	Reference string

	// Device is a catalog id; the reference is the configuration the
	// device presents in State.
	Device  string
	State   string
	Catalog *devices.Catalog

	// Locale is "en", "en-rUS" or "en_US" and applies to device references
	Locale string
	// Night switches device references to night mode
	Night bool
	// Overlay is a qualifier string whose qualifiers replace those of the
	// reference, e.g. "ldrtl-night"
	Overlay string

	// Candidates are resource folder names or qualifier strings
	Candidates []string
	// Normalize adds the implied version to every candidate before
	// matching
	Normalize bool
}

// Candidate is the match outcome of one candidate folder.
type Candidate struct {
	Name          string `json:"name"`
	Configuration string `json:"configuration"`
	Matches       bool   `json:"matches"`
	Selected      bool   `json:"selected"`
}

// Result of the Match command.
type Result struct {
	Reference  string      `json:"reference"`
	Device     string      `json:"device,omitempty"`
	State      string      `json:"state,omitempty"`
	Candidates []Candidate `json:"candidates"`
	Best       []string    `json:"best"`
}

// Found reports whether any candidate was selected.
func (r *Result) Found() bool {
	return len(r.Best) > 0
}

type candidate struct {
	name   string
	config *folderconfig.FolderConfiguration
}

func (c candidate) Configuration() *folderconfig.FolderConfiguration { return c.config }

// Match resolves the reference and runs the best-match resolver over the
// candidates. An empty selection is not an error.
func Match(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.match")
	log.Debug().
		Str("reference", opts.Reference).
		Str("device", opts.Device).
		Int("candidates", len(opts.Candidates)).
		Msg("Executing command")
	defer logging.LogOperationStart(log, "match")()

	reference, err := Reference(opts)
	if err != nil {
		return nil, err
	}

	candidates := make([]candidate, 0, len(opts.Candidates))
	for _, name := range opts.Candidates {
		_, config, err := parse.Configuration(name)
		if err != nil {
			return nil, err
		}
		if opts.Normalize {
			config.Normalize()
		}
		candidates = append(candidates, candidate{name: name, config: config})
	}

	matches := resolver.FindMatchingConfigurables(reference, candidates)

	selected := make(map[int]bool, len(matches))
	best := make([]string, 0, len(matches))
	m := 0
	for i := range candidates {
		if m < len(matches) && matches[m].config == candidates[i].config {
			selected[i] = true
			best = append(best, candidates[i].name)
			m++
		}
	}

	result := &Result{
		Reference:  reference.QualifierString(),
		Device:     opts.Device,
		State:      opts.State,
		Candidates: make([]Candidate, 0, len(candidates)),
		Best:       best,
	}
	for i, c := range candidates {
		result.Candidates = append(result.Candidates, Candidate{
			Name:          c.name,
			Configuration: c.config.QualifierString(),
			Matches:       c.config.IsMatchFor(reference),
			Selected:      selected[i],
		})
	}

	log.Info().
		Str("reference", result.Reference).
		Strs("best", best).
		Msg("Command finished")
	return result, nil
}

// Reference builds the reference configuration described by opts: either
// the parsed Reference or the device configuration with the locale, night
// mode and overlay applied.
func Reference(opts Options) (*folderconfig.FolderConfiguration, error) {
	if opts.Reference != "" && opts.Device != "" {
		return nil, errors.New(errors.ErrInvalidInput, "a reference configuration and a device are mutually exclusive")
	}

	if opts.Device == "" {
		_, reference, err := parse.Configuration(opts.Reference)
		if opts.Reference == "" {
			reference, err = folderconfig.New(), nil
		}
		if err != nil {
			return nil, err
		}
		return reference, applyOverlay(reference, opts.Overlay)
	}

	if opts.Catalog == nil {
		return nil, errors.New(errors.ErrInternal, "no device catalog loaded")
	}
	device, err := opts.Catalog.Get(opts.Device)
	if err != nil {
		return nil, err
	}

	var options []devices.Option
	if opts.Locale != "" {
		locale, err := ParseLocale(opts.Locale)
		if err != nil {
			return nil, err
		}
		options = append(options, locale)
	}
	if opts.Night {
		options = append(options, devices.WithNightMode(resources.NightModeNight))
	}

	reference, err := device.Configuration(opts.State, options...)
	if err != nil {
		return nil, err
	}
	return reference, applyOverlay(reference, opts.Overlay)
}

func applyOverlay(reference *folderconfig.FolderConfiguration, overlay string) error {
	if overlay == "" {
		return nil
	}
	config := folderconfig.GetConfigForQualifierString(overlay)
	if config == nil {
		return errors.Newf(errors.ErrQualifierInvalid, "invalid qualifier overlay %q", overlay).
			WithDetail("overlay", overlay)
	}
	reference.Add(config)
	return nil
}

// ParseLocale turns "en", "en-rUS" or "en_US" into a device option.
func ParseLocale(locale string) (devices.Option, error) {
	qualifierString := locale
	if language, region, found := strings.Cut(locale, "_"); found {
		qualifierString = language + "-r" + region
	}

	config := folderconfig.GetConfigForQualifierString(qualifierString)
	invalid := errors.Newf(errors.ErrQualifierInvalid, "invalid locale %q", locale).
		WithDetail("locale", locale)
	if config == nil {
		return nil, invalid
	}
	lang, ok := config.Language()
	if !ok {
		return nil, invalid
	}
	for _, q := range config.Qualifiers() {
		if axis := q.Axis(); axis != qualifiers.AxisLanguage && axis != qualifiers.AxisRegion {
			return nil, invalid
		}
	}
	r, _ := config.Region()
	return devices.WithLocale(lang.Value(), r.Value()), nil
}
