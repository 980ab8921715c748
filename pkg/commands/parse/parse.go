// Package parse implements the parse command: decode folder names and
// qualifier strings into their per-axis qualifiers.
package parse

import (
	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/folderconfig"
	"github.com/arthur-debert/resconf/pkg/logging"
	"github.com/arthur-debert/resconf/pkg/qualifiers"
	"github.com/arthur-debert/resconf/pkg/resources"
)

// Options defines the options for the Parse command.
type Options struct {
	// Inputs are folder names ("values-en-rUS") or bare qualifier strings
	// ("en-rUS-hdpi")
	Inputs []string
}

// Qualifier is one set axis of a parsed configuration.
type Qualifier struct {
	Axis    string `json:"axis"`
	Segment string `json:"segment"`
	Short   string `json:"short"`
	Long    string `json:"long"`
	Since   int    `json:"since"`
}

// Folder is the parse outcome of one input.
type Folder struct {
	Input      string      `json:"input"`
	Valid      bool        `json:"valid"`
	Error      string      `json:"error,omitempty"`
	Type       string      `json:"type,omitempty"`
	Qualifiers []Qualifier `json:"qualifiers,omitempty"`
	// Canonical is the qualifier string re-serialized in axis order
	Canonical string `json:"canonical"`
	// Normalized adds the version implied by the qualifiers
	Normalized string `json:"normalized"`
	MinSdk     int    `json:"minSdk"`
	Display    string `json:"display"`
}

// Result holds one entry per input, in input order.
type Result struct {
	Folders []Folder `json:"folders"`
}

// Invalid returns the inputs that did not parse.
func (r *Result) Invalid() []string {
	var out []string
	for _, f := range r.Folders {
		if !f.Valid {
			out = append(out, f.Input)
		}
	}
	return out
}

// Configuration parses a folder name or, when the first segment is not a
// resource type, a bare qualifier string. The folder type is empty for
// qualifier strings.
func Configuration(input string) (resources.FolderType, *folderconfig.FolderConfiguration, error) {
	if folderType, ok := resources.FolderTypeFromName(input); ok {
		config := folderconfig.GetConfigForFolder(input)
		if config == nil {
			return "", nil, errors.Newf(errors.ErrFolderInvalid, "invalid qualifiers in folder %q", input).
				WithDetail("folder", input)
		}
		return folderType, config, nil
	}

	config := folderconfig.GetConfigForQualifierString(input)
	if config == nil {
		return "", nil, errors.Newf(errors.ErrQualifierInvalid, "%q is neither a resource folder nor a qualifier string", input).
			WithDetail("input", input)
	}
	return "", config, nil
}

// Parse decodes every input. Inputs that do not parse are reported in the
// result rather than failing the command.
func Parse(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.parse")
	log.Debug().Int("inputs", len(opts.Inputs)).Msg("Executing command")

	if len(opts.Inputs) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "nothing to parse")
	}

	result := &Result{Folders: make([]Folder, 0, len(opts.Inputs))}
	for _, input := range opts.Inputs {
		result.Folders = append(result.Folders, describe(input))
	}

	log.Info().Int("invalid", len(result.Invalid())).Msg("Command finished")
	return result, nil
}

func describe(input string) Folder {
	folderType, config, err := Configuration(input)
	if err != nil {
		return Folder{Input: input, Error: err.Error()}
	}

	f := Folder{
		Input:     input,
		Valid:     true,
		Type:      string(folderType),
		Canonical: config.QualifierString(),
		MinSdk:    config.MinSdk(),
		Display:   config.DisplayString(),
	}
	for _, q := range config.Qualifiers() {
		f.Qualifiers = append(f.Qualifiers, Qualifier{
			Axis:    qualifiers.Name(q),
			Segment: q.FolderSegment(),
			Short:   q.ShortDisplayValue(),
			Long:    q.LongDisplayValue(),
			Since:   q.Since(),
		})
	}

	normalized := config.Copy()
	normalized.Normalize()
	f.Normalized = normalized.QualifierString()
	if folderType != "" {
		f.Canonical = config.FolderName(folderType)
		f.Normalized = normalized.FolderName(folderType)
	}
	return f
}
