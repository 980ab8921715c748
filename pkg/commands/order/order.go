// Package order implements the sort command: list folders from least to
// most specific configuration.
package order

import (
	"slices"

	"github.com/arthur-debert/resconf/pkg/commands/parse"
	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/folderconfig"
	"github.com/arthur-debert/resconf/pkg/logging"
)

// Options defines the options for the Sort command.
type Options struct {
	Inputs []string
	// Reverse lists the most specific folders first
	Reverse bool
}

// Entry is one sorted input.
type Entry struct {
	Name          string `json:"name"`
	Configuration string `json:"configuration"`
	MinSdk        int    `json:"minSdk"`
}

// Result of the Sort command.
type Result struct {
	Entries []Entry `json:"entries"`
}

// Names returns the sorted input names.
func (r *Result) Names() []string {
	out := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Name
	}
	return out
}

// Sort orders the inputs by configuration. Inputs with equal
// configurations keep their relative order. Any invalid input fails the
// command.
func Sort(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.order")
	log.Debug().Int("inputs", len(opts.Inputs)).Bool("reverse", opts.Reverse).Msg("Executing command")

	if len(opts.Inputs) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "nothing to sort")
	}

	type item struct {
		name   string
		config *folderconfig.FolderConfiguration
	}
	items := make([]item, 0, len(opts.Inputs))
	for _, input := range opts.Inputs {
		_, config, err := parse.Configuration(input)
		if err != nil {
			return nil, err
		}
		items = append(items, item{name: input, config: config})
	}

	slices.SortStableFunc(items, func(a, b item) int {
		if opts.Reverse {
			return b.config.Compare(a.config)
		}
		return a.config.Compare(b.config)
	})

	result := &Result{Entries: make([]Entry, 0, len(items))}
	for _, it := range items {
		result.Entries = append(result.Entries, Entry{
			Name:          it.name,
			Configuration: it.config.QualifierString(),
			MinSdk:        it.config.MinSdk(),
		})
	}

	log.Info().Strs("order", result.Names()).Msg("Command finished")
	return result, nil
}
