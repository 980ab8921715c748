// Package filter implements the filter command: keep the folders a product
// configuration ships.
package filter

import (
	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/logging"
	"github.com/arthur-debert/resconf/pkg/product"
	"github.com/arthur-debert/resconf/pkg/resolver"
)

// Options defines the options for the Filter command.
type Options struct {
	// Configs are aapt-style product entries such as "en_US,xhdpi"
	Configs []string
	// PreferredDensity keeps one density per group of otherwise equal
	// folders
	PreferredDensity string
	// Folders are resource folder names
	Folders []string
}

// Result of the Filter command. Both lists keep the input order.
type Result struct {
	Configs          []string `json:"configs"`
	PreferredDensity string   `json:"preferredDensity,omitempty"`
	Kept             []string `json:"kept"`
	Dropped          []string `json:"dropped"`
}

// Filter applies the product filter to the folders.
func Filter(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.filter")
	log.Debug().
		Strs("configs", opts.Configs).
		Str("preferredDensity", opts.PreferredDensity).
		Int("folders", len(opts.Folders)).
		Msg("Executing command")
	defer logging.LogOperationStart(log, "filter")()

	if len(opts.Folders) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no folders to filter")
	}

	f, err := product.NewFilter(opts.Configs, opts.PreferredDensity)
	if err != nil {
		return nil, err
	}
	folders, err := resolver.NewFolders(opts.Folders)
	if err != nil {
		return nil, err
	}

	kept := product.Apply(f, folders)
	keep := make(map[*resolver.Folder]bool, len(kept))
	for _, folder := range kept {
		keep[folder] = true
	}

	result := &Result{
		Configs:          f.Entries(),
		PreferredDensity: opts.PreferredDensity,
		Kept:             []string{},
		Dropped:          []string{},
	}
	for _, folder := range folders {
		if keep[folder] {
			result.Kept = append(result.Kept, folder.Name)
		} else {
			result.Dropped = append(result.Dropped, folder.Name)
		}
	}

	log.Info().Int("kept", len(result.Kept)).Int("dropped", len(result.Dropped)).Msg("Command finished")
	return result, nil
}
