package resolver

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/resconf/pkg/folderconfig"
	"github.com/arthur-debert/resconf/pkg/qualifiers"
)

var logger = zerolog.Nop()

// SetLogger sets the logger that receives the resolver's trace events.
// Until it is called they are discarded.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Configurable is anything that carries a folder configuration: a resource
// folder, a resource item, or a bare configuration.
type Configurable interface {
	Configuration() *folderconfig.FolderConfiguration
}

// FindMatchingConfigurables returns the candidates that best match
// reference.
//
// Candidates that cannot serve the reference at all are dropped first. The
// survivors are then narrowed axis by axis, in canonical order: on each axis
// the reference sets, if any candidate sets it too, candidates without that
// axis are dropped, and when the axis ranks its values only those holding the
// best value are kept. Narrowing stops once fewer than two candidates remain.
//
// The result keeps the input order and can hold several candidates when
// they are indistinguishable on every axis the reference sets. Neither the
// reference nor the candidates are modified.
func FindMatchingConfigurables[T Configurable](reference *folderconfig.FolderConfiguration, candidates []T) []T {
	if reference == nil {
		panic("resolver: nil reference configuration")
	}
	matching := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if c.Configuration().IsMatchFor(reference) {
			matching = append(matching, c)
		}
	}
	logger.Trace().
		Int("candidates", len(candidates)).
		Int("matching", len(matching)).
		Str("reference", reference.QualifierString()).
		Msg("Eliminated non-matching configurations")

	if len(matching) < 2 {
		return matching
	}

	for _, axis := range qualifiers.Axes() {
		referenceQualifier := reference.Qualifier(axis)
		if referenceQualifier == nil {
			continue
		}

		found := false
		var bestMatch qualifiers.Qualifier
		for _, c := range matching {
			q := c.Configuration().Qualifier(axis)
			if q == nil {
				continue
			}
			found = true
			if q.IsBetterMatchThan(bestMatch, referenceQualifier) {
				bestMatch = q
			}
		}
		if !found {
			continue
		}

		kept := make([]T, 0, len(matching))
		for _, c := range matching {
			q := c.Configuration().Qualifier(axis)
			if q == nil {
				continue
			}
			if bestMatch != nil && !qualifiers.Equal(bestMatch, q) {
				continue
			}
			kept = append(kept, c)
		}
		logger.Trace().
			Str("axis", axis.Name()).
			Int("before", len(matching)).
			Int("after", len(kept)).
			Msg("Refined candidates on axis")
		matching = kept

		if len(matching) < 2 {
			break
		}
	}

	return matching
}

// FindMatchingConfigurable returns the first of FindMatchingConfigurables'
// results. When several candidates tie, which one is returned depends only
// on the order of candidates.
func FindMatchingConfigurable[T Configurable](reference *folderconfig.FolderConfiguration, candidates []T) (T, bool) {
	matches := FindMatchingConfigurables(reference, candidates)
	if len(matches) == 0 {
		var zero T
		return zero, false
	}
	return matches[0], true
}
