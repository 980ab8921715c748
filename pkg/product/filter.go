package product

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/folderconfig"
	"github.com/arthur-debert/resconf/pkg/logging"
	"github.com/arthur-debert/resconf/pkg/qualifiers"
	"github.com/arthur-debert/resconf/pkg/resolver"
	"github.com/arthur-debert/resconf/pkg/resources"
)

// aapt spells locales en_US.
var underscoreLocale = regexp.MustCompile(`^([a-zA-Z]{2})_([a-zA-Z]{2})$`)

// Grouped is implemented by items whose configuration alone does not
// identify them, such as resource folders of different types.
type Grouped interface {
	GroupKey() string
}

// Filter is a product resource filter.
type Filter struct {
	allowed   map[qualifiers.Axis][]qualifiers.Qualifier
	preferred qualifiers.Qualifier
	entries   []string
}

// NewFilter builds a filter from aapt-style configuration entries and an
// optional preferred density. Entries may hold comma-separated lists and
// multi-qualifier strings: "normal,large", "xhdpi", "en_US", "en-rGB".
func NewFilter(configs []string, preferredDensity string) (*Filter, error) {
	f := &Filter{allowed: make(map[qualifiers.Axis][]qualifiers.Qualifier)}

	for _, list := range configs {
		for _, entry := range strings.Split(list, ",") {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}
			c := folderconfig.GetConfigForQualifierString(normalizeEntry(entry))
			if c == nil || c.IsDefault() {
				return nil, errors.Newf(errors.ErrQualifierInvalid, "invalid product config %q", entry).
					WithDetail("entry", entry)
			}
			for _, q := range c.Qualifiers() {
				f.allow(q)
			}
			f.entries = append(f.entries, entry)
		}
	}

	if preferredDensity != "" {
		d, ok := resources.DensityFromValue(preferredDensity)
		if !ok || !d.IsRealDensity() {
			return nil, errors.Newf(errors.ErrQualifierInvalid, "invalid preferred density %q", preferredDensity).
				WithDetail("density", preferredDensity)
		}
		f.preferred = qualifiers.NewDensityQualifier(d)
	}
	return f, nil
}

func normalizeEntry(entry string) string {
	if m := underscoreLocale.FindStringSubmatch(entry); m != nil {
		return m[1] + "-r" + m[2]
	}
	return entry
}

func (f *Filter) allow(q qualifiers.Qualifier) {
	for _, existing := range f.allowed[q.Axis()] {
		if qualifiers.Equal(existing, q) {
			return
		}
	}
	f.allowed[q.Axis()] = append(f.allowed[q.Axis()], q)
}

// IsEmpty reports whether the filter keeps everything.
func (f *Filter) IsEmpty() bool {
	return len(f.allowed) == 0 && f.preferred == nil
}

// Entries returns the configuration entries the filter was built from.
func (f *Filter) Entries() []string { return f.entries }

// PreferredDensity returns the preferred density, if any.
func (f *Filter) PreferredDensity() (qualifiers.DensityQualifier, bool) {
	d, ok := f.preferred.(qualifiers.DensityQualifier)
	return d, ok
}

// Allows reports whether a configuration passes the configuration list.
// Axes the list does not mention are unrestricted, as are axes the
// configuration leaves unset. Densities that do not describe a screen
// (nodpi, anydpi) always pass.
func (f *Filter) Allows(c *folderconfig.FolderConfiguration) bool {
	for axis, allowed := range f.allowed {
		q := c.Qualifier(axis)
		if q == nil || !q.IsValid() {
			continue
		}
		if d, ok := q.(qualifiers.DensityQualifier); ok && !d.Value().IsRealDensity() {
			continue
		}
		found := false
		for _, a := range allowed {
			if qualifiers.Equal(a, q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Apply returns the items that survive f, in input order.
//
// Items are first checked against the configuration list. With a
// preferred density, the items that differ only in density are then
// grouped and each group keeps only its best match for that density; items
// without a screen density are always kept.
func Apply[T resolver.Configurable](f *Filter, items []T) []T {
	logger := logging.GetLogger("product")

	kept := make([]T, 0, len(items))
	for _, item := range items {
		if f.Allows(item.Configuration()) {
			kept = append(kept, item)
		}
	}
	if f.preferred == nil {
		logDropped(logger, len(items), len(kept))
		return kept
	}

	reference := folderconfig.New()
	reference.SetQualifier(f.preferred)

	groups := make(map[string][]int)
	var order []string
	for i, item := range kept {
		d, ok := item.Configuration().Density()
		if !ok || !d.Value().IsRealDensity() {
			continue
		}
		key := groupKey(item)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	drop := make(map[int]bool)
	for _, key := range order {
		indices := groups[key]
		if len(indices) < 2 {
			continue
		}
		candidates := make([]indexed[T], 0, len(indices))
		for _, i := range indices {
			candidates = append(candidates, indexed[T]{index: i, item: kept[i]})
		}
		best := resolver.FindMatchingConfigurables(reference, candidates)
		keep := make(map[int]bool, len(best))
		for _, b := range best {
			keep[b.index] = true
		}
		for _, i := range indices {
			if !keep[i] {
				drop[i] = true
			}
		}
	}

	out := make([]T, 0, len(kept)-len(drop))
	for i, item := range kept {
		if !drop[i] {
			out = append(out, item)
		}
	}
	logDropped(logger, len(items), len(out))
	return out
}

// indexed remembers where a candidate sits in the filtered slice.
type indexed[T resolver.Configurable] struct {
	index int
	item  T
}

func (i indexed[T]) Configuration() *folderconfig.FolderConfiguration {
	return i.item.Configuration()
}

// groupKey identifies the items that differ only in density.
func groupKey(item resolver.Configurable) string {
	c := item.Configuration().Copy()
	c.RemoveQualifier(qualifiers.AxisDensity)
	key := c.UniqueKey()
	if g, ok := item.(Grouped); ok {
		key = g.GroupKey() + key
	}
	return key
}

func logDropped(logger zerolog.Logger, before, after int) {
	logger.Debug().
		Int("before", before).
		Int("after", after).
		Msg("Applied product filter")
}
