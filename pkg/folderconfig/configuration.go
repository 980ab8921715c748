package folderconfig

import (
	"strings"

	"github.com/arthur-debert/resconf/pkg/qualifiers"
	"github.com/arthur-debert/resconf/pkg/resources"
)

// FolderConfiguration is the set of qualifiers of one resource folder, one
// optional slot per axis.
//
// A FolderConfiguration is a mutable value owned by one goroutine at a time;
// it must not be modified while a resolver is reading it.
type FolderConfiguration struct {
	qualifiers [qualifiers.AxisCount]qualifiers.Qualifier
}

// New returns an empty (default) configuration.
func New() *FolderConfiguration {
	return &FolderConfiguration{}
}

// CreateDefault returns a configuration with every slot holding the unset
// qualifier of its axis.
func CreateDefault() *FolderConfiguration {
	return &FolderConfiguration{qualifiers: qualifiers.DefaultQualifiers()}
}

// Copy returns an independent copy of c.
func (c *FolderConfiguration) Copy() *FolderConfiguration {
	out := *c
	return &out
}

// Configuration lets a bare FolderConfiguration be used wherever a
// configurable item is expected.
func (c *FolderConfiguration) Configuration() *FolderConfiguration { return c }

// SetQualifier installs q in the slot of its axis. A nil q is ignored.
func (c *FolderConfiguration) SetQualifier(q qualifiers.Qualifier) {
	if q == nil {
		return
	}
	c.qualifiers[q.Axis()] = q
}

// Qualifier returns the qualifier at axis, or nil.
func (c *FolderConfiguration) Qualifier(axis qualifiers.Axis) qualifiers.Qualifier {
	if !axis.IsValid() {
		return nil
	}
	return c.qualifiers[axis]
}

// RemoveQualifier clears the slot at axis.
func (c *FolderConfiguration) RemoveQualifier(axis qualifiers.Axis) {
	if axis.IsValid() {
		c.qualifiers[axis] = nil
	}
}

// Qualifiers returns the non-nil qualifiers in axis order.
func (c *FolderConfiguration) Qualifiers() []qualifiers.Qualifier {
	var out []qualifiers.Qualifier
	for _, q := range c.qualifiers {
		if q != nil {
			out = append(out, q)
		}
	}
	return out
}

// Get returns the qualifier of type T held by c, if any.
func Get[T qualifiers.Qualifier](c *FolderConfiguration) (T, bool) {
	var zero T
	q, ok := c.qualifiers[zero.Axis()].(T)
	return q, ok
}

// Language returns the language qualifier, if set.
func (c *FolderConfiguration) Language() (qualifiers.LanguageQualifier, bool) {
	return Get[qualifiers.LanguageQualifier](c)
}

// Region returns the region qualifier, if set.
func (c *FolderConfiguration) Region() (qualifiers.RegionQualifier, bool) {
	return Get[qualifiers.RegionQualifier](c)
}

// Density returns the density qualifier, if set.
func (c *FolderConfiguration) Density() (qualifiers.DensityQualifier, bool) {
	return Get[qualifiers.DensityQualifier](c)
}

// Version returns the version qualifier, if set.
func (c *FolderConfiguration) Version() (qualifiers.VersionQualifier, bool) {
	return Get[qualifiers.VersionQualifier](c)
}

// IsDefault reports whether no slot is set.
func (c *FolderConfiguration) IsDefault() bool {
	for _, q := range c.qualifiers {
		if q != nil {
			return false
		}
	}
	return true
}

// CheckRegion reports whether the region slot is consistent: a region may
// only be set together with a language.
func (c *FolderConfiguration) CheckRegion() bool {
	return c.qualifiers[qualifiers.AxisRegion] == nil || c.qualifiers[qualifiers.AxisLanguage] != nil
}

// HighestPriorityQualifier returns the first axis at or after start that
// holds a qualifier.
func (c *FolderConfiguration) HighestPriorityQualifier(start qualifiers.Axis) (qualifiers.Axis, bool) {
	for i := start; i < qualifiers.AxisCount; i++ {
		if i >= 0 && c.qualifiers[i] != nil {
			return i, true
		}
	}
	return 0, false
}

// InvalidQualifier returns the first qualifier that is present but unset.
func (c *FolderConfiguration) InvalidQualifier() qualifiers.Qualifier {
	for _, q := range c.qualifiers {
		if q != nil && !q.IsValid() {
			return q
		}
	}
	return nil
}

// segments returns the non-empty folder segments in axis order.
func (c *FolderConfiguration) segments() []string {
	var out []string
	for _, q := range c.qualifiers {
		if q == nil {
			continue
		}
		if s := q.FolderSegment(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// QualifierString returns the qualifier part of a folder name, e.g.
// "en-rUS-hdpi". It is empty for a default configuration.
func (c *FolderConfiguration) QualifierString() string {
	return strings.Join(c.segments(), "-")
}

// UniqueKey returns the qualifier part of a folder name with its leading
// separator, e.g. "-en-rUS". Equal configurations share a key.
func (c *FolderConfiguration) UniqueKey() string {
	var b strings.Builder
	for _, s := range c.segments() {
		b.WriteString("-")
		b.WriteString(s)
	}
	return b.String()
}

// FolderName returns the full folder name for a resource folder type.
func (c *FolderConfiguration) FolderName(t resources.FolderType) string {
	return string(t) + c.UniqueKey()
}

func (c *FolderConfiguration) String() string {
	return c.QualifierString()
}
