package folderconfig

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/resconf/pkg/qualifiers"
)

// Equal reports whether both configurations hold the same qualifiers.
func (c *FolderConfiguration) Equal(other *FolderConfiguration) bool {
	if c == nil || other == nil {
		return c == other
	}
	for i := range c.qualifiers {
		if !qualifiers.Equal(c.qualifiers[i], other.qualifiers[i]) {
			return false
		}
	}
	return true
}

// Compare orders configurations from least to most specific. The default
// configuration sorts first. Otherwise slots are compared in axis order: an
// empty slot sorts before a set one, and two set slots compare by folder
// segment. The first difference decides.
func (c *FolderConfiguration) Compare(other *FolderConfiguration) int {
	switch {
	case c.IsDefault() && other.IsDefault():
		return 0
	case c.IsDefault():
		return -1
	case other.IsDefault():
		return 1
	}

	for i := range c.qualifiers {
		a, b := c.qualifiers[i], other.qualifiers[i]
		switch {
		case a == nil && b == nil:
			continue
		case a == nil:
			return -1
		case b == nil:
			return 1
		}
		if r := qualifiers.Compare(a, b); r != 0 {
			return r
		}
	}
	return 0
}

// IsMatchFor reports whether a resource with configuration c can be used
// for reference. Only axes set on both sides are checked; a slot missing on
// either side never disqualifies.
func (c *FolderConfiguration) IsMatchFor(reference *FolderConfiguration) bool {
	if reference == nil {
		return false
	}
	for i, q := range c.qualifiers {
		ref := reference.qualifiers[i]
		if q != nil && ref != nil && !q.IsMatchFor(ref) {
			return false
		}
	}
	return true
}

// DisplayString renders the configuration for humans, e.g.
// "Locale en_US, High Density". Language and region are combined into one
// locale entry when both are set.
func (c *FolderConfiguration) DisplayString() string {
	return c.display(qualifiers.Qualifier.LongDisplayValue, "Locale %s_%s")
}

// ShortDisplayString is the compact form of DisplayString.
func (c *FolderConfiguration) ShortDisplayString() string {
	return c.display(qualifiers.Qualifier.ShortDisplayValue, "%s_%s")
}

func (c *FolderConfiguration) display(value func(qualifiers.Qualifier) string, localeFormat string) string {
	if c.IsDefault() {
		return "default"
	}

	lang := c.qualifiers[qualifiers.AxisLanguage]
	region := c.qualifiers[qualifiers.AxisRegion]
	combined := lang != nil && region != nil

	var parts []string
	for i, q := range c.qualifiers {
		axis := qualifiers.Axis(i)
		if combined && axis == qualifiers.AxisLanguage {
			parts = append(parts, fmt.Sprintf(localeFormat, lang.ShortDisplayValue(), region.ShortDisplayValue()))
			continue
		}
		if combined && axis == qualifiers.AxisRegion {
			continue
		}
		if q == nil {
			continue
		}
		if s := value(q); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
