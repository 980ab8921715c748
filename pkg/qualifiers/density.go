package qualifiers

import "github.com/arthur-debert/resconf/pkg/resources"

// DensityQualifier is the screen pixel density, e.g. "hdpi".
//
// Density never excludes a resource: every density matches every other, and
// the preferred one is chosen by IsBetterMatchThan.
type DensityQualifier struct {
	enumQualifier[resources.Density]
}

func NewDensityQualifier(v resources.Density) DensityQualifier {
	return DensityQualifier{enumQualifier[resources.Density]{v}}
}

func parseDensity(segment string) (Qualifier, bool) {
	return parseEnum(segment, resources.DensityFromValue, NewDensityQualifier)
}

func (DensityQualifier) Axis() Axis   { return AxisDensity }
func (q DensityQualifier) Since() int { return q.since(AxisDensity) }

func (DensityQualifier) IsMatchFor(reference Qualifier) bool {
	return true
}

// IsBetterMatchThan prefers the exact density. Otherwise the higher
// density wins, whichever side of the reference it falls on: scaling down
// is preferred over scaling up.
func (q DensityQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	if compareTo == nil {
		return true
	}
	other, ok := compareTo.(DensityQualifier)
	if !ok {
		return false
	}
	ref, ok := reference.(DensityQualifier)
	if !ok {
		return false
	}
	if other.value == ref.value {
		return false
	}
	if q.value == ref.value {
		return true
	}
	return q.value.DPIValue() > other.value.DPIValue()
}
