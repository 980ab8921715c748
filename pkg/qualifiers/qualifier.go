package qualifiers

import "strings"

// Qualifier is one value on one axis of a resource configuration.
//
// Implementations are small comparable value types; two qualifiers are equal
// when they are == as interface values. A zero-valued qualifier is unset and
// reports IsValid() == false.
type Qualifier interface {
	// Axis returns the configuration slot the qualifier belongs to.
	Axis() Axis

	// Since returns the API level the qualifier (and its value) was
	// introduced in.
	Since() int

	// IsValid reports whether the qualifier holds a value.
	IsValid() bool

	// HasFakeValue reports whether the value is an internal wildcard that
	// must not be copied over a real value.
	HasFakeValue() bool

	// FolderSegment returns the canonical folder-name segment, or "" when
	// the qualifier is unset or fake.
	FolderSegment() string

	ShortDisplayValue() string
	LongDisplayValue() string

	// IsMatchFor reports whether a resource carrying this qualifier can be
	// used for a configuration carrying reference.
	IsMatchFor(reference Qualifier) bool

	// IsBetterMatchThan reports whether this qualifier is a better match for
	// reference than compareTo. compareTo may be nil. It is only consulted
	// for qualifiers that already passed IsMatchFor.
	IsBetterMatchThan(compareTo, reference Qualifier) bool
}

// Setter receives qualifiers parsed by CheckAndSet.
type Setter interface {
	SetQualifier(q Qualifier)
}

// Equal reports whether two qualifiers hold the same value on the same axis.
// Two nil qualifiers are equal.
func Equal(a, b Qualifier) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b
}

// Compare orders two qualifiers by their folder segments.
func Compare(a, b Qualifier) int {
	return strings.Compare(a.FolderSegment(), b.FolderSegment())
}

// Name returns the long name of the qualifier's axis.
func Name(q Qualifier) string {
	return q.Axis().Name()
}
