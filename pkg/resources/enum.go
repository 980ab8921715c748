package resources

import "strings"

// ResourceEnum is implemented by every enumerated resource value that can
// appear as a folder segment.
type ResourceEnum interface {
	// ResourceValue returns the folder segment for the value, e.g. "hdpi".
	ResourceValue() string

	// ShortDisplayValue returns a compact human readable form.
	ShortDisplayValue() string

	// LongDisplayValue returns a descriptive human readable form.
	LongDisplayValue() string

	// Since returns the API level the value was introduced in.
	Since() int

	// IsFakeValue reports whether the value is an internal placeholder that
	// never appears in a real folder name.
	IsFakeValue() bool

	// IsValid reports whether the value is a member of the enum.
	IsValid() bool
}

// enumInfo describes one member of a resource enum. Tables are indexed by
// the enum's integer value; index 0 is the unset value.
type enumInfo struct {
	value string
	short string
	long  string
	since int
	fake  bool
}

func infoAt[T ~int](table []enumInfo, v T) (enumInfo, bool) {
	if v <= 0 || int(v) >= len(table) {
		return enumInfo{}, false
	}
	return table[v], true
}

// lookup finds the enum value whose folder segment equals value. Matching is
// case-insensitive; fake values are never returned.
func lookup[T ~int](table []enumInfo, value string) (T, bool) {
	value = strings.ToLower(value)
	for i := 1; i < len(table); i++ {
		if table[i].fake {
			continue
		}
		if table[i].value == value {
			return T(i), true
		}
	}
	return 0, false
}

// values returns all members of the enum in declaration order.
func values[T ~int](table []enumInfo) []T {
	out := make([]T, 0, len(table)-1)
	for i := 1; i < len(table); i++ {
		out = append(out, T(i))
	}
	return out
}
