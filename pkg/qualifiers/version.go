package qualifiers

import (
	"fmt"
	"regexp"
	"strconv"
)

var versionRegexp = regexp.MustCompile(`^v(\d+)$`)

// VersionQualifier is the platform API level, e.g. "v21".
//
// A versioned resource can be used on any platform at or above its version,
// so matching works like the screen dimension qualifiers: the candidate must
// not exceed the reference, and the highest fitting version wins.
type VersionQualifier struct {
	version int
	set     bool
}

func NewVersionQualifier(version int) VersionQualifier {
	return VersionQualifier{version: version, set: true}
}

func parseVersion(segment string) (Qualifier, bool) {
	m := versionRegexp.FindStringSubmatch(segment)
	if m == nil {
		return nil, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, false
	}
	return NewVersionQualifier(v), true
}

// VersionFolderSegment returns the folder segment for an API level.
func VersionFolderSegment(version int) string {
	if version < 0 {
		return ""
	}
	return fmt.Sprintf("v%d", version)
}

func (q VersionQualifier) Version() int     { return q.version }
func (VersionQualifier) Axis() Axis         { return AxisVersion }
func (VersionQualifier) Since() int         { return AxisVersion.Since() }
func (q VersionQualifier) IsValid() bool    { return q.set }
func (VersionQualifier) HasFakeValue() bool { return false }

func (q VersionQualifier) FolderSegment() string {
	if !q.set {
		return ""
	}
	return VersionFolderSegment(q.version)
}

func (q VersionQualifier) ShortDisplayValue() string { return q.FolderSegment() }

func (q VersionQualifier) LongDisplayValue() string {
	if !q.set {
		return ""
	}
	return fmt.Sprintf("API %d", q.version)
}

func (q VersionQualifier) IsMatchFor(reference Qualifier) bool {
	ref, ok := reference.(VersionQualifier)
	return ok && q.version <= ref.version
}

func (q VersionQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	if compareTo == nil {
		return true
	}
	other, ok := compareTo.(VersionQualifier)
	if !ok {
		return false
	}
	ref, ok := reference.(VersionQualifier)
	if !ok {
		return false
	}
	if other.version == ref.version {
		return false
	}
	if q.version == ref.version {
		return true
	}
	return q.version > other.version
}
