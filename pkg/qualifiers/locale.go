package qualifiers

import (
	"regexp"
	"strings"
)

// FakeLocaleValue is the wildcard language or region. It matches any value
// and is never produced by parsing a folder name.
const FakeLocaleValue = "__"

var (
	languageRegexp = regexp.MustCompile(`^[a-zA-Z]{2}$`)
	regionRegexp   = regexp.MustCompile(`^[rR]([a-zA-Z]{2})$`)
)

// LanguageQualifier is a two letter ISO 639-1 language code, stored
// lowercase.
type LanguageQualifier struct {
	value string
}

// NewLanguageQualifier returns a language qualifier. value must be a two
// letter code or FakeLocaleValue.
func NewLanguageQualifier(value string) LanguageQualifier {
	if value == FakeLocaleValue {
		return LanguageQualifier{value: value}
	}
	return LanguageQualifier{value: strings.ToLower(value)}
}

func parseLanguage(segment string) (Qualifier, bool) {
	if !languageRegexp.MatchString(segment) {
		return nil, false
	}
	return NewLanguageQualifier(segment), true
}

// LanguageFolderSegment returns the folder segment for a language, or "" if
// value is not a two letter code.
func LanguageFolderSegment(value string) string {
	segment := strings.ToLower(value)
	if !languageRegexp.MatchString(segment) {
		return ""
	}
	return segment
}

func (q LanguageQualifier) Value() string         { return q.value }
func (LanguageQualifier) Axis() Axis              { return AxisLanguage }
func (LanguageQualifier) Since() int              { return AxisLanguage.Since() }
func (q LanguageQualifier) IsValid() bool         { return q.value != "" }
func (q LanguageQualifier) HasFakeValue() bool    { return q.value == FakeLocaleValue }
func (q LanguageQualifier) FolderSegment() string { return LanguageFolderSegment(q.value) }

func (q LanguageQualifier) ShortDisplayValue() string {
	if !q.IsValid() || q.HasFakeValue() {
		return ""
	}
	return q.value
}

func (q LanguageQualifier) LongDisplayValue() string {
	if !q.IsValid() || q.HasFakeValue() {
		return ""
	}
	return "Language " + q.value
}

// IsMatchFor treats the fake value on either side as a wildcard.
func (q LanguageQualifier) IsMatchFor(reference Qualifier) bool {
	ref, ok := reference.(LanguageQualifier)
	if !ok {
		return false
	}
	if q.HasFakeValue() || ref.HasFakeValue() {
		return true
	}
	return q.value == ref.value
}

func (LanguageQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	return false
}

// RegionQualifier is a two letter ISO 3166-1 region code, stored uppercase.
// Its folder segment carries an "r" prefix, e.g. "rUS".
type RegionQualifier struct {
	value string
}

// NewRegionQualifier returns a region qualifier for a two letter code
// (without the "r" prefix) or FakeLocaleValue.
func NewRegionQualifier(value string) RegionQualifier {
	if value == FakeLocaleValue {
		return RegionQualifier{value: value}
	}
	return RegionQualifier{value: strings.ToUpper(value)}
}

func parseRegion(segment string) (Qualifier, bool) {
	m := regionRegexp.FindStringSubmatch(segment)
	if m == nil {
		return nil, false
	}
	return NewRegionQualifier(m[1]), true
}

// RegionFolderSegment returns the folder segment for a region code, or "" if
// value is not a two letter code.
func RegionFolderSegment(value string) string {
	if !languageRegexp.MatchString(value) {
		return ""
	}
	return "r" + strings.ToUpper(value)
}

func (q RegionQualifier) Value() string         { return q.value }
func (RegionQualifier) Axis() Axis              { return AxisRegion }
func (RegionQualifier) Since() int              { return AxisRegion.Since() }
func (q RegionQualifier) IsValid() bool         { return q.value != "" }
func (q RegionQualifier) HasFakeValue() bool    { return q.value == FakeLocaleValue }
func (q RegionQualifier) FolderSegment() string { return RegionFolderSegment(q.value) }

func (q RegionQualifier) ShortDisplayValue() string {
	if !q.IsValid() || q.HasFakeValue() {
		return ""
	}
	return q.value
}

func (q RegionQualifier) LongDisplayValue() string {
	if !q.IsValid() || q.HasFakeValue() {
		return ""
	}
	return "Region " + q.value
}

// IsMatchFor treats the fake value on either side as a wildcard.
func (q RegionQualifier) IsMatchFor(reference Qualifier) bool {
	ref, ok := reference.(RegionQualifier)
	if !ok {
		return false
	}
	if q.HasFakeValue() || ref.HasFakeValue() {
		return true
	}
	return q.value == ref.value
}

func (RegionQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	return false
}
