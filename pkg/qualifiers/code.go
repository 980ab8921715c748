package qualifiers

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	countryCodeRegexp = regexp.MustCompile(`^mcc(\d{3})$`)
	networkCodeRegexp = regexp.MustCompile(`^mnc(\d{1,3})$`)
)

// CountryCodeQualifier is the mobile country code (mcc) of the SIM.
type CountryCodeQualifier struct {
	code int
	set  bool
}

func NewCountryCodeQualifier(code int) CountryCodeQualifier {
	return CountryCodeQualifier{code: code, set: true}
}

func parseCountryCode(segment string) (Qualifier, bool) {
	m := countryCodeRegexp.FindStringSubmatch(segment)
	if m == nil {
		return nil, false
	}
	code, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, false
	}
	return NewCountryCodeQualifier(code), true
}

// CountryCodeFolderSegment returns the folder segment for a country code.
func CountryCodeFolderSegment(code int) string {
	if code < 0 || code > 999 {
		return ""
	}
	return fmt.Sprintf("mcc%03d", code)
}

func (q CountryCodeQualifier) Code() int        { return q.code }
func (CountryCodeQualifier) Axis() Axis         { return AxisCountryCode }
func (CountryCodeQualifier) Since() int         { return AxisCountryCode.Since() }
func (q CountryCodeQualifier) IsValid() bool    { return q.set }
func (CountryCodeQualifier) HasFakeValue() bool { return false }

func (q CountryCodeQualifier) FolderSegment() string {
	if !q.set {
		return ""
	}
	return CountryCodeFolderSegment(q.code)
}

func (q CountryCodeQualifier) ShortDisplayValue() string {
	if !q.set {
		return ""
	}
	return fmt.Sprintf("MCC %d", q.code)
}

func (q CountryCodeQualifier) LongDisplayValue() string {
	if !q.set {
		return ""
	}
	return fmt.Sprintf("Country Code %d", q.code)
}

func (q CountryCodeQualifier) IsMatchFor(reference Qualifier) bool {
	return Equal(q, reference)
}

func (CountryCodeQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	return false
}

// NetworkCodeQualifier is the mobile network code (mnc) of the SIM.
type NetworkCodeQualifier struct {
	code int
	set  bool
}

func NewNetworkCodeQualifier(code int) NetworkCodeQualifier {
	return NetworkCodeQualifier{code: code, set: true}
}

func parseNetworkCode(segment string) (Qualifier, bool) {
	m := networkCodeRegexp.FindStringSubmatch(segment)
	if m == nil {
		return nil, false
	}
	code, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, false
	}
	return NewNetworkCodeQualifier(code), true
}

// NetworkCodeFolderSegment returns the folder segment for a network code,
// zero-padded to three digits.
func NetworkCodeFolderSegment(code int) string {
	if code < 0 || code > 999 {
		return ""
	}
	return fmt.Sprintf("mnc%03d", code)
}

func (q NetworkCodeQualifier) Code() int        { return q.code }
func (NetworkCodeQualifier) Axis() Axis         { return AxisNetworkCode }
func (NetworkCodeQualifier) Since() int         { return AxisNetworkCode.Since() }
func (q NetworkCodeQualifier) IsValid() bool    { return q.set }
func (NetworkCodeQualifier) HasFakeValue() bool { return false }

func (q NetworkCodeQualifier) FolderSegment() string {
	if !q.set {
		return ""
	}
	return NetworkCodeFolderSegment(q.code)
}

func (q NetworkCodeQualifier) ShortDisplayValue() string {
	if !q.set {
		return ""
	}
	return fmt.Sprintf("MNC %d", q.code)
}

func (q NetworkCodeQualifier) LongDisplayValue() string {
	if !q.set {
		return ""
	}
	return fmt.Sprintf("Network Code %d", q.code)
}

func (q NetworkCodeQualifier) IsMatchFor(reference Qualifier) bool {
	return Equal(q, reference)
}

func (NetworkCodeQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	return false
}
