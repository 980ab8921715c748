package qualifiers

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	smallestScreenWidthRegexp = regexp.MustCompile(`^sw(\d+)dp$`)
	screenWidthRegexp         = regexp.MustCompile(`^w(\d+)dp$`)
	screenHeightRegexp        = regexp.MustCompile(`^h(\d+)dp$`)
	screenDimensionRegexp     = regexp.MustCompile(`^(\d+)x(\d+)$`)
)

// dp is a size in density independent pixels. The zero value is unset.
type dp struct {
	value int
	set   bool
}

func parseDP(re *regexp.Regexp, segment string) (dp, bool) {
	m := re.FindStringSubmatch(segment)
	if m == nil {
		return dp{}, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return dp{}, false
	}
	return dp{value: v, set: true}, true
}

// fits reports whether a resource sized d can be used where ref is available.
func (d dp) fits(ref dp) bool {
	return d.value <= ref.value
}

// betterThan prefers an exact match, then the largest size that still fits.
// Both d and other are known to fit ref.
func (d dp) betterThan(other *dp, ref dp) bool {
	if other == nil {
		return true
	}
	if other.value == ref.value {
		return false
	}
	if d.value == ref.value {
		return true
	}
	return d.value > other.value
}

func (d dp) format(pattern string) string {
	if !d.set {
		return ""
	}
	return fmt.Sprintf(pattern, d.value)
}

// SmallestScreenWidthQualifier is the smallest available screen dimension
// in dp, e.g. "sw600dp".
type SmallestScreenWidthQualifier struct{ d dp }

func NewSmallestScreenWidthQualifier(value int) SmallestScreenWidthQualifier {
	return SmallestScreenWidthQualifier{dp{value: value, set: true}}
}

func parseSmallestScreenWidth(segment string) (Qualifier, bool) {
	d, ok := parseDP(smallestScreenWidthRegexp, segment)
	if !ok {
		return nil, false
	}
	return SmallestScreenWidthQualifier{d}, true
}

func (q SmallestScreenWidthQualifier) Value() int                { return q.d.value }
func (SmallestScreenWidthQualifier) Axis() Axis                  { return AxisSmallestScreenWidth }
func (SmallestScreenWidthQualifier) Since() int                  { return AxisSmallestScreenWidth.Since() }
func (q SmallestScreenWidthQualifier) IsValid() bool             { return q.d.set }
func (SmallestScreenWidthQualifier) HasFakeValue() bool          { return false }
func (q SmallestScreenWidthQualifier) FolderSegment() string     { return q.d.format("sw%ddp") }
func (q SmallestScreenWidthQualifier) ShortDisplayValue() string { return q.d.format("sw%ddp") }
func (q SmallestScreenWidthQualifier) LongDisplayValue() string  { return q.d.format("%ddp smallest width") }

// IsMatchFor reports whether the resource's smallest width fits the
// reference's.
func (q SmallestScreenWidthQualifier) IsMatchFor(reference Qualifier) bool {
	ref, ok := reference.(SmallestScreenWidthQualifier)
	return ok && q.d.fits(ref.d)
}

func (q SmallestScreenWidthQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	ref, ok := reference.(SmallestScreenWidthQualifier)
	if !ok {
		return false
	}
	if compareTo == nil {
		return q.d.betterThan(nil, ref.d)
	}
	other, ok := compareTo.(SmallestScreenWidthQualifier)
	if !ok {
		return false
	}
	return q.d.betterThan(&other.d, ref.d)
}

// ScreenWidthQualifier is the available screen width in dp, e.g. "w720dp".
type ScreenWidthQualifier struct{ d dp }

func NewScreenWidthQualifier(value int) ScreenWidthQualifier {
	return ScreenWidthQualifier{dp{value: value, set: true}}
}

func parseScreenWidth(segment string) (Qualifier, bool) {
	d, ok := parseDP(screenWidthRegexp, segment)
	if !ok {
		return nil, false
	}
	return ScreenWidthQualifier{d}, true
}

func (q ScreenWidthQualifier) Value() int                { return q.d.value }
func (ScreenWidthQualifier) Axis() Axis                  { return AxisScreenWidth }
func (ScreenWidthQualifier) Since() int                  { return AxisScreenWidth.Since() }
func (q ScreenWidthQualifier) IsValid() bool             { return q.d.set }
func (ScreenWidthQualifier) HasFakeValue() bool          { return false }
func (q ScreenWidthQualifier) FolderSegment() string     { return q.d.format("w%ddp") }
func (q ScreenWidthQualifier) ShortDisplayValue() string { return q.d.format("w%ddp") }
func (q ScreenWidthQualifier) LongDisplayValue() string  { return q.d.format("%ddp width") }

func (q ScreenWidthQualifier) IsMatchFor(reference Qualifier) bool {
	ref, ok := reference.(ScreenWidthQualifier)
	return ok && q.d.fits(ref.d)
}

func (q ScreenWidthQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	ref, ok := reference.(ScreenWidthQualifier)
	if !ok {
		return false
	}
	if compareTo == nil {
		return q.d.betterThan(nil, ref.d)
	}
	other, ok := compareTo.(ScreenWidthQualifier)
	if !ok {
		return false
	}
	return q.d.betterThan(&other.d, ref.d)
}

// ScreenHeightQualifier is the available screen height in dp, e.g. "h720dp".
type ScreenHeightQualifier struct{ d dp }

func NewScreenHeightQualifier(value int) ScreenHeightQualifier {
	return ScreenHeightQualifier{dp{value: value, set: true}}
}

func parseScreenHeight(segment string) (Qualifier, bool) {
	d, ok := parseDP(screenHeightRegexp, segment)
	if !ok {
		return nil, false
	}
	return ScreenHeightQualifier{d}, true
}

func (q ScreenHeightQualifier) Value() int                { return q.d.value }
func (ScreenHeightQualifier) Axis() Axis                  { return AxisScreenHeight }
func (ScreenHeightQualifier) Since() int                  { return AxisScreenHeight.Since() }
func (q ScreenHeightQualifier) IsValid() bool             { return q.d.set }
func (ScreenHeightQualifier) HasFakeValue() bool          { return false }
func (q ScreenHeightQualifier) FolderSegment() string     { return q.d.format("h%ddp") }
func (q ScreenHeightQualifier) ShortDisplayValue() string { return q.d.format("h%ddp") }
func (q ScreenHeightQualifier) LongDisplayValue() string  { return q.d.format("%ddp height") }

func (q ScreenHeightQualifier) IsMatchFor(reference Qualifier) bool {
	ref, ok := reference.(ScreenHeightQualifier)
	return ok && q.d.fits(ref.d)
}

func (q ScreenHeightQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	ref, ok := reference.(ScreenHeightQualifier)
	if !ok {
		return false
	}
	if compareTo == nil {
		return q.d.betterThan(nil, ref.d)
	}
	other, ok := compareTo.(ScreenHeightQualifier)
	if !ok {
		return false
	}
	return q.d.betterThan(&other.d, ref.d)
}

// ScreenDimensionQualifier is the legacy pixel resolution qualifier, e.g.
// "480x320". The larger dimension is always stored first.
type ScreenDimensionQualifier struct {
	value1 int
	value2 int
	set    bool
}

func NewScreenDimensionQualifier(a, b int) ScreenDimensionQualifier {
	if a < b {
		a, b = b, a
	}
	return ScreenDimensionQualifier{value1: a, value2: b, set: true}
}

func parseScreenDimension(segment string) (Qualifier, bool) {
	m := screenDimensionRegexp.FindStringSubmatch(segment)
	if m == nil {
		return nil, false
	}
	a, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, false
	}
	b, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, false
	}
	return NewScreenDimensionQualifier(a, b), true
}

// Value1 is the larger dimension.
func (q ScreenDimensionQualifier) Value1() int { return q.value1 }

// Value2 is the smaller dimension.
func (q ScreenDimensionQualifier) Value2() int { return q.value2 }

func (ScreenDimensionQualifier) Axis() Axis         { return AxisScreenDimension }
func (ScreenDimensionQualifier) Since() int         { return AxisScreenDimension.Since() }
func (q ScreenDimensionQualifier) IsValid() bool    { return q.set }
func (ScreenDimensionQualifier) HasFakeValue() bool { return false }

func (q ScreenDimensionQualifier) FolderSegment() string {
	if !q.set {
		return ""
	}
	return fmt.Sprintf("%dx%d", q.value1, q.value2)
}

func (q ScreenDimensionQualifier) ShortDisplayValue() string { return q.FolderSegment() }

func (q ScreenDimensionQualifier) LongDisplayValue() string {
	if !q.set {
		return ""
	}
	return fmt.Sprintf("Screen resolution %dx%d", q.value1, q.value2)
}

func (q ScreenDimensionQualifier) IsMatchFor(reference Qualifier) bool {
	return Equal(q, reference)
}

func (ScreenDimensionQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	return false
}
