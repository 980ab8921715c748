package qualifiers

import "github.com/arthur-debert/resconf/pkg/resources"

type enumValue interface {
	comparable
	resources.ResourceEnum
}

// enumQualifier carries the behaviour shared by every qualifier whose value
// is a resource enum.
type enumQualifier[E enumValue] struct {
	value E
}

// Value returns the enum value; the zero value when unset.
func (q enumQualifier[E]) Value() E { return q.value }

func (q enumQualifier[E]) IsValid() bool { return q.value.IsValid() }

func (q enumQualifier[E]) HasFakeValue() bool {
	return q.value.IsValid() && q.value.IsFakeValue()
}

func (q enumQualifier[E]) FolderSegment() string {
	if !q.value.IsValid() || q.value.IsFakeValue() {
		return ""
	}
	return q.value.ResourceValue()
}

func (q enumQualifier[E]) ShortDisplayValue() string { return q.value.ShortDisplayValue() }
func (q enumQualifier[E]) LongDisplayValue() string  { return q.value.LongDisplayValue() }

// since is the later of the axis' API level and the value's own.
func (q enumQualifier[E]) since(axis Axis) int {
	s := axis.Since()
	if q.value.IsValid() && q.value.Since() > s {
		s = q.value.Since()
	}
	return s
}

func parseEnum[E enumValue, Q Qualifier](segment string, fromValue func(string) (E, bool), wrap func(E) Q) (Qualifier, bool) {
	v, ok := fromValue(segment)
	if !ok {
		return nil, false
	}
	return wrap(v), true
}

// LayoutDirectionQualifier is "ldltr" or "ldrtl".
type LayoutDirectionQualifier struct {
	enumQualifier[resources.LayoutDirection]
}

func NewLayoutDirectionQualifier(v resources.LayoutDirection) LayoutDirectionQualifier {
	return LayoutDirectionQualifier{enumQualifier[resources.LayoutDirection]{v}}
}

func parseLayoutDirection(segment string) (Qualifier, bool) {
	return parseEnum(segment, resources.LayoutDirectionFromValue, NewLayoutDirectionQualifier)
}

func (LayoutDirectionQualifier) Axis() Axis   { return AxisLayoutDirection }
func (q LayoutDirectionQualifier) Since() int { return q.since(AxisLayoutDirection) }

func (q LayoutDirectionQualifier) IsMatchFor(reference Qualifier) bool { return Equal(q, reference) }

func (LayoutDirectionQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	return false
}

// ScreenSizeQualifier is small, normal, large or xlarge.
type ScreenSizeQualifier struct {
	enumQualifier[resources.ScreenSize]
}

func NewScreenSizeQualifier(v resources.ScreenSize) ScreenSizeQualifier {
	return ScreenSizeQualifier{enumQualifier[resources.ScreenSize]{v}}
}

func parseScreenSize(segment string) (Qualifier, bool) {
	return parseEnum(segment, resources.ScreenSizeFromValue, NewScreenSizeQualifier)
}

func (ScreenSizeQualifier) Axis() Axis   { return AxisScreenSize }
func (q ScreenSizeQualifier) Since() int { return q.since(AxisScreenSize) }

func (q ScreenSizeQualifier) IsMatchFor(reference Qualifier) bool { return Equal(q, reference) }

func (ScreenSizeQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	return false
}

type ScreenRatioQualifier struct {
	enumQualifier[resources.ScreenRatio]
}

func NewScreenRatioQualifier(v resources.ScreenRatio) ScreenRatioQualifier {
	return ScreenRatioQualifier{enumQualifier[resources.ScreenRatio]{v}}
}

func parseScreenRatio(segment string) (Qualifier, bool) {
	return parseEnum(segment, resources.ScreenRatioFromValue, NewScreenRatioQualifier)
}

func (ScreenRatioQualifier) Axis() Axis   { return AxisScreenRatio }
func (q ScreenRatioQualifier) Since() int { return q.since(AxisScreenRatio) }

func (q ScreenRatioQualifier) IsMatchFor(reference Qualifier) bool { return Equal(q, reference) }

func (ScreenRatioQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	return false
}

type ScreenOrientationQualifier struct {
	enumQualifier[resources.ScreenOrientation]
}

func NewScreenOrientationQualifier(v resources.ScreenOrientation) ScreenOrientationQualifier {
	return ScreenOrientationQualifier{enumQualifier[resources.ScreenOrientation]{v}}
}

func parseScreenOrientation(segment string) (Qualifier, bool) {
	return parseEnum(segment, resources.ScreenOrientationFromValue, NewScreenOrientationQualifier)
}

func (ScreenOrientationQualifier) Axis() Axis   { return AxisScreenOrientation }
func (q ScreenOrientationQualifier) Since() int { return q.since(AxisScreenOrientation) }

func (q ScreenOrientationQualifier) IsMatchFor(reference Qualifier) bool { return Equal(q, reference) }

func (ScreenOrientationQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	return false
}

// UiModeQualifier is the dock or form-factor mode, e.g. "car" or
// "television".
type UiModeQualifier struct {
	enumQualifier[resources.UiMode]
}

func NewUiModeQualifier(v resources.UiMode) UiModeQualifier {
	return UiModeQualifier{enumQualifier[resources.UiMode]{v}}
}

func parseUiMode(segment string) (Qualifier, bool) {
	return parseEnum(segment, resources.UiModeFromValue, NewUiModeQualifier)
}

func (UiModeQualifier) Axis() Axis   { return AxisUiMode }
func (q UiModeQualifier) Since() int { return q.since(AxisUiMode) }

func (q UiModeQualifier) IsMatchFor(reference Qualifier) bool { return Equal(q, reference) }

func (UiModeQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	return false
}

type NightModeQualifier struct {
	enumQualifier[resources.NightMode]
}

func NewNightModeQualifier(v resources.NightMode) NightModeQualifier {
	return NightModeQualifier{enumQualifier[resources.NightMode]{v}}
}

func parseNightMode(segment string) (Qualifier, bool) {
	return parseEnum(segment, resources.NightModeFromValue, NewNightModeQualifier)
}

func (NightModeQualifier) Axis() Axis   { return AxisNightMode }
func (q NightModeQualifier) Since() int { return q.since(AxisNightMode) }

func (q NightModeQualifier) IsMatchFor(reference Qualifier) bool { return Equal(q, reference) }

func (NightModeQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	return false
}

type TouchScreenQualifier struct {
	enumQualifier[resources.TouchScreen]
}

func NewTouchScreenQualifier(v resources.TouchScreen) TouchScreenQualifier {
	return TouchScreenQualifier{enumQualifier[resources.TouchScreen]{v}}
}

func parseTouchScreen(segment string) (Qualifier, bool) {
	return parseEnum(segment, resources.TouchScreenFromValue, NewTouchScreenQualifier)
}

func (TouchScreenQualifier) Axis() Axis   { return AxisTouchScreen }
func (q TouchScreenQualifier) Since() int { return q.since(AxisTouchScreen) }

func (q TouchScreenQualifier) IsMatchFor(reference Qualifier) bool { return Equal(q, reference) }

func (TouchScreenQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	return false
}

type TextInputMethodQualifier struct {
	enumQualifier[resources.TextInputMethod]
}

func NewTextInputMethodQualifier(v resources.TextInputMethod) TextInputMethodQualifier {
	return TextInputMethodQualifier{enumQualifier[resources.TextInputMethod]{v}}
}

func parseTextInputMethod(segment string) (Qualifier, bool) {
	return parseEnum(segment, resources.TextInputMethodFromValue, NewTextInputMethodQualifier)
}

func (TextInputMethodQualifier) Axis() Axis   { return AxisTextInputMethod }
func (q TextInputMethodQualifier) Since() int { return q.since(AxisTextInputMethod) }

func (q TextInputMethodQualifier) IsMatchFor(reference Qualifier) bool { return Equal(q, reference) }

func (TextInputMethodQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	return false
}

type NavigationStateQualifier struct {
	enumQualifier[resources.NavigationState]
}

func NewNavigationStateQualifier(v resources.NavigationState) NavigationStateQualifier {
	return NavigationStateQualifier{enumQualifier[resources.NavigationState]{v}}
}

func parseNavigationState(segment string) (Qualifier, bool) {
	return parseEnum(segment, resources.NavigationStateFromValue, NewNavigationStateQualifier)
}

func (NavigationStateQualifier) Axis() Axis   { return AxisNavigationState }
func (q NavigationStateQualifier) Since() int { return q.since(AxisNavigationState) }

func (q NavigationStateQualifier) IsMatchFor(reference Qualifier) bool { return Equal(q, reference) }

func (NavigationStateQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	return false
}

// NavigationMethodQualifier is the non-touch navigation device, e.g. "dpad".
type NavigationMethodQualifier struct {
	enumQualifier[resources.Navigation]
}

func NewNavigationMethodQualifier(v resources.Navigation) NavigationMethodQualifier {
	return NavigationMethodQualifier{enumQualifier[resources.Navigation]{v}}
}

func parseNavigationMethod(segment string) (Qualifier, bool) {
	return parseEnum(segment, resources.NavigationFromValue, NewNavigationMethodQualifier)
}

func (NavigationMethodQualifier) Axis() Axis   { return AxisNavigationMethod }
func (q NavigationMethodQualifier) Since() int { return q.since(AxisNavigationMethod) }

func (q NavigationMethodQualifier) IsMatchFor(reference Qualifier) bool { return Equal(q, reference) }

func (NavigationMethodQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	return false
}
