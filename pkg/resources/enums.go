package resources

// ScreenSize is the generalized screen size bucket.
type ScreenSize int

const (
	ScreenSizeSmall ScreenSize = iota + 1
	ScreenSizeNormal
	ScreenSizeLarge
	ScreenSizeXLarge
)

var screenSizeTable = []enumInfo{
	{},
	{value: "small", short: "Small", long: "Small Screen", since: 4},
	{value: "normal", short: "Normal", long: "Normal Screen", since: 4},
	{value: "large", short: "Large", long: "Large Screen", since: 4},
	{value: "xlarge", short: "X-Large", long: "Extra Large Screen", since: 9},
}

// ScreenSizeFromValue returns the ScreenSize for a folder segment.
func ScreenSizeFromValue(value string) (ScreenSize, bool) {
	return lookup[ScreenSize](screenSizeTable, value)
}

// ScreenSizeValues returns every ScreenSize in declaration order.
func ScreenSizeValues() []ScreenSize {
	return values[ScreenSize](screenSizeTable)
}

func (s ScreenSize) info() enumInfo {
	i, _ := infoAt(screenSizeTable, s)
	return i
}

func (s ScreenSize) ResourceValue() string     { return s.info().value }
func (s ScreenSize) ShortDisplayValue() string { return s.info().short }
func (s ScreenSize) LongDisplayValue() string  { return s.info().long }
func (s ScreenSize) Since() int                { return s.info().since }
func (s ScreenSize) IsFakeValue() bool         { return s.info().fake }
func (s ScreenSize) String() string            { return s.info().value }

func (s ScreenSize) IsValid() bool {
	_, ok := infoAt(screenSizeTable, s)
	return ok
}

type ScreenRatio int

const (
	ScreenRatioNotLong ScreenRatio = iota + 1
	ScreenRatioLong
)

var screenRatioTable = []enumInfo{
	{},
	{value: "notlong", short: "Not Long", long: "Not Long", since: 4},
	{value: "long", short: "Long", long: "Long", since: 4},
}

// ScreenRatioFromValue returns the ScreenRatio for a folder segment.
func ScreenRatioFromValue(value string) (ScreenRatio, bool) {
	return lookup[ScreenRatio](screenRatioTable, value)
}

// ScreenRatioValues returns every ScreenRatio in declaration order.
func ScreenRatioValues() []ScreenRatio {
	return values[ScreenRatio](screenRatioTable)
}

func (s ScreenRatio) info() enumInfo {
	i, _ := infoAt(screenRatioTable, s)
	return i
}

func (s ScreenRatio) ResourceValue() string     { return s.info().value }
func (s ScreenRatio) ShortDisplayValue() string { return s.info().short }
func (s ScreenRatio) LongDisplayValue() string  { return s.info().long }
func (s ScreenRatio) Since() int                { return s.info().since }
func (s ScreenRatio) IsFakeValue() bool         { return s.info().fake }
func (s ScreenRatio) String() string            { return s.info().value }

func (s ScreenRatio) IsValid() bool {
	_, ok := infoAt(screenRatioTable, s)
	return ok
}

type ScreenOrientation int

const (
	ScreenOrientationPortrait ScreenOrientation = iota + 1
	ScreenOrientationLandscape
	ScreenOrientationSquare
)

var screenOrientationTable = []enumInfo{
	{},
	{value: "port", short: "Portrait", long: "Portrait Orientation", since: 1},
	{value: "land", short: "Landscape", long: "Landscape Orientation", since: 1},
	{value: "square", short: "Square", long: "Square Orientation", since: 1},
}

// ScreenOrientationFromValue returns the ScreenOrientation for a folder segment.
func ScreenOrientationFromValue(value string) (ScreenOrientation, bool) {
	return lookup[ScreenOrientation](screenOrientationTable, value)
}

// ScreenOrientationValues returns every ScreenOrientation in declaration order.
func ScreenOrientationValues() []ScreenOrientation {
	return values[ScreenOrientation](screenOrientationTable)
}

func (s ScreenOrientation) info() enumInfo {
	i, _ := infoAt(screenOrientationTable, s)
	return i
}

func (s ScreenOrientation) ResourceValue() string     { return s.info().value }
func (s ScreenOrientation) ShortDisplayValue() string { return s.info().short }
func (s ScreenOrientation) LongDisplayValue() string  { return s.info().long }
func (s ScreenOrientation) Since() int                { return s.info().since }
func (s ScreenOrientation) IsFakeValue() bool         { return s.info().fake }
func (s ScreenOrientation) String() string            { return s.info().value }

func (s ScreenOrientation) IsValid() bool {
	_, ok := infoAt(screenOrientationTable, s)
	return ok
}

// UiMode is the device dock or form-factor mode. UiModeNormal stands for
// "no special mode" and never appears in a folder name.
type UiMode int

const (
	UiModeNormal UiMode = iota + 1
	UiModeCar
	UiModeDesk
	UiModeTelevision
	UiModeAppliance
	UiModeWatch
	UiModeVRHeadset
)

var uiModeTable = []enumInfo{
	{},
	{value: "normal", short: "Normal", long: "Normal", since: 1, fake: true},
	{value: "car", short: "Car Dock", long: "Car Dock", since: 8},
	{value: "desk", short: "Desk Dock", long: "Desk Dock", since: 8},
	{value: "television", short: "Television", long: "Television", since: 13},
	{value: "appliance", short: "Appliance", long: "Appliance", since: 16},
	{value: "watch", short: "Watch", long: "Watch", since: 20},
	{value: "vrheadset", short: "VR Headset", long: "VR Headset", since: 26},
}

// UiModeFromValue returns the UiMode for a folder segment.
func UiModeFromValue(value string) (UiMode, bool) {
	return lookup[UiMode](uiModeTable, value)
}

// UiModeValues returns every UiMode in declaration order.
func UiModeValues() []UiMode {
	return values[UiMode](uiModeTable)
}

func (u UiMode) info() enumInfo {
	i, _ := infoAt(uiModeTable, u)
	return i
}

func (u UiMode) ResourceValue() string     { return u.info().value }
func (u UiMode) ShortDisplayValue() string { return u.info().short }
func (u UiMode) LongDisplayValue() string  { return u.info().long }
func (u UiMode) Since() int                { return u.info().since }
func (u UiMode) IsFakeValue() bool         { return u.info().fake }
func (u UiMode) String() string            { return u.info().value }

func (u UiMode) IsValid() bool {
	_, ok := infoAt(uiModeTable, u)
	return ok
}

type NightMode int

const (
	NightModeNotNight NightMode = iota + 1
	NightModeNight
)

var nightModeTable = []enumInfo{
	{},
	{value: "notnight", short: "Not Night", long: "Not Night", since: 8},
	{value: "night", short: "Night", long: "Night", since: 8},
}

// NightModeFromValue returns the NightMode for a folder segment.
func NightModeFromValue(value string) (NightMode, bool) {
	return lookup[NightMode](nightModeTable, value)
}

// NightModeValues returns every NightMode in declaration order.
func NightModeValues() []NightMode {
	return values[NightMode](nightModeTable)
}

func (n NightMode) info() enumInfo {
	i, _ := infoAt(nightModeTable, n)
	return i
}

func (n NightMode) ResourceValue() string     { return n.info().value }
func (n NightMode) ShortDisplayValue() string { return n.info().short }
func (n NightMode) LongDisplayValue() string  { return n.info().long }
func (n NightMode) Since() int                { return n.info().since }
func (n NightMode) IsFakeValue() bool         { return n.info().fake }
func (n NightMode) String() string            { return n.info().value }

func (n NightMode) IsValid() bool {
	_, ok := infoAt(nightModeTable, n)
	return ok
}

type TouchScreen int

const (
	TouchScreenNoTouch TouchScreen = iota + 1
	TouchScreenStylus
	TouchScreenFinger
)

var touchScreenTable = []enumInfo{
	{},
	{value: "notouch", short: "No Touch", long: "No Touch", since: 1},
	{value: "stylus", short: "Stylus", long: "Stylus-based touchscreen", since: 1},
	{value: "finger", short: "Finger", long: "Finger-based touchscreen", since: 1},
}

// TouchScreenFromValue returns the TouchScreen for a folder segment.
func TouchScreenFromValue(value string) (TouchScreen, bool) {
	return lookup[TouchScreen](touchScreenTable, value)
}

// TouchScreenValues returns every TouchScreen in declaration order.
func TouchScreenValues() []TouchScreen {
	return values[TouchScreen](touchScreenTable)
}

func (t TouchScreen) info() enumInfo {
	i, _ := infoAt(touchScreenTable, t)
	return i
}

func (t TouchScreen) ResourceValue() string     { return t.info().value }
func (t TouchScreen) ShortDisplayValue() string { return t.info().short }
func (t TouchScreen) LongDisplayValue() string  { return t.info().long }
func (t TouchScreen) Since() int                { return t.info().since }
func (t TouchScreen) IsFakeValue() bool         { return t.info().fake }
func (t TouchScreen) String() string            { return t.info().value }

func (t TouchScreen) IsValid() bool {
	_, ok := infoAt(touchScreenTable, t)
	return ok
}

// KeyboardState describes the availability of a hardware keyboard.
type KeyboardState int

const (
	KeyboardStateExposed KeyboardState = iota + 1
	KeyboardStateHidden
	KeyboardStateSoft
)

var keyboardStateTable = []enumInfo{
	{},
	{value: "keysexposed", short: "Exposed", long: "Exposed", since: 1},
	{value: "keyshidden", short: "Hidden", long: "Hidden", since: 1},
	{value: "keyssoft", short: "Soft", long: "Soft", since: 3},
}

// KeyboardStateFromValue returns the KeyboardState for a folder segment.
func KeyboardStateFromValue(value string) (KeyboardState, bool) {
	return lookup[KeyboardState](keyboardStateTable, value)
}

// KeyboardStateValues returns every KeyboardState in declaration order.
func KeyboardStateValues() []KeyboardState {
	return values[KeyboardState](keyboardStateTable)
}

func (k KeyboardState) info() enumInfo {
	i, _ := infoAt(keyboardStateTable, k)
	return i
}

func (k KeyboardState) ResourceValue() string     { return k.info().value }
func (k KeyboardState) ShortDisplayValue() string { return k.info().short }
func (k KeyboardState) LongDisplayValue() string  { return k.info().long }
func (k KeyboardState) Since() int                { return k.info().since }
func (k KeyboardState) IsFakeValue() bool         { return k.info().fake }
func (k KeyboardState) String() string            { return k.info().value }

func (k KeyboardState) IsValid() bool {
	_, ok := infoAt(keyboardStateTable, k)
	return ok
}

type TextInputMethod int

const (
	TextInputMethodNoKey TextInputMethod = iota + 1
	TextInputMethodQwerty
	TextInputMethodTwelveKey
)

var textInputMethodTable = []enumInfo{
	{},
	{value: "nokeys", short: "No Keys", long: "No keys", since: 1},
	{value: "qwerty", short: "Qwerty", long: "Qwerty keyboard", since: 1},
	{value: "12key", short: "12 Key", long: "12 Key", since: 1},
}

// TextInputMethodFromValue returns the TextInputMethod for a folder segment.
func TextInputMethodFromValue(value string) (TextInputMethod, bool) {
	return lookup[TextInputMethod](textInputMethodTable, value)
}

// TextInputMethodValues returns every TextInputMethod in declaration order.
func TextInputMethodValues() []TextInputMethod {
	return values[TextInputMethod](textInputMethodTable)
}

func (t TextInputMethod) info() enumInfo {
	i, _ := infoAt(textInputMethodTable, t)
	return i
}

func (t TextInputMethod) ResourceValue() string     { return t.info().value }
func (t TextInputMethod) ShortDisplayValue() string { return t.info().short }
func (t TextInputMethod) LongDisplayValue() string  { return t.info().long }
func (t TextInputMethod) Since() int                { return t.info().since }
func (t TextInputMethod) IsFakeValue() bool         { return t.info().fake }
func (t TextInputMethod) String() string            { return t.info().value }

func (t TextInputMethod) IsValid() bool {
	_, ok := infoAt(textInputMethodTable, t)
	return ok
}

type NavigationState int

const (
	NavigationStateExposed NavigationState = iota + 1
	NavigationStateHidden
)

var navigationStateTable = []enumInfo{
	{},
	{value: "navexposed", short: "Exposed", long: "Exposed", since: 5},
	{value: "navhidden", short: "Hidden", long: "Hidden", since: 5},
}

// NavigationStateFromValue returns the NavigationState for a folder segment.
func NavigationStateFromValue(value string) (NavigationState, bool) {
	return lookup[NavigationState](navigationStateTable, value)
}

// NavigationStateValues returns every NavigationState in declaration order.
func NavigationStateValues() []NavigationState {
	return values[NavigationState](navigationStateTable)
}

func (n NavigationState) info() enumInfo {
	i, _ := infoAt(navigationStateTable, n)
	return i
}

func (n NavigationState) ResourceValue() string     { return n.info().value }
func (n NavigationState) ShortDisplayValue() string { return n.info().short }
func (n NavigationState) LongDisplayValue() string  { return n.info().long }
func (n NavigationState) Since() int                { return n.info().since }
func (n NavigationState) IsFakeValue() bool         { return n.info().fake }
func (n NavigationState) String() string            { return n.info().value }

func (n NavigationState) IsValid() bool {
	_, ok := infoAt(navigationStateTable, n)
	return ok
}

// Navigation is the primary non-touch navigation method.
type Navigation int

const (
	NavigationNoNav Navigation = iota + 1
	NavigationDPad
	NavigationTrackball
	NavigationWheel
)

var navigationTable = []enumInfo{
	{},
	{value: "nonav", short: "None", long: "No Navigation", since: 1},
	{value: "dpad", short: "D-pad", long: "D-pad Navigation", since: 1},
	{value: "trackball", short: "Trackball", long: "Trackball Navigation", since: 1},
	{value: "wheel", short: "Wheel", long: "Wheel Navigation", since: 1},
}

// NavigationFromValue returns the Navigation for a folder segment.
func NavigationFromValue(value string) (Navigation, bool) {
	return lookup[Navigation](navigationTable, value)
}

// NavigationValues returns every Navigation in declaration order.
func NavigationValues() []Navigation {
	return values[Navigation](navigationTable)
}

func (n Navigation) info() enumInfo {
	i, _ := infoAt(navigationTable, n)
	return i
}

func (n Navigation) ResourceValue() string     { return n.info().value }
func (n Navigation) ShortDisplayValue() string { return n.info().short }
func (n Navigation) LongDisplayValue() string  { return n.info().long }
func (n Navigation) Since() int                { return n.info().since }
func (n Navigation) IsFakeValue() bool         { return n.info().fake }
func (n Navigation) String() string            { return n.info().value }

func (n Navigation) IsValid() bool {
	_, ok := infoAt(navigationTable, n)
	return ok
}

type LayoutDirection int

const (
	LayoutDirectionLTR LayoutDirection = iota + 1
	LayoutDirectionRTL
)

var layoutDirectionTable = []enumInfo{
	{},
	{value: "ldltr", short: "LTR", long: "Left To Right", since: 17},
	{value: "ldrtl", short: "RTL", long: "Right To Left", since: 17},
}

// LayoutDirectionFromValue returns the LayoutDirection for a folder segment.
func LayoutDirectionFromValue(value string) (LayoutDirection, bool) {
	return lookup[LayoutDirection](layoutDirectionTable, value)
}

// LayoutDirectionValues returns every LayoutDirection in declaration order.
func LayoutDirectionValues() []LayoutDirection {
	return values[LayoutDirection](layoutDirectionTable)
}

func (l LayoutDirection) info() enumInfo {
	i, _ := infoAt(layoutDirectionTable, l)
	return i
}

func (l LayoutDirection) ResourceValue() string     { return l.info().value }
func (l LayoutDirection) ShortDisplayValue() string { return l.info().short }
func (l LayoutDirection) LongDisplayValue() string  { return l.info().long }
func (l LayoutDirection) Since() int                { return l.info().since }
func (l LayoutDirection) IsFakeValue() bool         { return l.info().fake }
func (l LayoutDirection) String() string            { return l.info().value }

func (l LayoutDirection) IsValid() bool {
	_, ok := infoAt(layoutDirectionTable, l)
	return ok
}
