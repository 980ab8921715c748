package qualifiers

import "github.com/arthur-debert/resconf/pkg/resources"

// KeyboardStateQualifier is "keysexposed", "keyshidden" or "keyssoft".
type KeyboardStateQualifier struct {
	enumQualifier[resources.KeyboardState]
}

func NewKeyboardStateQualifier(v resources.KeyboardState) KeyboardStateQualifier {
	return KeyboardStateQualifier{enumQualifier[resources.KeyboardState]{v}}
}

func parseKeyboardState(segment string) (Qualifier, bool) {
	return parseEnum(segment, resources.KeyboardStateFromValue, NewKeyboardStateQualifier)
}

func (KeyboardStateQualifier) Axis() Axis   { return AxisKeyboardState }
func (q KeyboardStateQualifier) Since() int { return q.since(AxisKeyboardState) }

// IsMatchFor is equality, except that an exposed-keyboard resource also
// serves a configuration asking for a soft keyboard. The reverse does not
// hold.
func (q KeyboardStateQualifier) IsMatchFor(reference Qualifier) bool {
	ref, ok := reference.(KeyboardStateQualifier)
	if !ok {
		return false
	}
	if ref.value == resources.KeyboardStateSoft && q.value == resources.KeyboardStateExposed {
		return true
	}
	return ref.value == q.value
}

// IsBetterMatchThan prefers soft over exposed when the reference is soft,
// the only case where two different keyboard states can both match.
func (q KeyboardStateQualifier) IsBetterMatchThan(compareTo, reference Qualifier) bool {
	if compareTo == nil {
		return true
	}
	other, ok := compareTo.(KeyboardStateQualifier)
	if !ok {
		return false
	}
	ref, ok := reference.(KeyboardStateQualifier)
	if !ok {
		return false
	}
	return ref.value == resources.KeyboardStateSoft &&
		other.value == resources.KeyboardStateExposed &&
		q.value == resources.KeyboardStateSoft
}
