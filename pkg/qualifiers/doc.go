// Package qualifiers implements the axes of an Android resource
// configuration: mobile country and network codes, locale, screen metrics,
// input devices, platform version and so on.
//
// Each axis has one qualifier type. A qualifier is parsed from a single
// folder-name segment ("hdpi", "sw600dp", "rUS") and serialized back to the
// same segment. The fixed axis order defines both the order segments must
// appear in a folder name and the precedence used when picking the best
// matching resource:
//
//	mcc, mnc, language, region, layout direction, smallest width, width,
//	height, size, ratio, orientation, ui mode, night mode, density,
//	touchscreen, keyboard, text input, nav state, nav method, dimension,
//	version
//
// Matching has two steps. IsMatchFor excludes qualifiers that cannot serve a
// reference; for most axes that is plain equality. IsBetterMatchThan then
// ranks the survivors on axes that have a natural order (density, screen
// sizes in dp, keyboard state, version).
package qualifiers
