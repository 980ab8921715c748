// Package resources holds the enumerated values used by Android resource
// folder qualifiers (densities, screen sizes, keyboard states and so on) and
// the resource folder types.
//
// Every enum's zero value is unset; IsValid reports false for it and all its
// display methods return the empty string.
package resources
