// Package devices provides reference configurations: the configuration a
// concrete device presents at runtime, in one of its states (portrait,
// landscape, keyboard out, ...).
//
// Devices come from Android SDK devices.xml files, from YAML or TOML
// profiles, and from a built-in catalog embedded in the binary. A Catalog
// holds them by id; later sources replace earlier definitions of the same id.
package devices
