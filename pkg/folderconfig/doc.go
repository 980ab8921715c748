// Package folderconfig models the configuration of an Android resource
// folder: an ordered tuple of optional qualifiers, one slot per axis.
//
// A configuration is parsed from a folder name,
//
//	values-en-rUS-sw600dp-hdpi-v21
//
// where the first segment is the resource type and every following segment
// is a qualifier in canonical axis order. Serializing emits the set slots in
// the same order, so parse and serialize round-trip.
package folderconfig
