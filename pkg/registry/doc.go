// Package registry provides a generic, thread-safe store of named items.
// The device catalog keeps its device definitions in one.
package registry
