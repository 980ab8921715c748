// Package product filters resources the way a product build does when it
// packages an app: an aapt-style configuration list restricts the values
// each axis may take, and a preferred density keeps only the best density
// variant of every resource.
package product
