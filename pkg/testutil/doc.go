// Package testutil provides utilities for testing resconf components.
//
// Key components:
//   - Environment: isolated config, state and project directories
//   - Config, Folder, Folders: parse fixtures that fail the test on bad input
//   - Device: a built-in catalog device
//
// Usage guidelines:
//   - Fixtures are defined inline as folder names or qualifier strings
//   - Tests that touch user directories must use NewEnvironment so no
//     RESCONF_* setting leaks in from the host
package testutil
