// Package paths provides centralized path handling for resconf.
//
// It resolves the XDG locations resconf reads configuration and device
// definitions from, and the state directory it logs to:
//
//   - $XDG_CONFIG_HOME/resconf/config.toml: user configuration
//   - $XDG_CONFIG_HOME/resconf/devices/: user device definitions
//   - $XDG_STATE_HOME/resconf/resconf.log: log file
//   - <project>/.resconf.toml: project configuration
//
// # Environment Variables
//
//   - RESCONF_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/resconf)
//   - RESCONF_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/resconf)
package paths
