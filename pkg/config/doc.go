// Package config handles configuration management for resconf.
// Configuration is layered from the embedded defaults, the user config
// file, the project config file and RESCONF_* environment variables.
package config
