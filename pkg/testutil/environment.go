package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Environment is a set of temporary directories standing in for the user
// config dir, the state dir and a project checkout.
type Environment struct {
	Root       string
	ConfigDir  string
	StateDir   string
	ProjectDir string
}

// NewEnvironment creates the directories and points RESCONF_CONFIG_DIR,
// RESCONF_STATE_DIR and XDG_STATE_HOME at them for the duration of the
// test. Config-related RESCONF_* variables are cleared.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	root := t.TempDir()
	env := &Environment{
		Root:       root,
		ConfigDir:  CreateDir(t, root, "config"),
		StateDir:   CreateDir(t, root, "state"),
		ProjectDir: CreateDir(t, root, "project"),
	}

	t.Setenv("RESCONF_CONFIG_DIR", env.ConfigDir)
	t.Setenv("RESCONF_STATE_DIR", env.StateDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(name, "RESCONF_") || name == "RESCONF_CONFIG_DIR" || name == "RESCONF_STATE_DIR" {
			continue
		}
		// Setenv restores the variable after the test
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("Failed to unset %s: %v", name, err)
		}
	}
	return env
}

// WriteUserConfig writes the user config file.
func (e *Environment) WriteUserConfig(t *testing.T, content string) string {
	t.Helper()
	return CreateFile(t, e.ConfigDir, "config.toml", content)
}

// WriteProjectConfig writes the project config file.
func (e *Environment) WriteProjectConfig(t *testing.T, content string) string {
	t.Helper()
	return CreateFile(t, e.ProjectDir, ".resconf.toml", content)
}

// WriteDevices writes a device definition file into the user devices
// directory.
func (e *Environment) WriteDevices(t *testing.T, name, content string) string {
	t.Helper()
	return CreateFile(t, filepath.Join(e.ConfigDir, "devices"), name, content)
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}
