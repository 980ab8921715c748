package testutil

import (
	"testing"

	"github.com/arthur-debert/resconf/pkg/devices"
	"github.com/arthur-debert/resconf/pkg/folderconfig"
	"github.com/arthur-debert/resconf/pkg/resolver"
)

// Config parses a qualifier string such as "en-rUS-hdpi". The empty string
// is the default configuration.
func Config(t *testing.T, qualifiers string) *folderconfig.FolderConfiguration {
	t.Helper()
	c := folderconfig.GetConfigForQualifierString(qualifiers)
	if c == nil {
		t.Fatalf("invalid qualifier string %q", qualifiers)
	}
	return c
}

// FolderConfig parses the configuration of a folder name such as
// "values-en-rUS".
func FolderConfig(t *testing.T, folder string) *folderconfig.FolderConfiguration {
	t.Helper()
	_, c, ok := folderconfig.ParseFolderName(folder)
	if !ok {
		t.Fatalf("invalid folder name %q", folder)
	}
	return c
}

// Folders parses resource folder names.
func Folders(t *testing.T, names ...string) []*resolver.Folder {
	t.Helper()
	folders, err := resolver.NewFolders(names)
	if err != nil {
		t.Fatalf("invalid folders %v: %v", names, err)
	}
	return folders
}

// Names returns the names of folders.
func Names(folders []*resolver.Folder) []string {
	names := make([]string, len(folders))
	for i, f := range folders {
		names[i] = f.Name
	}
	return names
}

// Device returns a device of the built-in catalog.
func Device(t *testing.T, id string) *devices.Device {
	t.Helper()
	catalog, err := devices.BuiltinCatalog()
	if err != nil {
		t.Fatalf("failed to load built-in catalog: %v", err)
	}
	d, err := catalog.Get(id)
	if err != nil {
		t.Fatalf("no built-in device %q: %v", id, err)
	}
	return d
}
