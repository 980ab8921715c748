package resolver

import (
	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/folderconfig"
	"github.com/arthur-debert/resconf/pkg/resources"
)

// Folder is a resource folder known by name, e.g. "drawable-hdpi".
type Folder struct {
	Name   string
	Type   resources.FolderType
	config *folderconfig.FolderConfiguration
}

// NewFolder parses a resource folder name.
func NewFolder(name string) (*Folder, error) {
	folderType, config, ok := folderconfig.ParseFolderName(name)
	if !ok {
		return nil, errors.Newf(errors.ErrFolderInvalid, "invalid resource folder name %q", name).
			WithDetail("folder", name)
	}
	return &Folder{Name: name, Type: folderType, config: config}, nil
}

// NewFolders parses every name, failing on the first invalid one.
func NewFolders(names []string) ([]*Folder, error) {
	folders := make([]*Folder, 0, len(names))
	for _, name := range names {
		f, err := NewFolder(name)
		if err != nil {
			return nil, err
		}
		folders = append(folders, f)
	}
	return folders, nil
}

func (f *Folder) Configuration() *folderconfig.FolderConfiguration { return f.config }

func (f *Folder) String() string { return f.Name }

// GroupKey keeps folders of different types apart when grouping by
// configuration.
func (f *Folder) GroupKey() string { return string(f.Type) }
