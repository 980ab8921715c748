package folderconfig

import (
	"strings"

	"github.com/arthur-debert/resconf/pkg/qualifiers"
	"github.com/arthur-debert/resconf/pkg/resources"
)

// Separator joins the segments of a resource folder name.
const Separator = "-"

// GetConfig builds a configuration from the segments of a folder name. The
// first segment is the resource type ("values", "layout", ...) and is not
// inspected.
//
// Qualifier segments must follow the canonical axis order: each segment is
// tried against the axes after the last one matched, and once an axis has
// been passed it cannot match again. GetConfig returns nil if a segment is
// empty or matches none of the remaining axes; it never returns a partial
// configuration.
func GetConfig(segments []string) *FolderConfiguration {
	config := New()
	if len(segments) == 0 {
		return config
	}

	axis := qualifiers.Axis(0)
	for _, segment := range segments[1:] {
		if segment == "" {
			return nil
		}
		segment = strings.ToLower(segment)

		matched := false
		for axis < qualifiers.AxisCount {
			current := axis
			axis++
			if current.CheckAndSet(segment, config) {
				matched = true
				break
			}
		}
		if !matched {
			return nil
		}
	}
	return config
}

// GetConfigForFolder parses a full folder name such as "values-en-rUS-v21".
func GetConfigForFolder(folderName string) *FolderConfiguration {
	return GetConfig(strings.Split(folderName, Separator))
}

// GetConfigForQualifierString parses the qualifier part of a folder name
// without its resource type, e.g. "en-rUS-hdpi". The empty string yields a
// default configuration.
func GetConfigForQualifierString(qualifierString string) *FolderConfiguration {
	if qualifierString == "" {
		return New()
	}
	return GetConfig(append([]string{""}, strings.Split(qualifierString, Separator)...))
}

// ParseFolderName splits a folder name into its resource type and
// configuration. ok is false when the base name is not a known resource type
// or the qualifiers do not parse.
func ParseFolderName(folderName string) (resources.FolderType, *FolderConfiguration, bool) {
	folderType, ok := resources.FolderTypeFromName(folderName)
	if !ok {
		return "", nil, false
	}
	config := GetConfigForFolder(folderName)
	if config == nil {
		return "", nil, false
	}
	return folderType, config, true
}
