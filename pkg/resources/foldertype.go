package resources

import "strings"

// FolderType is the resource type named by the first segment of a resource
// folder, e.g. "values" in "values-en-rUS".
type FolderType string

const (
	FolderAnim         FolderType = "anim"
	FolderAnimator     FolderType = "animator"
	FolderColor        FolderType = "color"
	FolderDrawable     FolderType = "drawable"
	FolderFont         FolderType = "font"
	FolderInterpolator FolderType = "interpolator"
	FolderLayout       FolderType = "layout"
	FolderMenu         FolderType = "menu"
	FolderMipmap       FolderType = "mipmap"
	FolderNavigation   FolderType = "navigation"
	FolderRaw          FolderType = "raw"
	FolderTransition   FolderType = "transition"
	FolderValues       FolderType = "values"
	FolderXML          FolderType = "xml"
)

var folderTypes = []FolderType{
	FolderAnim,
	FolderAnimator,
	FolderColor,
	FolderDrawable,
	FolderFont,
	FolderInterpolator,
	FolderLayout,
	FolderMenu,
	FolderMipmap,
	FolderNavigation,
	FolderRaw,
	FolderTransition,
	FolderValues,
	FolderXML,
}

// FolderTypes returns all known folder types in alphabetical order.
func FolderTypes() []FolderType {
	out := make([]FolderType, len(folderTypes))
	copy(out, folderTypes)
	return out
}

// FolderTypeFromName returns the folder type for the base segment of a
// folder name. Qualified names such as "values-fr" are accepted.
func FolderTypeFromName(name string) (FolderType, bool) {
	base, _, _ := strings.Cut(name, "-")
	for _, t := range folderTypes {
		if string(t) == base {
			return t, true
		}
	}
	return "", false
}

func (t FolderType) String() string { return string(t) }
