package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set at release: -X github.com/arthur-debert/resconf/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set at release: -X github.com/arthur-debert/resconf/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set at release: -X github.com/arthur-debert/resconf/internal/version.Date={{.Date}}
)

// Info is the build information of the running binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the build information.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

func (i Info) String() string {
	return fmt.Sprintf("resconf version %s (commit %s, built %s)", i.Version, i.Commit, i.Date)
}
