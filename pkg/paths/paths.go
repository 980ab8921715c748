package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/resconf/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for resconf
	EnvConfigDir = "RESCONF_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for resconf
	EnvStateDir = "RESCONF_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name for resconf-specific files
	AppDirName = "resconf"

	// ConfigFileName is the user configuration file inside the config dir
	ConfigFileName = "config.toml"

	// ProjectConfigFile is looked up in the project directory
	ProjectConfigFile = ".resconf.toml"

	// DevicesDirName holds user device definitions inside the config dir
	DevicesDirName = "devices"

	// LogFileName is the log file inside the state dir
	LogFileName = "resconf.log"
)

// Paths resolves every filesystem location resconf uses
type Paths interface {
	ProjectDir() string
	ConfigDir() string
	StateDir() string
	UserConfigFile() string
	ProjectConfigFile() string
	DevicesDir() string
	LogFilePath() string
	NormalizePath(path string) (string, error)
}

type paths struct {
	projectDir string
	configDir  string
	stateDir   string
}

// New creates a Paths rooted at projectDir. An empty projectDir means the
// current working directory.
func New(projectDir string) (Paths, error) {
	p := &paths{}

	if projectDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to get current directory")
		}
		projectDir = cwd
	}

	absRoot, err := filepath.Abs(expandHome(projectDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", projectDir)
	}
	p.projectDir = absRoot

	p.setupXDGDirs()
	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.configDir = expandHome(configDir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	// xdg caches XDG_STATE_HOME at init; read it directly so late changes apply
	switch {
	case os.Getenv(EnvStateDir) != "":
		p.stateDir = expandHome(os.Getenv(EnvStateDir))
	case os.Getenv("XDG_STATE_HOME") != "":
		p.stateDir = filepath.Join(os.Getenv("XDG_STATE_HOME"), AppDirName)
	default:
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}

// ExpandHome expands a leading ~ to the current user's home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

func (p *paths) ProjectDir() string { return p.projectDir }
func (p *paths) ConfigDir() string  { return p.configDir }
func (p *paths) StateDir() string   { return p.stateDir }

func (p *paths) UserConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

func (p *paths) ProjectConfigFile() string {
	return filepath.Join(p.projectDir, ProjectConfigFile)
}

func (p *paths) DevicesDir() string {
	return filepath.Join(p.configDir, DevicesDirName)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// NormalizePath expands ~ and makes path absolute. Relative paths are
// resolved against the project directory.
func (p *paths) NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}
	path = expandHome(path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.projectDir, path)
	}
	return filepath.Clean(path), nil
}
