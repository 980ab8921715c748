package resconf

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Resolve Android resource configuration qualifiers"
	MsgParseShort       = "Decode folder names and qualifier strings"
	MsgMatchShort       = "Pick the folders that best match a configuration"
	MsgSortShort        = "Sort folders from least to most specific"
	MsgFilterShort      = "Keep the folders a product configuration ships"
	MsgDevicesShort     = "List and describe catalog devices"
	MsgDevicesListShort = "List catalog devices"
	MsgDevicesShowShort = "Show the configurations of a device"
	MsgAxesShort        = "Describe the configuration axes"
	MsgConfigShort      = "Print the effective configuration"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"
	MsgManShort         = "Generate man pages"
	MsgTopicsShort      = "Display available documentation topics"
	MsgTopicsLong       = "Display a list of all available help topics that provide additional documentation beyond command help."

	// Report titles and notes
	MsgParseTitle      = "Parsed configurations"
	MsgMatchTitle      = "Matches for %s"
	MsgMatchDeviceNote = "Device %s, state %s"
	MsgBestNote        = "Best match: %s"
	MsgNoMatchNote     = "No candidate matches the reference."
	MsgSortTitle       = "Folders by specificity"
	MsgFilterTitle     = "Product filter"
	MsgFilterNote      = "Kept %d of %d folders."
	MsgDevicesTitle    = "Devices"
	MsgDeviceTitle     = "%s (%s)"
	MsgNoDevices       = "No devices in the catalog."
	MsgManWritten      = "Wrote man pages to %s"

	// Error messages
	MsgErrInvalidInputs = "%d input(s) did not parse"
	MsgErrNoMatch       = "no candidate matches %s"
	MsgErrNoReference   = "no reference configuration: pass --ref or --device, or set devices.default"
	MsgErrSetFlag       = "invalid --set value %q, expected key=value"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file to use instead of the project .resconf.toml"
	MsgFlagProject   = "Project directory (default is the current directory)"
	MsgFlagFormat    = "Output format: auto, term, text, table or json"
	MsgFlagSet       = "Override a config key, e.g. --set match.normalize=false"
	MsgFlagRef       = "Reference folder name or qualifier string"
	MsgFlagDevice    = "Catalog device providing the reference"
	MsgFlagState     = "Device state (default is the device default state)"
	MsgFlagLocale    = "Locale for device references, e.g. en or en_US"
	MsgFlagNight     = "Use night mode for device references"
	MsgFlagWith      = "Extra qualifiers applied to the reference, e.g. ldrtl-v30"
	MsgFlagNormalize = "Add the implied platform version to candidates"
	MsgFlagReverse   = "List the most specific folders first"
	MsgFlagAapt      = "aapt-style configuration list, e.g. en_US,xhdpi"
	MsgFlagPreferred = "Keep only the best density variant for this density"
	MsgFlagDefaults  = "Print the built-in defaults instead"
	MsgFlagManDir    = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/parse-long.txt
	msgParseLongRaw string
	MsgParseLong    = strings.TrimSpace(msgParseLongRaw)

	//go:embed msgs/parse-example.txt
	msgParseExampleRaw string
	MsgParseExample    = strings.TrimSpace(msgParseExampleRaw)

	//go:embed msgs/match-long.txt
	msgMatchLongRaw string
	MsgMatchLong    = strings.TrimSpace(msgMatchLongRaw)

	//go:embed msgs/match-example.txt
	msgMatchExampleRaw string
	MsgMatchExample    = strings.TrimSpace(msgMatchExampleRaw)

	//go:embed msgs/sort-long.txt
	msgSortLongRaw string
	MsgSortLong    = strings.TrimSpace(msgSortLongRaw)

	//go:embed msgs/sort-example.txt
	msgSortExampleRaw string
	MsgSortExample    = strings.TrimSpace(msgSortExampleRaw)

	//go:embed msgs/filter-long.txt
	msgFilterLongRaw string
	MsgFilterLong    = strings.TrimSpace(msgFilterLongRaw)

	//go:embed msgs/filter-example.txt
	msgFilterExampleRaw string
	MsgFilterExample    = strings.TrimSpace(msgFilterExampleRaw)

	//go:embed msgs/devices-long.txt
	msgDevicesLongRaw string
	MsgDevicesLong    = strings.TrimSpace(msgDevicesLongRaw)

	//go:embed msgs/devices-example.txt
	msgDevicesExampleRaw string
	MsgDevicesExample    = strings.TrimSpace(msgDevicesExampleRaw)

	//go:embed msgs/axes-long.txt
	msgAxesLongRaw string
	MsgAxesLong    = strings.TrimSpace(msgAxesLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
