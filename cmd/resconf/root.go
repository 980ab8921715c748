package resconf

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/resconf/internal/version"
	"github.com/arthur-debert/resconf/pkg/cobrax/topics"
	"github.com/arthur-debert/resconf/pkg/commands"
	"github.com/arthur-debert/resconf/pkg/commands/environment"
	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/logging"
	"github.com/arthur-debert/resconf/pkg/output"
	"github.com/arthur-debert/resconf/pkg/resolver"
)

// app holds the global flags and the lazily loaded environment shared by
// all commands of one invocation.
type app struct {
	verbosity  int
	projectDir string
	configFile string
	format     string
	set        []string

	env *environment.Environment
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "resconf",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
			resolver.SetLogger(logging.GetLogger("resolver"))
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&a.projectDir, "project", "C", "", MsgFlagProject)
	flags.StringVar(&a.configFile, "config", "", MsgFlagConfig)
	flags.StringVarP(&a.format, "format", "o", "", MsgFlagFormat)
	flags.StringArrayVar(&a.set, "set", nil, MsgFlagSet)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "info",
		Title: "INFORMATION:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newMatchCmd(a))
	rootCmd.AddCommand(newSortCmd(a))
	rootCmd.AddCommand(newFilterCmd(a))
	rootCmd.AddCommand(newDevicesCmd(a))
	rootCmd.AddCommand(newAxesCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newTopicsCmd())

	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.RendererFunc(a.renderTopic),
	}
	if _, err := topics.InitializeWithOptions(rootCmd, helpTopics(), opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// environment loads paths, configuration and the device catalog once per
// invocation. --format and --set are applied as config overrides.
func (a *app) environment() (*environment.Environment, error) {
	if a.env != nil {
		return a.env, nil
	}

	overrides, err := parseOverrides(a.set)
	if err != nil {
		return nil, err
	}
	if a.format != "" {
		overrides["output.format"] = a.format
	}

	env, err := commands.LoadEnvironment(commands.EnvironmentOptions{
		ProjectDir: a.projectDir,
		ConfigFile: a.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, err
	}
	a.env = env
	return env, nil
}

// renderer creates the renderer for the configured output format
func (a *app) renderer(cmd *cobra.Command) (output.Renderer, error) {
	env, err := a.environment()
	if err != nil {
		return nil, err
	}
	format, err := output.ParseFormat(env.Config.Output.Format)
	if err != nil {
		return nil, err
	}
	return output.NewRenderer(format, cmd.OutOrStdout())
}

func parseOverrides(values []string) (map[string]interface{}, error) {
	overrides := make(map[string]interface{}, len(values))
	for _, v := range values {
		key, value, ok := strings.Cut(v, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrSetFlag, v).
				WithDetail("value", v)
		}
		overrides[strings.ToLower(key)] = strings.TrimSpace(value)
	}
	return overrides, nil
}
