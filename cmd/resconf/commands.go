package resconf

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/resconf/internal/version"
	"github.com/arthur-debert/resconf/pkg/commands"
	"github.com/arthur-debert/resconf/pkg/commands/match"
	"github.com/arthur-debert/resconf/pkg/config"
	"github.com/arthur-debert/resconf/pkg/devices"
	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/logging"
	"github.com/arthur-debert/resconf/pkg/output"
	"github.com/arthur-debert/resconf/pkg/resources"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "parse <folder|qualifiers>...",
		Short:   MsgParseShort,
		Long:    MsgParseLong,
		Example: MsgParseExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			result, err := commands.Parse(commands.ParseOptions{Inputs: args})
			if err != nil {
				return err
			}
			if err := renderer.RenderReport(parseReport(result)); err != nil {
				return err
			}

			if invalid := result.Invalid(); len(invalid) > 0 {
				return errors.Newf(errors.ErrFolderInvalid, MsgErrInvalidInputs, len(invalid)).
					WithDetail("inputs", invalid)
			}
			return nil
		},
	}
}

func newMatchCmd(a *app) *cobra.Command {
	var opts match.Options

	cmd := &cobra.Command{
		Use:               "match [flags] <candidate>...",
		Short:             MsgMatchShort,
		Long:              MsgMatchLong,
		Example:           MsgMatchExample,
		GroupID:           "core",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			opts.Candidates = args
			opts.Catalog = env.Catalog
			if !cmd.Flags().Changed("normalize") {
				opts.Normalize = env.Config.Match.Normalize
			}
			if opts.Reference == "" && opts.Device == "" {
				if env.Config.Devices.Default == "" {
					return errors.New(errors.ErrInvalidInput, MsgErrNoReference)
				}
				opts.Device = env.Config.Devices.Default
			}

			result, err := commands.Match(opts)
			if err != nil {
				return err
			}
			if err := renderer.RenderReport(matchReport(result)); err != nil {
				return err
			}

			if !result.Found() {
				return errors.Newf(errors.ErrNoMatch, MsgErrNoMatch, describeReference(result)).
					WithDetail("reference", result.Reference)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Reference, "ref", "r", "", MsgFlagRef)
	flags.StringVarP(&opts.Device, "device", "d", "", MsgFlagDevice)
	flags.StringVarP(&opts.State, "state", "s", "", MsgFlagState)
	flags.StringVarP(&opts.Locale, "locale", "l", "", MsgFlagLocale)
	flags.BoolVar(&opts.Night, "night", false, MsgFlagNight)
	flags.StringVar(&opts.Overlay, "with", "", MsgFlagWith)
	flags.BoolVar(&opts.Normalize, "normalize", false, MsgFlagNormalize)
	cmd.MarkFlagsMutuallyExclusive("ref", "device")
	_ = cmd.RegisterFlagCompletionFunc("device", deviceCompletion(a))

	return cmd
}

func newSortCmd(a *app) *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:     "sort <folder>...",
		Short:   MsgSortShort,
		Long:    MsgSortLong,
		Example: MsgSortExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			result, err := commands.Sort(commands.SortOptions{Inputs: args, Reverse: reverse})
			if err != nil {
				return err
			}
			return renderer.RenderReport(sortReport(result))
		},
	}

	cmd.Flags().BoolVar(&reverse, "reverse", false, MsgFlagReverse)
	return cmd
}

func newFilterCmd(a *app) *cobra.Command {
	var (
		configs          []string
		preferredDensity string
	)

	cmd := &cobra.Command{
		Use:     "filter [flags] <folder>...",
		Short:   MsgFilterShort,
		Long:    MsgFilterLong,
		Example: MsgFilterExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("config") {
				configs = env.Config.Product.AaptConfig
			}
			if !cmd.Flags().Changed("preferred-density") {
				preferredDensity = env.Config.Product.PreferredDensity
			}

			result, err := commands.Filter(commands.FilterOptions{
				Configs:          configs,
				PreferredDensity: preferredDensity,
				Folders:          args,
			})
			if err != nil {
				return err
			}
			return renderer.RenderReport(filterReport(result))
		},
	}

	cmd.Flags().StringSliceVarP(&configs, "config", "c", nil, MsgFlagAapt)
	cmd.Flags().StringVar(&preferredDensity, "preferred-density", "", MsgFlagPreferred)
	return cmd
}

func newDevicesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "devices",
		Short:   MsgDevicesShort,
		Long:    MsgDevicesLong,
		Example: MsgDevicesExample,
		GroupID: "info",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: MsgDevicesListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			result, err := commands.ListDevices(env.Catalog)
			if err != nil {
				return err
			}
			return renderer.RenderReport(devicesReport(result))
		},
	}

	var (
		locale string
		night  bool
	)
	show := &cobra.Command{
		Use:               "show <device>",
		Short:             MsgDevicesShowShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: deviceCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			var opts []devices.Option
			if locale != "" {
				opt, err := match.ParseLocale(locale)
				if err != nil {
					return err
				}
				opts = append(opts, opt)
			}
			if night {
				opts = append(opts, devices.WithNightMode(resources.NightModeNight))
			}

			result, err := commands.ShowDevice(env.Catalog, args[0], opts...)
			if err != nil {
				return err
			}
			return renderer.RenderReport(deviceReport(result))
		},
	}
	show.Flags().StringVarP(&locale, "locale", "l", "", MsgFlagLocale)
	show.Flags().BoolVar(&night, "night", false, MsgFlagNight)

	cmd.AddCommand(list, show)
	return cmd
}

func newAxesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "axes",
		Short:   MsgAxesShort,
		Long:    MsgAxesLong,
		GroupID: "info",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.environment()
			if err != nil {
				return err
			}
			format, err := output.ParseFormat(env.Config.Output.Format)
			if err != nil {
				return err
			}

			result := commands.Axes()
			if output.Resolve(format, cmd.OutOrStdout()) == output.FormatJSON {
				renderer, err := output.NewRenderer(output.FormatJSON, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				return renderer.RenderReport(&output.Report{Data: result})
			}
			return output.RenderMarkdown(cmd.OutOrStdout(), format, result.Markdown(), 0)
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "info",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}

			env, err := a.environment()
			if err != nil {
				return err
			}
			data, err := toml.Marshal(env.Config)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if a.format == output.FormatJSON.String() {
				renderer, err := output.NewRenderer(output.FormatJSON, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				return renderer.RenderReport(&output.Report{Data: info})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot create %s", dir).
					WithDetail("path", dir)
			}
			header := &doc.GenManHeader{
				Title:   "RESCONF",
				Section: "1",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return err
			}
			logger := logging.GetLogger("cmd.man")
			logger.Info().Str("dir", dir).Msg("Generated man pages")
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten+"\n", dir)
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "man", MsgFlagManDir)
	return cmd
}

// deviceCompletion completes catalog device ids
func deviceCompletion(a *app) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		env, err := a.environment()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var ids []string
		for _, id := range env.Catalog.IDs() {
			if strings.HasPrefix(id, strings.ToLower(toComplete)) {
				ids = append(ids, id)
			}
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	}
}

func describeReference(r *match.Result) string {
	if r.Device != "" {
		return r.Device
	}
	if r.Reference == "" {
		return "the default configuration"
	}
	return r.Reference
}

func boolMark(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
