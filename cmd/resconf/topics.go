package resconf

import (
	"embed"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/resconf/pkg/output"
)

//go:embed topics/*.md
var topicFiles embed.FS

func helpTopics() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return nil
	}
	return sub
}

// renderTopic renders markdown topics with the --format flag alone, so that
// help never depends on loading the configuration.
func (a *app) renderTopic(w io.Writer, content, ext string) error {
	if ext != ".md" {
		_, err := io.WriteString(w, content)
		return err
	}
	format, err := output.ParseFormat(a.format)
	if err != nil {
		format = output.FormatAuto
	}
	return output.RenderMarkdown(w, format, content, 0)
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd.RunE == nil {
				return fmt.Errorf("help command not found")
			}
			return helpCmd.RunE(helpCmd, []string{"topics"})
		},
	}
}
