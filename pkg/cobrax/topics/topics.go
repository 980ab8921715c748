// Package topics provides a topic-based help system for Cobra CLI
// applications. It extends the default help command with free-form topics
// loaded from a file system, typically one embedded in the binary.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/resconf/pkg/logging"
)

// optionPrefix marks topics that document a single flag, so that
// "help --normalize" finds "option-normalize".
const optionPrefix = "option-"

// TopicManager manages help topics for a Cobra application
type TopicManager struct {
	fsys         fs.FS
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	extensions   []string
	renderer     Renderer
}

// Topic represents a help topic
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Format returns the file extension of the topic, e.g. ".md".
func (t *Topic) Format() string { return path.Ext(t.Path) }

// Options configures the TopicManager
type Options struct {
	// Extensions is the list of file extensions to consider as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// New creates a TopicManager reading topics from fsys.
func New(fsys fs.FS) *TopicManager {
	return NewWithOptions(fsys, Options{})
}

// NewWithOptions creates a TopicManager with custom options
func NewWithOptions(fsys fs.FS, opts Options) *TopicManager {
	tm := &TopicManager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = PlainRenderer{}
	}
	return tm
}

// Load reads every topic file in the file system. A nil file system holds
// no topics.
func (tm *TopicManager) Load() error {
	if tm.fsys == nil {
		return nil
	}

	return fs.WalkDir(tm.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		if !tm.supported(ext) {
			return nil
		}

		content, err := fs.ReadFile(tm.fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
}

func (tm *TopicManager) supported(ext string) bool {
	for _, e := range tm.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// GetTopic retrieves a topic by name. Flag-style names ("--normalize") also
// find option topics ("option-normalize").
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, ok := tm.topics[name]; ok {
		return topic, true
	}
	topic, ok := tm.topics[optionPrefix+name]
	return topic, ok
}

// ListTopics returns all topic names, sorted.
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render writes the topic through the configured renderer.
func (tm *TopicManager) Render(w io.Writer, topic *Topic) error {
	return tm.renderer.Render(w, topic.Content, topic.Format())
}

// WriteIndex writes the list of available topics.
func (tm *TopicManager) WriteIndex(w io.Writer, program string) {
	names := tm.ListTopics()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, optionPrefix) {
			options = append(options, strings.TrimPrefix(name, optionPrefix))
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", program)
}

// Initialize sets up the topic-based help system with default options
func Initialize(rootCmd *cobra.Command, fsys fs.FS) (*TopicManager, error) {
	return InitializeWithOptions(rootCmd, fsys, Options{})
}

// InitializeWithOptions loads the topics and replaces the help command of
// rootCmd with one that also knows about them.
func InitializeWithOptions(rootCmd *cobra.Command, fsys fs.FS, opts Options) (*TopicManager, error) {
	logger := logging.GetLogger("cobrax.topics")

	tm := NewWithOptions(fsys, opts)
	if err := tm.Load(); err != nil {
		return nil, fmt.Errorf("failed to load help topics: %w", err)
	}
	logger.Trace().Int("topics", len(tm.topics)).Msg("Help topics loaded")

	tm.originalHelp = rootCmd.HelpFunc()
	program := rootCmd.Name()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + program + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + program + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				tm.originalHelp(rootCmd, []string{})
				return nil
			}
			if args[0] == "topics" {
				tm.WriteIndex(cmd.OutOrStdout(), program)
				return nil
			}
			if topic, ok := tm.GetTopic(args[0]); ok {
				return tm.Render(cmd.OutOrStdout(), topic)
			}

			target, _, err := rootCmd.Find(args)
			if err != nil || target == nil {
				return fmt.Errorf("unknown help topic %q", strings.Join(args, " "))
			}
			tm.originalHelp(target, args)
			return nil
		},
	}

	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			rootCmd.RemoveCommand(c)
			break
		}
	}
	rootCmd.SetHelpCommand(helpCmd)

	return tm, nil
}
