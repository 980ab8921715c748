package topics_test

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/resconf/pkg/cobrax/topics"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"matching.md":            {Data: []byte("# Matching\n\nHow the best folder is picked.")},
		"qualifiers.txt":         {Data: []byte("QUALIFIERS\nOne segment per axis.")},
		"option-normalize.txt":   {Data: []byte("Normalize help")},
		"notes.json":             {Data: []byte(`{"ignored": true}`)},
		"advanced/overlays.txt":  {Data: []byte("Overlay help")},
		"advanced/README.config": {Data: []byte("not a topic")},
	}
}

func loaded(t *testing.T, opts topics.Options) *topics.TopicManager {
	t.Helper()
	tm := topics.NewWithOptions(topicFS(), opts)
	require.NoError(t, tm.Load())
	return tm
}

func TestLoad(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := loaded(t, topics.Options{})
		assert.Equal(t, []string{"matching", "option-normalize", "overlays", "qualifiers"}, tm.ListTopics())

		topic, ok := tm.GetTopic("matching")
		require.True(t, ok)
		assert.Equal(t, ".md", topic.Format())
		assert.Equal(t, "matching.md", topic.Path)

		topic, ok = tm.GetTopic("overlays")
		require.True(t, ok)
		assert.Equal(t, "Overlay help", topic.Content)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := loaded(t, topics.Options{Extensions: []string{".json"}})
		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})

	t.Run("no file system", func(t *testing.T) {
		tm := topics.New(nil)
		require.NoError(t, tm.Load())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestGetTopic(t *testing.T) {
	tm := loaded(t, topics.Options{})

	tests := []struct {
		input  string
		want   string
		exists bool
	}{
		{"qualifiers", "qualifiers", true},
		{"option-normalize", "option-normalize", true},
		{"normalize", "option-normalize", true},
		{"--normalize", "option-normalize", true},
		{"-normalize", "option-normalize", true},
		{"-n", "", false},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, ok := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, ok)
			if ok {
				assert.Equal(t, tt.want, topic.Name)
			}
		})
	}
}

func TestWriteIndex(t *testing.T) {
	var buf bytes.Buffer
	loaded(t, topics.Options{}).WriteIndex(&buf, "resconf")

	out := buf.String()
	assert.Contains(t, out, "General topics:\n  matching\n  overlays\n  qualifiers\n")
	assert.Contains(t, out, "Option topics:\n  --normalize\n")
	assert.Contains(t, out, "Use 'resconf help <topic>'")

	buf.Reset()
	topics.New(fstest.MapFS{}).WriteIndex(&buf, "resconf")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func newRoot(t *testing.T, opts topics.Options) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "resconf", Short: "Test application"}
	root.AddCommand(&cobra.Command{
		Use:   "match",
		Short: "Pick the best folder",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	_, err := topics.InitializeWithOptions(root, topicFS(), opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	return root, &buf
}

func TestHelpCommand(t *testing.T) {
	t.Run("topic", func(t *testing.T) {
		root, buf := newRoot(t, topics.Options{})
		root.SetArgs([]string{"help", "qualifiers"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "QUALIFIERS\nOne segment per axis.", buf.String())
	})

	t.Run("topics index", func(t *testing.T) {
		root, buf := newRoot(t, topics.Options{})
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "Available help topics:")
	})

	t.Run("command", func(t *testing.T) {
		root, buf := newRoot(t, topics.Options{})
		root.SetArgs([]string{"help", "match"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "Pick the best folder")
	})

	t.Run("unknown", func(t *testing.T) {
		root, _ := newRoot(t, topics.Options{})
		root.SetArgs([]string{"help", "bogus"})
		err := root.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bogus")
	})

	t.Run("renderer receives format", func(t *testing.T) {
		var formats []string
		renderer := topics.RendererFunc(func(w io.Writer, content, format string) error {
			formats = append(formats, format)
			_, err := io.WriteString(w, strings.ToUpper(content))
			return err
		})

		root, buf := newRoot(t, topics.Options{Renderer: renderer})
		root.SetArgs([]string{"help", "matching"})
		require.NoError(t, root.Execute())
		assert.Equal(t, []string{".md"}, formats)
		assert.Contains(t, buf.String(), "# MATCHING")
	})

	t.Run("help command is replaced", func(t *testing.T) {
		root, _ := newRoot(t, topics.Options{})
		root.InitDefaultHelpCmd()
		help, _, err := root.Find([]string{"help"})
		require.NoError(t, err)
		assert.Equal(t, "help [command or topic]", help.Use)
	})
}
