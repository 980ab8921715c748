package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown writes markdown content. The terminal format renders it
// with glamour; every other format writes the source unchanged. A width of
// 0 keeps glamour's default wrapping.
func RenderMarkdown(w io.Writer, format Format, content string, width int) error {
	if Resolve(format, w) == FormatTerminal {
		content = renderGlamour(content, width)
	}
	_, err := fmt.Fprint(w, content)
	return err
}

func renderGlamour(content string, width int) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
