package topics

import (
	"io"
)

// Renderer formats topic content for display
type Renderer interface {
	// Render writes content to w. format is the topic's file extension.
	Render(w io.Writer, content string, format string) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(w io.Writer, content string, format string) error

func (f RendererFunc) Render(w io.Writer, content string, format string) error {
	return f(w, content, format)
}

// PlainRenderer is the default renderer that writes content as-is
type PlainRenderer struct{}

func (PlainRenderer) Render(w io.Writer, content string, format string) error {
	_, err := io.WriteString(w, content)
	return err
}
