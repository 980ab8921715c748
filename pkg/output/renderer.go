package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/arthur-debert/resconf/pkg/errors"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderReport renders a command result
	RenderReport(report *Report) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error

	// Format is the concrete format the renderer produces
	Format() Format
}

// Resolve replaces FormatAuto with the format detected for w.
func Resolve(format Format, w io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	if file, ok := w.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatText
}

// NewRenderer creates a renderer for format, detecting terminal
// capabilities when format is FormatAuto.
func NewRenderer(format Format, w io.Writer) (Renderer, error) {
	switch f := Resolve(format, w); f {
	case FormatTerminal, FormatText, FormatTable:
		return &tableRenderer{output: w, format: f}, nil
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return &jsonRenderer{encoder: encoder}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

// tableRenderer renders reports as tables, styled according to format.
type tableRenderer struct {
	output io.Writer
	format Format
}

func (r *tableRenderer) Format() Format { return r.format }

func (r *tableRenderer) styled(name, s string) string {
	if r.format != FormatTerminal {
		return s
	}
	return GetStyle(name).Render(s)
}

func (r *tableRenderer) RenderReport(report *Report) error {
	if report.Title != "" {
		if _, err := fmt.Fprintln(r.output, r.styled("Header", report.Title)); err != nil {
			return err
		}
		if r.format != FormatTerminal {
			if _, err := fmt.Fprintln(r.output); err != nil {
				return err
			}
		}
	}

	if len(report.Header) > 0 || len(report.Rows) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(r.output)
		if len(report.Header) > 0 {
			header := make(table.Row, 0, len(report.Header))
			for _, h := range report.Header {
				header = append(header, h)
			}
			t.AppendHeader(header)
		}
		for _, row := range report.Rows {
			cells := make(table.Row, 0, len(row))
			for _, c := range row {
				cells = append(cells, c)
			}
			t.AppendRow(cells)
		}
		t.SetStyle(r.tableStyle())
		t.Render()
	}

	for _, note := range report.Notes {
		if _, err := fmt.Fprintln(r.output, r.styled("Note", note)); err != nil {
			return err
		}
	}
	return nil
}

func (r *tableRenderer) tableStyle() table.Style {
	var style table.Style
	switch r.format {
	case FormatTerminal:
		style = table.StyleRounded
	case FormatTable:
		style = table.StyleLight
	default:
		style = table.StyleDefault
		style.Options.DrawBorder = false
		style.Options.SeparateColumns = false
		style.Options.SeparateHeader = false
		style.Options.SeparateRows = false
		style.Box.PaddingLeft = ""
		style.Box.PaddingRight = "  "
	}
	style.Format.Header = text.FormatDefault
	return style
}

func (r *tableRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %v\n", r.styled("Error", "Error:"), err)
	return werr
}

func (r *tableRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// jsonRenderer provides JSON output for machine consumption
type jsonRenderer struct {
	encoder *json.Encoder
}

func (r *jsonRenderer) Format() Format { return FormatJSON }

func (r *jsonRenderer) RenderReport(report *Report) error {
	if report.Data != nil {
		return r.encoder.Encode(report.Data)
	}
	return r.encoder.Encode(report.records())
}

func (r *jsonRenderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": err.Error(),
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		errorObj["code"] = code
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encoder.Encode(errorObj)
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
