package output

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
}

// StylesConfig is the layout of styles.yaml
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// styleRegistry maps semantic names to lipgloss styles
var styleRegistry = mustLoadStyles(embeddedStyles)

func mustLoadStyles(data []byte) map[string]lipgloss.Style {
	styles, err := LoadStyles(data)
	if err != nil {
		panic(err)
	}
	return styles
}

// LoadStyles builds lipgloss styles from a styles.yaml document
func LoadStyles(data []byte) (map[string]lipgloss.Style, error) {
	var config StylesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	styles := make(map[string]lipgloss.Style, len(config.Styles))
	for name, def := range config.Styles {
		style := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if def.Foreground != "" {
			color, ok := colors[def.Foreground]
			if !ok {
				return nil, fmt.Errorf("style %s uses unknown color %s", name, def.Foreground)
			}
			style = style.Foreground(color)
		}
		if def.MarginBottom > 0 {
			style = style.MarginBottom(def.MarginBottom)
		}
		styles[name] = style
	}
	return styles, nil
}

// GetStyle safely retrieves a style from the registry
func GetStyle(name string) lipgloss.Style {
	if style, ok := styleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
