// Package styles defines the visual styling for patsub's terminal output.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. Definitions live in the embedded styles.yaml.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Underline   bool   `yaml:"underline,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	Background  string `yaml:"background,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles bound to one renderer.
type Registry struct {
	styles map[string]lipgloss.Style
	base   lipgloss.Style
}

// Default builds the embedded styles for renderer r.
func Default(r *lipgloss.Renderer) *Registry {
	reg, err := Load(defaultStyles, r)
	if err != nil {
		panic(fmt.Sprintf("failed to load embedded styles: %v", err))
	}
	return reg
}

// Load parses a YAML style configuration and binds it to renderer r.
func Load(data []byte, r *lipgloss.Renderer) (*Registry, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	reg := &Registry{
		styles: make(map[string]lipgloss.Style, len(cfg.Styles)),
		base:   r.NewStyle(),
	}
	for name, def := range cfg.Styles {
		reg.styles[name] = buildStyle(r.NewStyle(), def, colors)
	}
	return reg, nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(style lipgloss.Style, def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}
	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}
	return style
}

// Get returns the named style, or an unstyled one when unknown.
func (reg *Registry) Get(name string) lipgloss.Style {
	if style, ok := reg.styles[name]; ok {
		return style
	}
	return reg.base
}

// Render renders s with the named style.
func (reg *Registry) Render(name, s string) string {
	return reg.Get(name).Render(s)
}
