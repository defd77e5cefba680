package rodomark

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// HighlightTheme selects the color scheme used for code block syntax
// highlighting. It wraps an immutable chroma style; themes are loaded
// once per process and safe to share across renders.
type HighlightTheme struct {
	name  string
	style *chroma.Style
}

// Name returns the theme name.
func (t HighlightTheme) Name() string { return t.name }

func (t HighlightTheme) chromaStyle() *chroma.Style {
	if t.style == nil {
		return styles.Fallback
	}
	return t.style
}

const (
	darkHighlightTheme  = "monokai"
	lightHighlightTheme = "github"
)

// DefaultHighlightTheme returns the built-in theme for the given mode.
func DefaultHighlightTheme(dark bool) HighlightTheme {
	name := lightHighlightTheme
	if dark {
		name = darkHighlightTheme
	}
	theme, _ := HighlightThemeByName(name)
	return theme
}

// HighlightThemeByName returns a highlight theme by name. An empty name
// resolves to the light default.
func HighlightThemeByName(name string) (HighlightTheme, bool) {
	if name == "" {
		name = lightHighlightTheme
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	style, ok := styles.Registry[normalized]
	if !ok {
		return HighlightTheme{}, false
	}
	return HighlightTheme{name: normalized, style: style}, true
}

// AvailableHighlightThemes returns the names of the available highlight
// themes, sorted.
func AvailableHighlightThemes() []string {
	return styles.Names()
}
