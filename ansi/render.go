package ansi

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/gantoho/rodomark"
)

type config struct {
	width      int
	hyperlinks bool
}

// Option configures rendering behavior.
type Option func(*config)

// WithWidth sets the wrap width. Zero disables wrapping.
func WithWidth(width int) Option {
	return func(cfg *config) {
		cfg.width = width
	}
}

// WithHyperlinks enables OSC 8 hyperlinks for link blocks.
func WithHyperlinks(enabled bool) Option {
	return func(cfg *config) {
		cfg.hyperlinks = enabled
	}
}

// Render draws every block of the document as ANSI-styled text, blocks
// separated by blank lines, in document order.
func Render(doc rodomark.Document, dark bool, opts ...Option) string {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	sections := make([]string, 0, len(doc.Blocks))
	quoted := false
	for _, block := range doc.Blocks {
		// The quote boundary block carries no content of its own; it
		// marks the paragraph that follows it in the flat sequence.
		if block.Kind == rodomark.BlockQuote {
			quoted = true
			continue
		}
		section := renderBlock(block, dark, cfg)
		if section != "" {
			if quoted && block.Kind == rodomark.BlockParagraph {
				section = quoteGutter(section, dark)
			}
			sections = append(sections, section)
		}
		quoted = false
	}
	if len(sections) == 0 {
		return ""
	}
	return strings.Join(sections, "\n\n") + "\n"
}

func renderBlock(block rodomark.Block, dark bool, cfg config) string {
	switch block.Kind {
	case rodomark.BlockHeading:
		style := lipgloss.NewStyle().Bold(true).Foreground(termColor(block.Color))
		return style.Render(strings.Repeat("#", block.Level) + " " + block.Text)
	case rodomark.BlockParagraph:
		return renderRuns(block, dark, cfg)
	case rodomark.BlockCode:
		return renderCode(block, dark)
	case rodomark.BlockListItem:
		return wrap(block.Text, cfg.width)
	case rodomark.BlockLinkRun:
		return renderLink(block, cfg)
	case rodomark.BlockRule:
		return rule(cfg.width)
	default:
		return ""
	}
}

func renderRuns(block rodomark.Block, dark bool, cfg config) string {
	var b strings.Builder
	for _, run := range block.Runs {
		b.WriteString(runStyle(run.Format, dark).Render(run.Text))
	}
	return wrap(b.String(), cfg.width)
}

// quoteGutter prefixes every line of a rendered section with the quote
// gutter.
func quoteGutter(section string, dark bool) string {
	prefix := lipgloss.NewStyle().
		Foreground(termColor(rodomark.BlockquoteColor(dark))).
		Render("│ ")
	lines := strings.Split(section, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func runStyle(format rodomark.TextFormat, dark bool) lipgloss.Style {
	style := lipgloss.NewStyle()
	switch format.Kind {
	case rodomark.FormatStrong:
		return style.Bold(true)
	case rodomark.FormatEmphasis:
		return style.Italic(true)
	case rodomark.FormatCode:
		return style.
			Foreground(termColor(rodomark.NormalColor(dark))).
			Background(termColor(rodomark.CodeBackground(dark)))
	default:
		return style
	}
}

func renderCode(block rodomark.Block, dark bool) string {
	background := termColor(rodomark.CodeBackground(dark))
	lines := make([]string, len(block.Lines))
	for i, line := range block.Lines {
		var b strings.Builder
		for _, fragment := range line.Fragments {
			style := lipgloss.NewStyle().
				Foreground(termColor(fragment.Color)).
				Background(background)
			b.WriteString(style.Render(fragment.Text))
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

func renderLink(block rodomark.Block, cfg config) string {
	style := lipgloss.NewStyle().Underline(true).Foreground(termColor(block.Color))
	if cfg.hyperlinks {
		return hyperlink(block.URL, style.Render(block.Text))
	}
	limit := cfg.width
	if limit <= 0 {
		limit = defaultRuleWidth
	}
	return style.Render(block.Text) + " (" + fitURL(block.URL, limit) + ")"
}

func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

const defaultRuleWidth = 80

func rule(width int) string {
	if width <= 0 || width > defaultRuleWidth {
		width = defaultRuleWidth
	}
	return strings.Repeat("─", width)
}

func termColor(c rodomark.Color) lipgloss.Color {
	return lipgloss.Color(c.String())
}
