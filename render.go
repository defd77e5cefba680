package rodomark

// RenderContext carries the per-render parameters. It is a plain input,
// never persisted; there is no ambient mode state.
type RenderContext struct {
	// DarkMode selects the dark variants of the semantic color tables
	// and the default highlight theme.
	DarkMode bool
	// HighlightTheme overrides the code highlight theme. The zero value
	// picks the default for DarkMode.
	HighlightTheme HighlightTheme
}

// Render parses Markdown content and interprets it into an ordered,
// styled Document in one synchronous pass. It performs no I/O and has no
// side effects; identical inputs produce identical Documents. Malformed
// Markdown degrades rather than fails: unknown constructs are ignored and
// unhighlightable code falls back to plain text.
func Render(content string, ctx RenderContext) Document {
	theme := ctx.HighlightTheme
	if theme.style == nil {
		theme = DefaultHighlightTheme(ctx.DarkMode)
	}
	in := newInterpreter(ctx.DarkMode, theme)
	for _, ev := range ParseEvents([]byte(stripFrontMatter(content))) {
		in.feed(ev)
	}
	return in.finish()
}
