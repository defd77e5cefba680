package rodomark

import "github.com/alecthomas/chroma/v2"

// Color is a concrete RGB color value.
type Color = chroma.Colour

// FormatKind identifies the active text format.
type FormatKind uint8

const (
	// FormatNormal is unstyled body text.
	FormatNormal FormatKind = iota
	// FormatHeading is heading text at a given level.
	FormatHeading
	// FormatStrong is bold text.
	FormatStrong
	// FormatEmphasis is italic text.
	FormatEmphasis
	// FormatCode is inline code.
	FormatCode
	// FormatLink is link text with a destination URL.
	FormatLink
)

// TextFormat is the single active format of the accumulation buffer.
// Exactly one format is active at any time; combined styles cannot be
// represented and the last-entered style wins.
type TextFormat struct {
	Kind  FormatKind
	Level int    // FormatHeading only, 1..6
	URL   string // FormatLink only
}

// TextRun is a span of text with one format applied. Runs are never
// emitted with empty text.
type TextRun struct {
	Text   string
	Format TextFormat
}

// Fragment is a piece of a highlighted code line with its resolved color.
type Fragment struct {
	Text  string
	Color Color
}

// HighlightedLine is one line of a code block as an ordered fragment
// sequence. A blank input line has no fragments.
type HighlightedLine struct {
	Fragments []Fragment
}

// Text returns the line's text without styling.
func (l HighlightedLine) Text() string {
	var out string
	for _, f := range l.Fragments {
		out += f.Text
	}
	return out
}

// BlockKind identifies a Block variant.
type BlockKind uint8

const (
	// BlockHeading is a heading with a resolved color.
	BlockHeading BlockKind = iota
	// BlockParagraph groups consecutive text runs.
	BlockParagraph
	// BlockCode is a highlighted fenced or indented code block.
	BlockCode
	// BlockListItem is a single bullet line.
	BlockListItem
	// BlockQuote marks a quote container boundary.
	BlockQuote
	// BlockLinkRun is a link with its destination and resolved color.
	BlockLinkRun
	// BlockRule is a thematic break.
	BlockRule
)

// Block is one element of the document in source order. Blocks own their
// text; the populated fields depend on Kind.
type Block struct {
	Kind BlockKind

	Level int    // BlockHeading
	Text  string // BlockHeading, BlockListItem, BlockLinkRun
	Color Color  // BlockHeading, BlockLinkRun

	Runs []TextRun // BlockParagraph, BlockQuote

	Language string            // BlockCode
	Lines    []HighlightedLine // BlockCode

	URL string // BlockLinkRun
}

// Document is the ordered block sequence produced by one render pass.
// It is immutable once returned.
type Document struct {
	Blocks []Block
}
