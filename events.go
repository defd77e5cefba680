package rodomark

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// EventKind identifies a structural event from the Markdown parser.
type EventKind uint8

const (
	// EventText carries literal text.
	EventText EventKind = iota
	// EventInlineCode carries an atomic inline code span.
	EventInlineCode
	// EventSoftBreak separates lines inside a paragraph.
	EventSoftBreak
	// EventHardBreak forces a line break.
	EventHardBreak
	// EventRule is a thematic break.
	EventRule
	// EventStartHeading opens a heading at Level.
	EventStartHeading
	// EventEndHeading closes a heading.
	EventEndHeading
	// EventStartParagraph opens a paragraph.
	EventStartParagraph
	// EventEndParagraph closes a paragraph.
	EventEndParagraph
	// EventStartCodeBlock opens a code block with an optional Language.
	EventStartCodeBlock
	// EventEndCodeBlock closes a code block.
	EventEndCodeBlock
	// EventStartList opens a list.
	EventStartList
	// EventEndList closes a list.
	EventEndList
	// EventStartListItem opens a list item.
	EventStartListItem
	// EventEndListItem closes a list item.
	EventEndListItem
	// EventStartEmphasis opens italic text.
	EventStartEmphasis
	// EventEndEmphasis closes italic text.
	EventEndEmphasis
	// EventStartStrong opens bold text.
	EventStartStrong
	// EventEndStrong closes bold text.
	EventEndStrong
	// EventStartBlockQuote opens a quote container.
	EventStartBlockQuote
	// EventEndBlockQuote closes a quote container.
	EventEndBlockQuote
	// EventStartLink opens a link to URL.
	EventStartLink
	// EventEndLink closes a link.
	EventEndLink
)

// Event is one structural marker in the parse stream. Populated fields
// depend on Kind.
type Event struct {
	Kind     EventKind
	Text     string // EventText, EventInlineCode
	Level    int    // EventStartHeading
	Language string // EventStartCodeBlock
	URL      string // EventStartLink
}

// Parsing is goroutine-safe; one parser is shared for the process.
var markdownParser = goldmark.New().Parser()

// ParseEvents parses Markdown source into a flat structural event stream.
// Node kinds outside the event vocabulary produce no events.
func ParseEvents(source []byte) []Event {
	root := markdownParser.Parse(text.NewReader(source), parser.WithContext(parser.NewContext()))
	var events []Event
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Heading:
			if entering {
				events = append(events, Event{Kind: EventStartHeading, Level: node.Level})
			} else {
				events = append(events, Event{Kind: EventEndHeading})
			}
		case *ast.Paragraph:
			if entering {
				events = append(events, Event{Kind: EventStartParagraph})
			} else {
				events = append(events, Event{Kind: EventEndParagraph})
			}
		case *ast.TextBlock:
			// Tight list item content; no paragraph boundary.
		case *ast.FencedCodeBlock:
			if entering {
				events = append(events, Event{
					Kind:     EventStartCodeBlock,
					Language: string(node.Language(source)),
				})
				events = appendSegmentText(events, source, node)
				events = append(events, Event{Kind: EventEndCodeBlock})
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			if entering {
				events = append(events, Event{Kind: EventStartCodeBlock})
				events = appendSegmentText(events, source, node)
				events = append(events, Event{Kind: EventEndCodeBlock})
			}
			return ast.WalkSkipChildren, nil
		case *ast.List:
			if entering {
				events = append(events, Event{Kind: EventStartList})
			} else {
				events = append(events, Event{Kind: EventEndList})
			}
		case *ast.ListItem:
			if entering {
				events = append(events, Event{Kind: EventStartListItem})
			} else {
				events = append(events, Event{Kind: EventEndListItem})
			}
		case *ast.Blockquote:
			if entering {
				events = append(events, Event{Kind: EventStartBlockQuote})
			} else {
				events = append(events, Event{Kind: EventEndBlockQuote})
			}
		case *ast.Emphasis:
			kind := EventStartEmphasis
			if node.Level >= 2 {
				kind = EventStartStrong
			}
			if !entering {
				if node.Level >= 2 {
					kind = EventEndStrong
				} else {
					kind = EventEndEmphasis
				}
			}
			events = append(events, Event{Kind: kind})
		case *ast.Link:
			if entering {
				events = append(events, Event{Kind: EventStartLink, URL: string(node.Destination)})
			} else {
				events = append(events, Event{Kind: EventEndLink})
			}
		case *ast.AutoLink:
			if entering {
				url := string(node.URL(source))
				events = append(events,
					Event{Kind: EventStartLink, URL: url},
					Event{Kind: EventText, Text: string(node.Label(source))},
					Event{Kind: EventEndLink},
				)
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeSpan:
			if entering {
				events = append(events, Event{Kind: EventInlineCode, Text: nodeText(source, node)})
			}
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if entering {
				if value := string(node.Segment.Value(source)); value != "" {
					events = append(events, Event{Kind: EventText, Text: value})
				}
				switch {
				case node.HardLineBreak():
					events = append(events, Event{Kind: EventHardBreak})
				case node.SoftLineBreak():
					events = append(events, Event{Kind: EventSoftBreak})
				}
			}
		case *ast.String:
			if entering && len(node.Value) > 0 {
				events = append(events, Event{Kind: EventText, Text: string(node.Value)})
			}
		case *ast.ThematicBreak:
			if entering {
				events = append(events, Event{Kind: EventRule})
			}
		case *ast.HTMLBlock, *ast.RawHTML:
			// Outside the event vocabulary.
			return ast.WalkSkipChildren, nil
		case *ast.Image:
			// No image event; the walk continues into the alt text so it
			// renders as plain text.
		}
		return ast.WalkContinue, nil
	})
	return events
}

// appendSegmentText emits one Text event per source line of a code block,
// preserving line boundaries exactly.
func appendSegmentText(events []Event, source []byte, node ast.Node) []Event {
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		if value := string(segment.Value(source)); value != "" {
			events = append(events, Event{Kind: EventText, Text: value})
		}
	}
	return events
}

func nodeText(source []byte, node ast.Node) string {
	var out []byte
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			out = append(out, t.Segment.Value(source)...)
		}
	}
	return string(out)
}
