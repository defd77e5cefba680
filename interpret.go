package rodomark

const bulletMarker = "• "

// interpreter is the flush engine: a state machine over the event stream
// holding one accumulation buffer under one active format. Crossing a
// format or structural boundary flushes the buffer into a run or block
// before the new state begins accumulating.
type interpreter struct {
	dark  bool
	theme HighlightTheme

	format TextFormat
	text   string

	inCodeBlock  bool
	codeBuffer   string
	codeLanguage string

	runs   []TextRun
	blocks []Block
}

func newInterpreter(dark bool, theme HighlightTheme) *interpreter {
	return &interpreter{dark: dark, theme: theme}
}

// flush converts the accumulation into output and clears it. Empty
// accumulations are suppressed. Heading and link formats emit dedicated
// blocks; everything else appends a run to the pending paragraph.
func (in *interpreter) flush() {
	if in.text == "" {
		return
	}
	switch in.format.Kind {
	case FormatHeading:
		in.closeParagraph()
		in.blocks = append(in.blocks, Block{
			Kind:  BlockHeading,
			Level: in.format.Level,
			Text:  in.text,
			Color: HeadingColor(in.format.Level, in.dark),
		})
	case FormatLink:
		in.closeParagraph()
		in.blocks = append(in.blocks, Block{
			Kind:  BlockLinkRun,
			Text:  in.text,
			URL:   in.format.URL,
			Color: LinkColor(in.dark),
		})
	default:
		in.runs = append(in.runs, TextRun{Text: in.text, Format: in.format})
	}
	in.text = ""
}

// flushAndTransition flushes the previous accumulation and activates the
// next format.
func (in *interpreter) flushAndTransition(next TextFormat) {
	in.flush()
	in.format = next
}

// closeParagraph seals pending runs into a paragraph block.
func (in *interpreter) closeParagraph() {
	if len(in.runs) == 0 {
		return
	}
	in.blocks = append(in.blocks, Block{Kind: BlockParagraph, Runs: in.runs})
	in.runs = nil
}

func (in *interpreter) feed(ev Event) {
	switch ev.Kind {
	case EventStartHeading:
		in.flush()
		in.closeParagraph()
		in.format = TextFormat{Kind: FormatHeading, Level: ev.Level}
	case EventEndHeading:
		in.flushAndTransition(TextFormat{})
	case EventStartParagraph, EventEndParagraph:
		in.flush()
		in.closeParagraph()
	case EventStartCodeBlock:
		in.flush()
		in.closeParagraph()
		in.inCodeBlock = true
		in.codeBuffer = ""
		in.codeLanguage = ev.Language
	case EventEndCodeBlock:
		in.emitCodeBlock()
	case EventStartList, EventEndList:
		in.flush()
		in.closeParagraph()
	case EventStartListItem:
		in.flush()
		in.text += bulletMarker
	case EventEndListItem:
		in.emitListItem()
	case EventInlineCode:
		in.flush()
		if ev.Text != "" {
			in.runs = append(in.runs, TextRun{Text: ev.Text, Format: TextFormat{Kind: FormatCode}})
		}
	case EventText:
		if in.inCodeBlock {
			in.codeBuffer += ev.Text
		} else {
			in.text += ev.Text
		}
	case EventStartEmphasis:
		in.flushAndTransition(TextFormat{Kind: FormatEmphasis})
	case EventEndEmphasis:
		in.flushAndTransition(TextFormat{})
	case EventStartStrong:
		in.flushAndTransition(TextFormat{Kind: FormatStrong})
	case EventEndStrong:
		in.flushAndTransition(TextFormat{})
	case EventStartBlockQuote:
		// Quote content is not nested into the container: the boundary
		// block is emitted here and the quoted content flows through the
		// flat block sequence after it.
		in.flush()
		in.closeParagraph()
		in.blocks = append(in.blocks, Block{Kind: BlockQuote})
	case EventEndBlockQuote:
		in.flush()
		in.closeParagraph()
	case EventStartLink:
		in.flushAndTransition(TextFormat{Kind: FormatLink, URL: ev.URL})
	case EventEndLink:
		in.flushAndTransition(TextFormat{})
	case EventSoftBreak:
		if in.inCodeBlock {
			in.codeBuffer += "\n"
		} else {
			in.text += " "
		}
	case EventHardBreak:
		in.flush()
		in.closeParagraph()
	case EventRule:
		in.flush()
		in.closeParagraph()
		in.blocks = append(in.blocks, Block{Kind: BlockRule})
	default:
		// Unknown events are ignored for forward compatibility.
	}
}

func (in *interpreter) emitCodeBlock() {
	if in.codeBuffer != "" {
		in.blocks = append(in.blocks, Block{
			Kind:     BlockCode,
			Language: in.codeLanguage,
			Lines:    highlightCode(in.codeBuffer, in.codeLanguage, in.theme, in.dark),
		})
	}
	in.inCodeBlock = false
	in.codeBuffer = ""
	in.codeLanguage = ""
}

func (in *interpreter) emitListItem() {
	if in.text != "" {
		in.closeParagraph()
		in.blocks = append(in.blocks, Block{Kind: BlockListItem, Text: in.text})
		in.text = ""
	}
	in.format = TextFormat{}
}

// finish flushes any pending state and returns the assembled document.
func (in *interpreter) finish() Document {
	if in.inCodeBlock {
		in.emitCodeBlock()
	}
	in.flush()
	in.closeParagraph()
	return Document{Blocks: in.blocks}
}
