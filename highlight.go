package rodomark

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// highlightCode tokenises one code block and splits the tokens into
// per-line fragment sequences. The lexer runs once over the whole block,
// so its state carries across lines; it starts fresh for every block.
// The returned slice has exactly one entry per input line, blanks
// included. If the block cannot be tokenised, every line degrades to a
// single fragment in the normal text color.
func highlightCode(code, language string, theme HighlightTheme, dark bool) []HighlightedLine {
	lineTexts := splitCodeLines(code)
	out := make([]HighlightedLine, len(lineTexts))

	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plainLines(lineTexts, dark)
	}

	style := theme.chromaStyle()
	fallback := NormalColor(dark)
	line := 0
	for _, token := range iterator.Tokens() {
		color := style.Get(token.Type).Colour
		if !color.IsSet() {
			color = fallback
		}
		value := token.Value
		for value != "" {
			idx := strings.IndexByte(value, '\n')
			if idx < 0 {
				appendFragment(out, line, value, color)
				break
			}
			if idx > 0 {
				appendFragment(out, line, value[:idx], color)
			}
			line++
			value = value[idx+1:]
		}
	}
	return out
}

func appendFragment(lines []HighlightedLine, index int, text string, color Color) {
	if index < 0 || index >= len(lines) || text == "" {
		return
	}
	lines[index].Fragments = append(lines[index].Fragments, Fragment{Text: text, Color: color})
}

// splitCodeLines splits a code block on line boundaries, preserving blank
// lines. The newline terminating the final line is not itself a boundary.
func splitCodeLines(code string) []string {
	return strings.Split(strings.TrimSuffix(code, "\n"), "\n")
}

func plainLines(lineTexts []string, dark bool) []HighlightedLine {
	color := NormalColor(dark)
	out := make([]HighlightedLine, len(lineTexts))
	for i, text := range lineTexts {
		if text == "" {
			continue
		}
		out[i].Fragments = []Fragment{{Text: text, Color: color}}
	}
	return out
}
