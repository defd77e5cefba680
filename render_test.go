package rodomark

import (
	"reflect"
	"testing"
)

func TestRenderMixedDocumentOrder(t *testing.T) {
	src := `# Guide

Intro with **bold** and a [link](https://example.com).

- alpha
- beta

> remember this

` + "```go\nfunc main() {}\n```" + `

---

Done.
`
	doc := Render(src, RenderContext{DarkMode: true})
	want := []BlockKind{
		BlockHeading,
		BlockParagraph, BlockLinkRun, BlockParagraph,
		BlockListItem, BlockListItem,
		BlockQuote, BlockParagraph,
		BlockCode,
		BlockRule,
		BlockParagraph,
	}
	if got := blockKinds(doc); !reflect.DeepEqual(got, want) {
		t.Fatalf("block order %v, want %v\nblocks: %+v", got, want, doc.Blocks)
	}
}

func TestRenderHighlightThemeOverride(t *testing.T) {
	src := "```go\nfunc main() {}\n```\n"
	github, ok := HighlightThemeByName("github")
	if !ok {
		t.Fatal("github theme missing from registry")
	}
	defaulted := Render(src, RenderContext{DarkMode: true})
	overridden := Render(src, RenderContext{DarkMode: true, HighlightTheme: github})

	a := defaulted.Blocks[0].Lines[0].Fragments
	b := overridden.Blocks[0].Lines[0].Fragments
	if len(a) == 0 || len(b) == 0 {
		t.Fatalf("no fragments produced: %v / %v", a, b)
	}
	if a[0].Color == b[0].Color {
		t.Fatalf("theme override had no effect: %v", a[0].Color)
	}
}

func TestRenderHasNoModeState(t *testing.T) {
	src := "# H\n\ntext\n"
	dark := Render(src, RenderContext{DarkMode: true})
	light := Render(src, RenderContext{DarkMode: false})
	darkAgain := Render(src, RenderContext{DarkMode: true})
	if !reflect.DeepEqual(dark, darkAgain) {
		t.Fatal("interleaved renders must not influence each other")
	}
	if dark.Blocks[0].Color == light.Blocks[0].Color {
		t.Fatal("heading color should differ between modes")
	}
}

func TestRenderUnclosedCodeFence(t *testing.T) {
	doc := Render("```go\nx := 1\n", RenderContext{})
	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != BlockCode {
		t.Fatalf("unterminated fence should still produce a code block: %+v", doc.Blocks)
	}
	if doc.Blocks[0].Lines[0].Text() != "x := 1" {
		t.Fatalf("unexpected code content: %+v", doc.Blocks[0].Lines)
	}
}
