// Package rodomark turns Markdown into an ordered, styled document model.
//
// The pipeline consumes a structural event stream produced by goldmark and
// interprets it with a small flush-on-transition state machine: text
// accumulates under a single active format, and every format or structural
// boundary flushes the accumulation into an immutable Block. Fenced code
// blocks are highlighted line by line with chroma, carrying lexer state
// across lines within a block, with graceful degradation when a block
// cannot be tokenised.
//
// Core properties:
//   - One pass, synchronous, no I/O during rendering
//   - Deterministic: identical (content, context) yields identical Documents
//   - Best-effort degradation; the pipeline never fails mid-document
//   - Dark/light mode is an explicit parameter, never ambient state
//
// Example:
//
//	doc := rodomark.Render("# Hello\n\nSome *Markdown*.\n", rodomark.RenderContext{
//		DarkMode: true,
//	})
//	for _, block := range doc.Blocks {
//		// hand each block to a renderer, e.g. the ansi subpackage
//	}
//
// Rendering to a terminal is provided by the ansi subpackage; any other
// backend can consume the Document directly.
package rodomark
