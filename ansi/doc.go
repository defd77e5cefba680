// Package ansi renders a rodomark Document to ANSI-styled terminal text.
//
// It is one realization of the renderer collaborator contract: every
// Block in the Document maps to a corresponding draw action, and the
// document core never depends on this package. Styling uses lipgloss,
// word wrapping uses reflow, and link blocks can emit OSC 8 hyperlinks
// when the terminal supports them.
package ansi
