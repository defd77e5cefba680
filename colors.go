package rodomark

import "github.com/alecthomas/chroma/v2"

// Semantic UI colors for the document model. These are fixed tables, one
// light and one dark value per role, resolved per call with no state.
// They are independent of the highlight themes used for code blocks.

var headingColors = [...]struct{ dark, light Color }{
	{chroma.NewColour(255, 175, 135), chroma.NewColour(180, 85, 20)},
	{chroma.NewColour(200, 175, 255), chroma.NewColour(100, 80, 175)},
	{chroma.NewColour(135, 215, 255), chroma.NewColour(35, 120, 175)},
	{chroma.NewColour(175, 255, 200), chroma.NewColour(50, 140, 90)},
	{chroma.NewColour(255, 200, 175), chroma.NewColour(175, 80, 50)},
	{chroma.NewColour(220, 220, 220), chroma.NewColour(60, 60, 60)},
}

// HeadingColor returns the color for a heading level. Levels outside 1..6
// clamp to the level-6 gray.
func HeadingColor(level int, dark bool) Color {
	if level < 1 || level > len(headingColors) {
		level = len(headingColors)
	}
	entry := headingColors[level-1]
	if dark {
		return entry.dark
	}
	return entry.light
}

// NormalColor returns the body text color.
func NormalColor(dark bool) Color {
	if dark {
		return chroma.NewColour(220, 220, 220)
	}
	return chroma.NewColour(32, 32, 32)
}

// CodeBackground returns the code block and inline code background color.
func CodeBackground(dark bool) Color {
	if dark {
		return chroma.NewColour(45, 45, 45)
	}
	return chroma.NewColour(245, 245, 245)
}

// BlockquoteColor returns the quote gutter color.
func BlockquoteColor(dark bool) Color {
	if dark {
		return chroma.NewColour(100, 160, 200)
	}
	return chroma.NewColour(70, 130, 180)
}

// LinkColor returns the link text color.
func LinkColor(dark bool) Color {
	if dark {
		return chroma.NewColour(100, 149, 237)
	}
	return chroma.NewColour(0, 0, 238)
}
