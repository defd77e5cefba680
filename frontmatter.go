package rodomark

import "strings"

// stripFrontMatter removes a leading metadata fence (---, +++ or ;;;)
// from content before parsing. The opening delimiter must be the first
// line, the second line must look like metadata, and a matching closing
// delimiter must exist; otherwise the content passes through untouched.
func stripFrontMatter(content string) string {
	openLine, rest, ok := nextLine(content)
	if !ok {
		return content
	}
	delim, isFrontMatter := frontMatterDelimiter(openLine)
	if !isFrontMatter {
		return content
	}
	secondLine, _, ok := nextLine(rest)
	if !ok || !frontMatterMetadataLikely(secondLine) {
		return content
	}
	for scan := rest; ; {
		line, next, ok := nextLine(scan)
		if !ok {
			return content
		}
		if strings.TrimSpace(line) == delim {
			return next
		}
		scan = next
	}
}

// nextLine splits off the first line, trimming a trailing CR.
func nextLine(src string) (line, rest string, ok bool) {
	if src == "" {
		return "", "", false
	}
	if i := strings.IndexByte(src, '\n'); i >= 0 {
		return strings.TrimSuffix(src[:i], "\r"), src[i+1:], true
	}
	return strings.TrimSuffix(src, "\r"), "", true
}

func frontMatterDelimiter(line string) (string, bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(line, "\uFEFF"))
	switch trimmed {
	case "---", "+++", ";;;":
		return trimmed, true
	default:
		return "", false
	}
}

func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}
