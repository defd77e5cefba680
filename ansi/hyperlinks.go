package ansi

import (
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	osc8Start = "\x1b]8;;"
	osc8End   = "\x1b]8;;\x1b\\"
)

func hyperlink(url, styledText string) string {
	return osc8Start + url + "\x1b\\" + styledText + osc8End
}

// DetectHyperlinkSupport returns true if the current environment likely
// supports OSC 8 hyperlinks.
func DetectHyperlinkSupport() bool {
	if os.Getenv("OSC8") == "0" {
		return false
	}
	if os.Getenv("DOMTERM") != "" || os.Getenv("WT_SESSION") != "" {
		return true
	}
	termProgram := os.Getenv("TERM_PROGRAM")
	if termProgram == "iTerm.app" || termProgram == "WezTerm" || termProgram == "vscode" {
		return true
	}
	if strings.Contains(strings.ToLower(os.Getenv("TERM")), "kitty") {
		return true
	}
	if vte := os.Getenv("VTE_VERSION"); vte != "" {
		if n, err := strconv.Atoi(vte); err == nil && n >= 5000 {
			return true
		}
	}
	return false
}

// fitURL shortens a URL for display: the scheme is dropped first, then
// the tail is truncated with an ellipsis.
func fitURL(url string, limit int) string {
	if runewidth.StringWidth(url) <= limit {
		return url
	}
	if idx := strings.Index(url, "://"); idx != -1 {
		trimmed := url[idx+3:]
		if runewidth.StringWidth(trimmed) <= limit {
			return trimmed
		}
		url = trimmed
	}
	return runewidth.Truncate(url, limit, "…")
}
