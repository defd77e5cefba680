package ansi

import (
	"regexp"
	"strings"
	"testing"

	"github.com/gantoho/rodomark"
)

var (
	csiRE  = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)
	osc8RE = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

func stripANSI(s string) string {
	return osc8RE.ReplaceAllString(csiRE.ReplaceAllString(s, ""), "")
}

func TestRenderDocumentText(t *testing.T) {
	src := "# Welcome\n\nSome **bold** text.\n\n- first item\n\n> a quote\n\n---\n\n```go\nx := 1\n```\n"
	doc := rodomark.Render(src, rodomark.RenderContext{DarkMode: true})
	out := stripANSI(Render(doc, true))

	for _, want := range []string{
		"# Welcome",
		"Some bold text.",
		"• first item",
		"│ a quote",
		"x := 1",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "─") {
		t.Fatalf("rule missing from output:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatal("output must end with a newline")
	}
}

func TestQuoteGutterOnFollowingParagraph(t *testing.T) {
	doc := rodomark.Render("> a quote\n\nafter\n", rodomark.RenderContext{})
	out := stripANSI(Render(doc, false))
	if !strings.Contains(out, "│ a quote") {
		t.Fatalf("quoted paragraph missing gutter:\n%s", out)
	}
	if strings.Contains(out, "│ \n") || strings.Contains(out, "│ after") {
		t.Fatalf("gutter leaked beyond the quoted paragraph:\n%s", out)
	}
}

func TestQuoteGutterWrapsEveryLine(t *testing.T) {
	doc := rodomark.Render("> "+strings.Repeat("word ", 10)+"\n", rodomark.RenderContext{})
	out := stripANSI(Render(doc, false, WithWidth(20)))
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if !strings.HasPrefix(line, "│ ") {
			t.Fatalf("wrapped quote line missing gutter: %q\n%s", line, out)
		}
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	if out := Render(rodomark.Document{}, false); out != "" {
		t.Fatalf("empty document rendered %q", out)
	}
}

func TestRenderLinkPlain(t *testing.T) {
	doc := rodomark.Render("[site](https://example.com)\n", rodomark.RenderContext{})
	out := stripANSI(Render(doc, false))
	if !strings.Contains(out, "site") || !strings.Contains(out, "(https://example.com)") {
		t.Fatalf("plain link rendering wrong:\n%s", out)
	}
}

func TestRenderLinkHyperlink(t *testing.T) {
	doc := rodomark.Render("[site](https://example.com)\n", rodomark.RenderContext{})
	out := Render(doc, false, WithHyperlinks(true))
	if !strings.Contains(out, "\x1b]8;;https://example.com\x1b\\") {
		t.Fatalf("OSC 8 sequence missing:\n%q", out)
	}
	if strings.Contains(stripANSI(out), "(https://example.com)") {
		t.Fatalf("hyperlink mode must not append the URL in parens:\n%s", out)
	}
}

func TestRenderWrapWidth(t *testing.T) {
	long := strings.Repeat("word ", 30)
	doc := rodomark.Render(long+"\n", rodomark.RenderContext{})
	out := stripANSI(Render(doc, false, WithWidth(20)))
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if len(line) > 20 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}

func TestRuleWidthClamped(t *testing.T) {
	if got := rule(10); got != strings.Repeat("─", 10) {
		t.Fatalf("rule(10) = %q", got)
	}
	if got := rule(0); got != strings.Repeat("─", defaultRuleWidth) {
		t.Fatalf("rule(0) length = %d", len([]rune(got)))
	}
	if got := rule(500); got != strings.Repeat("─", defaultRuleWidth) {
		t.Fatalf("rule(500) length = %d", len([]rune(got)))
	}
}

func TestFitURL(t *testing.T) {
	cases := []struct {
		url   string
		limit int
		want  string
	}{
		{"https://a.io", 40, "https://a.io"},
		{"https://example.com/path", 17, "example.com/path"},
		{"https://example.com/very/long/path/segment", 10, "example.c…"},
	}
	for _, c := range cases {
		if got := fitURL(c.url, c.limit); got != c.want {
			t.Fatalf("fitURL(%q, %d) = %q, want %q", c.url, c.limit, got, c.want)
		}
	}
}
