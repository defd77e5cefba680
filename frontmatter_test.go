package rodomark

import "testing"

func TestStripFrontMatter(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "yaml",
			in:   "---\ntitle: hello\ntags: [a, b]\n---\n# Doc\n",
			want: "# Doc\n",
		},
		{
			name: "toml",
			in:   "+++\ntitle = \"hello\"\n+++\nbody\n",
			want: "body\n",
		},
		{
			name: "semicolon",
			in:   ";;;\nkey: value\n;;;\nrest\n",
			want: "rest\n",
		},
		{
			name: "thematic break is not front matter",
			in:   "---\n\nsection\n",
			want: "---\n\nsection\n",
		},
		{
			name: "unterminated fence passes through",
			in:   "---\ntitle: x\nno closing delimiter\n",
			want: "---\ntitle: x\nno closing delimiter\n",
		},
		{
			name: "delimiter mid-document ignored",
			in:   "# heading\n---\ntitle: x\n---\n",
			want: "# heading\n---\ntitle: x\n---\n",
		},
		{
			name: "bom before opening delimiter",
			in:   "\uFEFF---\ntitle: x\n---\nbody\n",
			want: "body\n",
		},
		{
			name: "crlf",
			in:   "---\r\ntitle: x\r\n---\r\nbody\r\n",
			want: "body\r\n",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := stripFrontMatter(c.in); got != c.want {
				t.Fatalf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestRenderStripsFrontMatter(t *testing.T) {
	doc := Render("---\ntitle: x\n---\n# Body\n", RenderContext{})
	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != BlockHeading || doc.Blocks[0].Text != "Body" {
		t.Fatalf("front matter leaked into the document: %+v", doc.Blocks)
	}
}
