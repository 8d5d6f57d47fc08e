package content

import (
	"strings"
	"testing"
)

func TestIsHTML(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "html paragraph", text: "<p>Hello</p>", want: true},
		{name: "html heading", text: "<h1>Title</h1><p>Body</p>", want: true},
		{name: "closing tag only", text: "text</div>", want: true},
		{name: "markdown", text: "# Title\n\nSome **bold** text", want: false},
		{name: "plain text", text: "no markup here", want: false},
		{name: "angle brackets without tag", text: "a < b > c", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHTML(tt.text); got != tt.want {
				t.Errorf("IsHTML(%q) = %v; want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExcerpt_StripsTagsAndCollapsesWhitespace(t *testing.T) {
	got := Excerpt("<h1>Title</h1>\n<p>Some   body\ttext</p>")
	want := "Title Some body text"
	if got != want {
		t.Errorf("Excerpt = %q; want %q", got, want)
	}
}

func TestExcerpt_TruncatesLongText(t *testing.T) {
	long := "<p>" + strings.Repeat("word ", 100) + "</p>"
	got := Excerpt(long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Excerpt = %q; want ellipsis suffix", got)
	}
	if n := len([]rune(strings.TrimSuffix(got, "..."))); n != ExcerptLength {
		t.Errorf("Excerpt body length = %d; want %d", n, ExcerptLength)
	}
}

func TestExcerpt_ShortTextUnchanged(t *testing.T) {
	if got := Excerpt("<p>short</p>"); got != "short" {
		t.Errorf("Excerpt = %q; want %q", got, "short")
	}
}
