package markdown

import (
	"strings"
	"testing"

	"github.com/badgekit/badges/pkg/badge"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		d    badge.Descriptor
		want string
	}{
		{
			name: "ImageOnly",
			d:    badge.Descriptor{Image: "x.png"},
			want: "![](x.png)",
		},
		{
			name: "ImageWithAlt",
			d:    badge.Descriptor{Image: "x.png", Alt: "A"},
			want: "![A](x.png)",
		},
		{
			name: "Linked",
			d:    badge.Descriptor{Image: "x.png", Alt: "A", URL: "http://y"},
			want: "[![A](x.png)](http://y)",
		},
		{
			name: "LinkedWithTitle",
			d:    badge.Descriptor{Image: "x.png", Alt: "A", URL: "http://y", Title: "T"},
			want: `[![A](x.png)](http://y "T")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.d)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderMissingImage(t *testing.T) {
	if _, err := Render(badge.Descriptor{URL: "http://y"}); !badge.IsMissingField(err) {
		t.Errorf("Render(no image) error = %v, want MissingFieldError", err)
	}
	if _, err := Image(badge.Descriptor{}); !badge.IsMissingField(err) {
		t.Errorf("Image(empty) error = %v, want MissingFieldError", err)
	}
}

func TestToHTML(t *testing.T) {
	got, err := ToHTML("[![A](x.png)](http://y)")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	for _, want := range []string{`<a href="http://y"`, `<img src="x.png"`, `alt="A"`} {
		if !strings.Contains(got, want) {
			t.Errorf("ToHTML() = %q, missing %q", got, want)
		}
	}
}

func TestToHTMLKeepsRawHTML(t *testing.T) {
	snippet := `<script async defer src="https://buttons.github.io/buttons.js"></script>`
	got, err := ToHTML(snippet)
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if !strings.Contains(got, snippet) {
		t.Errorf("ToHTML() = %q, want raw HTML preserved", got)
	}
}
