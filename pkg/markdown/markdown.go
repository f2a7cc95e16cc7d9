package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/badgekit/badges/pkg/badge"
)

// converter is the shared goldmark instance. WithUnsafe keeps raw HTML in
// the output; badge snippets (script widgets in particular) depend on it.
var converter = goldmark.New(
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Image renders the descriptor as a Markdown image: ![alt](image).
// Returns a *badge.MissingFieldError when the image URL is empty.
func Image(d badge.Descriptor) (string, error) {
	if d.Image == "" {
		return "", &badge.MissingFieldError{Field: "image"}
	}
	return "![" + d.Alt + "](" + d.Image + ")", nil
}

// Render renders the descriptor as Markdown: a linked image when a link
// URL is present (with the title in the link when set), a plain image
// otherwise.
func Render(d badge.Descriptor) (string, error) {
	img, err := Image(d)
	if err != nil {
		return "", err
	}
	if d.URL == "" {
		return img, nil
	}
	if d.Title != "" {
		return "[" + img + "](" + d.URL + ` "` + d.Title + `")`, nil
	}
	return "[" + img + "](" + d.URL + ")", nil
}

// ToHTML converts snippet Markdown to HTML. Raw HTML in the snippet is
// passed through.
func ToHTML(snippet string) (string, error) {
	var buf bytes.Buffer
	if err := converter.Convert([]byte(snippet), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
