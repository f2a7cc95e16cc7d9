package shield

import (
	"encoding/base64"
	"fmt"
	"math"
	"strings"
)

// Badge defines the content and appearance of a single badge.
type Badge struct {
	// Label is the left-side text.
	Label string
	// Value is the right-side text.
	Value string
	// Color is the right-plate color: a shields color name (see ColorHex)
	// or a literal hex value like "#4c1". Defaults to yellow.
	Color string
}

// Engine renders SVG badges using a specific set of font metrics.
type Engine struct {
	metrics *FontMetrics
}

// New creates a badge engine. Pass nil to use the builtin Verdana metrics.
func New(metrics *FontMetrics) *Engine {
	if metrics == nil {
		metrics = builtinMetrics()
	}
	return &Engine{metrics: metrics}
}

// colorHex maps shields color names to their flat-style hex values.
var colorHex = map[string]string{
	"brightgreen":   "#4c1",
	"green":         "#97ca00",
	"yellowgreen":   "#a4a61d",
	"yellow":        "#dfb317",
	"orange":        "#fe7d37",
	"red":           "#e05d44",
	"blue":          "#007ec6",
	"grey":          "#555",
	"gray":          "#555",
	"lightgrey":     "#9f9f9f",
	"lightgray":     "#9f9f9f",
	"success":       "#4c1",
	"important":     "#fe7d37",
	"critical":      "#e05d44",
	"informational": "#007ec6",
	"inactive":      "#9f9f9f",
}

// ColorHex resolves a color to a hex value: shields color names map to
// their flat-style hex, literal "#..." values pass through, and anything
// else falls back to yellow.
func ColorHex(color string) string {
	if hex, ok := colorHex[color]; ok {
		return hex
	}
	if strings.HasPrefix(color, "#") {
		return color
	}
	return colorHex["yellow"]
}

// Render produces a shields-compatible flat SVG badge.
func (e *Engine) Render(b Badge) string {
	labelWidth := int(math.Round(e.metrics.TextWidth(b.Label))) + 10
	valueWidth := int(math.Round(e.metrics.TextWidth(b.Value))) + 10
	totalWidth := labelWidth + valueWidth

	label := xmlEscape(b.Label)
	value := xmlEscape(b.Value)
	color := ColorHex(b.Color)

	var s strings.Builder

	s.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="20">`, totalWidth))

	s.WriteString(`<defs>`)
	if css := e.fontCSS(); css != "" {
		s.WriteString(fmt.Sprintf(`<style type="text/css">%s</style>`, css))
	}
	s.WriteString(`<linearGradient id="b" x2="0" y2="100%">`)
	s.WriteString(`<stop offset="0" stop-color="#bbb" stop-opacity=".1"/>`)
	s.WriteString(`<stop offset="1" stop-opacity=".1"/>`)
	s.WriteString(`</linearGradient>`)
	s.WriteString(`</defs>`)

	s.WriteString(fmt.Sprintf(`<mask id="a"><rect width="%d" height="20" rx="3" fill="#fff"/></mask>`, totalWidth))
	s.WriteString(`<g mask="url(#a)">`)
	s.WriteString(fmt.Sprintf(`<rect width="%d" height="20" fill="#555"/>`, labelWidth))
	s.WriteString(fmt.Sprintf(`<rect x="%d" width="%d" height="20" fill="%s"/>`, labelWidth, valueWidth, xmlEscape(color)))
	s.WriteString(fmt.Sprintf(`<rect width="%d" height="20" fill="url(#b)"/>`, totalWidth))
	s.WriteString(`</g>`)

	fontFamily := fmt.Sprintf("'%s',Verdana,Geneva,sans-serif", e.metrics.Name())
	s.WriteString(fmt.Sprintf(`<g fill="#fff" text-anchor="middle" font-family="%s" font-size="%g">`,
		xmlEscape(fontFamily), e.metrics.Size()))
	s.WriteString(fmt.Sprintf(`<text x="%d" y="15" fill="#010101" fill-opacity=".3">%s</text>`, labelWidth/2, label))
	s.WriteString(fmt.Sprintf(`<text x="%d" y="14">%s</text>`, labelWidth/2, label))
	s.WriteString(fmt.Sprintf(`<text x="%d" y="15" fill="#010101" fill-opacity=".3">%s</text>`, labelWidth+valueWidth/2, value))
	s.WriteString(fmt.Sprintf(`<text x="%d" y="14">%s</text>`, labelWidth+valueWidth/2, value))
	s.WriteString(`</g>`)

	s.WriteString(`</svg>`)
	return s.String()
}

// fontCSS returns a @font-face rule embedding the font, or "" when the
// metrics carry no font bytes (builtin metrics rely on system fonts).
func (e *Engine) fontCSS() string {
	data := e.metrics.data
	if len(data) == 0 {
		return ""
	}
	format, css := "truetype", "ttf"
	// OTF magic: "OTTO"
	if len(data) >= 4 && data[0] == 'O' && data[1] == 'T' && data[2] == 'T' && data[3] == 'O' {
		format, css = "opentype", "otf"
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf(
		`@font-face{font-family:'%s';src:url(data:font/%s;base64,%s) format('%s')}`,
		e.metrics.Name(), css, encoded, format,
	)
}

// xmlEscape escapes special XML characters in badge text.
func xmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}
