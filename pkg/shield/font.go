package shield

import (
	"fmt"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontMetrics holds glyph advances for badge text measurement, plus the
// raw font bytes when the metrics came from a loaded font file (used to
// embed the font into the SVG).
type FontMetrics struct {
	name     string
	size     float64
	data     []byte
	advances map[rune]float64
	fallback float64
}

// Name returns the font family name.
func (m *FontMetrics) Name() string { return m.name }

// Size returns the point size the advances were measured at.
func (m *FontMetrics) Size() float64 { return m.size }

// TextWidth returns the pixel width of s using the measured advances.
// Runes without a measured advance use the average glyph width.
func (m *FontMetrics) TextWidth(s string) float64 {
	var w float64
	for _, r := range s {
		if adv, ok := m.advances[r]; ok {
			w += adv
		} else {
			w += m.fallback
		}
	}
	return w
}

// LoadFont parses TTF/OTF bytes and measures printable-ASCII glyph
// advances at the given point size. The returned metrics carry the font
// bytes so the engine can embed the font into rendered badges.
func LoadFont(name string, data []byte, size float64) (*FontMetrics, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", name, err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size: size,
		DPI:  72,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face for %s: %w", name, err)
	}
	defer face.Close()

	advances := make(map[rune]float64, 95)
	var total float64
	var count int
	for r := rune(32); r <= 126; r++ {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		px := float64(adv) / 64.0 // fixed.Int26_6 → float64
		advances[r] = px
		total += px
		count++
	}

	fallback := size * 0.6
	if count > 0 {
		fallback = total / float64(count)
	}

	familyName := name
	buf := &sfnt.Buffer{}
	if n, err := f.Name(buf, sfnt.NameIDFamily); err == nil && n != "" {
		familyName = n
	}

	return &FontMetrics{
		name:     familyName,
		size:     size,
		data:     data,
		advances: advances,
		fallback: fallback,
	}, nil
}
