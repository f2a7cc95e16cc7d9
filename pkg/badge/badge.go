package badge

import "strings"

// Category classifies a badge generator.
type Category string

// The closed set of badge categories.
const (
	CategoryCustom      Category = "custom"
	CategoryDevelopment Category = "development"
	CategoryTesting     Category = "testing"
	CategoryFunding     Category = "funding"
	CategorySocial      Category = "social"
)

// Categories lists every badge category in display order.
var Categories = []Category{
	CategoryCustom,
	CategoryDevelopment,
	CategoryTesting,
	CategoryFunding,
	CategorySocial,
}

// Descriptor is the intermediate shape of an image-style badge: an image
// URL plus optional alt text, link URL, and link title. Generators build a
// Descriptor and delegate to [Descriptor.HTML] for the final markup.
type Descriptor struct {
	// Image is the badge image URL. Required.
	Image string

	// Alt is the image alt text. Optional.
	Alt string

	// URL is the link target. When set, the image is wrapped in an anchor.
	URL string

	// Title is the anchor title attribute. Only used when URL is set.
	Title string
}

// attrEscape escapes double quotes so a field value cannot terminate the
// double-quoted attribute it is placed in. Ampersands pass through, so
// query-string URLs render exactly as supplied.
func attrEscape(s string) string {
	return strings.ReplaceAll(s, `"`, "&quot;")
}

// HTML renders the descriptor as an <img> fragment, wrapped in an <a>
// when a link URL is present. Double quotes in field values are escaped;
// all other characters are interpolated as supplied.
//
// Returns a *MissingFieldError when Image is empty. No partial output is
// ever returned alongside an error.
func (d Descriptor) HTML() (string, error) {
	if d.Image == "" {
		return "", &MissingFieldError{Field: "image"}
	}

	var s strings.Builder
	s.WriteString(`<img src="`)
	s.WriteString(attrEscape(d.Image))
	s.WriteString(`"`)
	if d.Alt != "" {
		s.WriteString(` alt="`)
		s.WriteString(attrEscape(d.Alt))
		s.WriteString(`"`)
	}
	s.WriteString(` />`)

	if d.URL == "" {
		return s.String(), nil
	}

	var a strings.Builder
	a.WriteString(`<a href="`)
	a.WriteString(attrEscape(d.URL))
	a.WriteString(`"`)
	if d.Title != "" {
		a.WriteString(` title="`)
		a.WriteString(attrEscape(d.Title))
		a.WriteString(`"`)
	}
	a.WriteString(">")
	a.WriteString(s.String())
	a.WriteString("</a>")
	return a.String(), nil
}
