package catalog

import (
	"fmt"

	"github.com/badgekit/badges/pkg/badge"
)

var customEntries = []Entry{
	{
		Name:     "badge",
		Category: badge.CategoryCustom,
		render: func(r *Registry, v Values) (string, error) {
			return r.Badge(BadgeOptions{
				Image: v.String("image"),
				Alt:   v.String("alt"),
				URL:   v.String("url"),
				Title: v.String("title"),
			})
		},
	},
	{
		Name:     "shields",
		Category: badge.CategoryCustom,
		render: func(r *Registry, v Values) (string, error) {
			return r.Shields(ShieldsOptions{
				Left:  v.String("left"),
				Right: v.String("right"),
				Color: v.String("color"),
				Alt:   v.String("alt"),
				URL:   v.String("url"),
				Title: v.String("title"),
			})
		},
	},
}

// BadgeOptions configures the raw "badge" generator, which exposes the
// shared renderer directly.
type BadgeOptions struct {
	// Image is the badge image URL. Required.
	Image string
	// Alt is the image alt text.
	Alt string
	// URL is the link target.
	URL string
	// Title is the link title.
	Title string
}

// Badge renders an arbitrary image badge from explicit parts.
func (r *Registry) Badge(opts BadgeOptions) (string, error) {
	d := badge.Descriptor{
		Image: opts.Image,
		Alt:   opts.Alt,
		URL:   opts.URL,
		Title: opts.Title,
	}
	return d.HTML()
}

// ShieldsOptions configures the "shields" generator.
type ShieldsOptions struct {
	// Left is the label text. Required.
	Left string
	// Right is the value text. Required.
	Right string
	// Color is the shields color segment. Defaults to "yellow".
	Color string
	// Alt is the image alt text.
	Alt string
	// URL is the link target.
	URL string
	// Title is the link title.
	Title string
}

// Shields renders a left-right-color badge served by img.shields.io.
func (r *Registry) Shields(opts ShieldsOptions) (string, error) {
	if err := badge.Required("left", opts.Left); err != nil {
		return "", err
	}
	if err := badge.Required("right", opts.Right); err != nil {
		return "", err
	}
	color := opts.Color
	if color == "" {
		color = "yellow"
	}
	d := badge.Descriptor{
		Image: fmt.Sprintf("https://img.shields.io/badge/%s-%s-%s.svg", opts.Left, opts.Right, color),
		Alt:   opts.Alt,
		URL:   opts.URL,
		Title: opts.Title,
	}
	return d.HTML()
}
