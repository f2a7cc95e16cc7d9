package badge_test

import (
	"fmt"

	"github.com/badgekit/badges/pkg/badge"
)

func ExampleDescriptor_HTML() {
	d := badge.Descriptor{
		Image: "https://img.shields.io/npm/v/foo.svg",
		Alt:   "NPM version",
		URL:   "https://npmjs.org/package/foo",
		Title: "View this project on NPM",
	}

	html, err := d.HTML()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(html)
	// Output:
	// <a href="https://npmjs.org/package/foo" title="View this project on NPM"><img src="https://img.shields.io/npm/v/foo.svg" alt="NPM version" /></a>
}

func ExampleQuery() {
	q := badge.QueryParams(
		badge.Param{Key: "downloads", Value: "true"},
		badge.Param{Key: "compact", Value: "true"},
	)
	fmt.Println(q.Encode())

	raw := badge.RawQuery("mini=true")
	fmt.Println(raw.Encode())
	// Output:
	// downloads=true&compact=true
	// mini=true
}
