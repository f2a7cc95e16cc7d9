package markdown_test

import (
	"fmt"

	"github.com/badgekit/badges/pkg/badge"
	"github.com/badgekit/badges/pkg/markdown"
)

func ExampleRender() {
	md, err := markdown.Render(badge.Descriptor{
		Image: "https://img.shields.io/npm/v/foo.svg",
		Alt:   "NPM version",
		URL:   "https://npmjs.org/package/foo",
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(md)
	// Output:
	// [![NPM version](https://img.shields.io/npm/v/foo.svg)](https://npmjs.org/package/foo)
}
