// Package markdown renders badge descriptors as Markdown snippets and
// converts snippet Markdown into embeddable HTML.
//
// README files are the main home for badges, so alongside the HTML
// renderer in the badge package this package provides the Markdown image
// and linked-image forms:
//
//	md, _ := markdown.Render(badge.Descriptor{
//	    Image: "https://img.shields.io/npm/v/foo.svg",
//	    Alt:   "NPM version",
//	    URL:   "https://npmjs.org/package/foo",
//	})
//	// [![NPM version](https://img.shields.io/npm/v/foo.svg)](https://npmjs.org/package/foo)
//
// [ToHTML] goes the other way for tools that assemble an HTML page from
// Markdown fragments. Raw HTML passes through unchanged, since script
// badges are raw HTML by nature.
package markdown
