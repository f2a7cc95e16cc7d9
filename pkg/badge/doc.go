// Package badge provides the core building blocks for badge generation:
// the badge descriptor, the shared HTML renderer, the error taxonomy, and
// the ordered query payload used by query-parameterized badges.
//
// # Overview
//
// A badge is a small embeddable markup fragment (an image, a linked image,
// or a script widget) that represents project status or metadata. Every
// image-style badge reduces to a [Descriptor]: an image URL plus optional
// alt text, link URL, and link title. [Descriptor.HTML] turns the
// descriptor into its final markup.
//
// Higher-level generators live in the catalog package; this package is
// deliberately free of service-specific knowledge.
//
// # Rendering
//
// Rendering is a pure string transformation with no I/O:
//
//	d := badge.Descriptor{
//	    Image: "https://img.shields.io/npm/v/foo.svg",
//	    Alt:   "NPM version",
//	    URL:   "https://npmjs.org/package/foo",
//	}
//	html, err := d.HTML()
//	// <a href="https://npmjs.org/package/foo"><img src="..." alt="NPM version" /></a>
//
// # Errors
//
// All validation failures are typed: [MissingFieldError] for absent or
// empty required fields, [InvalidSlugError] for malformed owner/repository
// identifiers, and [InvalidTypeError] for structured fields of the wrong
// shape. Use [IsMissingField], [IsInvalidSlug], and [IsInvalidType] to
// classify an error without depending on its message.
package badge
