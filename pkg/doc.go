// Package pkg provides the core libraries for badge generation.
//
// # Overview
//
// Badges are the small embeddable markup fragments that decorate project
// READMEs: images, linked images, and script widgets for services like
// npm, Travis CI, PayPal, and GitHub. The pkg directory is organized into
// four areas:
//
//  1. [badge] - Core types (descriptor, HTML renderer, errors, query payloads)
//  2. [catalog] - The generator registry (~40 service-specific badges)
//  3. [shield] - Offline shields-style SVG rendering
//  4. [markdown] - Markdown snippet forms and HTML conversion
//
// # Architecture
//
// The typical data flow:
//
//	caller inputs (typed options or Values map)
//	         ↓
//	    [catalog] package (field resolution, fallbacks, validation)
//	         ↓
//	    [badge] package (descriptor → HTML snippet)
//	         ↓
//	    HTML / Markdown / SVG output
//
// # Quick Start
//
// Generate a badge through a typed generator:
//
//	import "github.com/badgekit/badges/pkg/catalog"
//
//	reg := catalog.New()
//	html, _ := reg.NPMVersion(catalog.NPMOptions{PackageName: "foo"})
//
// Or drive generation from data with name-keyed dispatch:
//
//	html, _ := reg.Render("npmversion", catalog.Values{"npmPackageName": "foo"})
//
// Every generator is a pure function of its inputs: no network calls, no
// caching, no persistence. The only ambient reads are the environment
// fallbacks for two secret-like fields, and those go through an
// injectable provider (see [badge.Env] and [catalog.WithEnv]).
//
// # Main Packages
//
// [badge] - The descriptor type shared by all generators, the HTML
// renderer, the error taxonomy (missing field, invalid slug, invalid
// type), ordered query payloads, and environment providers.
//
// [catalog] - The registry of generators grouped into five categories
// (custom, development, testing, funding, social). Each generator has a
// typed method plus a name in the dynamic dispatch table.
//
// [shield] - Renders label/value shields as self-contained SVG without
// calling img.shields.io. Text is measured with a built-in Verdana width
// table, or with caller-supplied font data via [shield.LoadFont].
//
// [markdown] - Markdown image and linked-image forms of a descriptor,
// plus snippet-to-HTML conversion for tools that assemble pages from
// Markdown fragments.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/catalog/...    # Specific package
//	go test -run Example         # Examples only
//
// [badge]: https://pkg.go.dev/github.com/badgekit/badges/pkg/badge
// [catalog]: https://pkg.go.dev/github.com/badgekit/badges/pkg/catalog
// [shield]: https://pkg.go.dev/github.com/badgekit/badges/pkg/shield
// [markdown]: https://pkg.go.dev/github.com/badgekit/badges/pkg/markdown
// [badge.Env]: https://pkg.go.dev/github.com/badgekit/badges/pkg/badge#Env
// [catalog.WithEnv]: https://pkg.go.dev/github.com/badgekit/badges/pkg/catalog#WithEnv
// [shield.LoadFont]: https://pkg.go.dev/github.com/badgekit/badges/pkg/shield#LoadFont
package pkg
