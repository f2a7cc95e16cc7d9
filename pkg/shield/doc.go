// Package shield renders shields-style SVG badges locally, without
// referencing an external badge service.
//
// # Overview
//
// The catalog's "shields" generator emits an img.shields.io URL; this
// package is its offline companion for callers that want to serve or embed
// the SVG itself (static site generators, CI artifacts, air-gapped docs).
// The output follows the flat shields.io convention: a grey label plate, a
// colored value plate, rounded corners, and a subtle gradient.
//
// # Fonts
//
// Text width drives badge geometry. The builtin metrics use a measured
// Verdana 11px advance table covering printable ASCII, which matches the
// classic shields.io rendering closely enough for badge-sized strings.
// Callers with their own TTF/OTF can load real glyph metrics with
// [LoadFont]; the font is then also embedded into the SVG so the badge
// renders identically everywhere.
//
//	engine := shield.New(nil) // builtin metrics
//	svg := engine.Render(shield.Badge{Label: "build", Value: "passing", Color: "brightgreen"})
package shield
