// Package catalog implements the badge generator registry: a static table
// of ~40 generators for package registries, CI providers, donation
// platforms, and social widgets, each producing an embeddable markup
// fragment from a small set of named fields.
//
// # Architecture
//
// The catalog has two faces:
//
//  1. Typed generators: each badge is a method on [Registry] taking an
//     explicit options struct (e.g. [Registry.NPMVersion] with
//     [NPMOptions]). This is the primary API.
//  2. Name-keyed dispatch: [Registry.Render] looks a generator up by its
//     string name and decodes a dynamic [Values] bag into the typed
//     options. This serves callers that drive badge generation from data,
//     such as README generators.
//
// Per-generator metadata (category, script flag) lives in the registry
// table as an [Entry], separate from the generator itself. Entries whose
// Script flag is set return executable embed markup (script tags, iframes)
// rather than an inline image or link.
//
// # Validation
//
// Every generator validates its required fields in declared order and
// short-circuits on the first failure, before building any output. Failures
// use the typed errors from the badge package; see badge.IsMissingField and
// friends for classification.
//
// # Environment fallbacks
//
// Two secret-like fields fall back to the environment when not supplied:
// the Sauce Labs auth token (SAUCELABS_AUTH_TOKEN) and the Facebook
// application ID (FACEBOOK_APPLICATION_ID). The lookup goes through the
// registry's badge.Env provider, so tests can pin values with
// badge.MapEnv instead of mutating the process environment.
//
// # Usage
//
//	reg := catalog.New()
//	html, err := reg.NPMVersion(catalog.NPMOptions{PackageName: "foo"})
//
//	// or by name:
//	html, err = reg.Render("npmversion", catalog.Values{"npmPackageName": "foo"})
package catalog
