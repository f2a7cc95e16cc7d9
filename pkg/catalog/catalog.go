package catalog

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/badgekit/badges/pkg/badge"
)

// =============================================================================
// Registry
// =============================================================================

// Registry generates badges. It carries the two injectable capabilities the
// generators need: an environment provider for secret-like field fallbacks
// and a logger. The zero-configuration registry reads the real process
// environment and discards log output.
//
// A Registry is immutable after construction and safe for concurrent use.
type Registry struct {
	env    badge.Env
	logger *log.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithEnv sets the environment provider used for secret-like field
// fallbacks. Pass badge.MapEnv in tests to avoid touching process state.
func WithEnv(env badge.Env) Option {
	return func(r *Registry) {
		r.env = env
	}
}

// WithLogger sets the logger for debug-level generation events.
func WithLogger(logger *log.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates a registry with the given options applied.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	if r.env == nil {
		r.env = badge.OSEnv
	}
	if r.logger == nil {
		r.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return r
}

// =============================================================================
// Entries - Static Generator Metadata
// =============================================================================

// Entry describes one registered badge generator.
type Entry struct {
	// Name is the registry key, e.g. "npmversion".
	Name string

	// Category classifies the generator.
	Category badge.Category

	// Script marks generators whose output embeds executable script or
	// iframe markup rather than an inline image/link fragment.
	Script bool

	// render decodes a Values bag and invokes the typed generator.
	render func(r *Registry, v Values) (string, error)
}

// entries is the full registry table, assembled from the per-category
// tables declared alongside their generators.
var entries = mergeEntries(
	customEntries,
	developmentEntries,
	testingEntries,
	fundingEntries,
	socialEntries,
)

func mergeEntries(groups ...[]Entry) map[string]Entry {
	merged := make(map[string]Entry)
	for _, group := range groups {
		for _, e := range group {
			if _, dup := merged[e.Name]; dup {
				panic(fmt.Sprintf("catalog: duplicate badge name %q", e.Name))
			}
			merged[e.Name] = e
		}
	}
	return merged
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, bool) {
	e, ok := entries[name]
	return e, ok
}

// Names returns every registered badge name in sorted order.
func Names() []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByCategory returns the entries in a category, sorted by name.
func ByCategory(c badge.Category) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Category == c {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// =============================================================================
// Name-Keyed Dispatch
// =============================================================================

// Values is the dynamic configuration bag for name-keyed dispatch. Keys are
// the documented per-generator field names (e.g. "npmPackageName"); each
// generator reads its own closed set of keys and ignores everything else.
type Values map[string]any

// String returns the string stored under key, or "" when the key is absent
// or holds a non-string.
func (v Values) String(key string) string {
	s, _ := v[key].(string)
	return s
}

// Query returns the query payload stored under key. Accepted shapes are a
// literal query string, a badge.Query, or ordered []badge.Param pairs.
// Any other non-nil value is an *badge.InvalidTypeError: in particular a
// map[string]string is rejected because it cannot preserve insertion order.
func (v Values) Query(key string) (badge.Query, error) {
	switch q := v[key].(type) {
	case nil:
		return badge.Query{}, nil
	case string:
		return badge.RawQuery(q), nil
	case badge.Query:
		return q, nil
	case []badge.Param:
		return badge.QueryParams(q...), nil
	default:
		return badge.Query{}, &badge.InvalidTypeError{Field: key, Want: "string, badge.Query, or []badge.Param"}
	}
}

// ErrUnknownBadge reports a Render call with a name no generator is
// registered under.
var ErrUnknownBadge = errors.New("unknown badge")

// Render generates the badge registered under name from the supplied
// values. Unknown names fail with a wrapped [ErrUnknownBadge]; generation
// errors are wrapped with the badge name and remain classifiable via
// errors.As and the badge predicates.
func (r *Registry) Render(name string, v Values) (string, error) {
	e, ok := entries[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBadge, name)
	}
	out, err := e.render(r, v)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	r.logger.Debug("rendered badge", "name", name, "category", e.Category, "script", e.Script)
	return out, nil
}
