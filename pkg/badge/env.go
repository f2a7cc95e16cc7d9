package badge

import "os"

// Env resolves environment lookups for secret-like badge fields (auth
// tokens, application IDs). Injecting the provider keeps generators pure
// and testable; the catalog defaults to [OSEnv].
//
// An Env must return "" for unset keys and must be safe for concurrent use.
type Env func(key string) string

// OSEnv reads from the real process environment.
func OSEnv(key string) string {
	return os.Getenv(key)
}

// MapEnv returns an Env backed by a fixed map. Useful in tests to pin
// environment fallbacks without mutating process state.
func MapEnv(vars map[string]string) Env {
	return func(key string) string {
		return vars[key]
	}
}
