package badge

import (
	"net/url"
	"strings"
)

// Param is a single key/value pair in an ordered query payload.
type Param struct {
	Key   string
	Value string
}

// Query is the payload for badges that accept query parameters either as a
// literal query string or as an ordered list of key/value pairs. The zero
// value is the absent payload.
//
// A raw payload passes through [Query.Encode] untouched; a parameter
// payload is serialized in declaration order with query-escaped values.
// Go maps cannot preserve insertion order, which is why the parameter form
// is a slice rather than a map.
type Query struct {
	raw    string
	params []Param
	isRaw  bool
}

// RawQuery wraps a literal query string (without the leading "?").
func RawQuery(s string) Query {
	return Query{raw: s, isRaw: true}
}

// QueryParams builds an ordered parameter payload.
func QueryParams(params ...Param) Query {
	return Query{params: params}
}

// IsZero reports whether the payload is absent.
func (q Query) IsZero() bool {
	return !q.isRaw && len(q.params) == 0
}

// Encode renders the payload in key=value&... form. Parameter keys keep
// their declaration order and values are escaped per standard query-string
// escaping; raw payloads are returned verbatim.
func (q Query) Encode() string {
	if q.isRaw {
		return q.raw
	}
	var s strings.Builder
	for i, p := range q.params {
		if i > 0 {
			s.WriteByte('&')
		}
		s.WriteString(p.Key)
		s.WriteByte('=')
		s.WriteString(url.QueryEscape(p.Value))
	}
	return s.String()
}
