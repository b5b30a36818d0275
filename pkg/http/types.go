// Package http parses HTTP/1.1 requests incrementally and without copying.
//
// The core is Parser, a resumable cursor over an append-only buffer: call Parse
// each time more bytes arrive and it picks up where it stopped. What it resolves
// are Spans into that buffer, so nothing is copied until the caller asks for it.
//
// # Thread Safety
//
// A Parser, Entity or Decoder belongs to one connection and must not be shared
// between goroutines. The one-shot functions (UnmarshalRequest, Validate, Parse)
// create their own state and are safe for concurrent use.
//
// # Parsing APIs
//
//   - Parser / Entity - incremental zero-copy parsing of a connection's byte stream
//   - NewDecoder - streaming io.Reader-based decoding into Messages
//   - Unmarshal/UnmarshalRequest - one-shot parsing into a materialized Request
//   - Parse/ParseReader - AST-based parsing via shape-core
//   - Lex - diagnostic token dump of a request head
package http

import (
	"strconv"
	"strings"

	"github.com/shapestone/shape-httpscan/internal/fastparser"
)

// Request is a request copied out of the wire format.
type Request struct {
	Method  string  // "GET", "POST", etc.
	Target  string  // request-target "/api/users?q=foo", kept raw
	Version string  // "HTTP/1.1"
	Scheme  string  // "https" or "http" for absolute-form targets
	Headers Headers // ordered, repeatable headers
	Body    []byte  // decoded entity (nil if none)
}

// Header represents a single HTTP header key-value pair.
type Header struct {
	Key   string
	Value string
}

// Headers is an ordered, repeatable list of HTTP headers.
// Lookups are case-insensitive; the original case is preserved.
type Headers []Header

// Get returns the first header value for the given key (case-insensitive).
// Returns empty string if not found.
func (h Headers) Get(key string) string {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			return hdr.Value
		}
	}
	return ""
}

// Values returns all header values for the given key (case-insensitive).
func (h Headers) Values(key string) []string {
	var vals []string
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, key) {
			vals = append(vals, hdr.Value)
		}
	}
	return vals
}

// Set replaces the first header with the given key (case-insensitive) and drops
// later ones, or appends if the key is absent.
func (h *Headers) Set(key, value string) {
	for i, hdr := range *h {
		if !strings.EqualFold(hdr.Key, key) {
			continue
		}
		(*h)[i].Value = value
		kept := (*h)[:i+1]
		for _, rest := range (*h)[i+1:] {
			if !strings.EqualFold(rest.Key, key) {
				kept = append(kept, rest)
			}
		}
		*h = kept
		return
	}
	*h = append(*h, Header{Key: key, Value: value})
}

// Add appends a header without replacing existing ones.
func (h *Headers) Add(key, value string) {
	*h = append(*h, Header{Key: key, Value: value})
}

// Del removes all headers with the given key (case-insensitive).
func (h *Headers) Del(key string) {
	j := 0
	for _, hdr := range *h {
		if !strings.EqualFold(hdr.Key, key) {
			(*h)[j] = hdr
			j++
		}
	}
	*h = (*h)[:j]
}

// Clone returns a copy of the headers.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	copy(clone, h)
	return clone
}

// ContentLength returns the Content-Length header value, or -1 if absent or invalid.
func (h Headers) ContentLength() int64 {
	v := h.Get("Content-Length")
	if v == "" {
		return -1
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// IsChunked reports whether chunked is the final coding of the last Transfer-Encoding
// header. Coding names are compared ASCII case-insensitively.
func (h Headers) IsChunked() bool {
	var v string
	for _, hdr := range h {
		if strings.EqualFold(hdr.Key, "Transfer-Encoding") {
			v = hdr.Value
		}
	}
	if i := strings.LastIndexByte(v, ','); i >= 0 {
		v = v[i+1:]
	}
	return fastparser.EqualFold([]byte(strings.Trim(v, " \t")), "chunked")
}

// Marshaler is the interface implemented by types that can marshal themselves
// into valid HTTP wire format.
type Marshaler interface {
	MarshalHTTP() ([]byte, error)
}
