package fastparser

import "net/url"

// Span is an offset/length reference into a caller-owned buffer.
// It is only meaningful when paired with the buffer it was resolved against.
type Span struct {
	Off int
	Len int
}

// End returns the offset just past the span.
func (s Span) End() int { return s.Off + s.Len }

// Bytes returns the referenced bytes without copying.
func (s Span) Bytes(buf []byte) []byte {
	return buf[s.Off : s.Off+s.Len : s.Off+s.Len]
}

// String copies the referenced bytes into a string.
func (s Span) String(buf []byte) string {
	return string(buf[s.Off : s.Off+s.Len])
}

// TokenID identifies a recognized method or version. TokenGeneric marks a token whose
// value only exists as raw bytes.
type TokenID uint8

const (
	TokenGeneric TokenID = iota
	MethodGET
	MethodPOST
	MethodPUT
	MethodDELETE
	MethodHEAD
	MethodPATCH
	MethodOPTIONS
	MethodCONNECT
	MethodTRACE
	VersionHTTP11
	VersionHTTP10
)

var tokenNames = [...]string{
	TokenGeneric:  "",
	MethodGET:     "GET",
	MethodPOST:    "POST",
	MethodPUT:     "PUT",
	MethodDELETE:  "DELETE",
	MethodHEAD:    "HEAD",
	MethodPATCH:   "PATCH",
	MethodOPTIONS: "OPTIONS",
	MethodCONNECT: "CONNECT",
	MethodTRACE:   "TRACE",
	VersionHTTP11: "HTTP/1.1",
	VersionHTTP10: "HTTP/1.0",
}

// String returns the wire form of a recognized token, or "" for TokenGeneric.
func (id TokenID) String() string {
	if int(id) < len(tokenNames) {
		return tokenNames[id]
	}
	return ""
}

// Token is either a recognized method/version (ID != TokenGeneric) or a generic
// captured span. Span is set in both cases.
type Token struct {
	ID   TokenID
	Span Span
}

// Recognized reports whether the token matched one of the fixed tokens.
func (t Token) Recognized() bool { return t.ID != TokenGeneric }

// Bytes returns the raw token bytes without copying.
func (t Token) Bytes(buf []byte) []byte { return t.Span.Bytes(buf) }

// String returns the token value. Recognized tokens return a constant and do not allocate.
func (t Token) String(buf []byte) string {
	if t.ID != TokenGeneric {
		return t.ID.String()
	}
	return t.Span.String(buf)
}

// HeaderEntry is one header field as a pair of spans, value trimmed of optional whitespace.
type HeaderEntry struct {
	Name  Span
	Value Span
}

// RequestLine holds the resolved parts of "METHOD SP TARGET SP VERSION CRLF".
type RequestLine struct {
	Method  Token
	Target  Span
	Version Token
}

// RequestURI returns the target with percent-decoding deferred to Resolve.
func (l RequestLine) RequestURI() Lazy[string] {
	return Lazy[string]{Span: l.Target, decode: decodeURI}
}

// Lazy is an unresolved value: the bytes it is decoded from plus the decoder.
// Nothing is decoded until Resolve is called.
type Lazy[T any] struct {
	Span   Span
	decode func([]byte) (T, error)
}

// Resolve decodes the value from buf.
func (l Lazy[T]) Resolve(buf []byte) (T, error) {
	if l.decode == nil {
		var zero T
		return zero, nil
	}
	return l.decode(l.Span.Bytes(buf))
}

// decodeURI percent-decodes a request target.
func decodeURI(b []byte) (string, error) {
	return url.PathUnescape(string(b))
}
