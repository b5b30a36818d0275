package http

import (
	"iter"

	"github.com/shapestone/shape-httpscan/internal/fastparser"
)

// Message is one decoded request. It owns a copy of the request's wire bytes and
// resolves its parts from them on demand; nothing is converted to strings until
// an accessor asks for it.
type Message struct {
	raw     []byte
	line    RequestLine
	headers []HeaderEntry
	entity  []byte
}

// Method returns the request method.
func (m *Message) Method() string { return m.line.Method.String(m.raw) }

// MethodToken returns the method token. Its ID is TokenGeneric for methods outside
// the recognized set.
func (m *Message) MethodToken() Token { return m.line.Method }

// Target returns the raw request target.
func (m *Message) Target() string { return m.line.Target.String(m.raw) }

// RequestURI returns the percent-decoded request target.
func (m *Message) RequestURI() (string, error) {
	return m.line.RequestURI().Resolve(m.raw)
}

// Version returns the protocol version.
func (m *Message) Version() string { return m.line.Version.String(m.raw) }

// Headers yields header names and values in arrival order. Known names are interned.
func (m *Message) Headers() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, h := range m.headers {
			if !yield(fastparser.InternHeaderName(h.Name.Bytes(m.raw)), h.Value.String(m.raw)) {
				return
			}
		}
	}
}

// Header returns the value of the first header named name (case-insensitive), or "".
func (m *Message) Header(name string) string {
	for _, h := range m.headers {
		if fastparser.EqualFold(h.Name.Bytes(m.raw), name) {
			return h.Value.String(m.raw)
		}
	}
	return ""
}

// NumHeaders returns the number of header fields.
func (m *Message) NumHeaders() int { return len(m.headers) }

// Len returns the number of wire bytes the request occupied, head and entity.
func (m *Message) Len() int { return len(m.raw) }

// Bytes returns the request's wire bytes. The slice must not be modified.
func (m *Message) Bytes() []byte { return m.raw }

// Entity returns the decoded entity, or nil if the request has none.
func (m *Message) Entity() []byte { return m.entity }

// Request materializes the message.
func (m *Message) Request() *Request {
	return fromInternal(fastparser.Materialize(m.raw, m.line, m.headers, m.entity))
}
