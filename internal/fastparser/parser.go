// Package fastparser implements an incremental, zero-copy HTTP/1.1 request-head parser.
//
// Input arrives as an append-only buffer that grows between calls. The parser keeps
// only offsets into it: every resolved part of the head is a Span that the caller
// materializes against the same buffer. Delimiters are located eight bytes at a time
// (see ScanToByte) and common methods and versions are recognized by whole-word
// comparison.
package fastparser

import (
	"iter"
)

// Phase is the position of the parser in the request-head grammar.
type Phase uint8

const (
	PhaseMethod Phase = iota
	PhaseTarget
	PhaseVersion
	PhaseExpectLF
	PhaseHeaders
	PhaseDone
	PhaseFailed
)

var phaseNames = [...]string{
	PhaseMethod:   "method",
	PhaseTarget:   "target",
	PhaseVersion:  "version",
	PhaseExpectLF: "expect-lf",
	PhaseHeaders:  "headers",
	PhaseDone:     "done",
	PhaseFailed:   "failed",
}

func (ph Phase) String() string {
	if int(ph) < len(phaseNames) {
		return phaseNames[ph]
	}
	return "unknown"
}

// Parser is the resumable cursor over one request head. It owns no buffer bytes.
// A Parser is bound to one connection's inbound stream and must not be used
// from more than one goroutine at a time.
type Parser struct {
	limits Limits

	phase Phase
	pos   int // first byte not yet confirmed
	hint  int // the in-flight scan resumes here; [pos, hint) holds no delimiter
	colon int // name boundary of the in-flight header line, -1 if unresolved
	seen  int // length of the buffer passed to the last Parse call

	line    RequestLine
	headers []HeaderEntry
	err     *ParseError
}

// NewParser creates a parser enforcing the given limits. Zero fields take defaults.
func NewParser(limits Limits) *Parser {
	p := &Parser{}
	p.Init(limits)
	return p
}

// Init prepares p in place, so that a Parser can live inside another struct.
func (p *Parser) Init(limits Limits) {
	p.limits = PrepareLimits(limits)
	p.Reset()
}

// Reset returns the parser to its initial phase and clears everything resolved so far.
// The header slice keeps its capacity, so a reused parser does not allocate.
func (p *Parser) Reset() {
	p.phase = PhaseMethod
	p.pos = 0
	p.hint = 0
	p.colon = -1
	p.seen = 0
	p.line = RequestLine{}
	p.headers = p.headers[:0]
	p.err = nil
}

// Parse advances over buf, which must start with the request head and hold every byte
// passed to previous calls since the last Reset.
//
// It returns true once the request line and header section are complete, and false
// with a nil error when more bytes are needed; no resolved state is lost in that case.
// Malformed input yields a *ParseError; the parser then stays failed until Reset.
func (p *Parser) Parse(buf []byte) (bool, error) {
	switch p.phase {
	case PhaseDone:
		p.seen = len(buf)
		return true, nil
	case PhaseFailed:
		return false, p.err
	}
	if len(buf) < p.pos {
		panic("fastparser: buffer is shorter than the input already consumed")
	}
	if p.limits.MaxHeaders == 0 {
		p.limits = PrepareLimits(p.limits)
	}
	p.seen = len(buf)

	for {
		var (
			ok   bool
			perr *ParseError
		)
		switch p.phase {
		case PhaseMethod:
			ok, perr = p.parseMethod(buf)
		case PhaseTarget:
			ok, perr = p.parseTarget(buf)
		case PhaseVersion:
			ok, perr = p.parseVersion(buf)
		case PhaseExpectLF:
			ok, perr = p.parseLF(buf)
		case PhaseHeaders:
			ok, perr = p.parseHeaders(buf)
		case PhaseDone:
			return true, nil
		}
		if perr != nil {
			p.phase = PhaseFailed
			p.err = perr
			return false, perr
		}
		if !ok {
			return false, nil
		}
	}
}

// advance confirms everything before pos and moves to the next phase.
func (p *Parser) advance(pos int, next Phase) {
	p.pos = pos
	p.hint = pos
	p.colon = -1
	p.phase = next
}

// Phase reports the current phase.
func (p *Parser) Phase() Phase { return p.phase }

// Err returns the error that failed the parser, if any.
func (p *Parser) Err() error {
	if p.err == nil {
		return nil
	}
	return p.err
}

// Limits returns the limits in force.
func (p *Parser) Limits() Limits { return p.limits }

// Consumed returns the number of bytes confirmed as part of the head. After Parse
// returned true it is the offset of the first byte past the blank line.
func (p *Parser) Consumed() int { return p.pos }

// IsFinishedParsingBuffer reports whether every byte of the last buffer passed to Parse
// has been consumed. This is not request completion: the buffer may end inside the head,
// or hold bytes of the entity or of the next pipelined request.
func (p *Parser) IsFinishedParsingBuffer() bool { return p.pos >= p.seen }

// Method returns the request method.
func (p *Parser) Method() Token { return p.line.Method }

// Target returns the raw request target.
func (p *Parser) Target() Span { return p.line.Target }

// RequestURI returns the request target with percent-decoding deferred to Resolve.
func (p *Parser) RequestURI() Lazy[string] { return p.line.RequestURI() }

// Version returns the protocol version.
func (p *Parser) Version() Token { return p.line.Version }

// RequestLine returns method, target and version together.
func (p *Parser) RequestLine() RequestLine { return p.line }

// Headers returns the header entries in arrival order. The slice is reused after Reset.
func (p *Parser) Headers() []HeaderEntry { return p.headers }

// HeaderSeq yields header names and values from buf in arrival order, without copying.
func (p *Parser) HeaderSeq(buf []byte) iter.Seq2[[]byte, []byte] {
	return func(yield func([]byte, []byte) bool) {
		for _, h := range p.headers {
			if !yield(h.Name.Bytes(buf), h.Value.Bytes(buf)) {
				return
			}
		}
	}
}

// Header returns the value of the first header whose name matches (ASCII case-insensitive).
func (p *Parser) Header(buf []byte, name string) ([]byte, bool) {
	for _, h := range p.headers {
		if EqualFold(h.Name.Bytes(buf), name) {
			return h.Value.Bytes(buf), true
		}
	}
	return nil, false
}
