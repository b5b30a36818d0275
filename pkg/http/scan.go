package http

import "github.com/shapestone/shape-httpscan/internal/fastparser"

// Incremental parsing types. See the fastparser documentation on each.
type (
	// Parser is the resumable cursor over one request head.
	Parser = fastparser.Parser
	// Entity frames the body that follows a parsed head.
	Entity = fastparser.Entity
	// Limits bounds what a Parser accepts. Zero fields take defaults.
	Limits = fastparser.Limits
	// Phase is the position of a Parser in the request-head grammar.
	Phase = fastparser.Phase
	// Span is an offset/length reference into the caller's buffer.
	Span = fastparser.Span
	// Token is a recognized method or version, or a generic span.
	Token = fastparser.Token
	// TokenID identifies a recognized token.
	TokenID = fastparser.TokenID
	// HeaderEntry is a header field as a pair of spans.
	HeaderEntry = fastparser.HeaderEntry
	// RequestLine holds the resolved method, target and version.
	RequestLine = fastparser.RequestLine
)

const (
	PhaseMethod   = fastparser.PhaseMethod
	PhaseTarget   = fastparser.PhaseTarget
	PhaseVersion  = fastparser.PhaseVersion
	PhaseExpectLF = fastparser.PhaseExpectLF
	PhaseHeaders  = fastparser.PhaseHeaders
	PhaseDone     = fastparser.PhaseDone
	PhaseFailed   = fastparser.PhaseFailed
)

const (
	TokenGeneric  = fastparser.TokenGeneric
	MethodGET     = fastparser.MethodGET
	MethodPOST    = fastparser.MethodPOST
	MethodPUT     = fastparser.MethodPUT
	MethodDELETE  = fastparser.MethodDELETE
	MethodHEAD    = fastparser.MethodHEAD
	MethodPATCH   = fastparser.MethodPATCH
	MethodOPTIONS = fastparser.MethodOPTIONS
	MethodCONNECT = fastparser.MethodCONNECT
	MethodTRACE   = fastparser.MethodTRACE
	VersionHTTP11 = fastparser.VersionHTTP11
	VersionHTTP10 = fastparser.VersionHTTP10
)

// NotFound is returned by ScanToByte when the byte is absent.
const NotFound = fastparser.NotFound

// NewParser creates a parser enforcing limits. Zero fields take defaults.
func NewParser(limits Limits) *Parser { return fastparser.NewParser(limits) }

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits { return fastparser.DefaultLimits() }

// ScanToByte returns the offset of the first target byte in buf[start:end], or NotFound.
func ScanToByte(buf []byte, start, end int, target byte) int {
	return fastparser.ScanToByte(buf, start, end, target)
}

// Dechunk decodes a complete chunked body. limit bounds the decoded size;
// zero takes the default.
func Dechunk(data []byte, limit int64) ([]byte, error) {
	return fastparser.Dechunk(data, limit)
}
