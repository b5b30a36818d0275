package fastparser

import (
	"errors"
	"fmt"
)

// Malformed-input classes. A ParseError unwraps to exactly one of them.
var (
	ErrInvalidMethod        = errors.New("invalid request method")
	ErrInvalidTarget        = errors.New("invalid request target")
	ErrURITooLong           = errors.New("request target too long")
	ErrInvalidVersion       = errors.New("invalid protocol version")
	ErrMissingLF            = errors.New("CR not followed by LF")
	ErrInvalidHeader        = errors.New("invalid header field")
	ErrHeaderTooLarge       = errors.New("header field too large")
	ErrTooManyHeaders       = errors.New("too many header fields")
	ErrInvalidContentLength = errors.New("invalid Content-Length")
	ErrConflictingFraming   = errors.New("both Content-Length and Transfer-Encoding present")
	ErrUnsupportedCoding    = errors.New("unsupported transfer coding")
	ErrInvalidChunk         = errors.New("invalid chunked encoding")
	ErrEntityTooLarge       = errors.New("entity too large")
)

var statusFor = map[error]int{
	ErrInvalidMethod:        400,
	ErrInvalidTarget:        400,
	ErrURITooLong:           414,
	ErrInvalidVersion:       400,
	ErrMissingLF:            400,
	ErrInvalidHeader:        400,
	ErrHeaderTooLarge:       431,
	ErrTooManyHeaders:       431,
	ErrInvalidContentLength: 400,
	ErrConflictingFraming:   400,
	ErrUnsupportedCoding:    501,
	ErrInvalidChunk:         400,
	ErrEntityTooLarge:       413,
}

// ParseError reports malformed input. It terminates parsing of the current request.
type ParseError struct {
	Err      error  // one of the Err* classes above
	Status   int    // HTTP status a server should answer with
	Position int    // byte offset in the request buffer
	Message  string // detail, may be empty
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return fmt.Sprintf("http: parse error at position %d: %s", e.Position, msg)
}

// Unwrap returns the error class.
func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(class error, pos int, msg string) *ParseError {
	status, ok := statusFor[class]
	if !ok {
		status = 400
	}
	return &ParseError{Err: class, Status: status, Position: pos, Message: msg}
}
