package http

import "github.com/shapestone/shape-httpscan/internal/fastparser"

// ParseError reports malformed input: the error class, the HTTP status a server
// should answer with, and the byte offset where parsing stopped.
// errors.Is matches it against the Err* classes below.
type ParseError = fastparser.ParseError

// Malformed-input classes.
var (
	ErrInvalidMethod        = fastparser.ErrInvalidMethod
	ErrInvalidTarget        = fastparser.ErrInvalidTarget
	ErrURITooLong           = fastparser.ErrURITooLong
	ErrInvalidVersion       = fastparser.ErrInvalidVersion
	ErrMissingLF            = fastparser.ErrMissingLF
	ErrInvalidHeader        = fastparser.ErrInvalidHeader
	ErrHeaderTooLarge       = fastparser.ErrHeaderTooLarge
	ErrTooManyHeaders       = fastparser.ErrTooManyHeaders
	ErrInvalidContentLength = fastparser.ErrInvalidContentLength
	ErrConflictingFraming   = fastparser.ErrConflictingFraming
	ErrUnsupportedCoding    = fastparser.ErrUnsupportedCoding
	ErrInvalidChunk         = fastparser.ErrInvalidChunk
	ErrEntityTooLarge       = fastparser.ErrEntityTooLarge
)

// Returned by the one-shot functions when the input ends early.
var (
	ErrIncomplete       = fastparser.ErrIncomplete
	ErrIncompleteEntity = fastparser.ErrIncompleteEntity
)
