package fastparser

import "fmt"

// Dechunk decodes a complete chunked transfer-encoded body.
//
// Format: hex-size [;ext] CRLF data CRLF ... 0 CRLF [trailers] CRLF
//
// It runs the same state machine as Entity, so the strictness is identical:
// line endings must be CRLF and the decoded size is bounded by limit
// (zero takes the default entity limit). Trailers are bounded as in Entity
// under default limits.
func Dechunk(data []byte, limit int64) ([]byte, error) {
	var e Entity
	e.initChunked(0, PrepareLimits(Limits{MaxEntityLength: limit}))
	done, err := e.Feed(data)
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, fmt.Errorf("%w: chunked body ends after %d bytes", ErrIncompleteEntity, len(data))
	}
	if len(e.decoded) == 0 {
		return nil, nil
	}
	return e.decoded, nil
}

// initChunked prepares e to decode a chunked entity starting at start.
func (e *Entity) initChunked(start int, limits Limits) {
	*e = Entity{
		limit:        limits.MaxEntityLength,
		trailerLimit: trailerLimit(limits),
		mode:         framingChunked,
		start:        start,
		pos:          start,
		decoded:      e.decoded[:0],
	}
}
