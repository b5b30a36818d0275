package fastparser

import "bytes"

type framing uint8

const (
	framingNone framing = iota
	framingLength
	framingChunked
)

type chunkState uint8

const (
	chunkSize chunkState = iota
	chunkData
	chunkDataCRLF
	chunkTrailer
)

// chunk-size lines and trailer lines longer than this are rejected
const maxChunkLine = 4096

// trailerLimit bounds the whole trailer section: as many lines as the head may carry.
func trailerLimit(l Limits) int { return l.MaxHeaders * maxChunkLine }

// Entity frames the message body that follows a parsed head, using the head's
// Content-Length or Transfer-Encoding. Like Parser it is fed the same append-only
// buffer repeatedly and resumes where it stopped.
//
// Content-Length bodies are returned as a view into the buffer. Chunked bodies are
// decoded into an internal slice that is reused after Init.
type Entity struct {
	limit int64
	mode  framing
	start int // first byte after the head
	pos   int // resume offset
	done  bool

	length int64 // declared Content-Length

	state        chunkState
	left         int64 // bytes still to come in the current chunk
	decoded      []byte
	trailerStart int
	trailerLimit int
}

// Init selects the framing from the headers of p, which must have finished parsing buf.
// Conflicting or unsupported framing is reported as a *ParseError.
func (e *Entity) Init(p *Parser, buf []byte) error {
	*e = Entity{
		limit:        p.limits.MaxEntityLength,
		trailerLimit: trailerLimit(p.limits),
		start:        p.pos,
		pos:          p.pos,
		decoded:      e.decoded[:0],
	}

	var (
		te             []byte
		haveTE, haveCL bool
	)
	for _, h := range p.headers {
		name := h.Name.Bytes(buf)
		switch {
		case EqualFold(name, "Transfer-Encoding"):
			te = h.Value.Bytes(buf)
			haveTE = true
		case EqualFold(name, "Content-Length"):
			n, ok := parseContentLength(h.Value.Bytes(buf))
			if !ok {
				return newParseError(ErrInvalidContentLength, h.Value.Off, "")
			}
			if haveCL && n != e.length {
				return newParseError(ErrInvalidContentLength, h.Value.Off, "conflicting values")
			}
			e.length = n
			haveCL = true
		}
	}

	switch {
	case haveTE && haveCL:
		return newParseError(ErrConflictingFraming, e.start, "")
	case haveTE:
		if !finalCodingChunked(te) {
			return newParseError(ErrUnsupportedCoding, e.start, string(te))
		}
		e.mode = framingChunked
	case haveCL:
		if e.length > e.limit {
			return newParseError(ErrEntityTooLarge, e.start, "")
		}
		e.mode = framingLength
	default:
		e.done = true
	}
	return nil
}

// Feed advances over buf. It returns true once the whole entity is available.
func (e *Entity) Feed(buf []byte) (bool, error) {
	if e.done {
		return true, nil
	}
	switch e.mode {
	case framingLength:
		if int64(len(buf)-e.start) < e.length {
			return false, nil
		}
		e.pos = e.start + int(e.length)
		e.done = true
		return true, nil
	case framingChunked:
		return e.feedChunked(buf)
	}
	return true, nil
}

func (e *Entity) feedChunked(buf []byte) (bool, error) {
	for {
		switch e.state {
		case chunkSize:
			line, next, err := e.line(buf)
			if err != nil || next < 0 {
				return false, err
			}
			if semi := bytes.IndexByte(line, ';'); semi >= 0 {
				line = line[:semi]
			}
			ows := trimOWS(line, 0, len(line))
			size, ok := parseHexSize(ows.Bytes(line))
			if !ok {
				return false, newParseError(ErrInvalidChunk, e.pos, "invalid chunk size")
			}
			if int64(len(e.decoded))+size > e.limit {
				return false, newParseError(ErrEntityTooLarge, e.pos, "")
			}
			e.pos = next
			if size == 0 {
				e.trailerStart = next
				e.state = chunkTrailer
				continue
			}
			e.left = size
			e.state = chunkData

		case chunkData:
			avail := int64(len(buf) - e.pos)
			if avail == 0 {
				return false, nil
			}
			n := min(avail, e.left)
			e.decoded = append(e.decoded, buf[e.pos:e.pos+int(n)]...)
			e.pos += int(n)
			e.left -= n
			if e.left > 0 {
				return false, nil
			}
			e.state = chunkDataCRLF

		case chunkDataCRLF:
			if len(buf)-e.pos < 2 {
				return false, nil
			}
			if buf[e.pos] != '\r' || buf[e.pos+1] != '\n' {
				return false, newParseError(ErrInvalidChunk, e.pos, "missing CRLF after chunk data")
			}
			e.pos += 2
			e.state = chunkSize

		case chunkTrailer:
			line, next, err := e.line(buf)
			if err != nil {
				return false, err
			}
			// bytes of the trailer section before the LF that is still awaited or just found
			seen := len(buf) - e.trailerStart
			if next >= 0 {
				seen = next - 1 - e.trailerStart
			}
			if seen > e.trailerLimit {
				return false, newParseError(ErrInvalidChunk, e.trailerStart, "trailer section too long")
			}
			if next < 0 {
				return false, nil
			}
			e.pos = next
			if len(line) == 0 {
				e.done = true
				return true, nil
			}
		}
	}
}

// line returns the CRLF-terminated line at e.pos without its CRLF, and the offset after it.
// next is -1 when the line is not complete yet.
func (e *Entity) line(buf []byte) (line []byte, next int, err error) {
	lf := ScanToByte(buf, e.pos, len(buf), '\n')
	if lf == NotFound {
		if len(buf)-e.pos > maxChunkLine {
			return nil, -1, newParseError(ErrInvalidChunk, e.pos, "line too long")
		}
		return nil, -1, nil
	}
	if lf-e.pos > maxChunkLine {
		return nil, -1, newParseError(ErrInvalidChunk, e.pos, "line too long")
	}
	if lf == e.pos || buf[lf-1] != '\r' {
		return nil, -1, newParseError(ErrInvalidChunk, lf, "line not terminated by CRLF")
	}
	return buf[e.pos : lf-1], lf + 1, nil
}

// Bytes returns the entity. Content-Length entities alias buf; chunked entities are
// the decoded payload.
func (e *Entity) Bytes(buf []byte) []byte {
	switch e.mode {
	case framingLength:
		return buf[e.start : e.start+int(e.length)]
	case framingChunked:
		return e.decoded
	}
	return nil
}

// Done reports whether the entity is complete.
func (e *Entity) Done() bool { return e.done }

// End returns the offset just past the framed message. Only meaningful once Done.
func (e *Entity) End() int { return e.pos }

// Chunked reports whether the entity uses chunked transfer coding.
func (e *Entity) Chunked() bool { return e.mode == framingChunked }

// parseContentLength accepts a non-empty run of digits.
func parseContentLength(b []byte) (int64, bool) {
	if len(b) == 0 || len(b) > 18 {
		return 0, false
	}
	var n int64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int64(c-'0')
	}
	return n, true
}

// finalCodingChunked reports whether the last coding in a Transfer-Encoding list is chunked.
func finalCodingChunked(te []byte) bool {
	last := te
	if comma := bytes.LastIndexByte(te, ','); comma >= 0 {
		last = te[comma+1:]
	}
	s := trimOWS(last, 0, len(last))
	return EqualFold(s.Bytes(last), "chunked")
}

// parseHexSize parses a chunk size. Sizes wider than 15 hex digits are rejected.
func parseHexSize(b []byte) (int64, bool) {
	if len(b) == 0 || len(b) > 15 {
		return 0, false
	}
	var n int64
	for _, c := range b {
		d, ok := unhex(c)
		if !ok {
			return 0, false
		}
		n = n<<4 | int64(d)
	}
	return n, true
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
