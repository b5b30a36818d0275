package http

import (
	"errors"
	"fmt"
	"io"
)

const (
	initialBufSize = 4096
	// reads that return neither data nor an error before Decode gives up
	maxEmptyReads = 100
)

// Decoder reads requests from an input stream. Pipelined requests are decoded one
// after another; bytes read past the end of a request are kept for the next Decode.
// A single Decoder is not safe for concurrent use.
type Decoder struct {
	r      io.Reader
	buf    []byte // unconsumed input, starts with the current request
	p      Parser
	e      Entity
	inHead bool
	rerr   error // sticky read error, reported once buf is drained
}

// NewDecoder returns a new decoder that reads from r with default limits.
func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderLimits(r, Limits{})
}

// NewDecoderLimits returns a new decoder that reads from r and enforces limits.
func NewDecoderLimits(r io.Reader, limits Limits) *Decoder {
	dec := &Decoder{
		r:      r,
		buf:    make([]byte, 0, initialBufSize),
		inHead: true,
	}
	dec.p.Init(limits)
	return dec
}

// Decode reads the next request.
//
// It returns io.EOF when the stream ends cleanly between requests and
// io.ErrUnexpectedEOF when it ends inside one. Malformed input is a *ParseError,
// after which the stream is unusable.
func (dec *Decoder) Decode() (*Message, error) {
	for {
		done, err := dec.advance()
		if err != nil {
			return nil, err
		}
		if done {
			return dec.finish(), nil
		}

		if err := dec.fill(); err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("http: decode: %w", err)
			}
			if dec.inHead && len(dec.buf) == 0 {
				return nil, io.EOF
			}
			return nil, io.ErrUnexpectedEOF
		}
	}
}

// DecodeRequest reads the next request and materializes it.
func (dec *Decoder) DecodeRequest() (*Request, error) {
	m, err := dec.Decode()
	if err != nil {
		return nil, err
	}
	return m.Request(), nil
}

// Buffered returns the bytes read from the stream but not yet decoded.
func (dec *Decoder) Buffered() []byte { return dec.buf }

// advance runs the head parser and then the entity framer over the buffer.
func (dec *Decoder) advance() (bool, error) {
	if dec.inHead {
		done, err := dec.p.Parse(dec.buf)
		if err != nil || !done {
			return false, err
		}
		if err := dec.e.Init(&dec.p, dec.buf); err != nil {
			return false, err
		}
		dec.inHead = false
	}
	return dec.e.Feed(dec.buf)
}

// finish copies the completed request out of the buffer and drops it from the front.
func (dec *Decoder) finish() *Message {
	end := dec.e.End()
	m := &Message{
		raw:     append([]byte(nil), dec.buf[:end]...),
		line:    dec.p.RequestLine(),
		headers: append([]HeaderEntry(nil), dec.p.Headers()...),
	}
	if body := dec.e.Bytes(dec.buf); len(body) > 0 {
		m.entity = append([]byte(nil), body...)
	}

	n := copy(dec.buf, dec.buf[end:])
	dec.buf = dec.buf[:n]
	dec.p.Reset()
	dec.inHead = true
	return m
}

// fill appends at least one byte from the reader to buf, growing it when full.
func (dec *Decoder) fill() error {
	if dec.rerr != nil {
		return dec.rerr
	}
	if len(dec.buf) == cap(dec.buf) {
		grown := make([]byte, len(dec.buf), 2*cap(dec.buf)+initialBufSize)
		copy(grown, dec.buf)
		dec.buf = grown
	}
	for i := 0; i < maxEmptyReads; i++ {
		n, err := dec.r.Read(dec.buf[len(dec.buf):cap(dec.buf)])
		dec.buf = dec.buf[:len(dec.buf)+n]
		if err != nil {
			dec.rerr = err
			if n > 0 {
				return nil
			}
			return err
		}
		if n > 0 {
			return nil
		}
	}
	return io.ErrNoProgress
}
