package fastparser

import (
	"errors"
	"fmt"
)

// ErrIncomplete is returned by the one-shot helpers when data ends inside the head.
// The incremental Parse never returns it.
var ErrIncomplete = errors.New("http: incomplete request head")

// ErrIncompleteEntity is returned when data ends inside the entity.
var ErrIncompleteEntity = errors.New("http: incomplete entity")

// ParseHead parses a head that is entirely contained in data.
func ParseHead(data []byte, limits Limits) (*Parser, error) {
	p := NewParser(limits)
	done, err := p.Parse(data)
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, fmt.Errorf("%w: stopped in %s after %d bytes", ErrIncomplete, p.Phase(), p.Consumed())
	}
	return p, nil
}

// UnmarshalRequest parses a complete request, head and entity, and copies it out of data.
// Bytes after the framed entity are ignored.
func UnmarshalRequest(data []byte, limits Limits) (*Request, error) {
	p, err := ParseHead(data, limits)
	if err != nil {
		return nil, err
	}
	var e Entity
	if err := e.Init(p, data); err != nil {
		return nil, err
	}
	done, err := e.Feed(data)
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, fmt.Errorf("%w: have %d bytes after the head", ErrIncompleteEntity, len(data)-p.Consumed())
	}
	var body []byte
	if b := e.Bytes(data); len(b) > 0 {
		body = append([]byte(nil), b...)
	}
	return Materialize(data, p.line, p.headers, body), nil
}

// Validate checks that data starts with a complete, well-formed request head.
func Validate(data []byte) error {
	_, err := ParseHead(data, Limits{})
	return err
}
