package http

import (
	"bytes"
	"io"

	"github.com/shapestone/shape-httpscan/internal/fastparser"
)

// Validate checks that input starts with a complete, syntactically valid request
// head. It does not look at the entity.
// Returns nil if valid, or a *ParseError identifying the problem, or ErrIncomplete.
func Validate(input string) error {
	return fastparser.Validate([]byte(input))
}

// ValidateReader reads all data from r and validates it as a request head.
// See Validate for the validation semantics.
func ValidateReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	return fastparser.Validate(data)
}

func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
