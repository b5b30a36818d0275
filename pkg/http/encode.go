package http

import (
	"io"
)

// Encoder writes requests to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the wire-format encoding of req to the stream.
func (enc *Encoder) Encode(req *Request) error {
	data, err := Marshal(req)
	if err != nil {
		return err
	}
	_, err = enc.w.Write(data)
	return err
}
