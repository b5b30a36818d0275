package http

import (
	"fmt"
	"sync"
)

// bufPool pools []byte slices for the encoder fast path.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 2048)
		return &b
	},
}

// Marshal returns the HTTP/1.1 wire-format encoding of req.
//
// If a body is present and neither Content-Length nor chunked Transfer-Encoding
// is declared, Content-Length is added. A chunked request has its body written
// as a single chunk.
func Marshal(req *Request) ([]byte, error) {
	if req == nil {
		return nil, fmt.Errorf("http: Marshal(nil)")
	}

	bp := bufPool.Get().(*[]byte)
	buf, err := appendRequest((*bp)[:0], req)
	defer func() {
		*bp = buf[:0]
		bufPool.Put(bp)
	}()
	if err != nil {
		return nil, err
	}

	result := make([]byte, len(buf))
	copy(result, buf)
	return result, nil
}

// MarshalHTTP implements Marshaler.
func (r *Request) MarshalHTTP() ([]byte, error) {
	return Marshal(r)
}
