package http

import (
	"fmt"
	"strconv"
	"strings"
)

// appendRequest serializes a Request to HTTP/1.1 wire format.
// On error buf is returned unchanged in length so the caller can recycle it.
func appendRequest(buf []byte, req *Request) ([]byte, error) {
	if req.Method == "" {
		return buf, fmt.Errorf("http: Marshal: request method is empty")
	}
	if req.Target == "" {
		return buf, fmt.Errorf("http: Marshal: request target is empty")
	}
	if strings.ContainsAny(req.Method, " \r\n") || strings.ContainsAny(req.Target, " \r\n") {
		return buf, fmt.Errorf("http: Marshal: request line contains whitespace")
	}
	for _, h := range req.Headers {
		if h.Key == "" || strings.ContainsAny(h.Key, ": \t\r\n") || strings.ContainsAny(h.Value, "\r\n") {
			return buf, fmt.Errorf("http: Marshal: invalid header %q", h.Key)
		}
	}

	version := req.Version
	if version == "" {
		version = "HTTP/1.1"
	}

	buf = appendRequestLine(buf, req.Method, req.Target, version)
	buf = appendHeaders(buf, req.Headers)

	chunked := req.Headers.IsChunked()
	if len(req.Body) > 0 && !chunked && req.Headers.Get("Content-Length") == "" {
		buf = append(buf, "Content-Length: "...)
		buf = strconv.AppendInt(buf, int64(len(req.Body)), 10)
		buf = appendCRLF(buf)
	}

	buf = appendCRLF(buf) // empty line before body
	if chunked {
		return appendChunked(buf, req.Body), nil
	}
	return append(buf, req.Body...), nil
}

// appendHeaders appends all headers in "Key: Value\r\n" format.
func appendHeaders(buf []byte, headers Headers) []byte {
	for _, h := range headers {
		buf = append(buf, h.Key...)
		buf = append(buf, ':', ' ')
		buf = append(buf, h.Value...)
		buf = appendCRLF(buf)
	}
	return buf
}

// appendChunked writes body as one chunk followed by the last chunk.
func appendChunked(buf, body []byte) []byte {
	if len(body) > 0 {
		buf = strconv.AppendInt(buf, int64(len(body)), 16)
		buf = appendCRLF(buf)
		buf = append(buf, body...)
		buf = appendCRLF(buf)
	}
	buf = append(buf, '0')
	buf = appendCRLF(buf)
	return appendCRLF(buf)
}
