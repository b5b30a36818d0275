package http

import (
	"fmt"

	"github.com/shapestone/shape-httpscan/internal/fastparser"
)

// Unmarshal parses a complete request, head and entity, and stores it in req.
// Bytes after the framed entity are ignored.
//
// # Authentication
//
// Authentication headers are parsed as ordinary HTTP headers and are available
// via req.Headers.Get:
//
//	req.Headers.Get("Authorization")   // "Basic dXNlcm5hbWU6cGFzc3dvcmQ="
//	req.Headers.Get("X-API-Key")       // "abc123def456"
//
// Query-string API keys stay part of the raw target:
//
//	// GET /api/users?api_key=abc123 HTTP/1.1  →  req.Target = "/api/users?api_key=abc123"
func Unmarshal(data []byte, req *Request) error {
	if req == nil {
		return fmt.Errorf("http: Unmarshal(nil)")
	}
	r, err := fastparser.UnmarshalRequest(data, Limits{})
	if err != nil {
		return err
	}
	*req = *fromInternal(r)
	return nil
}

// UnmarshalRequest parses a complete request with default limits.
func UnmarshalRequest(data []byte) (*Request, error) {
	return UnmarshalRequestLimits(data, Limits{})
}

// UnmarshalRequestLimits parses a complete request with the given limits.
func UnmarshalRequestLimits(data []byte, limits Limits) (*Request, error) {
	r, err := fastparser.UnmarshalRequest(data, limits)
	if err != nil {
		return nil, err
	}
	return fromInternal(r), nil
}

func fromInternal(r *fastparser.Request) *Request {
	return &Request{
		Method:  r.Method,
		Target:  r.Target,
		Version: r.Version,
		Scheme:  r.Scheme,
		Headers: convertHeaders(r.Headers),
		Body:    r.Body,
	}
}

func toInternal(r *Request) *fastparser.Request {
	var headers []fastparser.Header
	if len(r.Headers) > 0 {
		headers = make([]fastparser.Header, len(r.Headers))
		for i, h := range r.Headers {
			headers[i] = fastparser.Header{Key: h.Key, Value: h.Value}
		}
	}
	return &fastparser.Request{
		Method:  r.Method,
		Target:  r.Target,
		Version: r.Version,
		Scheme:  r.Scheme,
		Headers: headers,
		Body:    r.Body,
	}
}

func convertHeaders(internal []fastparser.Header) Headers {
	if len(internal) == 0 {
		return nil
	}
	headers := make(Headers, len(internal))
	for i, h := range internal {
		headers[i] = Header{Key: h.Key, Value: h.Value}
	}
	return headers
}
