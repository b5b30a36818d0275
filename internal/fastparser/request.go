package fastparser

// Request is a parsed request copied out of the input buffer.
type Request struct {
	Method  string
	Target  string
	Version string
	Scheme  string // set for absolute-form targets only
	Headers []Header
	Body    []byte
}

// Header is a key-value pair.
type Header struct {
	Key   string
	Value string
}

// Materialize copies a resolved head out of buf. Known header names are interned.
// body is used as is.
func Materialize(buf []byte, line RequestLine, headers []HeaderEntry, body []byte) *Request {
	req := &Request{
		Method:  line.Method.String(buf),
		Target:  line.Target.String(buf),
		Version: line.Version.String(buf),
		Scheme:  targetScheme(line.Target.Bytes(buf)),
		Body:    body,
	}
	if len(headers) > 0 {
		req.Headers = make([]Header, len(headers))
		for i, h := range headers {
			req.Headers[i] = Header{
				Key:   InternHeaderName(h.Name.Bytes(buf)),
				Value: h.Value.String(buf),
			}
		}
	}
	return req
}

// Request materializes the head parsed from buf, without an entity.
func (p *Parser) Request(buf []byte) *Request {
	return Materialize(buf, p.line, p.headers, nil)
}

func targetScheme(target []byte) string {
	switch {
	case len(target) > 8 && EqualFold(target[:8], "https://"):
		return "https"
	case len(target) > 7 && EqualFold(target[:7], "http://"):
		return "http"
	}
	return ""
}
