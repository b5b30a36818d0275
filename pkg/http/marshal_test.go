package http

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
		want string
	}{
		{
			name: "head only",
			req: &Request{
				Method:  "GET",
				Target:  "/api",
				Version: "HTTP/1.1",
				Headers: Headers{{Key: "Host", Value: "example.com"}},
			},
			want: "GET /api HTTP/1.1\r\nHost: example.com\r\n\r\n",
		},
		{
			name: "default version",
			req:  &Request{Method: "OPTIONS", Target: "*"},
			want: "OPTIONS * HTTP/1.1\r\n\r\n",
		},
		{
			name: "content length added",
			req:  &Request{Method: "POST", Target: "/p", Version: "HTTP/1.0", Body: []byte("data")},
			want: "POST /p HTTP/1.0\r\nContent-Length: 4\r\n\r\ndata",
		},
		{
			name: "content length kept",
			req: &Request{
				Method: "POST", Target: "/p",
				Headers: Headers{{Key: "content-length", Value: "4"}},
				Body:    []byte("data"),
			},
			want: "POST /p HTTP/1.1\r\ncontent-length: 4\r\n\r\ndata",
		},
		{
			name: "chunked",
			req: &Request{
				Method: "PUT", Target: "/f",
				Headers: Headers{{Key: "Transfer-Encoding", Value: "chunked"}},
				Body:    []byte("hello world, this is chunked"),
			},
			want: "PUT /f HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n1c\r\nhello world, this is chunked\r\n0\r\n\r\n",
		},
		{
			name: "chunked without body",
			req: &Request{
				Method: "PUT", Target: "/f",
				Headers: Headers{{Key: "Transfer-Encoding", Value: "chunked"}},
			},
			want: "PUT /f HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n0\r\n\r\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))

			viaMethod, err := tt.req.MarshalHTTP()
			require.NoError(t, err)
			assert.Equal(t, got, viaMethod)
		})
	}
}

func TestMarshal_Errors(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"nil", nil},
		{"empty method", &Request{Target: "/"}},
		{"empty target", &Request{Method: "GET"}},
		{"space in target", &Request{Method: "GET", Target: "/a b"}},
		{"CRLF in header value", &Request{Method: "GET", Target: "/", Headers: Headers{{Key: "X", Value: "a\r\nInjected: 1"}}}},
		{"colon in header key", &Request{Method: "GET", Target: "/", Headers: Headers{{Key: "X:Y", Value: "a"}}}},
		{"empty header key", &Request{Method: "GET", Target: "/", Headers: Headers{{Value: "a"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Marshal(tt.req)
			assert.Error(t, err)
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	inputs := []string{
		"GET /api/users HTTP/1.1\r\nHost: example.com\r\nAccept: */*\r\n\r\n",
		"POST /submit HTTP/1.1\r\nContent-Type: text/plain\r\nContent-Length: 5\r\n\r\nhello",
		"PUT /f HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n5\r\nhello\r\n0\r\n\r\n",
		"PROPFIND /dav HTTP/1.0\r\nDepth: 1\r\n\r\n",
	}
	for _, input := range inputs {
		req, err := UnmarshalRequest([]byte(input))
		require.NoError(t, err, input)
		out, err := Marshal(req)
		require.NoError(t, err)
		assert.Equal(t, input, string(out))
	}
}

func TestEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	require.NoError(t, enc.Encode(&Request{Method: "GET", Target: "/a"}))
	require.NoError(t, enc.Encode(&Request{Method: "GET", Target: "/b"}))
	require.Error(t, enc.Encode(&Request{}))

	dec := NewDecoder(&buf)
	for _, want := range []string{"/a", "/b"} {
		m, err := dec.Decode()
		require.NoError(t, err)
		assert.Equal(t, want, m.Target())
	}
}
