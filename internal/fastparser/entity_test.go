package fastparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headAndEntity(t *testing.T, limits Limits, data []byte) (*Parser, *Entity, error) {
	t.Helper()
	p := NewParser(limits)
	done, err := p.Parse(data)
	require.NoError(t, err)
	require.True(t, done)
	var e Entity
	return p, &e, e.Init(p, data)
}

func TestEntity_ContentLength(t *testing.T) {
	data := []byte("POST /submit HTTP/1.1\r\nContent-Length: 5\r\n\r\nhelloGET")
	_, e, err := headAndEntity(t, Limits{}, data)
	require.NoError(t, err)
	require.False(t, e.Chunked())

	done, err := e.Feed(data[:len(data)-6])
	require.NoError(t, err)
	require.False(t, done)

	done, err = e.Feed(data)
	require.NoError(t, err)
	require.True(t, done)
	assert.Equal(t, "hello", string(e.Bytes(data)))
	assert.Equal(t, len(data)-3, e.End())
}

func TestEntity_NoFraming(t *testing.T) {
	data := []byte("GET / HTTP/1.1\r\nHost: x\r\n\r\n")
	p, e, err := headAndEntity(t, Limits{}, data)
	require.NoError(t, err)
	require.True(t, e.Done())
	done, err := e.Feed(data)
	require.NoError(t, err)
	require.True(t, done)
	assert.Nil(t, e.Bytes(data))
	assert.Equal(t, p.Consumed(), e.End())
}

func TestEntity_ZeroContentLength(t *testing.T) {
	data := []byte("POST / HTTP/1.1\r\nContent-Length: 0\r\n\r\n")
	_, e, err := headAndEntity(t, Limits{}, data)
	require.NoError(t, err)
	done, err := e.Feed(data)
	require.NoError(t, err)
	require.True(t, done)
	assert.Empty(t, e.Bytes(data))
	assert.Equal(t, len(data), e.End())
}

func TestEntity_RepeatedContentLength(t *testing.T) {
	data := []byte("POST / HTTP/1.1\r\nContent-Length: 2\r\ncontent-length: 2\r\n\r\nok")
	_, e, err := headAndEntity(t, Limits{}, data)
	require.NoError(t, err)
	done, err := e.Feed(data)
	require.NoError(t, err)
	require.True(t, done)
	assert.Equal(t, "ok", string(e.Bytes(data)))
}

const chunkedRequest = "POST /upload HTTP/1.1\r\n" +
	"Transfer-Encoding: gzip, chunked\r\n" +
	"\r\n" +
	"5;name=value\r\nhello\r\n" +
	"6\r\n world\r\n" +
	"0\r\n" +
	"X-Checksum: abc\r\n" +
	"\r\n"

func TestEntity_Chunked(t *testing.T) {
	data := []byte(chunkedRequest + "next")
	_, e, err := headAndEntity(t, Limits{}, data)
	require.NoError(t, err)
	require.True(t, e.Chunked())

	done, err := e.Feed(data)
	require.NoError(t, err)
	require.True(t, done)
	assert.Equal(t, "hello world", string(e.Bytes(data)))
	assert.Equal(t, len(chunkedRequest), e.End())
}

func TestEntity_ChunkedByteAtATime(t *testing.T) {
	data := []byte(chunkedRequest)
	p, e, err := headAndEntity(t, Limits{}, data)
	require.NoError(t, err)

	for n := p.Consumed(); n < len(data); n++ {
		done, err := e.Feed(data[:n])
		require.NoError(t, err, "after %d bytes", n)
		require.False(t, done, "done after %d bytes", n)
	}
	done, err := e.Feed(data)
	require.NoError(t, err)
	require.True(t, done)
	assert.Equal(t, "hello world", string(e.Bytes(data)))
}

func TestEntity_InitErrors(t *testing.T) {
	tests := []struct {
		name   string
		limits Limits
		head   string
		class  error
		status int
	}{
		{"both framings", Limits{}, "Content-Length: 3\r\nTransfer-Encoding: chunked\r\n", ErrConflictingFraming, 400},
		{"coding not chunked", Limits{}, "Transfer-Encoding: gzip\r\n", ErrUnsupportedCoding, 501},
		{"chunked not final", Limits{}, "Transfer-Encoding: chunked, gzip\r\n", ErrUnsupportedCoding, 501},
		{"non-digit length", Limits{}, "Content-Length: 1x\r\n", ErrInvalidContentLength, 400},
		{"signed length", Limits{}, "Content-Length: +1\r\n", ErrInvalidContentLength, 400},
		{"empty length", Limits{}, "Content-Length:\r\n", ErrInvalidContentLength, 400},
		{"conflicting lengths", Limits{}, "Content-Length: 1\r\nContent-Length: 2\r\n", ErrInvalidContentLength, 400},
		{"length over limit", Limits{MaxEntityLength: 4}, "Content-Length: 5\r\n", ErrEntityTooLarge, 413},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte("POST / HTTP/1.1\r\n" + tt.head + "\r\n")
			_, _, err := headAndEntity(t, tt.limits, data)
			perr := requireParseError(t, err, tt.class)
			assert.Equal(t, tt.status, perr.Status)
		})
	}
}

func TestEntity_ChunkedErrors(t *testing.T) {
	tests := []struct {
		name   string
		limits Limits
		body   string
		class  error
	}{
		{"bad size", Limits{}, "zz\r\n", ErrInvalidChunk},
		{"empty size line", Limits{}, "\r\n", ErrInvalidChunk},
		{"size too wide", Limits{}, "1000000000000000\r\n", ErrInvalidChunk},
		{"bare LF after size", Limits{}, "5\nhello\r\n0\r\n\r\n", ErrInvalidChunk},
		{"data without CRLF", Limits{}, "5\r\nhelloXY0\r\n\r\n", ErrInvalidChunk},
		{"size line too long", Limits{}, "1" + strings.Repeat(" ", maxChunkLine), ErrInvalidChunk},
		{"complete size line too long", Limits{}, "1" + strings.Repeat(" ", maxChunkLine) + "\r\nx\r\n0\r\n\r\n", ErrInvalidChunk},
		{"trailer section too long", Limits{MaxHeaders: 1}, "0\r\n" + strings.Repeat("X-T: 1234567890\r\n", 300), ErrInvalidChunk},
		{"decoded over limit", Limits{MaxEntityLength: 8}, "5\r\nhello\r\n5\r\nworld\r\n0\r\n\r\n", ErrEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte("POST / HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n" + tt.body)
			_, e, err := headAndEntity(t, tt.limits, data)
			require.NoError(t, err)
			done, err := e.Feed(data)
			require.False(t, done)
			requireParseError(t, err, tt.class)
		})
	}
}

func TestEntity_TrailerStreamIsBounded(t *testing.T) {
	head := "POST / HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n0\r\n"
	data := []byte(head + strings.Repeat("X-Trailer: value\r\n", 1000))
	p, e, err := headAndEntity(t, Limits{MaxHeaders: 2}, data[:len(head)])
	require.NoError(t, err)

	for n := len(head); n <= len(data); n += 64 {
		if _, err = e.Feed(data[:n]); err != nil {
			break
		}
	}
	perr := requireParseError(t, err, ErrInvalidChunk)
	assert.Equal(t, p.Consumed()+len("0\r\n"), perr.Position)
}

func TestEntity_TrailersWithinLimit(t *testing.T) {
	data := []byte("POST / HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n" +
		"2\r\nok\r\n0\r\nX-A: 1\r\nX-B: 2\r\n\r\n")
	_, e, err := headAndEntity(t, Limits{MaxHeaders: 1}, data)
	require.NoError(t, err)
	done, err := e.Feed(data)
	require.NoError(t, err)
	require.True(t, done)
	assert.Equal(t, "ok", string(e.Bytes(data)))
	assert.Equal(t, len(data), e.End())
}

func TestEntity_ReinitReusesBuffer(t *testing.T) {
	data := []byte(chunkedRequest)
	p, e, err := headAndEntity(t, Limits{}, data)
	require.NoError(t, err)
	_, err = e.Feed(data)
	require.NoError(t, err)
	first := e.Bytes(data)

	require.NoError(t, e.Init(p, data))
	require.False(t, e.Done())
	done, err := e.Feed(data)
	require.NoError(t, err)
	require.True(t, done)
	assert.Equal(t, "hello world", string(e.Bytes(data)))
	assert.Same(t, &first[0], &e.Bytes(data)[0])
}

func TestDechunk(t *testing.T) {
	body, err := Dechunk([]byte("5\r\nHello\r\n7\r\n, World\r\n0\r\n\r\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World", string(body))

	body, err = Dechunk([]byte("A\r\n0123456789\r\n0\r\n\r\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(body))

	body, err = Dechunk([]byte("0\r\n\r\n"), 0)
	require.NoError(t, err)
	assert.Nil(t, body)

	_, err = Dechunk([]byte("5\r\nHe"), 0)
	require.ErrorIs(t, err, ErrIncompleteEntity)

	_, err = Dechunk([]byte("5\r\nHello\r\n0\r\n\r\n"), 3)
	require.ErrorIs(t, err, ErrEntityTooLarge)
}

func TestParseHexSize(t *testing.T) {
	n, ok := parseHexSize([]byte("1aF"))
	require.True(t, ok)
	assert.Equal(t, int64(0x1af), n)

	_, ok = parseHexSize([]byte("-1"))
	assert.False(t, ok)
	_, ok = parseHexSize(nil)
	assert.False(t, ok)
}
