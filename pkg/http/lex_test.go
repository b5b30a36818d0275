package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLex(t *testing.T) {
	got := Lex([]byte("GET / HTTP/1.1\r\nHost: x\r\n\r\nbody"))
	want := []Lexeme{
		{LexText, "GET"}, {LexSP, " "}, {LexText, "/"}, {LexSP, " "}, {LexVersion, "HTTP/1.1"}, {LexCRLF, "\r\n"},
		{LexText, "Host"}, {LexColon, ":"}, {LexSP, " "}, {LexText, "x"}, {LexCRLF, "\r\n"},
		{LexCRLF, "\r\n"},
	}
	assert.Equal(t, want, got)
}

func TestLex_ShowsRejectedBytes(t *testing.T) {
	got := Lex([]byte("GET /\x01 HTTP/1.1\n"))
	kinds := make([]string, len(got))
	for i, l := range got {
		kinds[i] = l.Kind
	}
	assert.Equal(t, []string{LexText, LexSP, LexText, LexControl, LexSP, LexVersion, LexBareLF}, kinds)
}
