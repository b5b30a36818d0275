package http

import (
	"github.com/shapestone/shape-httpscan/internal/tokenizer"
)

// Lexeme kinds returned by Lex.
const (
	LexVersion = tokenizer.TokenVersion
	LexText    = tokenizer.TokenText
	LexColon   = tokenizer.TokenColon
	LexSP      = tokenizer.TokenSP
	LexHTAB    = tokenizer.TokenHTAB
	LexCRLF    = tokenizer.TokenCRLF
	LexBareCR  = tokenizer.TokenBareCR
	LexBareLF  = tokenizer.TokenBareLF
	LexControl = tokenizer.TokenControl
)

// Lexeme is one token of a lexical dump.
type Lexeme struct {
	Kind string
	Text string
}

// Lex splits a request head into lexemes for diagnostics. It never fails: bytes the
// parser would reject show up as BareCR, BareLF or Control lexemes. Lexing stops
// after the blank line that ends the head.
func Lex(data []byte) []Lexeme {
	tokens, _ := tokenizer.Tokenize(string(data))
	out := make([]Lexeme, 0, len(tokens))
	lineStart := true
	for _, t := range tokens {
		out = append(out, Lexeme{Kind: t.Kind(), Text: t.ValueString()})
		if t.Kind() == tokenizer.TokenCRLF {
			if lineStart && len(out) > 1 {
				break
			}
			lineStart = true
			continue
		}
		lineStart = false
	}
	return out
}
