package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for request heads. Matchers in priority order:
// 1. line endings, split into CRLF, bare CR and bare LF
// 2. SP and HTAB
// 3. colon
// 4. HTTP version
// 5. text runs
// 6. any remaining control byte, one per token
//
// Whitespace is significant, so the default whitespace skipper is not used.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		LineEndMatcher(),
		tokenizer.StringMatcherFunc(TokenSP, " "),
		tokenizer.StringMatcherFunc(TokenHTAB, "\t"),
		tokenizer.StringMatcherFunc(TokenColon, ":"),
		VersionMatcher(),
		TextMatcher(),
		ControlMatcher(),
	)
}

// NewTokenizerWithStream creates a tokenizer over a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// Tokenize lexes input and returns all tokens. ok is false if some input could not
// be matched, which the control matcher makes impossible for well-formed UTF-8.
func Tokenize(input string) (tokens []tokenizer.Token, ok bool) {
	tok := NewTokenizer()
	tok.Initialize(input)
	return tok.Tokenize()
}

// LineEndMatcher matches CRLF, and reports a CR or LF that is not part of one.
func LineEndMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}
		switch r {
		case '\r':
			stream.NextChar()
			if r2, ok := stream.PeekChar(); ok && r2 == '\n' {
				stream.NextChar()
				return tokenizer.NewToken(TokenCRLF, []rune{'\r', '\n'})
			}
			return tokenizer.NewToken(TokenBareCR, []rune{'\r'})
		case '\n':
			stream.NextChar()
			return tokenizer.NewToken(TokenBareLF, []rune{'\n'})
		}
		return nil
	}
}

// VersionMatcher matches "HTTP/" followed by at least one digit or dot.
func VersionMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		value := make([]rune, 0, 8)
		for _, expected := range "HTTP/" {
			r, ok := stream.PeekChar()
			if !ok || r != expected {
				return nil
			}
			stream.NextChar()
			value = append(value, r)
		}

		for {
			r, ok := stream.PeekChar()
			if !ok || !((r >= '0' && r <= '9') || r == '.') {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		if len(value) == len("HTTP/") {
			return nil
		}
		return tokenizer.NewToken(TokenVersion, value)
	}
}

// TextMatcher matches a run of printable characters up to whitespace, a colon,
// or a control character.
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || r == ' ' || r == ':' || isControl(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenText, value)
	}
}

// ControlMatcher matches a single control character.
func ControlMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || !isControl(r) {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenControl, []rune{r})
	}
}

// isControl covers CTL from RFC 5234, which includes HTAB, CR and LF.
func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}
