// Package tokenizer lexes request heads with Shape's tokenizer framework.
//
// The lexer is diagnostic: it never rejects input. Every byte lands in some token,
// so a rejected head can be dumped token by token to show where it went wrong.
package tokenizer

// Token kinds for request heads.
const (
	TokenVersion = "Version" // HTTP/1.0, HTTP/1.1
	TokenText    = "Text"    // method, target, header name or value word

	TokenColon = "Colon" // :
	TokenSP    = "SP"    // single space
	TokenHTAB  = "HTAB"  // horizontal tab

	TokenCRLF   = "CRLF"   // \r\n
	TokenBareCR = "BareCR" // \r not followed by \n
	TokenBareLF = "BareLF" // \n not preceded by \r

	TokenControl = "Control" // any other control byte
)
