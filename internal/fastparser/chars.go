package fastparser

// tchar per RFC 9110 section 5.6.2.
var tokenChars = func() (t [256]bool) {
	for c := '0'; c <= '9'; c++ {
		t[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = true
		t[c-'a'+'A'] = true
	}
	for _, c := range []byte("!#$%&'*+-.^_`|~") {
		t[c] = true
	}
	return t
}()

// firstNonToken returns the offset of the first non-tchar byte in buf[from:to], or -1.
func firstNonToken(buf []byte, from, to int) int {
	for i := from; i < to; i++ {
		if !tokenChars[buf[i]] {
			return i
		}
	}
	return -1
}

// CTL per RFC 5234: 0x00-0x1F and DEL.
var ctlChars = func() (t [256]bool) {
	for c := 0; c < 0x20; c++ {
		t[c] = true
	}
	t[0x7f] = true
	return t
}()

// firstCTL returns the offset of the first control byte in buf[from:to], or NotFound.
// HTAB is skipped when allowTab is set, as field values permit it.
func firstCTL(buf []byte, from, to int, allowTab bool) int {
	for i := from; i < to; i++ {
		if c := buf[i]; ctlChars[c] && (c != '\t' || !allowTab) {
			return i
		}
	}
	return NotFound
}

// trimOWS narrows [from, to) past leading and trailing SP and HTAB.
func trimOWS(buf []byte, from, to int) Span {
	for from < to && (buf[from] == ' ' || buf[from] == '\t') {
		from++
	}
	for to > from && (buf[to-1] == ' ' || buf[to-1] == '\t') {
		to--
	}
	return Span{Off: from, Len: to - from}
}

// EqualFold is an ASCII case-insensitive comparison of b and s. It does not allocate.
func EqualFold(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := 0; i < len(b); i++ {
		cb, cs := b[i], s[i]
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if cs >= 'A' && cs <= 'Z' {
			cs += 'a' - 'A'
		}
		if cb != cs {
			return false
		}
	}
	return true
}
