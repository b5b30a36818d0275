package fastparser

// parseMethod resolves METHOD SP.
func (p *Parser) parseMethod(buf []byte) (bool, *ParseError) {
	end := len(buf)
	tok, sp := methodClass.match(buf, p.pos, end, p.hint)
	if sp == NotFound {
		if i := firstNonToken(buf, p.hint, end); i >= 0 {
			return false, newParseError(ErrInvalidMethod, i, "unexpected byte in method")
		}
		if end-p.pos > p.limits.MaxTextLength {
			return false, newParseError(ErrInvalidMethod, p.pos, "method too long")
		}
		p.hint = end
		return false, nil
	}

	if !tok.Recognized() {
		if tok.Span.Len == 0 {
			return false, newParseError(ErrInvalidMethod, p.pos, "empty method")
		}
		if i := firstNonToken(buf, p.hint, sp); i >= 0 {
			return false, newParseError(ErrInvalidMethod, i, "unexpected byte in method")
		}
		if tok.Span.Len > p.limits.MaxTextLength {
			return false, newParseError(ErrInvalidMethod, p.pos, "method too long")
		}
	}

	p.line.Method = tok
	p.advance(sp+1, PhaseTarget)
	return true, nil
}

// parseTarget resolves TARGET SP. The target is kept raw; decoding is up to the caller.
func (p *Parser) parseTarget(buf []byte) (bool, *ParseError) {
	end := len(buf)
	sp := ScanToByte(buf, p.hint, end, ' ')
	stop := end
	if sp != NotFound {
		stop = sp
	}
	// Only the bytes a length check would admit are inspected, so the error class
	// does not depend on how the input was split.
	if i := firstCTL(buf, p.hint, min(stop, p.pos+p.limits.MaxTextLength+1), false); i != NotFound {
		msg := "control byte in request target"
		if buf[i] == '\r' || buf[i] == '\n' {
			msg = "line break in request target"
		}
		return false, newParseError(ErrInvalidTarget, i, msg)
	}

	if sp == NotFound {
		if end-p.pos > p.limits.MaxTextLength {
			return false, newParseError(ErrURITooLong, p.pos, "")
		}
		p.hint = end
		return false, nil
	}
	if sp == p.pos {
		return false, newParseError(ErrInvalidTarget, p.pos, "empty request target")
	}
	if sp-p.pos > p.limits.MaxTextLength {
		return false, newParseError(ErrURITooLong, p.pos, "")
	}

	p.line.Target = Span{Off: p.pos, Len: sp - p.pos}
	p.advance(sp+1, PhaseVersion)
	return true, nil
}

// parseVersion resolves VERSION CR. The LF is checked by parseLF.
func (p *Parser) parseVersion(buf []byte) (bool, *ParseError) {
	end := len(buf)
	tok, cr := versionClass.match(buf, p.pos, end, p.hint)
	if cr == NotFound {
		if lf := ScanToByte(buf, p.hint, end, '\n'); lf != NotFound {
			return false, newParseError(ErrInvalidVersion, lf, "request line not terminated by CRLF")
		}
		if end-p.pos > maxVersionLength {
			return false, newParseError(ErrInvalidVersion, p.pos, "version too long")
		}
		p.hint = end
		return false, nil
	}

	if !tok.Recognized() && !validVersion(tok.Bytes(buf)) {
		return false, newParseError(ErrInvalidVersion, p.pos, "malformed version")
	}

	p.line.Version = tok
	p.advance(cr+1, PhaseExpectLF)
	return true, nil
}

// parseLF checks the byte after the request line's CR.
func (p *Parser) parseLF(buf []byte) (bool, *ParseError) {
	if p.pos >= len(buf) {
		return false, nil
	}
	if buf[p.pos] != '\n' {
		return false, newParseError(ErrMissingLF, p.pos, "")
	}
	p.advance(p.pos+1, PhaseHeaders)
	return true, nil
}

// validVersion accepts "HTTP/" followed by digits and dots.
func validVersion(v []byte) bool {
	const prefix = "HTTP/"
	if len(v) <= len(prefix) || len(v) > maxVersionLength || string(v[:len(prefix)]) != prefix {
		return false
	}
	for _, c := range v[len(prefix):] {
		if (c < '0' || c > '9') && c != '.' {
			return false
		}
	}
	return true
}
