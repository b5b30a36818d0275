package fastparser

// parseHeaders consumes header lines until the blank line that ends the section.
// A line is emitted only once its CRLF is present; its colon offset survives a
// need-more return so that a resumed call only has to look for the CR.
func (p *Parser) parseHeaders(buf []byte) (bool, *ParseError) {
	end := len(buf)
	limit := p.limits.MaxTextLength

	for {
		start := p.pos

		if p.colon < 0 {
			if start >= end {
				return false, nil
			}
			if buf[start] == '\r' {
				if start+1 >= end {
					return false, nil
				}
				if buf[start+1] != '\n' {
					return false, newParseError(ErrMissingLF, start+1, "")
				}
				p.advance(start+2, PhaseDone)
				return true, nil
			}

			colon := ScanToByte(buf, p.hint, end, ':')
			nameEnd := end
			if colon != NotFound {
				nameEnd = colon
			}
			if i := firstNonToken(buf, p.hint, min(nameEnd, start+limit+1)); i >= 0 {
				if buf[i] == '\n' {
					return false, newParseError(ErrInvalidHeader, start, "missing colon")
				}
				return false, newParseError(ErrInvalidHeader, i, "unexpected byte in header name")
			}
			if colon == NotFound {
				if end-start > limit {
					return false, newParseError(ErrHeaderTooLarge, start, "header name")
				}
				p.hint = end
				return false, nil
			}
			if colon == start {
				return false, newParseError(ErrInvalidHeader, start, "empty header name")
			}
			if colon-start > limit {
				return false, newParseError(ErrHeaderTooLarge, start, "header name")
			}
			p.colon = colon
			p.hint = colon + 1
		}

		valueStart := p.colon + 1
		cr := ScanToByte(buf, p.hint, end, '\r')
		stop := end
		if cr != NotFound {
			stop = cr
		}
		if i := firstCTL(buf, p.hint, min(stop, valueStart+limit+1), true); i != NotFound {
			msg := "control byte in header value"
			if buf[i] == '\n' {
				msg = "bare LF in header value"
			}
			return false, newParseError(ErrInvalidHeader, i, msg)
		}
		if stop-valueStart > limit {
			return false, newParseError(ErrHeaderTooLarge, start, "header value")
		}
		if cr == NotFound || cr+1 >= end {
			p.hint = stop
			return false, nil
		}
		if buf[cr+1] != '\n' {
			return false, newParseError(ErrMissingLF, cr+1, "")
		}
		if len(p.headers) >= p.limits.MaxHeaders {
			return false, newParseError(ErrTooManyHeaders, start, "")
		}

		p.headers = append(p.headers, HeaderEntry{
			Name:  Span{Off: start, Len: p.colon - start},
			Value: trimOWS(buf, valueStart, cr),
		})
		p.advance(cr+2, PhaseHeaders)
	}
}
