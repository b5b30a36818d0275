package fastparser

import "encoding/binary"

// tokenGroup holds the fixed tokens of one length, packed left-aligned into words.
type tokenGroup struct {
	n     int
	mask  uint64
	words []uint64
	ids   []TokenID
}

// tokenClass is a set of fixed tokens that all end at the same delimiter.
type tokenClass struct {
	delim  byte
	groups []tokenGroup
}

// Built once at init and never written afterwards. Ids are listed most frequent first;
// groups keep the order in which their first member appears.
var (
	methodClass = newTokenClass(' ',
		MethodGET, MethodPOST, MethodPUT, MethodDELETE, MethodHEAD,
		MethodPATCH, MethodOPTIONS, MethodCONNECT, MethodTRACE)
	versionClass = newTokenClass('\r', VersionHTTP11, VersionHTTP10)
)

func newTokenClass(delim byte, ids ...TokenID) tokenClass {
	c := tokenClass{delim: delim}
	for _, id := range ids {
		name := []byte(id.String())
		if len(name) == 0 || len(name) > 8 {
			panic("fastparser: fixed token must be 1..8 bytes: " + id.String())
		}
		g := c.groupFor(len(name))
		g.words = append(g.words, loadWord(name, 0, len(name)))
		g.ids = append(g.ids, id)
	}
	return c
}

func (c *tokenClass) groupFor(n int) *tokenGroup {
	for i := range c.groups {
		if c.groups[i].n == n {
			return &c.groups[i]
		}
	}
	c.groups = append(c.groups, tokenGroup{n: n, mask: lengthMask(n)})
	return &c.groups[len(c.groups)-1]
}

// lengthMask keeps the first n bytes of a big-endian word.
func lengthMask(n int) uint64 {
	return ^uint64(0) << (64 - 8*uint(n))
}

// loadWord reads up to eight bytes at off as a big-endian word. Bytes past end read as zero.
func loadWord(buf []byte, off, end int) uint64 {
	if end-off >= 8 {
		return binary.BigEndian.Uint64(buf[off:])
	}
	var w uint64
	for k := 0; off+k < end; k++ {
		w |= uint64(buf[off+k]) << (56 - 8*uint(k))
	}
	return w
}

// match resolves the token starting at off and returns it together with the offset of
// the delimiter that ends it. The delimiter offset is NotFound when the available bytes
// do not settle the token yet; match never rejects for lack of input.
//
// Fixed tokens are tried first; otherwise the delimiter is located with ScanToByte starting
// at from, since [off, from) is already known not to contain it.
func (c *tokenClass) match(buf []byte, off, end, from int) (Token, int) {
	w := loadWord(buf, off, end)
	for gi := range c.groups {
		g := &c.groups[gi]
		d := off + g.n
		if d >= end || buf[d] != c.delim {
			continue
		}
		v := w & g.mask
		for k, word := range g.words {
			if v == word {
				return Token{ID: g.ids[k], Span: Span{Off: off, Len: g.n}}, d
			}
		}
	}

	if from < off {
		from = off
	}
	d := ScanToByte(buf, from, end, c.delim)
	if d == NotFound {
		return Token{}, NotFound
	}
	return Token{Span: Span{Off: off, Len: d - off}}, d
}
