package fastparser

import "encoding/binary"

// NotFound is returned by ScanToByte when the target byte does not occur in the scanned range.
// Callers treat it as "need more input", not as an error.
const NotFound = -1

const (
	lowBits  uint64 = 0x7f7f7f7f7f7f7f7f
	highBits uint64 = 0x8080808080808080
	oneBytes uint64 = 0x0101010101010101
)

// ScanToByte returns the offset of the first occurrence of target in buf[start:end],
// or NotFound.
//
// The range is scanned eight bytes at a time. Each word is XORed with target replicated
// into every byte, so matching bytes become zero. Adding 0x7f to the low seven bits of
// every byte sets a byte's top bit unless those bits were zero; the additions never carry
// into the neighbouring byte, so a real match is never hidden. A byte equal to target^0x80
// also leaves its top bit clear: such false positives are verified and skipped. The final
// partial word is scanned byte by byte.
func ScanToByte(buf []byte, start, end int, target byte) int {
	if end > len(buf) {
		end = len(buf)
	}
	if start < 0 {
		start = 0
	}

	mask := oneBytes * uint64(target)
	i := start
	for ; end-i >= 8; i += 8 {
		x := binary.BigEndian.Uint64(buf[i:]) ^ mask
		flags := ((x & lowBits) + lowBits) & highBits
		if flags == highBits {
			continue
		}
		if j := firstMatch(buf[i:i+8], flags^highBits, target); j >= 0 {
			return i + j
		}
	}

	for ; i < end; i++ {
		if buf[i] == target {
			return i
		}
	}
	return NotFound
}

// firstMatch resolves the candidate bits of one word, lowest offset first, and returns the
// offset of the first byte that really equals target, or -1 if all candidates were false
// positives.
func firstMatch(word []byte, candidates uint64, target byte) int {
	for candidates != 0 {
		j := firstCandidate(candidates)
		if word[j] == target {
			return j
		}
		candidates &^= 0x80 << (56 - 8*uint(j))
	}
	return -1
}

// firstCandidate returns the offset (0..7) of the highest-order byte with its candidate
// bit set. Big-endian loads put the lowest offset in the highest-order byte.
// candidates must be non-zero.
func firstCandidate(candidates uint64) int {
	n := 0
	if candidates>>32 == 0 {
		n += 4
		candidates <<= 32
	}
	if candidates>>48 == 0 {
		n += 2
		candidates <<= 16
	}
	if candidates>>56 == 0 {
		n++
	}
	return n
}
