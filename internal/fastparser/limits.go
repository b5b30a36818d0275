package fastparser

const (
	defaultMaxHeaders      = 100
	defaultMaxTextLength   = 8192
	defaultMaxEntityLength = 10 << 20

	// versions are short by construction; anything longer is garbage
	maxVersionLength = 16
)

// Limits bounds what a parser accepts. Exceeding any of them is a ParseError,
// never a silent truncation. Zero fields take the defaults.
type Limits struct {
	MaxHeaders      int   // header fields per request
	MaxTextLength   int   // method, target, header name and header value, each
	MaxEntityLength int64 // decoded entity bytes
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return PrepareLimits(Limits{})
}

// PrepareLimits fills zero or negative fields with defaults.
func PrepareLimits(l Limits) Limits {
	if l.MaxHeaders < 1 {
		l.MaxHeaders = defaultMaxHeaders
	}
	if l.MaxTextLength < 1 {
		l.MaxTextLength = defaultMaxTextLength
	}
	if l.MaxEntityLength < 1 {
		l.MaxEntityLength = defaultMaxEntityLength
	}
	return l
}
