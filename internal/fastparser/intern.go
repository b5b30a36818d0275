package fastparser

// Header names are interned when a head is materialized. A map lookup keyed by
// string(b) does not allocate, so known names cost nothing to turn into strings.

var headerNames = map[string]string{
	"Accept":                    "Accept",
	"Accept-Charset":            "Accept-Charset",
	"Accept-Encoding":           "Accept-Encoding",
	"Accept-Language":           "Accept-Language",
	"Authorization":             "Authorization",
	"Cache-Control":             "Cache-Control",
	"Connection":                "Connection",
	"Content-Encoding":          "Content-Encoding",
	"Content-Language":          "Content-Language",
	"Content-Length":            "Content-Length",
	"Content-Type":              "Content-Type",
	"Cookie":                    "Cookie",
	"Date":                      "Date",
	"Expect":                    "Expect",
	"From":                      "From",
	"Host":                      "Host",
	"If-Match":                  "If-Match",
	"If-Modified-Since":         "If-Modified-Since",
	"If-None-Match":             "If-None-Match",
	"If-Range":                  "If-Range",
	"If-Unmodified-Since":       "If-Unmodified-Since",
	"Keep-Alive":                "Keep-Alive",
	"Sec-Fetch-Dest":            "Sec-Fetch-Dest",
	"Sec-Fetch-Mode":            "Sec-Fetch-Mode",
	"Sec-Fetch-Site":            "Sec-Fetch-Site",
	"Upgrade-Insecure-Requests": "Upgrade-Insecure-Requests",
	"Max-Forwards":              "Max-Forwards",
	"Origin":                    "Origin",
	"Pragma":                    "Pragma",
	"Proxy-Authorization":       "Proxy-Authorization",
	"Range":                     "Range",
	"Referer":                   "Referer",
	"TE":                        "TE",
	"Trailer":                   "Trailer",
	"Transfer-Encoding":         "Transfer-Encoding",
	"Upgrade":                   "Upgrade",
	"User-Agent":                "User-Agent",
	"Via":                       "Via",
	"X-Forwarded-For":           "X-Forwarded-For",
	"X-Forwarded-Host":          "X-Forwarded-Host",
	"X-Forwarded-Proto":         "X-Forwarded-Proto",
	"X-Request-ID":              "X-Request-ID",
	"X-Real-IP":                 "X-Real-IP",
}

// InternHeaderName returns a shared string for known header names and a copy otherwise.
func InternHeaderName(b []byte) string {
	if s, ok := headerNames[string(b)]; ok {
		return s
	}
	return string(b)
}
