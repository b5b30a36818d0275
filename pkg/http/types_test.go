package http

import (
	"testing"
)

func TestHeaders_Get(t *testing.T) {
	h := Headers{
		{Key: "Content-Type", Value: "application/json"},
		{Key: "Host", Value: "example.com"},
		{Key: "X-Custom", Value: "value1"},
	}

	tests := []struct {
		key  string
		want string
	}{
		{"Content-Type", "application/json"},
		{"content-type", "application/json"},
		{"CONTENT-TYPE", "application/json"},
		{"Host", "example.com"},
		{"X-Missing", ""},
	}

	for _, tt := range tests {
		got := h.Get(tt.key)
		if got != tt.want {
			t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestHeaders_Values(t *testing.T) {
	h := Headers{
		{Key: "Accept", Value: "text/html"},
		{Key: "Host", Value: "example.com"},
		{Key: "accept", Value: "application/json"},
	}
	got := h.Values("ACCEPT")
	if len(got) != 2 || got[0] != "text/html" || got[1] != "application/json" {
		t.Errorf("Values(ACCEPT) = %v", got)
	}
	if got := h.Values("Cookie"); got != nil {
		t.Errorf("Values(Cookie) = %v, want nil", got)
	}
}

func TestHeaders_Set(t *testing.T) {
	h := Headers{
		{Key: "Accept", Value: "a"},
		{Key: "Host", Value: "example.com"},
		{Key: "accept", Value: "b"},
		{Key: "X-Last", Value: "z"},
	}
	h.Set("ACCEPT", "c")
	want := Headers{
		{Key: "Accept", Value: "c"},
		{Key: "Host", Value: "example.com"},
		{Key: "X-Last", Value: "z"},
	}
	if len(h) != len(want) {
		t.Fatalf("Set() len = %d, want %d: %v", len(h), len(want), h)
	}
	for i := range want {
		if h[i] != want[i] {
			t.Errorf("h[%d] = %v, want %v", i, h[i], want[i])
		}
	}

	h.Set("X-New", "n")
	if h.Get("X-New") != "n" || len(h) != 4 {
		t.Errorf("Set(X-New) = %v", h)
	}
}

func TestHeaders_AddDel(t *testing.T) {
	var h Headers
	h.Add("Cookie", "a=1")
	h.Add("Host", "x")
	h.Add("cookie", "b=2")
	if len(h.Values("Cookie")) != 2 {
		t.Fatalf("Add() = %v", h)
	}
	h.Del("COOKIE")
	if len(h) != 1 || h[0].Key != "Host" {
		t.Errorf("Del() = %v", h)
	}
}

func TestHeaders_Clone(t *testing.T) {
	var nilHeaders Headers
	if nilHeaders.Clone() != nil {
		t.Error("Clone(nil) != nil")
	}
	h := Headers{{Key: "Host", Value: "a"}}
	c := h.Clone()
	c[0].Value = "b"
	if h[0].Value != "a" {
		t.Error("Clone() shares storage")
	}
}

func TestHeaders_ContentLength(t *testing.T) {
	tests := []struct {
		headers Headers
		want    int64
	}{
		{Headers{{Key: "Content-Length", Value: "42"}}, 42},
		{Headers{{Key: "content-length", Value: " 7 "}}, 7},
		{Headers{{Key: "Content-Length", Value: "x"}}, -1},
		{Headers{{Key: "Content-Length", Value: "-3"}}, -1},
		{nil, -1},
	}
	for _, tt := range tests {
		if got := tt.headers.ContentLength(); got != tt.want {
			t.Errorf("ContentLength(%v) = %d, want %d", tt.headers, got, tt.want)
		}
	}
}

func TestHeaders_IsChunked(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"chunked", true},
		{"gzip, Chunked", true},
		{"chunked, gzip", false},
		{"", false},
	}
	for _, tt := range tests {
		h := Headers{{Key: "Transfer-Encoding", Value: tt.value}}
		if got := h.IsChunked(); got != tt.want {
			t.Errorf("IsChunked(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
