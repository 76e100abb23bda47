package routepath

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input   string
		path    string
		query   string
		changed bool
	}{
		{"/", "/", "", false},
		{"", "/", "", true},
		{"/blog", "/blog", "", false},
		{"/blog/", "/blog", "", true},
		{"blog", "/blog", "", true},
		{"/blog/post?id=1", "/blog/post", "id=1", false},
		{"/blog/?page=2", "/blog", "page=2", true},
		{"/?q=x", "/", "q=x", false},
		{"/a/b/c/", "/a/b/c", "", true},
	}

	for _, tt := range tests {
		got := Normalize(tt.input)
		if got.Path != tt.path || got.Query != tt.query || got.Changed != tt.changed {
			t.Errorf("Normalize(%q) = {%q %q %v}, want {%q %q %v}",
				tt.input, got.Path, got.Query, got.Changed, tt.path, tt.query, tt.changed)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"/", nil},
		{"/a", []string{"a"}},
		{"/a/b", []string{"a", "b"}},
		{"/a//b", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		got := Split(tt.path)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Split(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestDecodeSegment(t *testing.T) {
	tests := []struct {
		segment string
		want    string
	}{
		{"plain", "plain"},
		{"hello%20world", "hello world"},
		{"caf%C3%A9", "café"},
		// Invalid escapes fall back to the raw text.
		{"bad%GGescape", "bad%GGescape"},
		{"trailing%2", "trailing%2"},
		// Encoded slash decodes inside the segment; it cannot resplit
		// because splitting happens before decoding.
		{"a%2Fb", "a/b"},
	}

	for _, tt := range tests {
		got := DecodeSegment(tt.segment)
		if got != tt.want {
			t.Errorf("DecodeSegment(%q) = %q, want %q", tt.segment, got, tt.want)
		}
	}
}

func TestDecodeSegments(t *testing.T) {
	got := DecodeSegments("/docs/hello%20world/%E2%9C%93")
	want := []string{"docs", "hello world", "✓"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeSegments = %v, want %v", got, want)
	}

	if got := DecodeSegments("/"); got != nil {
		t.Errorf("DecodeSegments(/) = %v, want nil", got)
	}
}
