// Package routepath normalizes request paths before they are matched
// against a route table.
//
// Normalization is deliberately forgiving: matching should under-match on
// malformed input rather than fail. Percent-escapes that cannot be decoded
// are matched verbatim, and the only structural change applied is removal
// of a single trailing slash (the root path "/" is left alone).
package routepath

import (
	"net/url"
	"strings"
)

// NormalizeResult contains the result of request-path normalization.
type NormalizeResult struct {
	// Path is the normalized path (without query string).
	Path string

	// Query is the query string (without leading "?").
	Query string

	// Changed indicates the path was modified during normalization.
	Changed bool
}

// Normalize prepares a request path for matching:
//   - the query string is split off and preserved verbatim;
//   - a missing leading slash is added;
//   - a single trailing slash is removed, except for the root "/".
//
// Percent-decoding is segment-level and handled by DecodeSegment; Normalize
// never decodes, so the segment boundaries of the original request survive.
func Normalize(input string) NormalizeResult {
	path, query := SplitPathAndQuery(input)
	original := path

	if path == "" {
		return NormalizeResult{Path: "/", Query: query, Changed: true}
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}

	return NormalizeResult{
		Path:    path,
		Query:   query,
		Changed: path != original,
	}
}

// SplitPathAndQuery splits a request target into path and query components.
// The query is returned without the leading "?".
func SplitPathAndQuery(input string) (path, query string) {
	path, query, _ = strings.Cut(input, "?")
	return path, query
}

// Split breaks a normalized path into its "/"-separated segments.
// The root path yields no segments.
func Split(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// DecodeSegment percent-decodes a single path segment. On any decode
// failure the raw segment is returned unchanged: the matcher compares
// against the undecoded text rather than rejecting the request.
func DecodeSegment(segment string) string {
	if !strings.Contains(segment, "%") {
		return segment
	}
	decoded, err := url.PathUnescape(segment)
	if err != nil {
		return segment
	}
	return decoded
}

// DecodeSegments decodes every segment of a path individually, so an
// encoded slash (%2F) inside a segment can never change the segment count.
func DecodeSegments(path string) []string {
	segments := Split(path)
	if len(segments) == 0 {
		return nil
	}
	result := make([]string, len(segments))
	for i, seg := range segments {
		result[i] = DecodeSegment(seg)
	}
	return result
}
