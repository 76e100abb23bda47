package router

import "strings"

// SegmentKind classifies one filesystem path segment.
type SegmentKind int

const (
	// SegmentStatic is a plain literal segment.
	SegmentStatic SegmentKind = iota

	// SegmentDynamic is a named dynamic segment: [id]
	SegmentDynamic

	// SegmentCatchAll consumes one or more trailing segments: [...slug]
	SegmentCatchAll

	// SegmentOptionalCatchAll consumes zero or more trailing segments: [[...slug]]
	SegmentOptionalCatchAll

	// SegmentGroup is a transparent route group: (marketing)
	SegmentGroup

	// SegmentSlot is a named parallel slot owner: @modal
	SegmentSlot

	// SegmentInterceptSame intercepts at the same level: (.)name
	SegmentInterceptSame

	// SegmentInterceptOneUp intercepts one level up: (..)name
	SegmentInterceptOneUp

	// SegmentInterceptTwoUp intercepts two levels up: (..)(..)name
	SegmentInterceptTwoUp

	// SegmentInterceptRoot intercepts from the root: (...)name
	SegmentInterceptRoot
)

// String returns a short tag for the kind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentStatic:
		return "static"
	case SegmentDynamic:
		return "dynamic"
	case SegmentCatchAll:
		return "catch-all"
	case SegmentOptionalCatchAll:
		return "optional-catch-all"
	case SegmentGroup:
		return "group"
	case SegmentSlot:
		return "slot"
	case SegmentInterceptSame:
		return "intercept-same"
	case SegmentInterceptOneUp:
		return "intercept-one-up"
	case SegmentInterceptTwoUp:
		return "intercept-two-up"
	case SegmentInterceptRoot:
		return "intercept-root"
	}
	return "unknown"
}

// IsIntercept reports whether the kind is one of the interception markers.
func (k SegmentKind) IsIntercept() bool {
	switch k {
	case SegmentInterceptSame, SegmentInterceptOneUp, SegmentInterceptTwoUp, SegmentInterceptRoot:
		return true
	}
	return false
}

// Segment is one classified path token.
type Segment struct {
	// Kind is the classification of the segment.
	Kind SegmentKind

	// Raw is the original directory-name text.
	Raw string

	// Name carries the kind-specific payload: the parameter name for
	// dynamic kinds, the slot name for slots, the group label for groups,
	// and the remainder after the marker for interception kinds.
	Name string
}

// interceptPrefixes are tested longest-first so that "(...)" and
// "(..)(..)" are never misread as "(..)" plus a remainder.
var interceptPrefixes = []struct {
	prefix string
	kind   SegmentKind
}{
	{"(...)", SegmentInterceptRoot},
	{"(..)(..)", SegmentInterceptTwoUp},
	{"(..)", SegmentInterceptOneUp},
	{"(.)", SegmentInterceptSame},
}

// ClassifySegment classifies one path segment. First match wins:
// interception markers (with a non-empty remainder), transparent groups,
// slot owners, optional catch-all, catch-all, dynamic, then static.
// Malformed syntax such as unbalanced brackets falls through to static:
// under-matching a misspelled directory is cheaper than failing the build.
func ClassifySegment(seg string) Segment {
	for _, ip := range interceptPrefixes {
		if rest, ok := strings.CutPrefix(seg, ip.prefix); ok && rest != "" {
			return Segment{Kind: ip.kind, Raw: seg, Name: rest}
		}
	}

	if len(seg) >= 2 && seg[0] == '(' && seg[len(seg)-1] == ')' {
		return Segment{Kind: SegmentGroup, Raw: seg, Name: seg[1 : len(seg)-1]}
	}

	if name, ok := strings.CutPrefix(seg, "@"); ok && name != "" {
		return Segment{Kind: SegmentSlot, Raw: seg, Name: name}
	}

	// Optional catch-all must be tested before catch-all: both begin with
	// brackets and dots.
	if inner, ok := cutWrapped(seg, "[[...", "]]"); ok {
		return Segment{Kind: SegmentOptionalCatchAll, Raw: seg, Name: inner}
	}
	if inner, ok := cutWrapped(seg, "[...", "]"); ok {
		return Segment{Kind: SegmentCatchAll, Raw: seg, Name: inner}
	}
	if inner, ok := cutWrapped(seg, "[", "]"); ok {
		return Segment{Kind: SegmentDynamic, Raw: seg, Name: inner}
	}

	return Segment{Kind: SegmentStatic, Raw: seg, Name: seg}
}

// ClassifyPath classifies every segment of a slash-separated relative path.
func ClassifyPath(rel string) []Segment {
	if rel == "" || rel == "." {
		return nil
	}
	parts := strings.Split(rel, "/")
	segs := make([]Segment, len(parts))
	for i, p := range parts {
		segs[i] = ClassifySegment(p)
	}
	return segs
}

// cutWrapped extracts the text between prefix and suffix. The inner text
// must be non-empty and must not contain further brackets, otherwise the
// segment is left for a later (or the static) rule.
func cutWrapped(seg, prefix, suffix string) (string, bool) {
	inner, ok := strings.CutPrefix(seg, prefix)
	if !ok {
		return "", false
	}
	inner, ok = strings.CutSuffix(inner, suffix)
	if !ok || inner == "" {
		return "", false
	}
	if strings.ContainsAny(inner, "[]") {
		return "", false
	}
	return inner, true
}
