package router

import "strings"

// interceptBase returns the directory the interception distance is
// measured from, given the owning route's directory. A convention that
// reaches above the scan root clamps to the root: a missing ancestor is
// "no contribution", never an error.
func interceptBase(kind SegmentKind, ownerRel string) string {
	switch kind {
	case SegmentInterceptSame:
		return ownerRel
	case SegmentInterceptOneUp:
		return parentRel(ownerRel)
	case SegmentInterceptTwoUp:
		return parentRel(parentRel(ownerRel))
	}
	return "."
}

func interceptKindTag(kind SegmentKind) InterceptKind {
	switch kind {
	case SegmentInterceptSame:
		return InterceptSameLevel
	case SegmentInterceptOneUp:
		return InterceptOneUp
	case SegmentInterceptTwoUp:
		return InterceptTwoUp
	}
	return InterceptFromRoot
}

// resolveIntercepts scans the immediate children of searchRel for
// interception-marker directories and resolves each into its intercepting
// routes. ownerRel is the owning route's directory, which anchors the
// distance conventions. When recurse is set, marker directories are also
// searched for through nested non-marker subdirectories (the slot case);
// otherwise only direct children are considered.
func resolveIntercepts(sc *scanContext, searchRel, ownerRel string, recurse bool) ([]InterceptingRoute, error) {
	var out []InterceptingRoute

	stack := []string{searchRel}
	for len(stack) > 0 {
		rel := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		info := sc.dir(rel)
		for i := len(info.subdirs) - 1; i >= 0; i-- {
			name := info.subdirs[i]
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
				continue
			}
			seg := ClassifySegment(name)
			sub := joinRel(rel, name)
			if seg.Kind.IsIntercept() {
				routes, err := resolveMarker(sc, sub, seg, ownerRel)
				if err != nil {
					return nil, err
				}
				out = append(out, routes...)
				continue
			}
			if recurse {
				stack = append(stack, sub)
			}
		}
	}

	return out, nil
}

// resolveMarker resolves one interception-marker directory: every page
// file nested beneath it becomes an InterceptingRoute whose absolute
// target pattern is computed at discovery time from the marker's distance
// convention. The trailing path between the marker and the page
// contributes URL tokens with transparent and slot segments stripped.
// Marker directories nested inside this one anchor their own rules
// against the same owning route and are resolved independently.
func resolveMarker(sc *scanContext, markerRel string, marker Segment, ownerRel string) ([]InterceptingRoute, error) {
	base := urlTokens(ClassifyPath(normalizeRel(interceptBase(marker.Kind, ownerRel))))

	// The remainder after the marker prefix is itself a segment: usually a
	// literal, but a dynamic name such as "(..)[id]" still parametrizes.
	nameSeg := ClassifySegment(marker.Name)

	var out []InterceptingRoute

	type frame struct {
		rel      string
		trailing []Token
	}
	stack := []frame{{rel: markerRel}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if page := sc.file(f.rel, "page"); page != "" {
			tokens := make([]Token, 0, len(base)+1+len(f.trailing))
			tokens = append(tokens, base...)
			if tok, ok := segmentToken(nameSeg); ok {
				tokens = append(tokens, tok)
			}
			tokens = append(tokens, f.trailing...)

			target, err := newPattern(tokens)
			if err != nil {
				return nil, err
			}
			out = append(out, InterceptingRoute{
				Kind:   interceptKindTag(marker.Kind),
				Target: target,
				Page:   page,
			})
		}

		info := sc.dir(f.rel)
		for i := len(info.subdirs) - 1; i >= 0; i-- {
			name := info.subdirs[i]
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
				continue
			}
			seg := ClassifySegment(name)
			sub := joinRel(f.rel, name)
			if seg.Kind.IsIntercept() {
				nested, err := resolveMarker(sc, sub, seg, ownerRel)
				if err != nil {
					return nil, err
				}
				out = append(out, nested...)
				continue
			}
			trailing := make([]Token, len(f.trailing), len(f.trailing)+1)
			copy(trailing, f.trailing)
			if tok, ok := segmentToken(seg); ok {
				trailing = append(trailing, tok)
			}
			stack = append(stack, frame{rel: sub, trailing: trailing})
		}
	}

	return out, nil
}

// normalizeRel maps the root marker "." to the empty relative path so it
// classifies to no segments.
func normalizeRel(rel string) string {
	if rel == "." {
		return ""
	}
	return rel
}
