package router

// discoverChains walks from the root down to the route's directory and
// collects the layout chain. A level contributes an entry only when it
// carries a layout file; the error and not-found files found at that same
// level are appended in parallel (possibly empty), together with the
// cumulative URL-segment depth, so a renderer can interleave boundaries
// with layouts from outermost to innermost. Template files are collected
// at every level regardless of layouts.
func discoverChains(sc *scanContext, rd routeDir) (LayoutChain, []string) {
	var chain LayoutChain
	var templates []string

	depth := 0
	for i, level := range levels(rd.rel) {
		// levels[0] is the root; levels[i] for i>0 is reached through
		// segments[i-1], which increments the depth only when it
		// contributes a URL token.
		if i > 0 {
			if _, ok := segmentToken(rd.segments[i-1]); ok {
				depth++
			}
		}

		if layout := sc.file(level, "layout"); layout != "" {
			chain.Layouts = append(chain.Layouts, layout)
			chain.Errors = append(chain.Errors, sc.file(level, "error"))
			chain.NotFounds = append(chain.NotFounds, sc.file(level, "not-found"))
			chain.Depths = append(chain.Depths, depth)
		}

		if tmpl := sc.file(level, "template"); tmpl != "" {
			templates = append(templates, tmpl)
		}
	}

	return chain, templates
}

// nearestBoundaries resolves the boundary files for the route itself: for
// each kind, the first file found walking from the route's own directory
// upward to the root.
func nearestBoundaries(sc *scanContext, rel string) BoundarySet {
	return BoundarySet{
		Loading:      nearestFile(sc, rel, "loading"),
		Error:        nearestFile(sc, rel, "error"),
		NotFound:     nearestFile(sc, rel, "not-found"),
		Forbidden:    nearestFile(sc, rel, "forbidden"),
		Unauthorized: nearestFile(sc, rel, "unauthorized"),
	}
}

func nearestFile(sc *scanContext, rel, stem string) string {
	for {
		if f := sc.file(rel, stem); f != "" {
			return f
		}
		if rel == "." {
			return ""
		}
		rel = parentRel(rel)
	}
}
