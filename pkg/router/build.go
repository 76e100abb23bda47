package router

import "sort"

// buildTable runs every discovery pass over one scan context and produces
// the finished, precedence-ordered table.
func buildTable(sc *scanContext) (*RouteTable, error) {
	var routes []*Route
	byPattern := map[string]int{}

	for _, rd := range sc.collectRouteDirs() {
		info := sc.dir(rd.rel)

		pattern, err := buildPattern(rd.segments)
		if err != nil {
			if ve, ok := err.(*ValidationError); ok {
				if f := info.files["page"]; f != "" {
					ve.Files = append(ve.Files, f)
				} else if f := info.files["route"]; f != "" {
					ve.Files = append(ve.Files, f)
				}
			}
			return nil, err
		}

		r := &Route{Pattern: pattern, dir: rd.rel}
		if page, ok := info.files["page"]; ok {
			// A page file shadows a data handler in the same directory.
			r.Kind = RoutePage
			r.Page = page
			r.Layouts, r.Templates = discoverChains(sc, rd)
			r.Boundaries = nearestBoundaries(sc, rd.rel)

			slots, err := discoverSlots(sc, rd)
			if err != nil {
				return nil, err
			}
			r.Slots = slots

			intercepts, err := resolveIntercepts(sc, rd.rel, rd.rel, false)
			if err != nil {
				return nil, err
			}
			r.Intercepts = intercepts
		} else {
			r.Kind = RouteHandler
			r.Handler = info.files["route"]
		}

		// Duplicate resolved patterns across distinct source directories:
		// last discovered wins. Walk order is lexical, so the outcome is
		// deterministic.
		ps := pattern.String()
		if j, ok := byPattern[ps]; ok {
			routes[j] = r
		} else {
			byPattern[ps] = len(routes)
			routes = append(routes, r)
		}
	}

	known := make(map[string]bool, len(byPattern))
	for ps := range byPattern {
		known[ps] = true
	}
	routes = synthesizeSubRoutes(sc, routes, known)

	sort.SliceStable(routes, func(i, j int) bool {
		si, sj := routes[i].Pattern.Score(), routes[j].Pattern.Score()
		if si != sj {
			return si < sj
		}
		return routes[i].Pattern.String() < routes[j].Pattern.String()
	})

	table := &RouteTable{Root: sc.root, Routes: routes}
	table.fingerprint = computeFingerprint(table)
	return table, nil
}
