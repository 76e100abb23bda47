package router

import "strings"

// discoverSlots resolves the parallel slots visible to a route. Levels are
// visited from the root down to the route's own directory while a running
// layout-chain index tracks which layout is active; each recorded slot is
// tagged with that index so the renderer knows which layout receives the
// slot as a prop.
//
// A slot directory must contain a page, a fallback ("default") or a nested
// interception rule to be recorded at all. Slots found at ancestor levels
// keep only their fallback: the page handle is forced empty, because an
// inherited slot never reuses an ancestor's page. When the same slot name
// appears at several levels the closest one wins and the ancestor entry is
// discarded.
func discoverSlots(sc *scanContext, rd routeDir) ([]ParallelSlot, error) {
	lv := levels(rd.rel)

	layoutIdx := -1
	var slots []ParallelSlot
	index := map[string]int{}

	for i, level := range lv {
		if sc.hasFile(level, "layout") {
			layoutIdx++
		}

		for _, name := range sc.dir(level).subdirs {
			if !strings.HasPrefix(name, "@") || len(name) == 1 {
				continue
			}
			slotRel := joinRel(level, name)

			intercepts, err := resolveIntercepts(sc, slotRel, rd.rel, true)
			if err != nil {
				return nil, err
			}

			slot := ParallelSlot{
				Name:        name[1:],
				Page:        sc.file(slotRel, "page"),
				Default:     sc.file(slotRel, "default"),
				Layout:      sc.file(slotRel, "layout"),
				Loading:     sc.file(slotRel, "loading"),
				Error:       sc.file(slotRel, "error"),
				Intercepts:  intercepts,
				LayoutIndex: layoutIdx,
				dir:         slotRel,
			}
			if slot.Page == "" && slot.Default == "" && len(slot.Intercepts) == 0 {
				continue
			}
			if i < len(lv)-1 {
				slot.Page = ""
			}

			if j, ok := index[slot.Name]; ok {
				slots[j] = slot
			} else {
				index[slot.Name] = len(slots)
				slots = append(slots, slot)
			}
		}
	}

	return slots, nil
}

// synthGroup accumulates the nested slot pages discovered for one relative
// sub-path across all of a route's slots.
type synthGroup struct {
	tokens []Token
	pages  map[string]string // slot name -> nested page file
}

// synthesizeSubRoutes creates additional routes for pages nested inside
// slot directories that have no top-level counterpart. Only slots owned
// at the route's own level synthesize: an inherited slot already produced
// its sub-routes at the level that declared it, and re-anchoring those
// sub-paths at a descendant's pattern would fabricate routes the tree
// never declared. The synthetic route's primary page is the parent
// directory's fallback file (the children position renders the fallback,
// since the sub-path only supplies content for the slots that match);
// every slot is cloned from the parent with its page overridden where the
// slot declared the nested page. Layout chain, templates and boundaries
// are inherited unchanged. A sub-path whose pattern collides with an
// already-known pattern, or whose combined pattern fails validation, is
// skipped.
func synthesizeSubRoutes(sc *scanContext, routes []*Route, known map[string]bool) []*Route {
	var synth []*Route

	for _, r := range routes {
		if r.Kind != RoutePage || len(r.Slots) == 0 {
			continue
		}

		groups := map[string]*synthGroup{}
		var order []string

		for _, slot := range r.Slots {
			if parentRel(slot.dir) != r.dir {
				continue
			}
			collectNestedPages(sc, slot, groups, &order)
		}

		for _, key := range order {
			g := groups[key]
			pattern, err := r.Pattern.append(g.tokens)
			if err != nil {
				continue
			}
			ps := pattern.String()
			if known[ps] {
				continue
			}
			known[ps] = true

			nr := &Route{
				Kind:        RoutePage,
				Pattern:     pattern,
				Page:        sc.file(r.dir, "default"),
				Layouts:     r.Layouts,
				Templates:   r.Templates,
				Boundaries:  r.Boundaries,
				Intercepts:  r.Intercepts,
				Synthesized: true,
				dir:         r.dir,
			}
			nr.Slots = make([]ParallelSlot, len(r.Slots))
			copy(nr.Slots, r.Slots)
			for i := range nr.Slots {
				if page, ok := g.pages[nr.Slots[i].Name]; ok {
					nr.Slots[i].Page = page
				}
			}
			synth = append(synth, nr)
		}
	}

	return append(routes, synth...)
}

// collectNestedPages walks one slot's subdirectory tree with an explicit
// stack, grouping nested pages by their URL tokens relative to the slot
// root. Interception markers, nested slots and private directories are
// skipped; transparent groups are descended but contribute no token.
func collectNestedPages(sc *scanContext, slot ParallelSlot, groups map[string]*synthGroup, order *[]string) {
	type frame struct {
		rel    string
		tokens []Token
	}

	stack := []frame{{rel: slot.dir}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.rel != slot.dir {
			if page := sc.file(f.rel, "page"); page != "" && len(f.tokens) > 0 {
				key := tokensKey(f.tokens)
				g, ok := groups[key]
				if !ok {
					g = &synthGroup{tokens: f.tokens, pages: map[string]string{}}
					groups[key] = g
					*order = append(*order, key)
				}
				if _, dup := g.pages[slot.Name]; !dup {
					g.pages[slot.Name] = page
				}
			}
		}

		info := sc.dir(f.rel)
		for i := len(info.subdirs) - 1; i >= 0; i-- {
			name := info.subdirs[i]
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
				continue
			}
			seg := ClassifySegment(name)
			if seg.Kind.IsIntercept() || seg.Kind == SegmentSlot {
				continue
			}
			tokens := make([]Token, len(f.tokens), len(f.tokens)+1)
			copy(tokens, f.tokens)
			if tok, ok := segmentToken(seg); ok {
				tokens = append(tokens, tok)
			}
			stack = append(stack, frame{rel: joinRel(f.rel, name), tokens: tokens})
		}
	}
}

func tokensKey(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, "/")
}
