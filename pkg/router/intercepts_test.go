package router

import "testing"

func TestInterceptFromRootInSlot(t *testing.T) {
	table := buildTree(t,
		"feed/page.tsx",
		"feed/@modal/default.tsx",
		"feed/@modal/(...)photos/[id]/page.tsx",
		"photos/[id]/page.tsx",
	)

	r := table.Lookup("/feed")
	if r == nil {
		t.Fatal("route not found")
	}
	slot := findSlot(r, "modal")
	if slot == nil {
		t.Fatal("slot not found")
	}
	if len(slot.Intercepts) != 1 {
		t.Fatalf("intercepts = %d, want 1", len(slot.Intercepts))
	}
	ic := slot.Intercepts[0]
	if ic.Kind != InterceptFromRoot {
		t.Errorf("kind = %q, want %q", ic.Kind, InterceptFromRoot)
	}
	if got := ic.Target.String(); got != "/photos/:id" {
		t.Errorf("target = %q, want /photos/:id", got)
	}
	if ic.Page != "feed/@modal/(...)photos/[id]/page.tsx" {
		t.Errorf("page = %q", ic.Page)
	}
	if got := ic.Target.Params; len(got) != 1 || got[0] != "id" {
		t.Errorf("target params = %v, want [id]", got)
	}
}

func TestInterceptSameLevel(t *testing.T) {
	table := buildTree(t,
		"feed/page.tsx",
		"feed/@modal/default.tsx",
		"feed/@modal/(.)photo/page.tsx",
	)

	slot := findSlot(table.Lookup("/feed"), "modal")
	if len(slot.Intercepts) != 1 {
		t.Fatalf("intercepts = %d, want 1", len(slot.Intercepts))
	}
	ic := slot.Intercepts[0]
	if ic.Kind != InterceptSameLevel || ic.Target.String() != "/feed/photo" {
		t.Errorf("intercept = %q %q, want same /feed/photo", ic.Kind, ic.Target.String())
	}
}

func TestInterceptOneUp(t *testing.T) {
	table := buildTree(t,
		"a/b/page.tsx",
		"a/b/@m/default.tsx",
		"a/b/@m/(..)c/page.tsx",
	)

	slot := findSlot(table.Lookup("/a/b"), "m")
	ic := slot.Intercepts[0]
	if ic.Kind != InterceptOneUp || ic.Target.String() != "/a/c" {
		t.Errorf("intercept = %q %q, want one-up /a/c", ic.Kind, ic.Target.String())
	}
}

func TestInterceptTwoUpClampsAtRoot(t *testing.T) {
	// Two levels above a depth-one route would escape the scan root;
	// a missing ancestor contributes nothing rather than failing.
	table := buildTree(t,
		"a/page.tsx",
		"a/@m/default.tsx",
		"a/@m/(..)(..)x/page.tsx",
	)

	slot := findSlot(table.Lookup("/a"), "m")
	ic := slot.Intercepts[0]
	if ic.Kind != InterceptTwoUp || ic.Target.String() != "/x" {
		t.Errorf("intercept = %q %q, want two-up /x", ic.Kind, ic.Target.String())
	}
}

func TestInterceptGroupInBase(t *testing.T) {
	// Transparent groups in the base directory path contribute no tokens
	// to the computed target.
	table := buildTree(t,
		"(main)/feed/page.tsx",
		"(main)/feed/@modal/default.tsx",
		"(main)/feed/@modal/(.)photo/page.tsx",
	)

	slot := findSlot(table.Lookup("/feed"), "modal")
	ic := slot.Intercepts[0]
	if got := ic.Target.String(); got != "/feed/photo" {
		t.Errorf("target = %q, want /feed/photo", got)
	}
}

func TestInterceptTrailingGroupStripped(t *testing.T) {
	table := buildTree(t,
		"feed/page.tsx",
		"feed/@modal/default.tsx",
		"feed/@modal/(...)photos/(detail)/[id]/page.tsx",
	)

	slot := findSlot(table.Lookup("/feed"), "modal")
	ic := slot.Intercepts[0]
	if got := ic.Target.String(); got != "/photos/:id" {
		t.Errorf("target = %q, want /photos/:id", got)
	}
}

func TestInterceptDirectOnRoute(t *testing.T) {
	// A marker directly inside the route's own directory attaches to the
	// route rather than to a slot, and never becomes a primary route.
	table := buildTree(t,
		"feed/page.tsx",
		"feed/(.)promo/page.tsx",
	)

	if got := patterns(table); len(got) != 1 || got[0] != "/feed" {
		t.Fatalf("patterns = %v, want [/feed]", got)
	}
	r := table.Lookup("/feed")
	if len(r.Intercepts) != 1 {
		t.Fatalf("intercepts = %d, want 1", len(r.Intercepts))
	}
	ic := r.Intercepts[0]
	if ic.Kind != InterceptSameLevel || ic.Target.String() != "/feed/promo" {
		t.Errorf("intercept = %q %q", ic.Kind, ic.Target.String())
	}
}

func TestInterceptMultiplePages(t *testing.T) {
	table := buildTree(t,
		"feed/page.tsx",
		"feed/@modal/default.tsx",
		"feed/@modal/(...)photos/page.tsx",
		"feed/@modal/(...)photos/[id]/page.tsx",
	)

	slot := findSlot(table.Lookup("/feed"), "modal")
	if len(slot.Intercepts) != 2 {
		t.Fatalf("intercepts = %d, want 2", len(slot.Intercepts))
	}
	targets := map[string]bool{}
	for _, ic := range slot.Intercepts {
		targets[ic.Target.String()] = true
	}
	if !targets["/photos"] || !targets["/photos/:id"] {
		t.Errorf("targets = %v", targets)
	}
}
