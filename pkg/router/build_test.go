package router

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTree creates an app directory populated with empty convention
// files, given as slash-separated root-relative paths.
func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		writeTreeFile(t, root, f)
	}
	return root
}

func writeTreeFile(t *testing.T, root, rel string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte("export {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func mustBuild(t *testing.T, root string) *RouteTable {
	t.Helper()
	table, err := buildTable(newScanContext(root, nil))
	if err != nil {
		t.Fatalf("buildTable: %v", err)
	}
	return table
}

func buildTree(t *testing.T, files ...string) *RouteTable {
	t.Helper()
	return mustBuild(t, writeTree(t, files...))
}

func patterns(table *RouteTable) []string {
	out := make([]string, len(table.Routes))
	for i, r := range table.Routes {
		out[i] = r.Pattern.String()
	}
	return out
}

func TestBuildBasicTree(t *testing.T) {
	table := buildTree(t,
		"layout.tsx",
		"page.tsx",
		"about/page.tsx",
		"blog/[slug]/page.tsx",
		"docs/[...rest]/page.tsx",
		"opt/[[...path]]/page.tsx",
		"api/users/route.ts",
	)

	want := []string{
		"/",
		"/about",
		"/api/users",
		"/blog/:slug",
		"/docs/rest+",
		"/opt/path*",
	}
	got := patterns(table)
	if len(got) != len(want) {
		t.Fatalf("patterns = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("patterns = %v, want %v", got, want)
		}
	}

	if r := table.Lookup("/api/users"); r == nil || r.Kind != RouteHandler || r.Handler == "" {
		t.Errorf("handler route = %+v", r)
	}
	if r := table.Lookup("/blog/:slug"); r == nil || r.Kind != RoutePage || r.Page != "blog/[slug]/page.tsx" {
		t.Errorf("page route = %+v", r)
	}
}

func TestBuildGroupTransparency(t *testing.T) {
	grouped := buildTree(t, "(marketing)/features/page.tsx")
	plain := buildTree(t, "features/page.tsx")

	if len(grouped.Routes) != 1 || len(plain.Routes) != 1 {
		t.Fatalf("routes = %d and %d, want 1 and 1", len(grouped.Routes), len(plain.Routes))
	}
	if g, p := grouped.Routes[0].Pattern.String(), plain.Routes[0].Pattern.String(); g != p || g != "/features" {
		t.Errorf("patterns %q and %q, want /features", g, p)
	}

	for _, r := range grouped.Routes {
		for _, tok := range r.Pattern.Tokens {
			if tok.Kind == TokenLiteral && len(tok.Text) > 0 && tok.Text[0] == '(' {
				t.Errorf("pattern %s contains parenthesized token %q", r.Pattern.String(), tok.Text)
			}
		}
	}
}

func TestBuildDuplicatePatternLastWins(t *testing.T) {
	table := buildTree(t,
		"(a)/x/page.tsx",
		"(b)/x/page.tsx",
	)
	if len(table.Routes) != 1 {
		t.Fatalf("routes = %d, want 1 (dedup)", len(table.Routes))
	}
	// Lexical walk order visits (a) before (b); the last discovered wins.
	if got := table.Routes[0].Page; got != "(b)/x/page.tsx" {
		t.Errorf("page = %q, want (b)/x/page.tsx", got)
	}
}

func TestBuildDuplicateParamFails(t *testing.T) {
	root := writeTree(t, "blog/[id]/comments/[id]/page.tsx")
	_, err := buildTable(newScanContext(root, nil))
	if err == nil {
		t.Fatal("expected duplicate-parameter error")
	}
}

func TestBuildLayoutChain(t *testing.T) {
	table := buildTree(t,
		"layout.tsx",
		"error.tsx",
		"blog/layout.tsx",
		"blog/not-found.tsx",
		"blog/[slug]/page.tsx",
	)

	r := table.Lookup("/blog/:slug")
	if r == nil {
		t.Fatal("route not found")
	}

	chain := r.Layouts
	if chain.Len() != 2 {
		t.Fatalf("chain length = %d, want 2", chain.Len())
	}
	if chain.Layouts[0] != "layout.tsx" || chain.Layouts[1] != "blog/layout.tsx" {
		t.Errorf("layouts = %v", chain.Layouts)
	}
	if chain.Errors[0] != "error.tsx" || chain.Errors[1] != "" {
		t.Errorf("errors = %v", chain.Errors)
	}
	if chain.NotFounds[0] != "" || chain.NotFounds[1] != "blog/not-found.tsx" {
		t.Errorf("notFounds = %v", chain.NotFounds)
	}
	if chain.Depths[0] != 0 || chain.Depths[1] != 1 {
		t.Errorf("depths = %v", chain.Depths)
	}
	if len(chain.Layouts) != len(chain.Errors) || len(chain.Errors) != len(chain.NotFounds) || len(chain.NotFounds) != len(chain.Depths) {
		t.Error("parallel chain slices have unequal lengths")
	}
}

func TestBuildGroupDepth(t *testing.T) {
	// A layout inside a transparent group sits at the same URL depth as
	// its parent.
	table := buildTree(t,
		"layout.tsx",
		"(shop)/layout.tsx",
		"(shop)/cart/page.tsx",
	)

	r := table.Lookup("/cart")
	if r == nil {
		t.Fatal("route not found")
	}
	if got := r.Layouts.Depths; len(got) != 2 || got[0] != 0 || got[1] != 0 {
		t.Errorf("depths = %v, want [0 0]", got)
	}
}

func TestBuildNearestBoundaries(t *testing.T) {
	table := buildTree(t,
		"loading.tsx",
		"blog/loading.tsx",
		"blog/forbidden.tsx",
		"blog/[slug]/error.tsx",
		"blog/[slug]/page.tsx",
		"other/page.tsx",
	)

	r := table.Lookup("/blog/:slug")
	if r == nil {
		t.Fatal("route not found")
	}
	b := r.Boundaries
	if b.Loading != "blog/loading.tsx" {
		t.Errorf("loading = %q", b.Loading)
	}
	if b.Error != "blog/[slug]/error.tsx" {
		t.Errorf("error = %q", b.Error)
	}
	if b.Forbidden != "blog/forbidden.tsx" {
		t.Errorf("forbidden = %q", b.Forbidden)
	}
	if b.NotFound != "" || b.Unauthorized != "" {
		t.Errorf("unexpected boundaries: %+v", b)
	}

	other := table.Lookup("/other")
	if other.Boundaries.Loading != "loading.tsx" {
		t.Errorf("other loading = %q", other.Boundaries.Loading)
	}
}

func TestBuildTemplates(t *testing.T) {
	table := buildTree(t,
		"template.tsx",
		"blog/template.tsx",
		"blog/[slug]/page.tsx",
	)
	r := table.Lookup("/blog/:slug")
	if len(r.Templates) != 2 || r.Templates[0] != "template.tsx" || r.Templates[1] != "blog/template.tsx" {
		t.Errorf("templates = %v", r.Templates)
	}
}

func TestBuildPageShadowsHandler(t *testing.T) {
	table := buildTree(t,
		"api/page.tsx",
		"api/route.ts",
	)
	r := table.Lookup("/api")
	if r == nil || r.Kind != RoutePage || r.Page == "" || r.Handler != "" {
		t.Errorf("route = %+v, want page kind", r)
	}
}

func TestBuildExtensionPreference(t *testing.T) {
	table := buildTree(t,
		"x/page.tsx",
		"x/page.js",
	)
	if r := table.Lookup("/x"); r.Page != "x/page.tsx" {
		t.Errorf("page = %q, want x/page.tsx (.tsx precedes .js)", r.Page)
	}
}

func TestBuildSkipsPrivateAndDotDirs(t *testing.T) {
	table := buildTree(t,
		"page.tsx",
		"_private/page.tsx",
		".git/page.tsx",
	)
	if len(table.Routes) != 1 {
		t.Errorf("patterns = %v, want only /", patterns(table))
	}
}

func TestBuildMissingRoot(t *testing.T) {
	table := mustBuild(t, filepath.Join(t.TempDir(), "does-not-exist"))
	if len(table.Routes) != 0 {
		t.Errorf("routes = %d, want 0", len(table.Routes))
	}
}

func TestBuildDeterminism(t *testing.T) {
	root := writeTree(t,
		"layout.tsx",
		"page.tsx",
		"blog/[slug]/page.tsx",
		"feed/page.tsx",
		"feed/default.tsx",
		"feed/@modal/default.tsx",
		"feed/@modal/photos/[id]/page.tsx",
		"docs/[...rest]/page.tsx",
	)

	a := mustBuild(t, root)
	b := mustBuild(t, root)

	pa, pb := patterns(a), patterns(b)
	if len(pa) != len(pb) {
		t.Fatalf("route counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("order differs at %d: %q vs %q", i, pa[i], pb[i])
		}
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("fingerprints differ: %d vs %d", a.Fingerprint(), b.Fingerprint())
	}
}
