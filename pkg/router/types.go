package router

// RouteKind distinguishes page routes from data-handler routes.
type RouteKind string

const (
	// RoutePage is a route backed by a page file.
	RoutePage RouteKind = "page"

	// RouteHandler is a route backed by a data-handler ("route") file.
	// Handler routes carry no layout chain, slots or boundaries.
	RouteHandler RouteKind = "handler"
)

// BoundarySet holds the boundary files resolved for a route itself: the
// nearest file of each kind found walking from the route's directory up to
// the root. Each entry is a root-relative file path, empty when absent.
type BoundarySet struct {
	Loading      string `json:"loading,omitempty"`
	Error        string `json:"error,omitempty"`
	NotFound     string `json:"notFound,omitempty"`
	Forbidden    string `json:"forbidden,omitempty"`
	Unauthorized string `json:"unauthorized,omitempty"`
}

// LayoutChain is the root-to-leaf layout composition of a route. The three
// slices are parallel and depth-aligned: Errors[i] and NotFounds[i] are the
// boundary files found at the same directory level as Layouts[i] (empty
// when that level has none), and Depths[i] is the cumulative URL-segment
// depth at that level. Depths is non-decreasing; transparent segments do
// not increment it.
type LayoutChain struct {
	Layouts   []string `json:"layouts,omitempty"`
	Errors    []string `json:"errors,omitempty"`
	NotFounds []string `json:"notFounds,omitempty"`
	Depths    []int    `json:"depths,omitempty"`
}

// Len returns the number of layouts in the chain.
func (c LayoutChain) Len() int { return len(c.Layouts) }

// InterceptKind is the directory-distance convention of an interception
// marker.
type InterceptKind string

const (
	// InterceptSameLevel intercepts a sibling route: (.)name
	InterceptSameLevel InterceptKind = "same"

	// InterceptOneUp intercepts one directory level up: (..)name
	InterceptOneUp InterceptKind = "one-up"

	// InterceptTwoUp intercepts two directory levels up: (..)(..)name
	InterceptTwoUp InterceptKind = "two-up"

	// InterceptFromRoot intercepts from the scan root: (...)name
	InterceptFromRoot InterceptKind = "root"
)

// InterceptingRoute overrides the normal target of a pattern when reached
// via its owning route. The target pattern is computed once at discovery
// time from the marker's distance convention; the renderer consults it
// when handling a request to the target, it is never matched as a route of
// its own.
type InterceptingRoute struct {
	// Kind is the distance convention of the marker directory.
	Kind InterceptKind `json:"kind"`

	// Target is the absolute pattern being intercepted.
	Target Pattern `json:"target"`

	// Page is the root-relative path of the intercepting page file.
	Page string `json:"page"`
}

// ParallelSlot is a named secondary render target discovered at one
// directory level of a route. Slots declared at ancestor levels are
// inherited with Page forced empty: a descendant renders only the
// ancestor slot's fallback.
type ParallelSlot struct {
	// Name is the slot name without the "@" marker.
	Name string `json:"name"`

	// Page is the slot's own page file; empty for inherited slots.
	Page string `json:"page,omitempty"`

	// Default is the slot's fallback file, rendered when the slot has no
	// page for the current route.
	Default string `json:"default,omitempty"`

	// Layout, Loading and Error are the slot's own boundary files.
	Layout  string `json:"layout,omitempty"`
	Loading string `json:"loading,omitempty"`
	Error   string `json:"error,omitempty"`

	// Intercepts are the interception rules nested under the slot.
	Intercepts []InterceptingRoute `json:"intercepts,omitempty"`

	// LayoutIndex is the index into the route's layout chain of the layout
	// active at the slot's directory, -1 when no layout precedes it. The
	// renderer passes the slot to that layout as a prop.
	LayoutIndex int `json:"layoutIndex"`

	// dir is the slot directory relative to the scan root, used for
	// sub-route synthesis.
	dir string
}

// Route is one resolvable endpoint of the table.
type Route struct {
	// Kind says whether Page or Handler is the meaningful handle.
	Kind RouteKind `json:"kind"`

	// Pattern is the URL shape the route matches.
	Pattern Pattern `json:"pattern"`

	// Page is the root-relative page file path (page routes).
	Page string `json:"page,omitempty"`

	// Handler is the root-relative data-handler file path (handler routes).
	Handler string `json:"handler,omitempty"`

	// Layouts is the root-to-leaf layout chain with aligned boundaries.
	Layouts LayoutChain `json:"layouts,omitempty"`

	// Templates are the template files found at each level from root to
	// the route's directory, outermost first.
	Templates []string `json:"templates,omitempty"`

	// Boundaries are the nearest boundary files for the route itself.
	Boundaries BoundarySet `json:"boundaries,omitempty"`

	// Slots are the parallel slots visible to the route, ordered by the
	// level at which each slot was first discovered.
	Slots []ParallelSlot `json:"slots,omitempty"`

	// Intercepts are interception rules declared directly in the route's
	// own directory (slot-nested rules live on the slot).
	Intercepts []InterceptingRoute `json:"intercepts,omitempty"`

	// Synthesized marks routes created by slot sub-route synthesis rather
	// than by a page file of their own.
	Synthesized bool `json:"synthesized,omitempty"`

	// dir is the route's directory relative to the scan root.
	dir string
}

// Params reports the route's parameter names in pattern order.
func (r *Route) Params() []string { return r.Pattern.Params }

// RouteTable is the built, precedence-ordered route collection for one
// root directory. It is immutable once published; rebuilding produces a
// new instance.
type RouteTable struct {
	// Root is the directory the table was built from.
	Root string `json:"root"`

	// Routes is the precedence-ordered route list.
	Routes []*Route `json:"routes"`

	fingerprint uint64
}

// Lookup returns the route with the exact pattern string, or nil.
func (t *RouteTable) Lookup(pattern string) *Route {
	for _, r := range t.Routes {
		if r.Pattern.String() == pattern {
			return r
		}
	}
	return nil
}
