// Package router builds an ordered route table from a directory tree that
// follows the app-directory file convention, and matches request paths
// against it.
//
// # File Structure Convention
//
// Routes are defined by convention-named files (page, route, layout,
// template, loading, error, not-found, forbidden, unauthorized, default)
// under a root directory:
//
//	app/
//	├── layout.tsx              → root layout
//	├── page.tsx                → /
//	├── (marketing)/            → route group, invisible in the URL
//	│   └── features/page.tsx   → /features
//	├── blog/
//	│   ├── [slug]/page.tsx     → /blog/:slug
//	│   └── [...rest]/page.tsx  → /blog/rest+
//	├── docs/
//	│   └── [[...path]]/page.tsx → /docs/path*
//	├── feed/
//	│   ├── page.tsx            → /feed
//	│   └── @modal/             → parallel slot "modal"
//	│       ├── default.tsx     → slot fallback
//	│       └── (...)photos/    → intercepts /photos/... from root
//	│           └── [id]/page.tsx
//	└── api/
//	    └── users/route.ts      → /api/users (data handler)
//
// # Directory Name Conventions
//
//	(name)        transparent route group
//	@name         named parallel slot
//	[name]        dynamic segment       → token :name
//	[...name]     catch-all segment     → token name+
//	[[...name]]   optional catch-all    → token name*
//	(.)x (..)x (..)(..)x (...)x         route interception markers
//
// # Usage
//
//	eng := router.New()
//	table, err := eng.Build(context.Background(), "app")
//	if err != nil {
//	    // duplicate parameter names and similar conflicts are reported here
//	}
//
//	route, params, ok := router.Match("/blog/hello", table)
//	if ok {
//	    // params["slug"].Value == "hello"
//	}
//
// Tables are immutable once built and safe for concurrent matching. The
// engine caches one table per root until Invalidate is called; rebuilding
// publishes a fresh table and never mutates the old one.
package router
