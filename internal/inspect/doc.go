// Package inspect runs the route-table debug inspector: a small HTTP
// server that exposes the built table as JSON, resolves ad-hoc match
// queries, serves Prometheus metrics, and optionally watches the routes
// directory to rebuild the table on change.
//
// The inspector is a collaborator of the routing engine, not part of it:
// the engine never performs network I/O or filesystem watching itself.
// The watcher simply calls Invalidate and triggers a rebuild, which is
// the invalidation contract the engine exposes to any caller.
package inspect
