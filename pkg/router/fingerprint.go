package router

import (
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"
)

// Fingerprint returns a stable content hash of the table. Two builds over
// an unchanged tree produce the same fingerprint, so collaborators such as
// an incremental-regeneration cache can key entries by it without hashing
// the tree themselves.
func (t *RouteTable) Fingerprint() uint64 {
	return t.fingerprint
}

func computeFingerprint(t *RouteTable) uint64 {
	var b strings.Builder
	for _, r := range t.Routes {
		b.WriteString(string(r.Kind))
		b.WriteByte('|')
		b.WriteString(r.Pattern.String())
		b.WriteByte('|')
		b.WriteString(r.Page)
		b.WriteByte('|')
		b.WriteString(r.Handler)
		b.WriteByte('|')
		b.WriteString(strings.Join(r.Layouts.Layouts, ","))
		b.WriteByte('|')
		b.WriteString(strings.Join(r.Layouts.Errors, ","))
		b.WriteByte('|')
		b.WriteString(strings.Join(r.Layouts.NotFounds, ","))
		b.WriteByte('|')
		b.WriteString(strings.Join(r.Templates, ","))
		b.WriteByte('|')
		writeBoundaries(&b, r.Boundaries)
		for _, s := range r.Slots {
			b.WriteString("@")
			b.WriteString(s.Name)
			b.WriteByte('|')
			b.WriteString(s.Page)
			b.WriteByte('|')
			b.WriteString(s.Default)
			b.WriteByte('|')
			b.WriteString(strconv.Itoa(s.LayoutIndex))
			writeIntercepts(&b, s.Intercepts)
		}
		writeIntercepts(&b, r.Intercepts)
		b.WriteByte('\n')
	}
	return xxh3.HashString(b.String())
}

func writeBoundaries(b *strings.Builder, bs BoundarySet) {
	b.WriteString(bs.Loading)
	b.WriteByte(',')
	b.WriteString(bs.Error)
	b.WriteByte(',')
	b.WriteString(bs.NotFound)
	b.WriteByte(',')
	b.WriteString(bs.Forbidden)
	b.WriteByte(',')
	b.WriteString(bs.Unauthorized)
	b.WriteByte('|')
}

func writeIntercepts(b *strings.Builder, ics []InterceptingRoute) {
	for _, ic := range ics {
		b.WriteString(string(ic.Kind))
		b.WriteByte('>')
		b.WriteString(ic.Target.String())
		b.WriteByte('>')
		b.WriteString(ic.Page)
		b.WriteByte('|')
	}
}
