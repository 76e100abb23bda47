package router

import (
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// routeFileStems are the recognized base names of convention files.
var routeFileStems = []string{
	"page",
	"route",
	"layout",
	"template",
	"loading",
	"error",
	"not-found",
	"forbidden",
	"unauthorized",
	"default",
}

// DefaultExtensions is the extension set scanned when none is configured.
// Order matters: when a directory carries the same stem under several
// extensions, the earliest extension wins.
var DefaultExtensions = []string{".tsx", ".ts", ".jsx", ".js", ".mjs"}

// dirInfo is the memoized listing of one directory: the recognized
// convention files it contains and its sorted child directories.
type dirInfo struct {
	files   map[string]string // stem -> root-relative file path
	subdirs []string          // sorted child directory names
}

// scanContext is the per-build directory arena. Chain, slot and intercept
// discovery all revisit overlapping directory ranges; routing every
// listing through the arena keeps it at one ReadDir per directory per
// build. A missing directory contributes an empty listing, never an error.
type scanContext struct {
	root string
	exts []string
	dirs map[string]*dirInfo
}

func newScanContext(root string, exts []string) *scanContext {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	return &scanContext{
		root: root,
		exts: exts,
		dirs: make(map[string]*dirInfo),
	}
}

// dir returns the memoized listing of a root-relative directory.
func (sc *scanContext) dir(rel string) *dirInfo {
	if info, ok := sc.dirs[rel]; ok {
		return info
	}

	info := &dirInfo{files: map[string]string{}}
	sc.dirs[rel] = info

	entries, err := os.ReadDir(filepath.Join(sc.root, filepath.FromSlash(rel)))
	if err != nil {
		return info
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			info.subdirs = append(info.subdirs, name)
			continue
		}
		stem, ext := splitExt(name)
		if !slices.Contains(sc.exts, ext) || !slices.Contains(routeFileStems, stem) {
			continue
		}
		full := joinRel(rel, name)
		if prev, ok := info.files[stem]; ok {
			// Same stem under two extensions: the configured order decides.
			_, prevExt := splitExt(path.Base(prev))
			if slices.Index(sc.exts, ext) >= slices.Index(sc.exts, prevExt) {
				continue
			}
		}
		info.files[stem] = full
	}
	slices.Sort(info.subdirs)
	return info
}

// file returns the root-relative path of the stem's file in a directory,
// or "" when absent.
func (sc *scanContext) file(rel, stem string) string {
	return sc.dir(rel).files[stem]
}

func (sc *scanContext) hasFile(rel, stem string) bool {
	return sc.file(rel, stem) != ""
}

// routeDir is one directory that defines a primary route.
type routeDir struct {
	rel      string
	segments []Segment
}

// collectRouteDirs walks the tree iteratively and returns every directory
// containing a page or data-handler file, in lexical walk order. Slot
// directories ("@name"), interception markers, private directories
// ("_name") and dot-directories never produce primary routes and are not
// descended into here; slot and intercept discovery visit them through the
// arena on their own terms.
func (sc *scanContext) collectRouteDirs() []routeDir {
	type frame struct {
		rel      string
		segments []Segment
	}

	var out []routeDir
	stack := []frame{{rel: "."}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		info := sc.dir(f.rel)
		if _, ok := info.files["page"]; ok {
			out = append(out, routeDir{rel: f.rel, segments: f.segments})
		} else if _, ok := info.files["route"]; ok {
			out = append(out, routeDir{rel: f.rel, segments: f.segments})
		}

		// Reverse order so the stack pops children lexically.
		for i := len(info.subdirs) - 1; i >= 0; i-- {
			name := info.subdirs[i]
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
				continue
			}
			seg := ClassifySegment(name)
			if seg.Kind == SegmentSlot || seg.Kind.IsIntercept() {
				continue
			}
			segs := make([]Segment, len(f.segments), len(f.segments)+1)
			copy(segs, f.segments)
			stack = append(stack, frame{rel: joinRel(f.rel, name), segments: append(segs, seg)})
		}
	}

	return out
}

// levels returns the root-relative path of every directory level from the
// root down to rel, inclusive: ".", "a", "a/b", ...
func levels(rel string) []string {
	out := []string{"."}
	if rel == "." || rel == "" {
		return out
	}
	parts := strings.Split(rel, "/")
	cur := ""
	for _, p := range parts {
		cur = joinRel(cur, p)
		out = append(out, cur)
	}
	return out
}

// joinRel joins root-relative slash paths, treating "." as the root.
func joinRel(rel, name string) string {
	if rel == "." || rel == "" {
		return name
	}
	return rel + "/" + name
}

// parentRel returns the parent of a root-relative path, "." at the top.
func parentRel(rel string) string {
	if rel == "." || !strings.Contains(rel, "/") {
		return "."
	}
	return rel[:strings.LastIndex(rel, "/")]
}

// splitExt splits a file name into stem and extension.
func splitExt(name string) (stem, ext string) {
	ext = path.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}
