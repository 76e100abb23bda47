package router

import (
	"github.com/appdir-dev/appdir/pkg/routepath"
)

// ParamValue is one extracted route parameter: a single segment value for
// dynamic tokens, an ordered segment list for catch-alls.
type ParamValue struct {
	Value string   `json:"value,omitempty"`
	List  []string `json:"list,omitempty"`

	// Multi is true when List is the meaningful field.
	Multi bool `json:"multi,omitempty"`
}

// Params maps declared parameter names to their extracted values.
type Params map[string]ParamValue

// Get returns the single-segment value for a name; catch-all parameters
// are read with GetList.
func (p Params) Get(name string) string {
	return p[name].Value
}

// GetList returns the ordered segment list for a catch-all name.
func (p Params) GetList(name string) []string {
	return p[name].List
}

// Match resolves a request path against a published table: the first route
// in precedence order whose pattern aligns with the normalized path wins.
// Matching never mutates the table and is safe to call concurrently.
func Match(path string, t *RouteTable) (*Route, Params, bool) {
	if t == nil {
		return nil, nil, false
	}

	norm := routepath.Normalize(path)
	segs := routepath.DecodeSegments(norm.Path)

	for _, r := range t.Routes {
		if params, ok := matchTokens(r.Pattern.Tokens, segs); ok {
			return r, params, true
		}
	}
	return nil, nil, false
}

// matchTokens aligns path segments against pattern tokens. A literal must
// equal its segment exactly; a dynamic token consumes exactly one segment;
// a catch-all consumes one or more remaining segments and terminates; an
// optional catch-all consumes zero or more and likewise terminates. Any
// other length mismatch fails the route.
func matchTokens(tokens []Token, segs []string) (Params, bool) {
	params := Params{}
	i := 0

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenLiteral:
			if i >= len(segs) || segs[i] != tok.Text {
				return nil, false
			}
			i++

		case TokenDynamic:
			if i >= len(segs) {
				return nil, false
			}
			params[tok.Text] = ParamValue{Value: segs[i]}
			i++

		case TokenCatchAll:
			if i >= len(segs) {
				return nil, false
			}
			params[tok.Text] = ParamValue{List: append([]string{}, segs[i:]...), Multi: true}
			return params, true

		case TokenOptionalCatchAll:
			params[tok.Text] = ParamValue{List: append([]string{}, segs[i:]...), Multi: true}
			return params, true
		}
	}

	if i != len(segs) {
		return nil, false
	}
	return params, true
}
